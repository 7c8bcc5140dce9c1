package queries

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// Dialect selects placeholder style and JSON binding for statement text.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

func New(db DBTX, dialect Dialect) *Queries {
	if dialect == "" {
		dialect = DialectSQLite
	}
	return &Queries{db: db, dialect: dialect}
}

type Queries struct {
	db      DBTX
	dialect Dialect
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx, dialect: q.dialect}
}

func (q *Queries) Dialect() Dialect {
	return q.dialect
}

// rebind rewrites ? placeholders to $n for PostgreSQL.
func (q *Queries) rebind(query string) string {
	if q.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
