package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fr0stylo/tflwatch/internal/db/queries"
)

// Session pins queries to one pooled connection until Close.
type Session struct {
	*queries.Queries
	conn *sql.Conn
}

// Acquire checks out a dedicated connection from the pool.
func (c *Database) Acquire(ctx context.Context) (*Session, error) {
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	wrapped := newInstrumentedDBTX(conn, string(c.dialect), c.tracker)
	return &Session{Queries: queries.New(wrapped, c.dialect), conn: conn}, nil
}

// Close returns the connection to the pool. Calling it twice is safe.
func (s *Session) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	conn := s.conn
	s.conn = nil
	s.Queries = nil
	if err := conn.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		return err
	}
	return nil
}

// Active reports whether the session still holds its connection.
func (s *Session) Active() bool {
	return s != nil && s.conn != nil
}
