package queries

import (
	"fmt"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// FormatTimestamp renders t the way both dialects accept and SQLite orders lexically.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// timestamp scans DATETIME/TIMESTAMPTZ columns returned as time.Time or text.
type timestamp time.Time

func (t *timestamp) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = timestamp(v.UTC())
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case nil:
		*t = timestamp(time.Time{})
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (t *timestamp) parse(value string) error {
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			*t = timestamp(parsed.UTC())
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", value)
}
