package database

import (
	"database/sql/driver"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// timestampLayouts are the text forms a timestamp may come back as: SQLite
// stores time.Time values and CURRENT_TIMESTAMP defaults as strings.
var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// Timestamp is a millisecond-precision UTC time stored as TIMESTAMP(3) on
// PostgreSQL and DATETIME on SQLite.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to milliseconds in UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

// Now returns the current time as a Timestamp.
func Now() Timestamp {
	return NewTimestamp(time.Now())
}

// Step returns t moved forward by n milliseconds. Rows written together are
// stamped with successive steps so they sort in write order.
func (t Timestamp) Step(n int) Timestamp {
	return NewTimestamp(t.Add(time.Duration(n) * time.Millisecond))
}

// GormDataType lets GORM treat the field as a time column.
func (Timestamp) GormDataType() string {
	return string(schema.Time)
}

// GormDBDataType returns the dialect-specific column type.
func (Timestamp) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "timestamp(3)"
	}
	return "datetime"
}

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.UTC().Truncate(time.Millisecond), nil
}

// Scan implements sql.Scanner.
func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		*t = NewTimestamp(v)
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("scan timestamp: unsupported type %T", src)
	}
}

func (t *Timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			*t = NewTimestamp(parsed)
			return nil
		}
	}
	return fmt.Errorf("scan timestamp: unrecognised format %q", s)
}
