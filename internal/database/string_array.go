package database

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringArray is an ordered list of strings stored as TEXT[] on PostgreSQL
// and as the same array literal text ("{"a","b"}") on SQLite. Order and
// duplicates are preserved. A nil array maps to NULL, an empty one to "{}".
type StringArray []string

// GormDataType returns the generic data type.
func (StringArray) GormDataType() string {
	return "string_array"
}

// GormDBDataType returns the dialect-specific column type.
func (StringArray) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// Value implements driver.Valuer. Every element is quoted so that empty
// strings, commas, braces and the word NULL survive the round trip.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, s := range a {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		for _, r := range s {
			if r == '"' || r == '\\' {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String(), nil
}

// Scan implements sql.Scanner.
func (a *StringArray) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = nil
		return nil
	case string:
		return a.parse(v)
	case []byte:
		return a.parse(string(v))
	case []string:
		*a = append(StringArray{}, v...)
		return nil
	default:
		return fmt.Errorf("scan string array: unsupported type %T", src)
	}
}

func (a *StringArray) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return fmt.Errorf("scan string array: malformed literal %q", s)
	}
	body := s[1 : len(s)-1]
	result := StringArray{}
	if body == "" {
		*a = result
		return nil
	}

	var (
		elem    strings.Builder
		quoted  bool
		inQuote bool
		escaped bool
	)
	flush := func() {
		v := elem.String()
		if !quoted {
			v = strings.TrimSpace(v)
			// Unquoted NULL elements have no string form; keep the slot.
			if strings.EqualFold(v, "NULL") {
				v = ""
			}
		}
		result = append(result, v)
		elem.Reset()
		quoted = false
	}

	for _, r := range body {
		switch {
		case escaped:
			elem.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuote = !inQuote
			quoted = true
		case r == ',' && !inQuote:
			flush()
		default:
			elem.WriteRune(r)
		}
	}
	if inQuote || escaped {
		return fmt.Errorf("scan string array: unterminated element in %q", s)
	}
	flush()

	*a = result
	return nil
}
