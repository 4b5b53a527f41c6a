package repository

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// parseNullableTime parses a sql.NullString into a *time.Time using the given
// layout. Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite
// storage. Returns nil (SQL NULL) if the pointer is nil.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// nullableStrToValue converts a *string to a storage value, nil for SQL NULL.
func nullableStrToValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// strPtrFromNull converts a sql.NullString to a *string, nil for NULL/empty.
func strPtrFromNull(s sql.NullString) *string {
	if !s.Valid || s.String == "" {
		return nil
	}
	v := s.String
	return &v
}

// parseDec parses a stored decimal string. Malformed or empty values degrade
// to zero rather than failing the read; upstream import pipelines have been
// known to write junk and a budget row must still load.
func parseDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// nullableDecToValue converts a *decimal.Decimal to a storage value.
func nullableDecToValue(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return d.String()
}

// decPtrFromNull converts a stored nullable decimal string back to a pointer.
func decPtrFromNull(s sql.NullString) *decimal.Decimal {
	if !s.Valid || s.String == "" {
		return nil
	}
	d := parseDec(s.String)
	return &d
}
