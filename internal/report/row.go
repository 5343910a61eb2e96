package report

import (
	"fmt"
	"strconv"
	"time"
)

// Row is one result tuple from the query collaborator, keyed by column name.
// Every accessor coerces a missing or NULL column to a zero value instead of
// failing; only the date accessors may report absence as nil.
type Row map[string]any

// Str returns the column as a string, "" when absent or NULL. Numeric values
// are stringified the way the upstream consumers expect ("6001", not 6001).
func (r Row) Str(col string) string {
	v, ok := r[col]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return numToString(v)
	}
}

// FirstStr returns the first non-empty string among the columns.
func (r Row) FirstStr(cols ...string) string {
	for _, col := range cols {
		if s := r.Str(col); s != "" {
			return s
		}
	}
	return ""
}

// NumStr stringifies a numeric or code column, treating NULL, zero and ""
// all as absent (matching the source contract where falsy values render
// empty).
func (r Row) NumStr(col string) string {
	v, ok := r[col]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	}
	if r.Float(col) == 0 {
		return ""
	}
	return numToString(v)
}

// NumStrPtr is NumStr for explicitly nullable fields: nil when absent.
func (r Row) NumStrPtr(col string) *string {
	s := r.NumStr(col)
	if s == "" {
		return nil
	}
	return &s
}

// Int returns the column as an int, 0 when absent or NULL.
func (r Row) Int(col string) int {
	v, ok := r[col]
	if !ok || v == nil {
		return 0
	}
	switch t := v.(type) {
	case int:
		return t
	case int16:
		return int(t)
	case int32:
		return int(t)
	case int64:
		return int(t)
	case float32:
		return int(t)
	case float64:
		return int(t)
	case string:
		n, _ := strconv.Atoi(t)
		return n
	default:
		n, _ := strconv.Atoi(fmt.Sprint(v))
		return n
	}
}

// Float returns the column as a float64, 0 when absent or NULL.
func (r Row) Float(col string) float64 {
	v, ok := r[col]
	if !ok || v == nil {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int16:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, _ := strconv.ParseFloat(t, 64)
		return f
	default:
		f, _ := strconv.ParseFloat(fmt.Sprint(v), 64)
		return f
	}
}

// Time returns the column as a time.Time when present.
func (r Row) Time(col string) (time.Time, bool) {
	v, ok := r[col]
	if !ok || v == nil {
		return time.Time{}, false
	}
	t, ok := v.(time.Time)
	return t, ok
}

// DateTime renders a timestamp column as an ISO-8601 string with second
// precision, nil when absent.
func (r Row) DateTime(col string) *string {
	t, ok := r.Time(col)
	if !ok {
		return nil
	}
	s := t.Format("2006-01-02T15:04:05")
	return &s
}

// DateTimeMillisUTC renders a timestamp column in UTC with millisecond
// precision and a literal Z suffix, nil when absent. Used by ship records.
func (r Row) DateTimeMillisUTC(col string) *string {
	t, ok := r.Time(col)
	if !ok {
		return nil
	}
	s := t.UTC().Format("2006-01-02T15:04:05.000Z")
	return &s
}

// Date renders a date column as YYYY-MM-DD, "" when absent.
func (r Row) Date(col string) string {
	t, ok := r.Time(col)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}

func numToString(v any) string {
	switch t := v.(type) {
	case int:
		return strconv.Itoa(t)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
