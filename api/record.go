package api

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	NotAvailable = "N/A"
	InvalidDate  = "Invalid Date"
)

// Record is one loosely typed backend entry. Every field is optional.
type Record map[string]interface{}

// Value returns the first truthy value among keys.
func (r Record) Value(keys ...string) (interface{}, bool) {
	for _, key := range keys {
		if v, ok := r[key]; ok && Truthy(v) {
			return v, true
		}
	}
	return nil, false
}

func (r Record) Text(fallback string, keys ...string) string {
	if v, ok := r.Value(keys...); ok {
		return Display(v)
	}
	return fallback
}

func (r Record) Number(keys ...string) string {
	return r.Text("0", keys...)
}

// Date formats a timestamp field as M/D/YYYY.
func (r Record) Date(key string) string {
	v, ok := r.Value(key)
	if !ok {
		return NotAvailable
	}
	t, ok := parseTime(v)
	if !ok {
		return InvalidDate
	}
	return t.Format("1/2/2006")
}

// Key is a display-only row key: the record id, else its position.
func (r Record) Key(index int) string {
	return r.Text(strconv.Itoa(index), "id")
}

func Truthy(v interface{}) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0 && !math.IsNaN(v)
	case int:
		return v != 0
	case int64:
		return v != 0
	}
	return true
}

func Display(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case []interface{}:
		parts := make([]string, len(v))
		for i := range v {
			parts[i] = Display(v[i])
		}
		return strings.Join(parts, ",")
	case map[string]interface{}, Record:
		return "[object Object]"
	}
	return ""
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func parseTime(v interface{}) (time.Time, bool) {
	switch v := v.(type) {
	case float64:
		return time.UnixMilli(int64(v)).UTC(), true
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
