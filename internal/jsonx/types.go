package jsonx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Text used for values without a natural string form
const (
	NullText   = "null"
	ObjectText = "[object Object]"
)

// IsObject reports whether v is a decoded JSON object
func IsObject(v any) bool {
	_, ok := v.(*Object)
	return ok
}

// IsArray reports whether v is a decoded JSON array
func IsArray(v any) bool {
	_, ok := v.([]any)
	return ok
}

// IsString reports whether v is a string
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsNumber reports whether v is a number. NaN is not considered a number.
func IsNumber(v any) bool {
	switch n := v.(type) {
	case float64:
		return !math.IsNaN(n)
	case float32:
		return !math.IsNaN(float64(n))
	case int, int32, int64:
		return true
	}
	return false
}

// IsBool reports whether v is a boolean
func IsBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsNull reports whether v is JSON null
func IsNull(v any) bool {
	return v == nil
}

// String converts a decoded value into the text shown for it in a panel.
// Arrays are joined with commas and objects collapse to a fixed marker.
func String(v any) string {
	switch t := v.(type) {
	case nil:
		return NullText
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return formatNumber(t)
	case float32:
		return formatNumber(float64(t))
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			if item == nil {
				continue
			}
			parts[i] = String(item)
		}
		return strings.Join(parts, ",")
	case *Object:
		return ObjectText
	default:
		return fmt.Sprint(t)
	}
}

// formatNumber prints f in the shortest form that round-trips, switching to
// exponent notation only for very large or very small magnitudes.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
