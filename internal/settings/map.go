package settings

import (
	"encoding/json"
	"math"
	"reflect"
	"sort"
	"strings"
	"time"
)

// Map holds settings by name. It is used both for a base configuration read
// from a settings module and for the merged configuration handed to Django.
type Map map[string]any

// Clone returns a shallow copy of m. Values are shared.
func (m Map) Clone() Map {
	c := make(Map, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Constants returns the subset of m whose names are constants (see IsConstant).
func (m Map) Constants() Map {
	c := make(Map)
	for k, v := range m {
		if IsConstant(k) {
			c[k] = v
		}
	}
	return c
}

// Names returns the names in m in lexical order.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is set in m.
func (m Map) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// IsConstant reports whether name follows the upper-case constant convention:
// upper-casing it changes nothing and it contains at least one cased letter.
func IsConstant(name string) bool {
	return strings.ToUpper(name) == name && strings.ToLower(name) != name
}

// Truthy reports whether v is "set to something". nil, false, numeric zero,
// and empty strings, maps and slices are all false.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	if n, ok := number(v); ok {
		return n != 0
	}
	switch t := v.(type) {
	case string:
		return t != ""
	case time.Time:
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// Equal compares two setting values. Numbers compare by value regardless of
// which decoder produced them, so int 25, int64 25, float64 25 and
// json.Number "25" are all equal. Booleans count as the numbers 0 and 1, as
// they do in Python: EMAIL_USE_TLS = 0 equals False.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	na, aok := number(a)
	nb, bok := number(b)
	if aok || bok {
		return aok && bok && na == nb
	}
	return reflect.DeepEqual(a, b)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return math.NaN(), false
		}
		return f, true
	}
	return 0, false
}
