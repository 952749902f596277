package devsettings

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PiDelport/django-develop/internal/settings"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Render writes m as the source of a Python module that defines every name
// in m, in lexical order.
func Render(w io.Writer, m settings.Map) error {
	var b strings.Builder
	b.WriteString("# Generated by django-develop; changes are overwritten on every run.\n")
	b.WriteString("import datetime\n\n")
	for _, name := range m.Names() {
		lit, err := literal(m[name])
		if err != nil {
			return fmt.Errorf("cannot render %s: %w", name, err)
		}
		if identifier.MatchString(name) {
			fmt.Fprintf(&b, "%s = %s\n", name, lit)
		} else {
			fmt.Fprintf(&b, "globals()[%s] = %s\n", strconv.Quote(name), lit)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// literal returns the Python literal for v.
func literal(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "None", nil
	case bool:
		if t {
			return "True", nil
		}
		return "False", nil
	case string:
		// Go's quoted form only uses escapes Python understands too.
		return strconv.Quote(t), nil
	case json.Number:
		return t.String(), nil
	case float32:
		return floatLiteral(float64(t)), nil
	case float64:
		return floatLiteral(t), nil
	case time.Time:
		return fmt.Sprintf("datetime.datetime.fromisoformat(%q)", t.Format("2006-01-02T15:04:05.000000-07:00")), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Slice, reflect.Array:
		items := make([]string, rv.Len())
		for i := range items {
			item, err := literal(rv.Index(i).Interface())
			if err != nil {
				return "", err
			}
			items[i] = item
		}
		return "[" + strings.Join(items, ", ") + "]", nil
	case reflect.Map:
		items := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k, err := literal(iter.Key().Interface())
			if err != nil {
				return "", err
			}
			val, err := literal(iter.Value().Interface())
			if err != nil {
				return "", err
			}
			items = append(items, k+": "+val)
		}
		sort.Strings(items)
		return "{" + strings.Join(items, ", ") + "}", nil
	}
	return "", fmt.Errorf("unsupported value of type %T", v)
}

func floatLiteral(f float64) string {
	switch {
	case math.IsNaN(f):
		return `float("nan")`
	case math.IsInf(f, 1):
		return `float("inf")`
	case math.IsInf(f, -1):
		return `float("-inf")`
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
