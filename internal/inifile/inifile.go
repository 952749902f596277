// Package inifile decodes the INI files written by Python's configparser and
// by hand, using go-ini.
//
// go-ini expects "key=value" with nothing around the assignment, while
// configparser writes "key = value" and also accepts ':' as the delimiter.
// Unmarshal rewrites each line into the compact form before decoding.
package inifile

import (
	"bufio"
	"bytes"
	"reflect"
	"strings"

	"git.sr.ht/~spc/go-ini"
)

var options = ini.Options{
	AllowNumberSignComments: true,
	AllowEmptyValues:        true,
}

// Normalize returns data with the whitespace around section names, keys and
// values removed. Keys are lower-cased as configparser does. Comment and blank
// lines are kept.
func Normalize(data []byte) []byte {
	var out bytes.Buffer
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "", line[0] == '#', line[0] == ';':
		case line[0] == '[' && line[len(line)-1] == ']':
			line = "[" + strings.TrimSpace(line[1:len(line)-1]) + "]"
		default:
			if i := strings.IndexAny(line, "=:"); i > 0 {
				key := strings.ToLower(strings.TrimSpace(line[:i]))
				line = key + "=" + strings.TrimSpace(line[i+1:])
			}
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.Bytes()
}

// Sections returns the names of the sections declared in data, in order.
func Sections(data []byte) []string {
	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(Normalize(data)))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			names = append(names, line[1:len(line)-1])
		}
	}
	return names
}

// Unmarshal decodes data into the struct v points to. Sections that v declares
// but data lacks are added empty, leaving their fields at the zero value.
func Unmarshal(data []byte, v interface{}) error {
	data = Normalize(data)
	present := make(map[string]bool)
	for _, name := range Sections(data) {
		present[name] = true
	}
	for _, name := range sectionNames(v) {
		if !present[name] {
			data = append(data, "["+name+"]\n"...)
		}
	}
	return ini.UnmarshalWithOptions(data, v, options)
}

func sectionNames(v interface{}) []string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	var names []string
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Type.Kind() != reflect.Struct {
			continue
		}
		name := strings.SplitN(sf.Tag.Get("ini"), ",", 2)[0]
		if name == "" {
			name = sf.Name
		}
		if name != "-" {
			names = append(names, name)
		}
	}
	return names
}
