package modules

import (
	"errors"
	"fmt"
	"reflect"
)

// Kind classifies why a settings module could not be loaded.
type Kind string

const (
	KindNotFound Kind = "ModuleNotFoundError"
	KindRead     Kind = "ReadError"
	KindDecode   Kind = "DecodeError"
)

// LoadError is returned by Load when a settings module cannot be loaded.
type LoadError struct {
	Name string
	Path string
	Kind Kind
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: cannot load %s from %s: %v", e.Kind, e.Name, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: cannot load %s: %v", e.Kind, e.Name, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ErrNotFound is wrapped by a LoadError of KindNotFound.
var ErrNotFound = errors.New("no such module")

// KindOf names the kind of failure err describes. Errors that are not a
// LoadError are named after their Go type.
func KindOf(err error) string {
	var le *LoadError
	if errors.As(err, &le) {
		return string(le.Kind)
	}
	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return "error"
	}
	return t.Name()
}
