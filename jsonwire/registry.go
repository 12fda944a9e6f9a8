package jsonwire

import (
	"fmt"
	"reflect"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/awsjson/awsjson.go/pkg/constants"
)

// entry is the type-erased view of a Schema[T], keyed by *T.
type entry struct {
	schema   any
	name     string
	encode   func(s *jsoniter.Stream, v any)
	decode   func(it *jsoniter.Iterator) any
	store    func(dst, rec any)
	bindings func(v any) []Binding
	isNil    func(v any) bool
}

var registry sync.Map // reflect.Type of *T -> *entry

func register[T any](s *Schema[T]) {
	e := &entry{
		schema: s,
		name:   s.name,
		encode: func(stream *jsoniter.Stream, v any) {
			s.Encode(stream, v.(*T))
		},
		decode: func(it *jsoniter.Iterator) any {
			return s.Decode(it)
		},
		store: func(dst, rec any) {
			if r := rec.(*T); r != nil {
				*dst.(*T) = *r
			}
		},
		bindings: func(v any) []Binding {
			return s.Bindings(v.(*T))
		},
		isNil: func(v any) bool {
			return v.(*T) == nil
		},
	}
	registry.Store(reflect.TypeOf((*T)(nil)), e)
}

// Lookup returns the schema registered for record type T.
func Lookup[T any]() (*Schema[T], bool) {
	v, ok := registry.Load(reflect.TypeOf((*T)(nil)))
	if !ok {
		return nil, false
	}
	return v.(*entry).schema.(*Schema[T]), true
}

// Registered reports whether v is a pointer to a record type with a schema.
func Registered(v any) bool {
	_, err := lookup(v)
	return err == nil
}

func lookup(v any) (*entry, error) {
	if v == nil {
		return nil, constants.ErrNilRecord
	}
	e, ok := registry.Load(reflect.TypeOf(v))
	if !ok {
		return nil, fmt.Errorf("%w: %T", constants.ErrNoSchema, v)
	}
	return e.(*entry), nil
}
