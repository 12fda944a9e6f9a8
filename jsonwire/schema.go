package jsonwire

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Location tells where a member travels in an HTTP request.
// Only body members are part of the JSON document.
type Location int

const (
	LocationBody Location = iota
	LocationURI
	LocationQuery
	LocationHeader
)

func (l Location) String() string {
	switch l {
	case LocationBody:
		return "body"
	case LocationURI:
		return "uri"
	case LocationQuery:
		return "querystring"
	case LocationHeader:
		return "header"
	default:
		return fmt.Sprintf("Location(%d)", int(l))
	}
}

// Binding is a member bound outside the JSON body, rendered as text.
type Binding struct {
	Location Location
	Name     string
	Value    string
}

// Member describes one field of record type T. Build members with [Field].
type Member[T any] struct {
	name     string
	location Location
	scalar   bool

	absent func(rec *T) bool
	write  func(s *jsoniter.Stream, rec *T)
	read   func(it *jsoniter.Iterator, rec *T)
	text   func(rec *T) (string, bool)
}

// Field declares a member with wire key name. get returns the address of the
// member inside a record; codec encodes and decodes the member's value.
func Field[T, V any](name string, get func(rec *T) *V, codec Value[V]) Member[T] {
	return Member[T]{
		name:   name,
		scalar: scalar(codec),
		absent: func(rec *T) bool {
			return codec.absent(*get(rec))
		},
		write: func(s *jsoniter.Stream, rec *T) {
			codec.write(s, *get(rec))
		},
		read: func(it *jsoniter.Iterator, rec *T) {
			*get(rec) = codec.read(it)
		},
		text: func(rec *T) (string, bool) {
			return codec.format(*get(rec))
		},
	}
}

// In moves the member out of the JSON body to loc.
// Only scalar members can be bound outside the body.
func (m Member[T]) In(loc Location) Member[T] {
	m.location = loc
	return m
}

// Name returns the wire key of the member.
func (m Member[T]) Name() string { return m.name }

// Schema is the static, ordered member list of one record type.
// A Schema is immutable once built and safe for concurrent use.
type Schema[T any] struct {
	name    string
	members []Member[T]
	index   map[string]int
}

// NewSchema builds the schema for record type T and registers it so that
// [Codec] can find it by type. It panics on duplicate wire keys or on a
// non-scalar member bound outside the body, both of which are programming errors.
func NewSchema[T any](name string, members ...Member[T]) *Schema[T] {
	s := &Schema[T]{
		name:    name,
		members: members,
		index:   make(map[string]int, len(members)),
	}
	for i, m := range members {
		if _, dup := s.index[m.name]; dup {
			panic(fmt.Sprintf("jsonwire: duplicate member %q in %s", m.name, name))
		}
		if m.location != LocationBody && !m.scalar {
			panic(fmt.Sprintf("jsonwire: member %q in %s cannot be bound to %s", m.name, name, m.location))
		}
		s.index[m.name] = i
	}
	register(s)
	return s
}

// Name returns the record name the schema was declared with.
func (s *Schema[T]) Name() string { return s.name }

// Keys returns the wire keys of all members, in declaration order.
func (s *Schema[T]) Keys() []string {
	keys := make([]string, len(s.members))
	for i, m := range s.members {
		keys[i] = m.name
	}
	return keys
}

// Encode writes rec as one JSON object. Absent members and members bound
// outside the body are skipped. A nil rec is written as an empty object.
func (s *Schema[T]) Encode(stream *jsoniter.Stream, rec *T) {
	stream.WriteObjectStart()
	if rec != nil {
		first := true
		for i := range s.members {
			m := &s.members[i]
			if m.location != LocationBody || m.absent(rec) {
				continue
			}
			if !first {
				stream.WriteMore()
			}
			first = false
			stream.WriteObjectField(m.name)
			m.write(stream, rec)
		}
	}
	stream.WriteObjectEnd()
}

// Decode reads one record from it. A non-object token is skipped and
// yields nil. Unknown keys are skipped.
func (s *Schema[T]) Decode(it *jsoniter.Iterator) *T {
	if it.WhatIsNext() != jsoniter.ObjectValue {
		it.Skip()
		return nil
	}
	rec := new(T)
	it.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		i, ok := s.index[key]
		if !ok {
			it.Skip()
			return it.Error == nil
		}
		s.members[i].read(it, rec)
		return it.Error == nil
	})
	return rec
}

// Bindings returns the present members of rec bound outside the JSON body.
func (s *Schema[T]) Bindings(rec *T) []Binding {
	if rec == nil {
		return nil
	}
	var out []Binding
	for i := range s.members {
		m := &s.members[i]
		if m.location == LocationBody || m.absent(rec) {
			continue
		}
		v, _ := m.text(rec)
		out = append(out, Binding{Location: m.location, Name: m.name, Value: v})
	}
	return out
}
