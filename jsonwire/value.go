package jsonwire

import (
	"encoding/base64"
	"sort"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// Value encodes and decodes one kind of member value.
//
// The zero value of V is the absent value: a nil pointer, slice or map.
// Implementations are stateless and shared by every schema that uses them.
type Value[V any] interface {
	absent(v V) bool
	write(s *jsoniter.Stream, v V)
	read(it *jsoniter.Iterator) V
	// format renders a present v for URI, query string and header bindings.
	// It reports false for values that have no textual form.
	format(v V) (string, bool)
}

// scalar reports whether values of codec can be bound outside the body.
func scalar[V any](codec Value[V]) bool {
	switch any(codec).(type) {
	case stringValue, int64Value, float64Value, boolValue, blobValue, timeValue:
		return true
	default:
		return false
	}
}

type stringValue struct{}

// String returns the codec for *string members.
func String() Value[*string] { return stringValue{} }

func (stringValue) absent(v *string) bool { return v == nil }

func (stringValue) write(s *jsoniter.Stream, v *string) { s.WriteString(*v) }

func (stringValue) read(it *jsoniter.Iterator) *string {
	if it.ReadNil() {
		return nil
	}
	v := it.ReadString()
	return &v
}

func (stringValue) format(v *string) (string, bool) { return *v, true }

type int64Value struct{}

// Int64 returns the codec for integer and long members.
func Int64() Value[*int64] { return int64Value{} }

func (int64Value) absent(v *int64) bool { return v == nil }

func (int64Value) write(s *jsoniter.Stream, v *int64) { s.WriteInt64(*v) }

func (int64Value) read(it *jsoniter.Iterator) *int64 {
	if it.ReadNil() {
		return nil
	}
	v := it.ReadInt64()
	return &v
}

func (int64Value) format(v *int64) (string, bool) { return strconv.FormatInt(*v, 10), true }

type float64Value struct{}

// Float64 returns the codec for float and double members.
func Float64() Value[*float64] { return float64Value{} }

func (float64Value) absent(v *float64) bool { return v == nil }

func (float64Value) write(s *jsoniter.Stream, v *float64) { s.WriteFloat64(*v) }

func (float64Value) read(it *jsoniter.Iterator) *float64 {
	if it.ReadNil() {
		return nil
	}
	v := it.ReadFloat64()
	return &v
}

func (float64Value) format(v *float64) (string, bool) {
	return strconv.FormatFloat(*v, 'f', -1, 64), true
}

type boolValue struct{}

// Bool returns the codec for *bool members.
func Bool() Value[*bool] { return boolValue{} }

func (boolValue) absent(v *bool) bool { return v == nil }

func (boolValue) write(s *jsoniter.Stream, v *bool) { s.WriteBool(*v) }

func (boolValue) read(it *jsoniter.Iterator) *bool {
	if it.ReadNil() {
		return nil
	}
	v := it.ReadBool()
	return &v
}

func (boolValue) format(v *bool) (string, bool) { return strconv.FormatBool(*v), true }

type blobValue struct{}

// Blob returns the codec for binary members, carried as base64 strings.
func Blob() Value[[]byte] { return blobValue{} }

func (blobValue) absent(v []byte) bool { return v == nil }

func (blobValue) write(s *jsoniter.Stream, v []byte) {
	s.WriteString(base64.StdEncoding.EncodeToString(v))
}

func (blobValue) read(it *jsoniter.Iterator) []byte {
	if it.ReadNil() {
		return nil
	}
	raw := it.ReadString()
	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		it.ReportError("read blob", err.Error())
		return nil
	}
	return b
}

func (blobValue) format(v []byte) (string, bool) {
	return base64.StdEncoding.EncodeToString(v), true
}

type recordValue[R any] struct {
	schema *Schema[R]
}

// Record returns the codec for a nested record member described by schema.
func Record[R any](schema *Schema[R]) Value[*R] { return recordValue[R]{schema: schema} }

func (v recordValue[R]) absent(r *R) bool { return r == nil }

func (v recordValue[R]) write(s *jsoniter.Stream, r *R) { v.schema.Encode(s, r) }

func (v recordValue[R]) read(it *jsoniter.Iterator) *R { return v.schema.Decode(it) }

func (v recordValue[R]) format(*R) (string, bool) { return "", false }

type listValue[E any] struct {
	elem Value[E]
}

// List returns the codec for an ordered list whose elements use elem.
// Absent elements are skipped while encoding.
func List[E any](elem Value[E]) Value[[]E] { return listValue[E]{elem: elem} }

func (v listValue[E]) absent(l []E) bool { return l == nil }

func (v listValue[E]) write(s *jsoniter.Stream, l []E) {
	s.WriteArrayStart()
	first := true
	for _, e := range l {
		if v.elem.absent(e) {
			continue
		}
		if !first {
			s.WriteMore()
		}
		first = false
		v.elem.write(s, e)
	}
	s.WriteArrayEnd()
}

func (v listValue[E]) read(it *jsoniter.Iterator) []E {
	if it.ReadNil() {
		return nil
	}
	out := make([]E, 0)
	it.ReadArrayCB(func(it *jsoniter.Iterator) bool {
		out = append(out, v.elem.read(it))
		return it.Error == nil
	})
	return out
}

func (v listValue[E]) format([]E) (string, bool) { return "", false }

type mapValue[V any] struct {
	elem Value[V]
}

// Map returns the codec for a string-keyed map whose values use elem.
// Entries with absent values are skipped while encoding.
func Map[V any](elem Value[V]) Value[map[string]V] { return mapValue[V]{elem: elem} }

func (v mapValue[V]) absent(m map[string]V) bool { return m == nil }

func (v mapValue[V]) write(s *jsoniter.Stream, m map[string]V) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s.WriteObjectStart()
	first := true
	for _, k := range keys {
		e := m[k]
		if v.elem.absent(e) {
			continue
		}
		if !first {
			s.WriteMore()
		}
		first = false
		s.WriteObjectField(k)
		v.elem.write(s, e)
	}
	s.WriteObjectEnd()
}

func (v mapValue[V]) read(it *jsoniter.Iterator) map[string]V {
	if it.ReadNil() {
		return nil
	}
	out := make(map[string]V)
	it.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
		out[key] = v.elem.read(it)
		return it.Error == nil
	})
	return out
}

func (v mapValue[V]) format(map[string]V) (string, bool) { return "", false }
