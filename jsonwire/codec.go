package jsonwire

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/awsjson/awsjson.go/internal/codec"
	"github.com/awsjson/awsjson.go/pkg/constants"
)

var api = jsoniter.ConfigDefault

// Codec marshals and unmarshals registered records. It is stateless and
// implements the marshaler, unmarshaler and binder contracts of connections.
type Codec struct{}

// New returns a Codec.
func New() *Codec {
	return &Codec{}
}

var (
	_ codec.Marshaler   = (*Codec)(nil)
	_ codec.Unmarshaler = (*Codec)(nil)
	_ codec.Binder      = (*Codec)(nil)
)

func (c *Codec) Marshal(v any) ([]byte, error) {
	e, err := lookup(v)
	if err != nil {
		return nil, err
	}
	if e.isNil(v) {
		return nil, constants.ErrNilRecord
	}

	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	e.encode(stream, v)
	if stream.Error != nil {
		return nil, marshalError(e.name, stream.Error)
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

func (c *Codec) Unmarshal(data []byte, v any) error {
	e, err := lookup(v)
	if err != nil {
		return err
	}
	if e.isNil(v) {
		return constants.ErrNilRecord
	}

	// A trailing space lets a number at the very end terminate without
	// hitting the end of input, so io.EOF always means a cut-off document.
	buf := make([]byte, len(data)+1)
	copy(buf, data)
	buf[len(data)] = ' '

	it := api.BorrowIterator(buf)
	defer api.ReturnIterator(it)

	rec, err := decodeEntry(it, e)
	if err != nil {
		if err == io.EOF {
			return unmarshalError(e.name, io.ErrUnexpectedEOF)
		}
		return err
	}
	if it.WhatIsNext() != jsoniter.InvalidValue || it.Error != io.EOF {
		return unmarshalError(e.name, constants.ErrTrailingData)
	}
	e.store(v, rec)
	return nil
}

func (c *Codec) NewEncoder(w io.Writer) codec.Encoder {
	return NewEncoder(w)
}

func (c *Codec) NewDecoder(r io.Reader) codec.Decoder {
	return NewDecoder(r)
}

// Bindings returns the members of the record pointed to by v that are bound
// to the URI, query string or headers.
func (c *Codec) Bindings(v any) ([]codec.Binding, error) {
	e, err := lookup(v)
	if err != nil {
		return nil, err
	}
	if e.isNil(v) {
		return nil, nil
	}
	bs := e.bindings(v)
	out := make([]codec.Binding, len(bs))
	for i, b := range bs {
		out[i] = codec.Binding{Location: b.Location.String(), Name: b.Name, Value: b.Value}
	}
	return out, nil
}
