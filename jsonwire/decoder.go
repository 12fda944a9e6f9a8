package jsonwire

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/awsjson/awsjson.go/pkg/constants"
)

// Decoder reads records from an input stream, one JSON value per call.
type Decoder struct {
	it *jsoniter.Iterator
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{it: jsoniter.Parse(api, r, 512)}
}

// Decode reads the next JSON value into the record pointed to by v.
// It returns io.EOF when the stream holds no more values.
func (dec *Decoder) Decode(v any) error {
	e, err := lookup(v)
	if err != nil {
		return err
	}
	if e.isNil(v) {
		return constants.ErrNilRecord
	}
	rec, err := decodeEntry(dec.it, e)
	if err != nil {
		return err
	}
	e.store(v, rec)
	return nil
}

// Decode reads one record from it using the schema registered for T.
// A non-object token yields a nil record and no error.
func Decode[T any](it *jsoniter.Iterator) (*T, error) {
	s, ok := Lookup[T]()
	if !ok {
		var zero *T
		_, err := lookup(zero)
		return nil, err
	}
	rec := s.Decode(it)
	if it.Error != nil {
		return nil, unmarshalError(s.name, it.Error)
	}
	return rec, nil
}

// decodeEntry reads one value and returns the decoded record, which is a nil
// *T for a non-object value. It returns a bare io.EOF only when the input ends
// before the value starts; running out of input inside the value is a decode
// failure. Nothing is returned from a failed read, so callers never see a
// partly filled record.
func decodeEntry(it *jsoniter.Iterator, e *entry) (any, error) {
	if it.WhatIsNext() == jsoniter.InvalidValue {
		switch it.Error {
		case io.EOF:
			return nil, io.EOF
		case nil:
			return nil, unmarshalError(e.name, constants.ErrInvalidToken)
		default:
			return nil, unmarshalError(e.name, it.Error)
		}
	}
	rec := e.decode(it)
	if it.Error != nil {
		return nil, unmarshalError(e.name, it.Error)
	}
	return rec, nil
}

func unmarshalError(name string, cause error) error {
	return errors.Wrapf(cause, "jsonwire: unable to unmarshal %s", name)
}
