package jsonwire

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/awsjson/awsjson.go/pkg/constants"
)

// Encoder writes records to an output stream, one JSON object per call.
type Encoder struct {
	stream *jsoniter.Stream
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{stream: jsoniter.NewStream(api, w, 512)}
}

// Encode writes the JSON encoding of the record pointed to by v and flushes it to the stream.
// Failures of the underlying writer are reported as "unable to marshal" errors wrapping the cause.
func (enc *Encoder) Encode(v any) error {
	e, err := lookup(v)
	if err != nil {
		return err
	}
	if e.isNil(v) {
		return constants.ErrNilRecord
	}

	e.encode(enc.stream, v)
	if enc.stream.Error != nil {
		return marshalError(e.name, enc.stream.Error)
	}
	if err := enc.stream.Flush(); err != nil {
		return marshalError(e.name, err)
	}
	return nil
}

// Encode writes rec to stream using the schema registered for T.
func Encode[T any](stream *jsoniter.Stream, rec *T) error {
	s, ok := Lookup[T]()
	if !ok {
		var zero *T
		_, err := lookup(zero)
		return err
	}
	s.Encode(stream, rec)
	if stream.Error != nil {
		return marshalError(s.name, stream.Error)
	}
	return nil
}

func marshalError(name string, cause error) error {
	return errors.Wrapf(cause, "jsonwire: unable to marshal %s", name)
}
