// Package codec declares the body codec contract used by connections.
package codec

import "io"

type Encoder interface {
	Encode(v any) error
}

type Decoder interface {
	Decode(v any) error
}

// Marshaler renders request records into a request body.
type Marshaler interface {
	Marshal(v any) ([]byte, error)
	NewEncoder(w io.Writer) Encoder
}

// Unmarshaler populates response records from a response body.
type Unmarshaler interface {
	Unmarshal(data []byte, dst any) error
	NewDecoder(r io.Reader) Decoder
}

// Binder exposes the members of a request record that travel outside the body
// (URI labels, query string, headers). Marshalers that support REST protocols implement it.
type Binder interface {
	Bindings(v any) ([]Binding, error)
}

// Binding is one request member rendered as text for its location.
type Binding struct {
	Location string
	Name     string
	Value    string
}
