package driven

import "io"

// Codec encodes and decodes JSON payloads. Special types (addresses,
// timestamps) go through the adapters the codec was built with; everything
// else uses default JSON behaviour.
//
// A Codec is immutable and safe for concurrent use.
type Codec interface {
	// Encode renders v as JSON.
	Encode(v any) ([]byte, error)

	// Decode parses data into v, which must be a non-nil pointer.
	// Fails with *domain.DecodeError.
	Decode(data []byte, v any) error

	// DecodeReader is Decode over the full contents of r.
	DecodeReader(r io.Reader, v any) error
}
