package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/custodia-labs/cloudkit/internal/core/domain"
	"github.com/custodia-labs/cloudkit/internal/core/ports/driven"
)

// Ensure Codec implements the interface.
var _ driven.Codec = (*Codec)(nil)

// excerptRadius is the number of bytes kept either side of a syntax error.
const excerptRadius = 16

// Codec encodes and decodes JSON with a fixed set of type adapters.
type Codec struct {
	opts  json.Options
	kinds []string
}

// Kinds returns the semantic types the codec has adapters for.
func (c *Codec) Kinds() []string {
	return append([]string(nil), c.kinds...)
}

// Encode renders v as JSON.
func (c *Codec) Encode(v any) ([]byte, error) {
	b, err := json.Marshal(v, c.opts)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return b, nil
}

// Decode parses data into v and checks fields tagged codec:"required".
func (c *Codec) Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v, c.opts); err != nil {
		return decodeError(data, err)
	}
	return checkRequired(v)
}

// DecodeReader reads r to EOF and decodes the result into v.
func (c *Codec) DecodeReader(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return &domain.DecodeError{Err: err}
	}
	return c.Decode(data, v)
}

// DecodeAs decodes data into a new value of type T.
func DecodeAs[T any](c *Codec, data []byte) (T, error) {
	var out T
	if err := c.Decode(data, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func decodeError(data []byte, err error) error {
	var semErr *json.SemanticError
	if errors.As(err, &semErr) {
		fragment := string(semErr.JSONValue)
		if fragment == "" {
			fragment = excerpt(data, semErr.ByteOffset)
		}
		return &domain.DecodeError{
			Path:     string(semErr.JSONPointer),
			Fragment: fragment,
			Err:      semErr,
		}
	}

	var synErr *jsontext.SyntacticError
	if errors.As(err, &synErr) {
		return &domain.DecodeError{
			Path:     string(synErr.JSONPointer),
			Fragment: excerpt(data, synErr.ByteOffset),
			Err:      synErr,
		}
	}

	return &domain.DecodeError{Err: err}
}

func excerpt(data []byte, offset int64) string {
	if offset < 0 || offset > int64(len(data)) {
		return ""
	}
	start := max(0, int(offset)-excerptRadius)
	end := min(len(data), int(offset)+excerptRadius)
	return string(data[start:end])
}
