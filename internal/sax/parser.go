package sax

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/custodia-labs/cloudkit/internal/core/domain"
	"github.com/custodia-labs/cloudkit/internal/core/ports/driven"
)

// ErrParserUsed is returned when Run is called on a parser a second time.
var ErrParserUsed = errors.New("sax: parser already used")

// Parser feeds one input stream to one handler.
type Parser[T any] struct {
	entities map[string]string
	handler  driven.ParseHandler[T]
	used     atomic.Bool
}

// Run reads r to the end of the document and returns the handler's result.
// Every failure other than ErrParserUsed is a *domain.StreamParseError.
func (p *Parser[T]) Run(ctx context.Context, r io.Reader) (T, error) {
	var zero T
	if !p.used.CompareAndSwap(false, true) {
		return zero, ErrParserUsed
	}

	d := xml.NewDecoder(&contextReader{ctx: ctx, r: r})
	d.Strict = true
	d.Entity = p.entities
	d.CharsetReader = charsetReader

	var (
		open   []string
		closed bool // root element has ended
	)
loop:
	for {
		tok, err := d.RawToken()
		if errors.Is(err, io.EOF) {
			switch {
			case len(open) > 0:
				return zero, position(d, fmt.Errorf("%w: unclosed <%s>", io.ErrUnexpectedEOF, open[len(open)-1]))
			case !closed:
				return zero, position(d, errors.New("no root element"))
			}
			break loop
		}
		if err != nil {
			return zero, position(d, err)
		}

		var ev driven.Event
		switch t := tok.(type) {
		case xml.StartElement:
			if closed && len(open) == 0 {
				return zero, position(d, errors.New("content after root element"))
			}
			name := qualified(t.Name)
			open = append(open, name)
			ev = driven.StartElement{Name: name, Attrs: attrs(t.Attr)}

		case xml.EndElement:
			name := qualified(t.Name)
			if len(open) == 0 {
				return zero, position(d, fmt.Errorf("unexpected </%s>", name))
			}
			if top := open[len(open)-1]; top != name {
				return zero, position(d, fmt.Errorf("element <%s> closed by </%s>", top, name))
			}
			open = open[:len(open)-1]
			closed = len(open) == 0
			ev = driven.EndElement{Name: name}

		case xml.CharData:
			if len(open) == 0 {
				if len(strings.TrimSpace(string(t))) > 0 {
					return zero, position(d, errors.New("text outside root element"))
				}
				continue
			}
			ev = driven.CharData{Text: string(t)}

		default:
			// comments, processing instructions and directives carry no content
			continue
		}

		if err := p.handler.OnEvent(ev); err != nil {
			return zero, position(d, err)
		}
	}

	result, err := p.handler.Result()
	if err != nil {
		return zero, position(d, err)
	}
	return result, nil
}

// position wraps err with the decoder's current location.
func position(d *xml.Decoder, err error) error {
	var spe *domain.StreamParseError
	if errors.As(err, &spe) {
		return err
	}
	line, col := d.InputPos()
	return &domain.StreamParseError{
		Line:   line,
		Column: col,
		Offset: d.InputOffset(),
		Err:    err,
	}
}

// qualified renders a raw name with its prefix, e.g. "soap:Body".
func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func attrs(in []xml.Attr) []driven.Attr {
	if len(in) == 0 {
		return nil
	}
	out := make([]driven.Attr, len(in))
	for i, a := range in {
		out[i] = driven.Attr{Name: qualified(a.Name), Value: a.Value}
	}
	return out
}

// contextReader fails reads once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
