package codec

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/custodia-labs/cloudkit/internal/core/domain"
	"github.com/custodia-labs/cloudkit/internal/core/ports/driven"
)

// errExpectedString is returned by adapters when the JSON value is not a string.
var errExpectedString = errors.New("expected JSON string")

// Adapter converts values of one Go type to and from text.
type Adapter struct {
	typ       reflect.Type
	kind      string
	marshal   *json.Marshalers
	unmarshal *json.Unmarshalers
}

// NewAdapter returns an adapter for T. Kind names the semantic type in
// errors and diagnostics. A JSON null decodes to the zero value of T;
// any other non-string value is a decode error.
func NewAdapter[T any](kind string, format func(T) (string, error), parse func(string) (T, error)) Adapter {
	return Adapter{
		typ:  reflect.TypeFor[T](),
		kind: kind,
		marshal: json.MarshalFunc(func(v T) ([]byte, error) {
			text, err := format(v)
			if err != nil {
				return nil, err
			}
			return json.Marshal(text)
		}),
		unmarshal: json.UnmarshalFunc(func(b []byte, dst *T) error {
			switch jsontext.Value(b).Kind() {
			case 'n':
				var zero T
				*dst = zero
				return nil
			case '"':
			default:
				return errExpectedString
			}

			var text string
			if err := json.Unmarshal(b, &text); err != nil {
				return err
			}
			v, err := parse(text)
			if err != nil {
				return err
			}
			*dst = v
			return nil
		}),
	}
}

// Kind returns the semantic type name.
func (a Adapter) Kind() string { return a.kind }

// Type returns the Go type the adapter handles.
func (a Adapter) Type() reflect.Type { return a.typ }

// Registry collects adapters ahead of building a codec.
// It is not safe for concurrent use; the Codec it builds is.
type Registry struct {
	adapters []Adapter
	types    map[reflect.Type]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[reflect.Type]string)}
}

// Register adds an adapter. Registering a second adapter for the same Go
// type fails with a *domain.ConfigurationError.
func (r *Registry) Register(a Adapter) error {
	if a.typ == nil {
		return &domain.ConfigurationError{Component: "codec", Err: errors.New("adapter without type")}
	}
	if prev, ok := r.types[a.typ]; ok {
		return &domain.ConfigurationError{
			Component: "codec",
			Err:       fmt.Errorf("type %s already handled by %q adapter", a.typ, prev),
		}
	}
	r.types[a.typ] = a.kind
	r.adapters = append(r.adapters, a)
	return nil
}

// Kinds returns the semantic type names in registration order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, len(r.adapters))
	for i, a := range r.adapters {
		kinds[i] = a.kind
	}
	return kinds
}

// Codec freezes the registered adapters into a codec. Later registrations
// do not affect codecs already returned.
func (r *Registry) Codec() *Codec {
	ms := make([]*json.Marshalers, len(r.adapters))
	us := make([]*json.Unmarshalers, len(r.adapters))
	for i, a := range r.adapters {
		ms[i] = a.marshal
		us[i] = a.unmarshal
	}
	return &Codec{
		kinds: r.Kinds(),
		opts: json.JoinOptions(
			json.WithMarshalers(json.JoinMarshalers(ms...)),
			json.WithUnmarshalers(json.JoinUnmarshalers(us...)),
		),
	}
}

// Option customises Build.
type Option func(*buildConfig)

type buildConfig struct {
	resolve HostResolver
	extra   []Adapter
}

// WithHostResolver lets the address adapter resolve host names that are
// not address literals.
func WithHostResolver(resolve HostResolver) Option {
	return func(c *buildConfig) {
		c.resolve = resolve
	}
}

// WithAdapter registers an additional backend-specific adapter.
func WithAdapter(a Adapter) Option {
	return func(c *buildConfig) {
		c.extra = append(c.extra, a)
	}
}

// Build returns a codec with the address, timestamp and identifier adapters
// plus any supplied with WithAdapter. The timestamp adapter delegates to dates.
func Build(dates driven.DateFormatter, opts ...Option) (*Codec, error) {
	if dates == nil {
		return nil, &domain.ConfigurationError{Component: "codec", Err: errors.New("no date formatter")}
	}

	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	reg := NewRegistry()
	builtins := []Adapter{
		NewAddressAdapter(cfg.resolve).Adapter(),
		TimestampAdapter(dates),
		UUIDAdapter(),
	}
	for _, a := range append(builtins, cfg.extra...) {
		if err := reg.Register(a); err != nil {
			return nil, err
		}
	}
	return reg.Codec(), nil
}
