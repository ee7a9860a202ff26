package driven

// Event is a single markup event. The set of variants is closed:
// StartElement, CharData and EndElement.
type Event interface {
	event()
}

// Attr is a single attribute of a start element.
// Name is the raw qualified name; prefixes are not resolved.
type Attr struct {
	Name  string
	Value string
}

// StartElement is emitted when an element opens.
type StartElement struct {
	// Name is the raw qualified name, e.g. "soap:Envelope".
	Name  string
	Attrs []Attr
}

// Attr returns the value of the named attribute and whether it was present.
func (e StartElement) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// CharData is emitted for text between tags. Consecutive CharData events
// may belong to the same text node; handlers must accumulate.
type CharData struct {
	Text string
}

// EndElement is emitted when an element closes.
type EndElement struct {
	Name string
}

func (StartElement) event() {}
func (CharData) event()     {}
func (EndElement) event()   {}

// ParseHandler consumes markup events and yields a typed result.
//
// A handler is stateful and single-use: it is bound to exactly one parse
// and must not be shared between concurrent parses.
type ParseHandler[T any] interface {
	// OnEvent receives the next event. Returning an error aborts the parse.
	OnEvent(ev Event) error

	// Result is called once, after the stream ended cleanly.
	Result() (T, error)
}
