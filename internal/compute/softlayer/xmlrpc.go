package softlayer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/cloudkit/internal/core/domain"
	"github.com/custodia-labs/cloudkit/internal/core/ports/driven"
)

// Ensure DatacentersHandler implements the interface.
var _ driven.ParseHandler[[]domain.Datacenter] = (*DatacentersHandler)(nil)

// FaultError is an XML-RPC fault returned in place of a result.
type FaultError struct {
	Code    string
	Message string
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("softlayer: fault %s: %s", e.Code, e.Message)
}

// DatacentersHandler accumulates datacenters from an XML-RPC methodResponse.
// It accepts an array of datacenter structs or a single struct.
//
// A handler is single-use; create one per response.
type DatacentersHandler struct {
	dcs     []domain.Datacenter
	current *domain.Datacenter
	address *domain.Address
	// hasID records whether the current datacenter carried an id member.
	hasID bool

	// members holds the current member name for each open struct.
	members []string
	// typed records, for each open <value>, whether it had a type element.
	typed []bool
	text  strings.Builder

	inFault bool
	fault   FaultError
}

// NewDatacentersHandler returns an empty handler.
func NewDatacentersHandler() *DatacentersHandler {
	return &DatacentersHandler{}
}

// OnEvent consumes one markup event.
func (h *DatacentersHandler) OnEvent(ev driven.Event) error {
	switch e := ev.(type) {
	case driven.StartElement:
		h.start(e.Name)
	case driven.CharData:
		h.text.WriteString(e.Text)
	case driven.EndElement:
		return h.end(e.Name)
	}
	return nil
}

func (h *DatacentersHandler) start(name string) {
	if name == "value" {
		h.typed = append(h.typed, false)
		h.text.Reset()
		return
	}
	if n := len(h.typed); n > 0 {
		h.typed[n-1] = true
	}

	switch name {
	case "fault":
		h.inFault = true
	case "struct":
		h.members = append(h.members, "")
		if h.inFault {
			return
		}
		switch len(h.members) {
		case 1:
			h.current = &domain.Datacenter{}
			h.hasID = false
		case 2:
			if h.members[0] == "locationAddress" {
				h.address = &domain.Address{}
			}
		}
	default:
		h.text.Reset()
	}
}

func (h *DatacentersHandler) end(name string) error {
	switch name {
	case "name":
		if n := len(h.members); n > 0 {
			h.members[n-1] = strings.TrimSpace(h.text.String())
		}
	case "int", "i4", "i8", "string", "double", "boolean", "dateTime.iso8601":
		return h.assign(h.text.String())
	case "value":
		n := len(h.typed)
		if n == 0 {
			return nil
		}
		typed := h.typed[n-1]
		h.typed = h.typed[:n-1]
		if !typed {
			// untyped values are strings
			return h.assign(h.text.String())
		}
	case "struct":
		return h.endStruct()
	}
	return nil
}

func (h *DatacentersHandler) endStruct() error {
	depth := len(h.members)
	if depth == 0 {
		return nil
	}
	h.members = h.members[:depth-1]
	if h.inFault {
		return nil
	}

	switch depth {
	case 1:
		if h.current != nil {
			if !h.hasID {
				return fmt.Errorf("%w: datacenter %d has no id", domain.ErrInvalidInput, len(h.dcs))
			}
			h.dcs = append(h.dcs, *h.current)
			h.current = nil
		}
	case 2:
		if h.address != nil && h.current != nil {
			h.current.LocationAddress = h.address
		}
		h.address = nil
	}
	return nil
}

func (h *DatacentersHandler) assign(raw string) error {
	depth := len(h.members)
	if depth == 0 {
		return nil
	}
	member := h.members[depth-1]

	if h.inFault {
		switch member {
		case "faultCode":
			h.fault.Code = strings.TrimSpace(raw)
		case "faultString":
			h.fault.Message = raw
		}
		return nil
	}

	switch {
	case depth == 1 && h.current != nil:
		if member == "id" {
			h.hasID = true
		}
		return assignDatacenter(h.current, member, raw)
	case depth == 2 && h.address != nil:
		assignAddress(h.address, member, raw)
	}
	return nil
}

func assignDatacenter(dc *domain.Datacenter, member, raw string) error {
	switch member {
	case "id":
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: datacenter id %q", domain.ErrInvalidInput, raw)
		}
		dc.ID = id
	case "name":
		dc.Name = raw
	case "longName":
		dc.LongName = raw
	}
	return nil
}

func assignAddress(addr *domain.Address, member, raw string) {
	switch member {
	case "address1":
		addr.Address1 = raw
	case "city":
		addr.City = raw
	case "state":
		addr.State = raw
	case "country":
		addr.Country = raw
	case "postalCode":
		addr.PostalCode = raw
	case "description":
		addr.Description = raw
	}
}

// Result returns the datacenters, or a *FaultError for a fault response.
func (h *DatacentersHandler) Result() ([]domain.Datacenter, error) {
	if h.inFault {
		fault := h.fault
		return nil, &fault
	}
	if h.dcs == nil {
		return []domain.Datacenter{}, nil
	}
	return h.dcs, nil
}
