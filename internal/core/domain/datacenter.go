package domain

// Datacenter is a SoftLayer datacenter as returned by the account API.
type Datacenter struct {
	// ID is the numeric datacenter identifier, e.g. 142.
	ID int64 `json:"id" codec:"required"`

	// Name is the short datacenter name, e.g. "dal05".
	Name string `json:"name"`

	// LongName is the descriptive name, e.g. "Dallas 5".
	LongName string `json:"longName"`

	// LocationAddress is the physical address. Nil when the API omits it.
	LocationAddress *Address `json:"locationAddress,omitempty"`
}

// Address is a postal address attached to a provider resource.
type Address struct {
	Address1    string `json:"address1,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	Description string `json:"description,omitempty"`
}
