package softlayer

import (
	"github.com/custodia-labs/cloudkit/internal/core/domain"
	"github.com/custodia-labs/cloudkit/internal/core/ports/driven"
)

// DecodeDatacenters decodes a REST listing such as the body of
// SoftLayer_Location_Datacenter/getDatacenters.json.
func DecodeDatacenters(c driven.Codec, data []byte) ([]domain.Datacenter, error) {
	var dcs []domain.Datacenter
	if err := c.Decode(data, &dcs); err != nil {
		return nil, err
	}
	if dcs == nil {
		dcs = []domain.Datacenter{}
	}
	return dcs, nil
}
