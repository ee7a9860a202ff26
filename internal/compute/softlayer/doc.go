// Package softlayer maps SoftLayer API responses onto cloudkit's
// provider-neutral types.
//
// Datacenter listings arrive either as JSON (REST endpoint, decoded with
// DecodeDatacenters) or as XML-RPC (streamed through DatacentersHandler).
// DatacenterToLocation turns each datacenter into a ZONE location whose
// parent is resolved lazily by a caller-supplied driven.ParentResolver.
package softlayer
