package driven

import "github.com/custodia-labs/cloudkit/internal/core/domain"

// ParentResolver supplies the parent of a location at the moment it is
// needed. It may perform I/O; errors are returned to the mapper's caller
// unchanged.
type ParentResolver func() (*domain.Location, error)
