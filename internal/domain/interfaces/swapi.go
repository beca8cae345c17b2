package interfaces

import (
	"context"

	domaintypes "holocron/internal/domain/types"
)

// ResourceClient is how we talk to SWAPI.
type ResourceClient interface {
	// GetResource fetches one resource by absolute URL or by a path
	// relative to the API root ("people/1/").
	GetResource(ctx context.Context, ref string) (domaintypes.Record, error)
	// Search returns the records of resource matching term.
	Search(ctx context.Context, resource, term string) ([]domaintypes.Record, error)
}
