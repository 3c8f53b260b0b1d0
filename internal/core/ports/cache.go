package ports

import "context"

// ProjectionCache stores serialized per-user response payloads. A successful
// visibility write must Clear the whole namespace: every cached view was
// computed under the old settings.
type ProjectionCache interface {
	// Get unmarshals the cached payload into dest and reports whether it existed.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Clear(ctx context.Context) error
}
