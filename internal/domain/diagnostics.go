package domain

import "context"

// Diagnostics is the read-only surface the /test endpoint probes.
type Diagnostics interface {
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
}
