package ports

import "context"

// HealthChecker probes one of the engine's backing stores. The deep
// health endpoint pings every registered checker.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if reachable.
	Ping(ctx context.Context) error
	// Name identifies the dependency in the health payload
	// ("postgresql", "redis").
	Name() string
}
