package health

import "context"

// HealthPinger is the probe hook a component (store backend, LLM client)
// offers to its PingChecker. A nil return means the component is reachable.
type HealthPinger interface {
	HealthPing(ctx context.Context) error
}
