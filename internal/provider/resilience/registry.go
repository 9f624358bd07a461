package resilience

import (
	"sort"
	"sync"

	"github.com/sony/gobreaker/v2"
)

// ProviderHealth is a snapshot of one provider's circuit breaker.
type ProviderHealth struct {
	// Name is the provider identifier.
	Name string

	// CircuitState is the current circuit breaker state.
	CircuitState gobreaker.State

	// Counts contains circuit breaker statistics.
	Counts gobreaker.Counts
}

// IsHealthy reports whether the circuit is closed.
func (h *ProviderHealth) IsHealthy() bool {
	return h.CircuitState == gobreaker.StateClosed
}

// IsDegraded reports whether the circuit is half-open.
func (h *ProviderHealth) IsDegraded() bool {
	return h.CircuitState == gobreaker.StateHalfOpen
}

// Registry tracks the resilient clients behind each external provider so
// operational endpoints can report their health.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]*Client)}
}

// Register adds a provider client to the registry, replacing any previous
// client registered under the same name.
func (r *Registry) Register(name string, client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[name] = client
}

// GetHealth returns the health snapshot for a named provider, or nil if no
// provider is registered under that name.
func (r *Registry) GetHealth(name string) *ProviderHealth {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[name]
	if !ok {
		return nil
	}

	return &ProviderHealth{
		Name:         name,
		CircuitState: client.BreakerState(),
		Counts:       client.BreakerCounts(),
	}
}

// GetAllHealth returns health snapshots for every registered provider,
// sorted by name for stable output.
func (r *Registry) GetAllHealth() []*ProviderHealth {
	r.mu.RLock()
	defer r.mu.RUnlock()

	health := make([]*ProviderHealth, 0, len(r.clients))
	for name, client := range r.clients {
		health = append(health, &ProviderHealth{
			Name:         name,
			CircuitState: client.BreakerState(),
			Counts:       client.BreakerCounts(),
		})
	}

	sort.Slice(health, func(i, j int) bool { return health[i].Name < health[j].Name })
	return health
}

// ProviderCount returns the number of registered providers.
func (r *Registry) ProviderCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}
