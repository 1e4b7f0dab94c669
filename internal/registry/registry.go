package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/XavierBriggs/Herald/pkg/contracts"
)

// ErrUnknownSport is returned when a sport key has no registered module
var ErrUnknownSport = errors.New("unknown sport")

// SportRegistry manages registered sport modules
type SportRegistry struct {
	sports map[string]contracts.SportModule
	mu     sync.RWMutex
}

// NewSportRegistry creates a new sport registry
func NewSportRegistry() *SportRegistry {
	return &SportRegistry{
		sports: make(map[string]contracts.SportModule),
	}
}

// Register adds a sport module to the registry
func (r *SportRegistry) Register(sport contracts.SportModule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sportKey := sport.GetSportKey()
	if _, exists := r.sports[sportKey]; exists {
		return fmt.Errorf("sport %s is already registered", sportKey)
	}

	r.sports[sportKey] = sport
	return nil
}

// Get retrieves a sport module by key
func (r *SportRegistry) Get(sportKey string) (contracts.SportModule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sport, exists := r.sports[sportKey]
	return sport, exists
}

// Lookup retrieves a sport module by key or returns ErrUnknownSport
func (r *SportRegistry) Lookup(sportKey string) (contracts.SportModule, error) {
	sport, ok := r.Get(sportKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSport, sportKey)
	}
	return sport, nil
}

// GetAll returns all registered sports ordered by key
func (r *SportRegistry) GetAll() []contracts.SportModule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sports := make([]contracts.SportModule, 0, len(r.sports))
	for _, sport := range r.sports {
		sports = append(sports, sport)
	}
	sort.Slice(sports, func(i, j int) bool {
		return sports[i].GetSportKey() < sports[j].GetSportKey()
	})
	return sports
}

// Count returns the number of registered sports
func (r *SportRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sports)
}
