package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"staycal/internal/app/view"
)

var (
	// ErrPropertyNotFound is returned when a property cannot be located.
	ErrPropertyNotFound = errors.New("memory: property not found")
	// ErrPropertyExists is returned on duplicate registration.
	ErrPropertyExists = errors.New("memory: property already registered")
)

// PropertyRepository is the in-memory property registry. The calendar
// service does not own property persistence; this holds the working set
// loaded from fixtures or registered over the API.
type PropertyRepository struct {
	mu    sync.RWMutex
	items map[string]view.Property
}

// NewPropertyRepository builds an empty registry.
func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{items: make(map[string]view.Property)}
}

// Save registers or updates a property entry.
func (r *PropertyRepository) Save(ctx context.Context, prop view.Property) error {
	if strings.TrimSpace(prop.ID) == "" {
		return ErrPropertyNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[prop.ID] = prop
	return nil
}

// Register adds a new property, rejecting duplicates.
func (r *PropertyRepository) Register(ctx context.Context, prop view.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[prop.ID]; ok {
		return ErrPropertyExists
	}
	r.items[prop.ID] = prop
	return nil
}

// ByID returns a property or ErrPropertyNotFound.
func (r *PropertyRepository) ByID(ctx context.Context, id string) (view.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	prop, ok := r.items[id]
	if !ok {
		return view.Property{}, ErrPropertyNotFound
	}
	return prop, nil
}

// List returns all properties sorted by name for stable output.
func (r *PropertyRepository) List(ctx context.Context) ([]view.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]view.Property, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

var _ view.Directory = (*PropertyRepository)(nil)
