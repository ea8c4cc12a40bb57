package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/questhaven/inventory-api/internal/model"
)

// MemoryStore implements Store with an in-memory ordered collection.
// Records are kept in insertion order and looked up by linear scan, which is
// fine at the intended scale of a few dozen records. A map from ID to slice
// position would be a drop-in optimization, not a semantic change.
type MemoryStore struct {
	mu    sync.RWMutex
	items []model.Item
}

// NewMemoryStore creates an empty MemoryStore instance.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make([]model.Item, 0),
	}
}

// DefaultSeed returns the fixed sample records loaded at process start.
func DefaultSeed() []model.Item {
	return []model.Item{
		{Name: "bronze sword", Quality: model.QualityCommon, Value: 10},
		{Name: "Poseidon's Trident", Quality: model.QualityLegendary, Value: 1000},
		{Name: "greater health potion", Quality: model.QualityUncommon, Value: 100},
	}
}

// NewSeededMemoryStore creates a MemoryStore preloaded with the default
// sample records, in seed order.
func NewSeededMemoryStore() *MemoryStore {
	s := NewMemoryStore()

	now := time.Now().UTC()
	for _, seed := range DefaultSeed() {
		seed.ID = uuid.New().String()
		seed.CreatedAt = now
		seed.UpdatedAt = now
		s.items = append(s.items, seed)
	}

	return s
}

// List returns all items from the store in insertion order.
func (s *MemoryStore) List(ctx context.Context) ([]model.Item, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("list items: %w", ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.Item, len(s.items))
	copy(items, s.items)

	return items, nil
}

// Get retrieves an item by its ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*model.Item, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("get item: %w", ctx.Err())
	default:
	}

	if id == "" {
		return nil, ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}

	return nil, ErrNotFound
}

// Create mints a fresh unique ID, appends a new record and returns it.
func (s *MemoryStore) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("create item: %w", ctx.Err())
	default:
	}

	if item == nil {
		return nil, fmt.Errorf("create item: %w", ErrNilItem)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	newItem := model.Item{
		ID:        uuid.New().String(),
		Name:      item.Name,
		Quality:   item.Quality,
		Value:     item.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.items = append(s.items, newItem)

	return &newItem, nil
}

// Update applies the supplied patch fields to an existing item in place.
// A patch value below zero is ignored and the stored value retained; the
// update still succeeds. Callers relying on the value taking effect must
// check the returned record.
func (s *MemoryStore) Update(ctx context.Context, id string, patch ItemPatch) (*model.Item, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("update item: %w", ctx.Err())
	default:
	}

	if id == "" {
		return nil, ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}

		if patch.Name != nil {
			s.items[i].Name = *patch.Name
		}
		if patch.Quality != nil {
			s.items[i].Quality = *patch.Quality
		}
		if patch.Value != nil && *patch.Value >= 0 {
			s.items[i].Value = *patch.Value
		}
		s.items[i].UpdatedAt = time.Now().UTC()

		updated := s.items[i]
		return &updated, nil
	}

	return nil, ErrNotFound
}

// Delete removes an item by its ID and returns the removed record's prior
// value. The collection is unchanged when no record matches.
func (s *MemoryStore) Delete(ctx context.Context, id string) (*model.Item, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("delete item: %w", ctx.Err())
	default:
	}

	if id == "" {
		return nil, ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}

		removed := s.items[i]
		s.items = append(s.items[:i], s.items[i+1:]...)

		return &removed, nil
	}

	return nil, ErrNotFound
}
