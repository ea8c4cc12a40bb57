// Package service holds the business layer between the HTTP handlers and
// the storage backend.
package service

import (
	"context"

	"github.com/questhaven/inventory-api/internal/model"
	"github.com/questhaven/inventory-api/internal/store"
)

// ItemService orchestrates business rules around item storage. Every method
// currently delegates straight to the store and propagates its result or
// failure unchanged; the type exists as the seam where rules such as
// authorization checks, computed fields or cross-entity consistency would
// land without touching the handlers or the store.
type ItemService struct {
	store store.Store
}

// New creates an ItemService backed by the given store.
func New(s store.Store) *ItemService {
	return &ItemService{store: s}
}

// List returns all items in insertion order.
func (svc *ItemService) List(ctx context.Context) ([]model.Item, error) {
	return svc.store.List(ctx)
}

// Get retrieves an item by its ID.
func (svc *ItemService) Get(ctx context.Context, id string) (*model.Item, error) {
	return svc.store.Get(ctx, id)
}

// Create stores a new item and returns the stored record with its minted ID.
func (svc *ItemService) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	return svc.store.Create(ctx, item)
}

// Update applies a partial update to an existing item.
func (svc *ItemService) Update(ctx context.Context, id string, patch store.ItemPatch) (*model.Item, error) {
	return svc.store.Update(ctx, id, patch)
}

// Delete removes an item and returns the removed record.
func (svc *ItemService) Delete(ctx context.Context, id string) (*model.Item, error) {
	return svc.store.Delete(ctx, id)
}
