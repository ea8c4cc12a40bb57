// Package store provides data storage interfaces and implementations.
package store

import (
	"context"
	"errors"

	"github.com/questhaven/inventory-api/internal/model"
)

// Store errors.
var (
	ErrNotFound  = errors.New("item not found")
	ErrInvalidID = errors.New("invalid item ID")
	ErrNilItem   = errors.New("item cannot be nil")
)

// ItemPatch carries the fields of a partial update. Nil fields leave the
// stored record untouched.
type ItemPatch struct {
	Name    *string
	Quality *model.Quality
	Value   *float64
}

// Store defines the interface for item storage operations.
type Store interface {
	// List returns all items in insertion order. An empty collection is a
	// valid empty list, not an error.
	List(ctx context.Context) ([]model.Item, error)

	// Get retrieves an item by its ID.
	Get(ctx context.Context, id string) (*model.Item, error)

	// Create mints a fresh unique ID, appends a new record and returns it.
	Create(ctx context.Context, item *model.Item) (*model.Item, error)

	// Update applies the supplied patch fields to an existing item and
	// returns the updated record.
	Update(ctx context.Context, id string, patch ItemPatch) (*model.Item, error)

	// Delete removes an item by its ID and returns the removed record.
	Delete(ctx context.Context, id string) (*model.Item, error)
}
