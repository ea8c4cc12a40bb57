// Package handler provides HTTP request handlers for the REST API.
package handler

import (
	"context"

	"github.com/questhaven/inventory-api/internal/model"
	"github.com/questhaven/inventory-api/internal/store"
)

// ItemService is the business-layer surface the handlers drive.
type ItemService interface {
	List(ctx context.Context) ([]model.Item, error)
	Get(ctx context.Context, id string) (*model.Item, error)
	Create(ctx context.Context, item *model.Item) (*model.Item, error)
	Update(ctx context.Context, id string, patch store.ItemPatch) (*model.Item, error)
	Delete(ctx context.Context, id string) (*model.Item, error)
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ReadyResponse represents the readiness check response.
type ReadyResponse struct {
	Status string `json:"status"`
}
