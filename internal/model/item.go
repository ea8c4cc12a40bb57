// Package model defines data structures used throughout the application.
package model

import (
	"errors"
	"time"
)

// Validation errors for item requests.
var (
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrInvalidQuality = errors.New("quality must be one of: common, uncommon, rare, legendary")
	ErrNegativeValue  = errors.New("value cannot be negative")
)

// Quality grades an item.
type Quality string

// Known quality grades.
const (
	QualityCommon    Quality = "common"
	QualityUncommon  Quality = "uncommon"
	QualityRare      Quality = "rare"
	QualityLegendary Quality = "legendary"
)

// Valid reports whether q is a known quality grade.
func (q Quality) Valid() bool {
	switch q {
	case QualityCommon, QualityUncommon, QualityRare, QualityLegendary:
		return true
	default:
		return false
	}
}

// Enum lists the quality grades for JSON schema reflection.
func (Quality) Enum() []interface{} {
	return []interface{}{
		string(QualityCommon),
		string(QualityUncommon),
		string(QualityRare),
		string(QualityLegendary),
	}
}

// Item represents a stored inventory record. CreatedAt and UpdatedAt are
// internal bookkeeping fields and are not part of the public record shape.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quality   Quality   `json:"quality"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateItemRequest is the body of POST /api/v1/items.
type CreateItemRequest struct {
	Name    string  `json:"name" required:"true"`
	Quality Quality `json:"quality" required:"true"`
	Value   float64 `json:"value" minimum:"0"`
}

// Validate checks the request against the declared constraints.
func (r *CreateItemRequest) Validate() error {
	if r.Name == "" {
		return ErrEmptyName
	}

	if !r.Quality.Valid() {
		return ErrInvalidQuality
	}

	if r.Value < 0 {
		return ErrNegativeValue
	}

	return nil
}

// UpdateItemRequest is the body of PUT /api/v1/items/{id}. Absent fields
// leave the stored record untouched.
type UpdateItemRequest struct {
	Name    *string  `json:"name,omitempty"`
	Quality *Quality `json:"quality,omitempty"`
	Value   *float64 `json:"value,omitempty"`
}

// Validate checks only the supplied fields. A negative value is not a
// validation failure here: the store ignores it and keeps the current value.
func (r *UpdateItemRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return ErrEmptyName
	}

	if r.Quality != nil && !r.Quality.Valid() {
		return ErrInvalidQuality
	}

	return nil
}

// ItemResponse is the public record shape exposed to API clients.
type ItemResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Quality Quality `json:"quality"`
	Value   float64 `json:"value"`
}

// NewItemResponse projects a stored item into its public shape.
func NewItemResponse(item Item) ItemResponse {
	return ItemResponse{
		ID:      item.ID,
		Name:    item.Name,
		Quality: item.Quality,
		Value:   item.Value,
	}
}

// ListItemsResponse wraps the full collection for GET /api/v1/items.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// NewListItemsResponse projects stored items into the list response shape.
// The items field is always a JSON array, never null.
func NewListItemsResponse(items []Item) ListItemsResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewItemResponse(item))
	}
	return ListItemsResponse{Items: out}
}

// ErrorResponse represents an error response structure.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// StatsMessage represents an inventory snapshot sent over a WebSocket
// connection.
type StatsMessage struct {
	Type       string    `json:"type"`
	ItemCount  int       `json:"item_count"`
	TotalValue float64   `json:"total_value"`
	Timestamp  time.Time `json:"timestamp"`
}

// WebSocket message types.
const (
	WSMessageTypeStats = "stats"
	WSMessageTypeError = "error"
)

// NewStatsMessage creates a WebSocket inventory snapshot message.
func NewStatsMessage(count int, totalValue float64) StatsMessage {
	return StatsMessage{
		Type:       WSMessageTypeStats,
		ItemCount:  count,
		TotalValue: totalValue,
		Timestamp:  time.Now().UTC(),
	}
}
