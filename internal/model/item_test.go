package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestQualityValid(t *testing.T) {
	tests := []struct {
		name    string
		quality Quality
		want    bool
	}{
		{"common", QualityCommon, true},
		{"uncommon", QualityUncommon, true},
		{"rare", QualityRare, true},
		{"legendary", QualityLegendary, true},
		{"empty", Quality(""), false},
		{"unknown", Quality("mythic"), false},
		{"case sensitive", Quality("Common"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.quality.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQualityEnum(t *testing.T) {
	// Act
	members := Quality("").Enum()

	// Assert
	if len(members) != 4 {
		t.Fatalf("Enum() returned %d members, want 4", len(members))
	}
	for _, m := range members {
		s, ok := m.(string)
		if !ok {
			t.Fatalf("Enum() member %v is not a string", m)
		}
		if !Quality(s).Valid() {
			t.Errorf("Enum() member %q is not a valid quality", s)
		}
	}
}

func TestCreateItemRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		request CreateItemRequest
		wantErr error
	}{
		{
			name:    "valid request",
			request: CreateItemRequest{Name: "mithril sword", Quality: QualityRare, Value: 100},
			wantErr: nil,
		},
		{
			name:    "zero value",
			request: CreateItemRequest{Name: "rusty dagger", Quality: QualityCommon, Value: 0},
			wantErr: nil,
		},
		{
			name:    "empty name",
			request: CreateItemRequest{Quality: QualityCommon, Value: 10},
			wantErr: ErrEmptyName,
		},
		{
			name:    "missing quality",
			request: CreateItemRequest{Name: "bronze sword", Value: 10},
			wantErr: ErrInvalidQuality,
		},
		{
			name:    "unknown quality",
			request: CreateItemRequest{Name: "bronze sword", Quality: "mythic", Value: 10},
			wantErr: ErrInvalidQuality,
		},
		{
			name:    "negative value",
			request: CreateItemRequest{Name: "bronze sword", Quality: QualityCommon, Value: -1},
			wantErr: ErrNegativeValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			err := tt.request.Validate()

			// Assert
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateItemRequestValidate(t *testing.T) {
	name := "enchanted bow"
	emptyName := ""
	rare := QualityRare
	badQuality := Quality("mythic")
	negative := -5.0

	tests := []struct {
		name    string
		request UpdateItemRequest
		wantErr error
	}{
		{
			name:    "no fields supplied",
			request: UpdateItemRequest{},
			wantErr: nil,
		},
		{
			name:    "all fields supplied",
			request: UpdateItemRequest{Name: &name, Quality: &rare, Value: &negative},
			wantErr: nil,
		},
		{
			name:    "empty name supplied",
			request: UpdateItemRequest{Name: &emptyName},
			wantErr: ErrEmptyName,
		},
		{
			name:    "unknown quality supplied",
			request: UpdateItemRequest{Quality: &badQuality},
			wantErr: ErrInvalidQuality,
		},
		{
			// Negative values are not a validation failure on update; the
			// store ignores them and keeps the current value.
			name:    "negative value supplied",
			request: UpdateItemRequest{Value: &negative},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			err := tt.request.Validate()

			// Assert
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewItemResponse(t *testing.T) {
	// Arrange
	item := Item{
		ID:      "item-1",
		Name:    "bronze sword",
		Quality: QualityCommon,
		Value:   10,
	}

	// Act
	resp := NewItemResponse(item)

	// Assert
	if resp.ID != item.ID {
		t.Errorf("ID = %s, want %s", resp.ID, item.ID)
	}
	if resp.Name != item.Name {
		t.Errorf("Name = %s, want %s", resp.Name, item.Name)
	}
	if resp.Quality != item.Quality {
		t.Errorf("Quality = %s, want %s", resp.Quality, item.Quality)
	}
	if resp.Value != item.Value {
		t.Errorf("Value = %f, want %f", resp.Value, item.Value)
	}
}

func TestItemResponseOmitsTimestamps(t *testing.T) {
	// Arrange
	resp := NewItemResponse(Item{ID: "item-1", Name: "bronze sword", Quality: QualityCommon, Value: 10})

	// Act
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	// Assert
	body := string(data)
	if strings.Contains(body, "created_at") || strings.Contains(body, "updated_at") {
		t.Errorf("public record shape should not expose timestamps, got %s", body)
	}
}

func TestNewListItemsResponse(t *testing.T) {
	t.Run("empty collection encodes as empty array", func(t *testing.T) {
		// Act
		resp := NewListItemsResponse(nil)

		data, err := json.Marshal(resp)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}

		// Assert
		if string(data) != `{"items":[]}` {
			t.Errorf("body = %s, want {\"items\":[]}", data)
		}
	})

	t.Run("preserves order", func(t *testing.T) {
		// Arrange
		items := []Item{
			{ID: "a", Name: "first", Quality: QualityCommon, Value: 1},
			{ID: "b", Name: "second", Quality: QualityRare, Value: 2},
		}

		// Act
		resp := NewListItemsResponse(items)

		// Assert
		if len(resp.Items) != 2 {
			t.Fatalf("len(Items) = %d, want 2", len(resp.Items))
		}
		if resp.Items[0].ID != "a" || resp.Items[1].ID != "b" {
			t.Errorf("items out of order: %+v", resp.Items)
		}
	})
}

func TestNewStatsMessage(t *testing.T) {
	// Act
	msg := NewStatsMessage(3, 1110)

	// Assert
	if msg.Type != WSMessageTypeStats {
		t.Errorf("Type = %s, want %s", msg.Type, WSMessageTypeStats)
	}
	if msg.ItemCount != 3 {
		t.Errorf("ItemCount = %d, want 3", msg.ItemCount)
	}
	if msg.TotalValue != 1110 {
		t.Errorf("TotalValue = %f, want 1110", msg.TotalValue)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}
