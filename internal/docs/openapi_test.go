package docs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestBuild(t *testing.T) {
	// Act
	spec, err := Build("1.0.0")

	// Assert
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if spec.Info.Title != Title {
		t.Errorf("Title = %s, want %s", spec.Info.Title, Title)
	}
	if spec.Info.Version != "1.0.0" {
		t.Errorf("Version = %s, want 1.0.0", spec.Info.Version)
	}

	data, err := json.Marshal(spec)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	body := string(data)

	// Every route appears in the document.
	for _, want := range []string{
		`"/api/v1/items"`,
		`"/api/v1/items/{id}"`,
		`"post"`,
		`"get"`,
		`"put"`,
		`"delete"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("document missing %s", want)
		}
	}

	// The declared constraints survive reflection: the quality enum members
	// and the success/failure statuses.
	for _, want := range []string{
		"common", "uncommon", "rare", "legendary",
		`"201"`, `"400"`, `"404"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("document missing %s", want)
		}
	}
}

func TestHandler(t *testing.T) {
	// Arrange
	spec, err := Build("1.0.0")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	handler := Handler(spec, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	rec := httptest.NewRecorder()

	// Act
	handler.ServeHTTP(rec, req)

	// Assert
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %s, want application/json", ct)
	}

	var doc map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&doc); err != nil {
		t.Fatalf("decoding document: %v", err)
	}
	if _, ok := doc["openapi"]; !ok {
		t.Error("document missing openapi version field")
	}
	if _, ok := doc["paths"]; !ok {
		t.Error("document missing paths")
	}
}
