// Package docs builds the OpenAPI description of the items API. The
// document is generated by reflecting the request and response types, so
// the declared constraints (required fields, quality enum, minimum value)
// stay in one place. It is served for documentation purposes only; runtime
// validation happens in the request types themselves.
package docs

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
	"go.uber.org/zap"

	"github.com/questhaven/inventory-api/internal/model"
)

// Title is the API title in the generated document.
const Title = "Inventory Items API"

// itemPathRequest binds the {id} path parameter for single-item operations.
type itemPathRequest struct {
	ID string `path:"id" required:"true"`
}

// updateItemRequest combines the {id} path parameter with the partial
// update body.
type updateItemRequest struct {
	itemPathRequest
	model.UpdateItemRequest
}

// operation describes one route of the API for reflection.
type operation struct {
	method  string
	path    string
	request interface{}
	reply   interface{}
	status  int
	errors  []int
}

// operations lists every documented route.
func operations() []operation {
	return []operation{
		{
			method:  http.MethodPost,
			path:    "/api/v1/items",
			request: model.CreateItemRequest{},
			reply:   model.ItemResponse{},
			status:  http.StatusCreated,
			errors:  []int{http.StatusBadRequest},
		},
		{
			method: http.MethodGet,
			path:   "/api/v1/items",
			reply:  model.ListItemsResponse{},
			status: http.StatusOK,
		},
		{
			method:  http.MethodGet,
			path:    "/api/v1/items/{id}",
			request: itemPathRequest{},
			reply:   model.ItemResponse{},
			status:  http.StatusOK,
			errors:  []int{http.StatusNotFound},
		},
		{
			method:  http.MethodPut,
			path:    "/api/v1/items/{id}",
			request: updateItemRequest{},
			reply:   model.ItemResponse{},
			status:  http.StatusOK,
			errors:  []int{http.StatusBadRequest, http.StatusNotFound},
		},
		{
			method:  http.MethodDelete,
			path:    "/api/v1/items/{id}",
			request: itemPathRequest{},
			reply:   model.ItemResponse{},
			status:  http.StatusOK,
			errors:  []int{http.StatusNotFound},
		},
	}
}

// Build reflects the request and response types into an OpenAPI 3 document.
func Build(version string) (*openapi3.Spec, error) {
	reflector := openapi3.NewReflector()
	reflector.Spec.Info.
		WithTitle(Title).
		WithVersion(version).
		WithDescription("CRUD operations over the in-memory items collection.")

	for _, op := range operations() {
		oc, err := reflector.NewOperationContext(op.method, op.path)
		if err != nil {
			return nil, fmt.Errorf("creating operation %s %s: %w", op.method, op.path, err)
		}

		if op.request != nil {
			oc.AddReqStructure(op.request)
		}

		oc.AddRespStructure(op.reply, openapi.WithHTTPStatus(op.status))
		for _, code := range op.errors {
			oc.AddRespStructure(model.ErrorResponse{}, openapi.WithHTTPStatus(code))
		}

		if err := reflector.AddOperation(oc); err != nil {
			return nil, fmt.Errorf("adding operation %s %s: %w", op.method, op.path, err)
		}
	}

	return reflector.Spec, nil
}

// Handler serves the document as JSON.
func Handler(spec *openapi3.Spec, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(spec); err != nil {
			logger.Error("failed to encode openapi document", zap.Error(err))
		}
	}
}
