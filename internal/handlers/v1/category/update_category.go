package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-tracker/internal/core"
	"github.com/carson-networks/budget-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/service"
)

// UpdateCategoryBody is the request body for updating a category.
type UpdateCategoryBody struct {
	Name  string `json:"name" minLength:"1" doc:"Category name, unique ignoring case and surrounding whitespace"`
	Type  int    `json:"type" minimum:"0" maximum:"1" doc:"Category type: 0=Income, 1=Expense"`
	Color string `json:"color,omitempty" doc:"Display color"`
}

// UpdateCategoryInput is the Huma input for updating a category.
type UpdateCategoryInput struct {
	ID   string `path:"id" doc:"Category UUID"`
	Body UpdateCategoryBody
}

// UpdateCategoryOutput is the response for updating a category.
type UpdateCategoryOutput struct {
	Body Category
}

// categoryUpdater is the interface for updating categories.
type categoryUpdater interface {
	Update(ctx context.Context, id uuid.UUID, name string, categoryType core.CategoryType, color string) (*service.Category, error)
}

// UpdateCategoryHandler handles PUT /v1/category/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

// Register registers the update category endpoint with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/v1/category/{id}",
		Summary:     "Update a category",
		Description: "Updates a category's name, type, and color.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category id", err)
	}
	categoryType := core.CategoryType(input.Body.Type)
	if !categoryType.Valid() {
		return nil, huma.NewError(http.StatusBadRequest, "type must be 0 or 1", nil)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateCategoryMs")
	}
	updated, err := h.CategoryService.Update(ctx, id, input.Body.Name, categoryType, input.Body.Color)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromService(err, "failed to update category")
	}
	if updated == nil {
		return nil, apierror.NotFound("category not found")
	}

	return &UpdateCategoryOutput{Body: fromService(updated)}, nil
}
