package apierror

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/core"
)

// FromService maps a service error onto the API error taxonomy:
// validation failures are 422, uniqueness conflicts are 409, anything
// else is a 500 carrying the fallback message.
func FromService(err error, fallback string) error {
	switch {
	case core.IsValidation(err):
		return huma.NewError(http.StatusUnprocessableEntity, err.Error())
	case core.IsConflict(err):
		return huma.NewError(http.StatusConflict, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, fallback, err)
	}
}

// NotFound is the 404 returned when a requested entity does not exist.
func NotFound(message string) error {
	return huma.NewError(http.StatusNotFound, message)
}
