package controllers

import (
	"errors"
	"net/http"

	"github.com/geneeuchoi/MySelectShop/services"
)

// statusFromError maps a service failure to its HTTP status. Unknown errors
// count as internal.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrFolderNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrMyPriceTooLow):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, services.ErrDuplicateFolder),
		errors.Is(err, services.ErrDuplicateFolderName):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
