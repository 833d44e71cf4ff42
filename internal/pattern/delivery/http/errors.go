package http

import (
	pkgErrors "dayflow/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	return pkgErrors.NewHTTPError(500, "internal server error")
}
