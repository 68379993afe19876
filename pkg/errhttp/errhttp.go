// Package errhttp maps domain sentinel errors to HTTP responses.
// Add a case to mapError for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/shoppinglist/pkg/httpx"
	"github.com/ghuser/shoppinglist/pkg/logger"
	"github.com/ghuser/shoppinglist/pkg/telemetry"
	itemdomain "github.com/ghuser/shoppinglist/services/item/domain"
)

// Public messages written for recognised sentinels. The wrapped error chain
// is never sent to the client.
const (
	MsgItemNotFound      = "Item not found"
	MsgItemNameRequired  = "Item name is required"
	MsgItemAlreadyExists = "Item already exists"
)

// Writer turns errors returned by application services into JSON error responses.
type Writer struct {
	log          logger.Logger
	isProduction bool
}

// NewWriter returns a Writer. In production, messages of unrecognised errors
// are replaced with the generic status text.
func NewWriter(log logger.Logger, isProduction bool) *Writer {
	return &Writer{log: log, isProduction: isProduction}
}

// WriteError maps err to a status code and public message and writes
// {"error": message}. Uses errors.Is() so wrapped sentinel errors are matched.
// Unrecognised errors are logged, reported to Sentry and answered with 500.
func (e *Writer) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg, ok := mapError(err)
	if !ok {
		e.log.ErrorContext(r.Context(), "unhandled service error", "error", err, "path", r.URL.Path)
		telemetry.CaptureError(r.Context(), err)
		msg = httpx.SafeError(err, status, e.isProduction)
	}
	httpx.JSONError(w, status, msg)
}

func mapError(err error) (status int, msg string, ok bool) {
	switch {
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return http.StatusNotFound, MsgItemNotFound, true
	case errors.Is(err, itemdomain.ErrInvalidItemName):
		return http.StatusBadRequest, MsgItemNameRequired, true
	case errors.Is(err, itemdomain.ErrItemAlreadyExists):
		return http.StatusConflict, MsgItemAlreadyExists, true
	default:
		return http.StatusInternalServerError, "", false
	}
}
