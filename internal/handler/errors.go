package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pkordes/itinerary-planner/backend/internal/apierror"
	"github.com/pkordes/itinerary-planner/backend/internal/domain"
)

func errorBody(code, message string) apierror.Response {
	return apierror.New(code, message)
}

// requestError writes a 422 for a request rejected before reaching the
// service layer (e.g. malformed body or path parameter).
func requestError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorBody(apierror.CodeValidation, message))
}

// fail maps a service error onto the error envelope. notFound is the message
// used when a not-found error carries no detail of its own, because the
// handler is the layer that knows what was being looked up.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody(apierror.CodeValidation, unwrapMessage(err, domain.ErrValidation)))
	case errors.Is(err, domain.ErrNotFound):
		msg := notFound
		if detail := unwrapMessage(err, domain.ErrNotFound); detail != domain.ErrNotFound.Error() {
			msg = detail + " not found"
		}
		writeJSON(w, http.StatusNotFound, errorBody(apierror.CodeNotFound, msg))
	case errors.Is(err, domain.ErrExportPending):
		writeJSON(w, http.StatusConflict, errorBody(apierror.CodeExportPending, "export is still being generated"))
	case errors.Is(err, domain.ErrExportFailed):
		writeJSON(w, http.StatusConflict, errorBody(apierror.CodeExportFailed, unwrapMessage(err, domain.ErrExportFailed)))
	default:
		s.log.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody(apierror.CodeInternal, "internal server error"))
	}
}

// unwrapMessage extracts the human-readable part that follows sentinel in a
// wrapped error, or the sentinel text when nothing follows it.
// e.g. "service.ItineraryService.Create: validation error: destination is required" → "destination is required"
func unwrapMessage(err, sentinel error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return sentinel.Error()
}
