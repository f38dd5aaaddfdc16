package domain

import "errors"

// ErrNotFound is returned when the requested itinerary, day, activity, or
// export job does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service and edit functions when input fails
// business rule validation (e.g. missing attraction name, days out of range).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrExportPending is returned when an export job's document is requested
// before the job has finished rendering.
// Handlers should map this to HTTP 409 Conflict.
var ErrExportPending = errors.New("export not ready")

// ErrExportFailed is returned when the document of an export job that
// failed to render is requested.
// Handlers should map this to HTTP 409 Conflict.
var ErrExportFailed = errors.New("export failed")
