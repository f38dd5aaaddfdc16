// Package apierror defines the JSON error envelope returned by every non-2xx
// response, whether it comes from a handler or from middleware.
package apierror

import (
	"encoding/json"
	"net/http"
)

// Codes carried in the "code" field of the envelope.
const (
	CodeNotFound      = "not_found"
	CodeValidation    = "validation_error"
	CodeExportPending = "export_pending"
	CodeExportFailed  = "export_failed"
	CodeTooLarge      = "request_too_large"
	CodeRateLimited   = "rate_limited"
	CodeInternal      = "internal_error"
)

// Detail is the body of the "error" member.
type Detail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Response is the envelope: {"error":{"code":"…","message":"…"}}.
type Response struct {
	Error Detail `json:"error"`
}

// New builds an envelope.
func New(code, message string) Response {
	return Response{Error: Detail{Code: code, Message: message}}
}

// Write sends the envelope with status. Headers set on w beforehand are kept.
func Write(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(New(code, message))
}
