// Package middleware provides reusable HTTP middleware for the itinerary planner API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// preflightMaxAge is how long, in seconds, browsers may cache a preflight.
const preflightMaxAge = 600

// NewCORSHandler returns a middleware that applies CORS headers for the
// planner UI origins in allowedOrigins (scheme + host, no trailing slash).
//
// Content-Type is the only accepted request header. The export response
// headers (filename, job location, limiter back-off) are readable by the UI.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Disposition", "Location", "Retry-After"},
		MaxAge:         preflightMaxAge,
	})
	return c.Handler
}
