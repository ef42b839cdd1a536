package router

import (
	"net/http"

	"github.com/rs/cors"
)

// WithCORS wraps handler so browsers served from allowedOrigins can call the API.
func WithCORS(handler http.Handler, allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(handler)
}
