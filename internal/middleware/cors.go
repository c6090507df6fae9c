package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows the listed origins to call the API from a browser. Requests
// from any other origin get no CORS headers.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Location", "Content-Disposition"},
		AllowCredentials: true,
	})
	return c.Handler
}
