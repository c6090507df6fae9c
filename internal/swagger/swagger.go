// Package swagger serves the OpenAPI document of the employee API and a
// Swagger UI page that loads it.
package swagger

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DocPath is where the OpenAPI document is served.
const DocPath = "/swagger/v1/swagger.json"

//go:embed dist
var content embed.FS

// Document returns the embedded OpenAPI document.
func Document() ([]byte, error) {
	return content.ReadFile("dist/v1/swagger.json")
}

// RegisterRoutes mounts the UI at /swagger/ and the document at DocPath.
func RegisterRoutes(r chi.Router) error {
	dist, err := fs.Sub(content, "dist")
	if err != nil {
		return err
	}
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Handle("/swagger/*", http.StripPrefix("/swagger", http.FileServer(http.FS(dist))))
	return nil
}
