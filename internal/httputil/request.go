package httputil

import (
	"maps"
	"net/http"
	"slices"
	"strings"
)

// QueryValue returns the first value of the query parameter whose name
// matches name case-insensitively, and whether it was present. An exact
// match wins; otherwise the lexically smallest matching key is used.
func QueryValue(r *http.Request, name string) (string, bool) {
	query := r.URL.Query()
	if values := query[name]; len(values) > 0 {
		return values[0], true
	}
	for _, key := range slices.Sorted(maps.Keys(query)) {
		if values := query[key]; strings.EqualFold(key, name) && len(values) > 0 {
			return values[0], true
		}
	}
	return "", false
}
