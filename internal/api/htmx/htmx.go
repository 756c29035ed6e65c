// Package htmx holds helpers for endpoints that answer both HTMX swaps and
// plain API clients.
package htmx

import (
	"net/http"
	"strings"
)

const requestHeader = "HX-Request"

func IsRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(requestHeader), "true")
}

// MarkVaries tells caches that the response body depends on HX-Request.
func MarkVaries(w http.ResponseWriter) {
	w.Header().Add("Vary", requestHeader)
}
