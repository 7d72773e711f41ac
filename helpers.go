package hxlink

import (
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders the component using the
// request's context.
//
//	func page(w http.ResponseWriter, r *http.Request) {
//	    hxlink.Render(w, r, link.Render(r.Context(), props))
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// IsHTMX returns true if the request originated from HTMX.
//
// HTMX sends HX-Request: true on all requests.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// TriggerID returns the id attribute of the element that triggered the
// request, empty if not present.
func TriggerID(r *http.Request) string {
	return r.Header.Get("HX-Trigger")
}
