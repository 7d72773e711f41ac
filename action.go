package hxlink

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
)

// WireAttrs builds the minimal htmx attributes for a request.
//
// For GET, returns hx-get with the attribute token in the query string.
// For POST/PUT/DELETE/PATCH, returns hx-post (etc.) with the token in hx-vals.
//
//	WireAttrs("/_c/ods-hyperlink/", http.MethodGet, token)
//	// hx-get="/_c/ods-hyperlink/?p=<token>"
func WireAttrs(path, method, encoded string) templ.Attributes {
	attrs := templ.Attributes{}

	switch method {
	case http.MethodGet:
		url := path
		if encoded != "" {
			url = path + "?p=" + encoded
		}
		attrs["hx-get"] = url
		return attrs
	case http.MethodPut:
		attrs["hx-put"] = path
	case http.MethodPatch:
		attrs["hx-patch"] = path
	case http.MethodDelete:
		attrs["hx-delete"] = path
	default:
		attrs["hx-post"] = path
	}

	if encoded != "" {
		data, _ := json.Marshal(map[string]string{"p": encoded})
		attrs["hx-vals"] = string(data)
	}
	return attrs
}
