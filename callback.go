package hxlink

import (
	"github.com/a-h/templ"
)

// Callback binds the click of a button or tab to a host action endpoint.
//
// The element renders it as hx-* attributes so that htmx performs the
// request; the element itself never calls the endpoint.
type Callback struct {
	URL    string   `json:"u"`           // Action URL
	Method string   `json:"m,omitempty"` // HTTP method, POST when empty
	Target string   `json:"t,omitempty"` // Target selector
	Swap   SwapMode `json:"s,omitempty"` // Swap mode
}

// IsZero returns true if the callback is empty/unset.
func (cb Callback) IsZero() bool {
	return cb.URL == ""
}

// Attrs returns the htmx attributes for the callback.
func (cb Callback) Attrs() templ.Attributes {
	if cb.IsZero() {
		return templ.Attributes{}
	}
	attrs := WireAttrs(cb.URL, cb.Method, "")
	if cb.Target != "" {
		attrs["hx-target"] = cb.Target
	}
	if cb.Swap != "" {
		attrs["hx-swap"] = string(cb.Swap)
	}
	return attrs
}

func (cb Callback) encode() map[string]any {
	m := map[string]any{"u": cb.URL}
	if cb.Method != "" {
		m["m"] = cb.Method
	}
	if cb.Target != "" {
		m["t"] = cb.Target
	}
	if cb.Swap != "" {
		m["s"] = string(cb.Swap)
	}
	return m
}

// CallbackFromMap reconstructs a Callback from a decoded map.
func CallbackFromMap(m map[string]any) Callback {
	cb := Callback{}
	if v, ok := m["u"].(string); ok {
		cb.URL = v
	}
	if v, ok := m["m"].(string); ok {
		cb.Method = v
	}
	if v, ok := m["t"].(string); ok {
		cb.Target = v
	}
	if v, ok := m["s"].(string); ok {
		cb.Swap = SwapMode(v)
	}
	return cb
}
