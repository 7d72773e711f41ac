package hxlink

// SwapMode defines htmx swap strategies for how a callback response
// replaces its target.
//
// See https://htmx.org/attributes/hx-swap/ for visual examples.
type SwapMode string

const (
	// SwapOuter replaces the entire element including its tag (outerHTML).
	// Re-render requests always use it.
	SwapOuter SwapMode = "outerHTML"

	// SwapInner replaces only the element's contents (innerHTML).
	SwapInner SwapMode = "innerHTML"

	// SwapBeforeEnd appends the response inside the target.
	SwapBeforeEnd SwapMode = "beforeend"

	// SwapNone discards the response. Useful for callbacks with side effects only.
	SwapNone SwapMode = "none"
)
