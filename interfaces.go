package hxlink

import (
	"context"

	"github.com/a-h/templ"
)

// Hydrater is implemented by components that normalise props before
// rendering. Called once per render request, before Render.
//
//	func (h *Hyperlink) Hydrate(ctx context.Context, props *Props) error {
//	    props.Href = strings.TrimSpace(props.Href)
//	    return nil
//	}
type Hydrater[P any] interface {
	Hydrate(ctx context.Context, props *P) error
}

// Renderer is implemented by components to produce templ output.
//
// Render receives hydrated props and should be pure: it reads props and
// produces HTML without side effects.
type Renderer[P any] interface {
	Render(ctx context.Context, props P) templ.Component
}

// PresentationDerivable is implemented by anything that can report its
// derived classes and ARIA attributes.
type PresentationDerivable interface {
	Derive() Presentation
}

// PressedStateCapable is implemented by anything that runs the
// pressed-state machine over input events.
type PressedStateCapable interface {
	Pressed() PressedState
	Dispatch(ctx context.Context, ev *Event) error
}
