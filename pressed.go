package hxlink

// EventType names an input event as delivered by the host environment.
type EventType string

const (
	EventPointerDown EventType = "pointerdown"
	EventPointerUp   EventType = "pointerup"
	EventMouseDown   EventType = "mousedown"
	EventMouseUp     EventType = "mouseup"
	EventKeyDown     EventType = "keydown"
	EventKeyUp       EventType = "keyup"
	EventTouchStart  EventType = "touchstart"
	EventClick       EventType = "click"
)

// Legacy key codes of the activation keys.
const (
	KeyCodeEnter = 13
	KeyCodeSpace = 32
)

// Pointer types reported on pointer events.
const (
	PointerMouse = "mouse"
	PointerTouch = "touch"
	PointerPen   = "pen"
)

// Event is one input event routed to an element.
type Event struct {
	Type EventType
	// KeyCode is the legacy numeric key code of keyboard events.
	KeyCode int
	// Key is the modern key value ("Enter", " ").
	Key string
	// PointerType is set on pointer events.
	PointerType string

	defaultPrevented bool
}

// PreventDefault suppresses the host's default action (page scroll on
// Space, form submission on Enter).
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// IsActivationKey reports whether the event carries Enter or Space.
func (e *Event) IsActivationKey() bool {
	switch {
	case e.KeyCode == KeyCodeEnter || e.KeyCode == KeyCodeSpace:
		return true
	case e.Key == "Enter" || e.Key == " " || e.Key == "Spacebar":
		return true
	}
	return false
}

// PressedState is the live value of aria-pressed.
type PressedState uint8

const (
	Released PressedState = iota
	Pressed
)

// String returns the aria-pressed attribute value.
func (s PressedState) String() string {
	if s == Pressed {
		return "true"
	}
	return "false"
}

// AttrAriaPressed is the attribute written by the controller.
const AttrAriaPressed = "aria-pressed"

// PressTarget is the node carrying aria-pressed.
type PressTarget interface {
	SetAttribute(name, value string)
}

type transition struct {
	keyed bool // only for activation keys
	next  PressedState
}

// pressTransitions is the pressed-state table. The current state does not
// take part: every matching event writes its value again, so an unmatched
// mouseup simply re-asserts Released.
var pressTransitions = map[EventType]transition{
	EventPointerDown: {next: Pressed},
	EventMouseDown:   {next: Pressed},
	EventPointerUp:   {next: Released},
	EventMouseUp:     {next: Released},
	EventKeyDown:     {keyed: true, next: Pressed},
	EventKeyUp:       {keyed: true, next: Released},
}

// PressedController keeps aria-pressed in step with mouse and keyboard
// actuation, and tracks whether the current gesture is a touch.
//
// A controller is owned by one element and is not safe for concurrent use.
type PressedController struct {
	state    PressedState
	touching bool
}

// NewPressedController returns a controller in the Released state.
func NewPressedController() *PressedController {
	return &PressedController{}
}

// State returns the current pressed state.
func (c *PressedController) State() PressedState { return c.state }

// Touching reports whether the latest gesture came from touch input.
func (c *PressedController) Touching() bool { return c.touching }

// Observe re-evaluates the touch flag for ev. It reports whether the flag
// changed.
func (c *PressedController) Observe(ev *Event) bool {
	prev := c.touching
	switch ev.Type {
	case EventTouchStart:
		c.touching = true
	case EventPointerDown:
		c.touching = ev.PointerType == PointerTouch
	case EventKeyDown:
		c.touching = false
	}
	return prev != c.touching
}

// Handle applies ev to the state machine and writes the result to target
// synchronously. It reports whether ev was a pressed-state event.
// target may be nil, in which case only the in-memory state moves.
func (c *PressedController) Handle(ev *Event, target PressTarget) bool {
	tr, ok := pressTransitions[ev.Type]
	if !ok {
		return false
	}
	if tr.keyed {
		if !ev.IsActivationKey() {
			return false
		}
		ev.PreventDefault()
	}

	c.state = tr.next
	if target != nil {
		target.SetAttribute(AttrAriaPressed, c.state.String())
	}
	return true
}

// Reset returns the controller to Released without touching any node.
func (c *PressedController) Reset() {
	c.state = Released
}
