package hxlink

import "testing"

// recordTarget records every attribute write.
type recordTarget struct {
	writes []string
}

func (r *recordTarget) SetAttribute(name, value string) {
	r.writes = append(r.writes, name+"="+value)
}

func (r *recordTarget) last() string {
	if len(r.writes) == 0 {
		return ""
	}
	return r.writes[len(r.writes)-1]
}

func TestPressedSequences(t *testing.T) {
	down := func(typ EventType) *Event { return &Event{Type: typ} }

	tests := []struct {
		name   string
		events []*Event
		want   PressedState
		writes int
	}{
		{"mousedown alone", []*Event{down(EventMouseDown)}, Pressed, 1},
		{"mousedown then mouseup", []*Event{down(EventMouseDown), down(EventMouseUp)}, Released, 2},
		{"pointerdown then pointerup", []*Event{down(EventPointerDown), down(EventPointerUp)}, Released, 2},
		{"pointer and mouse doubled", []*Event{down(EventPointerDown), down(EventMouseDown), down(EventPointerUp), down(EventMouseUp)}, Released, 4},
		{"unmatched mouseup", []*Event{down(EventMouseUp)}, Released, 1},
		{"repeated mouseup", []*Event{down(EventMouseUp), down(EventMouseUp)}, Released, 2},
		{"click is ignored", []*Event{down(EventMouseDown), down(EventClick)}, Pressed, 1},
		{"touchstart is ignored", []*Event{down(EventTouchStart)}, Released, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewPressedController()
			target := &recordTarget{}
			for _, ev := range tt.events {
				c.Handle(ev, target)
			}
			if c.State() != tt.want {
				t.Errorf("State() = %v, want %v", c.State(), tt.want)
			}
			if len(target.writes) != tt.writes {
				t.Errorf("writes = %v, want %d", target.writes, tt.writes)
			}
			if tt.writes > 0 && target.last() != AttrAriaPressed+"="+tt.want.String() {
				t.Errorf("last write = %q, want %q", target.last(), AttrAriaPressed+"="+tt.want.String())
			}
		})
	}
}

func TestPressedKeyboard(t *testing.T) {
	tests := []struct {
		name        string
		ev          Event
		wantHandled bool
		wantState   PressedState
	}{
		{"enter keycode", Event{Type: EventKeyDown, KeyCode: KeyCodeEnter}, true, Pressed},
		{"space keycode", Event{Type: EventKeyDown, KeyCode: KeyCodeSpace}, true, Pressed},
		{"enter key value", Event{Type: EventKeyDown, Key: "Enter"}, true, Pressed},
		{"space key value", Event{Type: EventKeyDown, Key: " "}, true, Pressed},
		{"escape", Event{Type: EventKeyDown, KeyCode: 27, Key: "Escape"}, false, Released},
		{"letter", Event{Type: EventKeyDown, KeyCode: 65, Key: "a"}, false, Released},
		{"tab", Event{Type: EventKeyDown, KeyCode: 9, Key: "Tab"}, false, Released},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewPressedController()
			target := &recordTarget{}
			ev := tt.ev

			handled := c.Handle(&ev, target)
			if handled != tt.wantHandled {
				t.Errorf("Handle() = %v, want %v", handled, tt.wantHandled)
			}
			if c.State() != tt.wantState {
				t.Errorf("State() = %v, want %v", c.State(), tt.wantState)
			}
			if ev.DefaultPrevented() != tt.wantHandled {
				t.Errorf("DefaultPrevented() = %v, want %v", ev.DefaultPrevented(), tt.wantHandled)
			}
			if !tt.wantHandled && len(target.writes) != 0 {
				t.Errorf("unexpected writes %v", target.writes)
			}
		})
	}
}

func TestPressedKeyUp(t *testing.T) {
	c := NewPressedController()
	target := &recordTarget{}

	c.Handle(&Event{Type: EventKeyDown, KeyCode: KeyCodeSpace}, target)

	other := &Event{Type: EventKeyUp, KeyCode: 65}
	c.Handle(other, target)
	if c.State() != Pressed {
		t.Errorf("keyup of another key changed state to %v", c.State())
	}
	if other.DefaultPrevented() {
		t.Error("keyup of another key should not be prevented")
	}

	up := &Event{Type: EventKeyUp, KeyCode: KeyCodeSpace}
	c.Handle(up, target)
	if c.State() != Released {
		t.Errorf("State() = %v, want %v", c.State(), Released)
	}
	if !up.DefaultPrevented() {
		t.Error("activation keyup should be prevented")
	}
	if target.last() != "aria-pressed=false" {
		t.Errorf("last write = %q, want %q", target.last(), "aria-pressed=false")
	}
}

func TestPressedNilTarget(t *testing.T) {
	c := NewPressedController()
	if !c.Handle(&Event{Type: EventPointerDown}, nil) {
		t.Fatal("Handle() = false, want true")
	}
	if c.State() != Pressed {
		t.Errorf("State() = %v, want %v", c.State(), Pressed)
	}
	c.Reset()
	if c.State() != Released {
		t.Errorf("State() after Reset = %v, want %v", c.State(), Released)
	}
}

func TestObserveTouch(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   bool
	}{
		{"touchstart", []Event{{Type: EventTouchStart}}, true},
		{"touch pointer", []Event{{Type: EventPointerDown, PointerType: PointerTouch}}, true},
		{"mouse pointer", []Event{{Type: EventPointerDown, PointerType: PointerMouse}}, false},
		{"touch then mouse", []Event{{Type: EventTouchStart}, {Type: EventPointerDown, PointerType: PointerMouse}}, false},
		{"touch then keyboard", []Event{{Type: EventTouchStart}, {Type: EventKeyDown, KeyCode: 65}}, false},
		{"touch survives pointerup", []Event{{Type: EventTouchStart}, {Type: EventPointerUp}}, true},
		{"pen pointer", []Event{{Type: EventPointerDown, PointerType: PointerPen}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewPressedController()
			for i := range tt.events {
				c.Observe(&tt.events[i])
			}
			if c.Touching() != tt.want {
				t.Errorf("Touching() = %v, want %v", c.Touching(), tt.want)
			}
		})
	}
}

func TestObserveReportsChange(t *testing.T) {
	c := NewPressedController()
	if !c.Observe(&Event{Type: EventTouchStart}) {
		t.Error("first touchstart should report a change")
	}
	if c.Observe(&Event{Type: EventTouchStart}) {
		t.Error("second touchstart should not report a change")
	}
	if !c.Observe(&Event{Type: EventKeyDown}) {
		t.Error("keydown after touch should report a change")
	}
}

func TestPressedStateString(t *testing.T) {
	if Released.String() != "false" || Pressed.String() != "true" {
		t.Errorf("String() = %q/%q, want false/true", Released.String(), Pressed.String())
	}
}
