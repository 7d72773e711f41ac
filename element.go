package hxlink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	selcss "github.com/ericchiang/css"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	anchorSelector  = mustSelector("a")
	pressedSelector = mustSelector("[" + AttrAriaPressed + "]")
)

func mustSelector(s string) *selcss.Selector {
	sel, err := selcss.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("hxlink: selector %q: %v", s, err))
	}
	return sel
}

// AnchorCallback handles the click of a button or tab. Hosts must bind one
// with WithAnchorCallback (or bind an htmx action through Props.OnClick);
// an unbound click is reported as ErrCallbackUnbound.
type AnchorCallback func(ctx context.Context, el *Element, ev *Event) error

// ElementOption configures an Element.
type ElementOption func(*Element)

// WithAnchorCallback binds the click callback.
func WithAnchorCallback(cb AnchorCallback) ElementOption {
	return func(e *Element) { e.callback = cb }
}

// WithElementLogger overrides the logger inherited from the definition.
func WithElementLogger(l zerolog.Logger) ElementOption {
	return func(e *Element) { e.log = l }
}

// Element is one live ods-hyperlink instance bound to a host node.
//
// The host node is the element in the document; its children are replaced
// by the rendered content on every attribute change. The pressed-state
// controller survives re-renders and writes aria-pressed straight onto the
// rendered anchor.
//
// An Element is not safe for concurrent use: events are expected one at a
// time, as a UI event loop delivers them.
type Element struct {
	def      *Hyperlink
	props    Props
	host     *html.Node
	slot     []*html.Node
	pressed  *PressedController
	callback AnchorCallback
	log      zerolog.Logger
}

// NewElement creates an instance on a fresh, detached host node.
func (h *Hyperlink) NewElement(props Props, opts ...ElementOption) (*Element, error) {
	host := &html.Node{
		Type: html.ElementNode,
		Data: h.Tag(),
		Attr: props.Attributes(),
	}
	return h.bind(host, props, nil, opts...)
}

// Upgrade binds an instance to an existing host node. The host's current
// children become the slotted content.
func (h *Hyperlink) Upgrade(host *html.Node, opts ...ElementOption) (*Element, error) {
	if host.Type != html.ElementNode || !strings.EqualFold(host.Data, h.Tag()) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTag, host.Data)
	}

	var slot []*html.Node
	for c := host.FirstChild; c != nil; {
		next := c.NextSibling
		host.RemoveChild(c)
		slot = append(slot, c)
		c = next
	}
	return h.bind(host, PropsFromAttributes(host.Attr), slot, opts...)
}

func (h *Hyperlink) bind(host *html.Node, props Props, slot []*html.Node, opts ...ElementOption) (*Element, error) {
	e := &Element{
		def:     h,
		props:   props,
		host:    host,
		slot:    slot,
		pressed: NewPressedController(),
		log:     h.log,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.render(context.Background()); err != nil {
		return nil, err
	}
	return e, nil
}

// Props returns a copy of the current attributes.
func (e *Element) Props() Props { return e.props }

// Host returns the host node.
func (e *Element) Host() *html.Node { return e.host }

// Anchor returns the rendered anchor, nil before the first render.
func (e *Element) Anchor() *html.Node {
	if found := anchorSelector.Select(e.host); len(found) > 0 {
		return found[0]
	}
	return nil
}

// AnchorStyle returns the declarations of the injected stylesheet that reach
// the rendered anchor in its current state, later rules winning.
func (e *Element) AnchorStyle() map[string]string {
	a := e.Anchor()
	if a == nil {
		return map[string]string{}
	}
	return e.def.styles.Declarations(e.host, a)
}

// Derive implements PresentationDerivable.
func (e *Element) Derive() Presentation { return Derive(e.props) }

// Pressed implements PressedStateCapable.
func (e *Element) Pressed() PressedState { return e.pressed.State() }

// Touching reports whether the latest gesture was a touch.
func (e *Element) Touching() bool { return e.pressed.Touching() }

// SetAttribute changes one attribute and re-renders.
func (e *Element) SetAttribute(name, value string) error {
	name = strings.ToLower(name)
	e.props.SetAttribute(name, value)
	setAttr(e.host, name, value)
	e.releaseIfNotButton()
	return e.render(context.Background())
}

// RemoveAttribute removes one attribute and re-renders.
func (e *Element) RemoveAttribute(name string) error {
	name = strings.ToLower(name)
	e.props.RemoveAttribute(name)
	removeAttr(e.host, name)
	e.releaseIfNotButton()
	return e.render(context.Background())
}

// releaseIfNotButton drops a press in progress once the role stops being
// button. The release events that would end it are no longer delivered.
func (e *Element) releaseIfNotButton() {
	if e.props.Role == RoleButton || e.pressed.State() == Released {
		return
	}
	e.pressed.Reset()
	e.log.Debug().
		Str("role", string(e.props.Role)).
		Msg("pressed state reset")
}

// Dispatch delivers one input event to the element.
//
// Touch tracking applies to every role. Pressed-state events only reach the
// controller when the role is button. A click on a button or tab runs the
// bound callback; with nothing bound it logs a warning and returns
// ErrCallbackUnbound.
func (e *Element) Dispatch(ctx context.Context, ev *Event) error {
	if e.pressed.Observe(ev) {
		e.syncTouchClass()
	}

	if ev.Type == EventClick {
		return e.click(ctx, ev)
	}
	if e.props.Role != RoleButton {
		return nil
	}

	if e.pressed.Handle(ev, e.pressTarget()) {
		e.log.Debug().
			Str("event", string(ev.Type)).
			Str(AttrAriaPressed, e.pressed.State().String()).
			Msg("pressed state")
	}
	return nil
}

func (e *Element) click(ctx context.Context, ev *Event) error {
	if !e.props.Role.Interactive() {
		return nil
	}
	if e.callback != nil {
		return e.callback(ctx, e, ev)
	}
	if !e.props.OnClick.IsZero() {
		return nil
	}

	e.log.Warn().
		Str("role", string(e.props.Role)).
		Str("href", e.props.Href).
		Msg("event not bound to anchor")
	return ErrCallbackUnbound
}

// pressTarget finds the aria-pressed node the way a shadow root query
// would, at event time.
func (e *Element) pressTarget() PressTarget {
	found := pressedSelector.Select(e.host)
	if len(found) == 0 {
		return nil
	}
	return nodeTarget{found[0]}
}

func (e *Element) syncTouchClass() {
	classes := strings.Fields(attr(e.host, "class"))
	out := classes[:0]
	for _, c := range classes {
		if c != ClassTouching {
			out = append(out, c)
		}
	}
	if e.pressed.Touching() {
		out = append(out, ClassTouching)
	}
	if len(out) == 0 {
		removeAttr(e.host, "class")
		return
	}
	setAttr(e.host, "class", strings.Join(out, " "))
}

// render replaces the host's children with freshly rendered content.
func (e *Element) render(ctx context.Context) error {
	if err := e.def.Hydrate(ctx, &e.props); err != nil {
		return err
	}

	var buf bytes.Buffer
	ctx = templ.WithChildren(ctx, slotComponent(e.slot))
	if err := e.def.Content(e.props, e.pressed.State()).Render(ctx, &buf); err != nil {
		return err
	}

	nodes, err := html.ParseFragment(&buf, &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div})
	if err != nil {
		return err
	}

	for c := e.host.FirstChild; c != nil; {
		next := c.NextSibling
		e.host.RemoveChild(c)
		c = next
	}
	for _, n := range nodes {
		e.host.AppendChild(n)
	}
	return nil
}

// HTML serialises the host with its rendered content.
func (e *Element) HTML() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.host); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func slotComponent(nodes []*html.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, n := range nodes {
			if err := html.Render(w, n); err != nil {
				return err
			}
		}
		return nil
	})
}

type nodeTarget struct{ n *html.Node }

func (t nodeTarget) SetAttribute(name, value string) { setAttr(t.n, name, value) }

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		out = append(out, a)
	}
	n.Attr = out
}
