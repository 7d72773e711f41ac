package hxlink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"

	"github.com/pthm/hxlink/lib/icons"
	"github.com/pthm/hxlink/lib/tokens"
)

// TagName is the custom element name the hyperlink registers under.
const TagName = "ods-hyperlink"

// RefreshEvent is the htmx trigger that asks a host to re-render itself.
const RefreshEvent = "hxlink:refresh"

// Hyperlink is the ods-hyperlink element definition: a link that can also
// present itself as a button or a tab.
//
// One Hyperlink renders any number of instances; per-instance state lives
// in Element.
type Hyperlink struct {
	*Component[Props]
	icons  *icons.Library
	styles *tokens.Sheet
	log    zerolog.Logger
}

// Option configures a Hyperlink.
type Option func(*Hyperlink)

// WithIcons replaces the icon library.
func WithIcons(l *icons.Library) Option {
	return func(h *Hyperlink) { h.icons = l }
}

// WithStyles replaces the injected stylesheet.
func WithStyles(s *tokens.Sheet) Option {
	return func(h *Hyperlink) { h.styles = s }
}

// WithLogger sets the logger inherited by elements.
func WithLogger(l zerolog.Logger) Option {
	return func(h *Hyperlink) { h.log = l }
}

// WithTag registers the definition under another element name.
func WithTag(tag string) Option {
	return func(h *Hyperlink) { h.Component = New[Props](tag) }
}

// NewHyperlink creates the element definition.
func NewHyperlink(opts ...Option) *Hyperlink {
	h := &Hyperlink{
		Component: New[Props](TagName),
		icons:     icons.Default(),
		styles:    tokens.Default(),
		log:       defaultLogger(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With().Str("component", h.Tag()).Logger()
	return h
}

// Logger returns the definition's logger.
func (h *Hyperlink) Logger() zerolog.Logger {
	return h.log
}

// Hydrate trims stray whitespace from URL-like attributes and checks that
// the icon the element needs is available.
func (h *Hyperlink) Hydrate(ctx context.Context, props *Props) error {
	props.Href = strings.TrimSpace(props.Href)
	props.Target = strings.TrimSpace(props.Target)
	props.Rel = strings.TrimSpace(props.Rel)

	if name := AttachIcon(props.Target); name != "" && !h.icons.Has(name) {
		return fmt.Errorf("%w: %q", ErrIconNotFound, name)
	}
	return nil
}

// Render produces the complete host element: the custom element tag with
// its attributes and re-render wiring, wrapping the content. The tag is only
// known at runtime, so the host is written here and the rest is left to
// hyperlinkContent.
func (h *Hyperlink) Render(ctx context.Context, props Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+h.Tag()); err != nil {
			return err
		}
		if err := templ.RenderAttributes(ctx, w, hostAttributes(props)); err != nil {
			return err
		}
		if h.Encoder() != nil {
			if err := templ.RenderAttributes(ctx, w, h.Refresh(props)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if err := h.Content(props, Released).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</"+h.Tag()+">")
		return err
	})
}

// Content renders what lives inside the host: the style tokens and the
// anchor. pressed is the controller's current value; it only shows up when
// the role is button. Children passed through the context fill the slot;
// the label is the fallback when they render nothing.
func (h *Hyperlink) Content(props Props, pressed PressedState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		var slot bytes.Buffer
		if err := children.Render(templ.ClearChildren(ctx), &slot); err != nil {
			return err
		}

		v := h.view(props, pressed)
		v.Slotted = strings.TrimSpace(slot.String()) != ""
		ctx = templ.WithChildren(ctx, templ.Raw(slot.String()))
		return hyperlinkContent(h.styles.StyleTag(), v).Render(ctx, w)
	})
}

// anchorView is the input of hyperlinkContent.
type anchorView struct {
	Pressable    bool
	Pressed      string
	AriaSelected string
	Download     bool
	Role         string
	Rel          string
	Classes      []string
	Href         string
	Target       string
	TabIndex     string
	Wire         templ.Attributes
	Label        string
	Slotted      bool
	Icon         templ.Component
}

func (h *Hyperlink) view(props Props, pressed PressedState) anchorView {
	pr := Derive(props)
	v := anchorView{
		Pressable:    pr.Pressable,
		Pressed:      pressed.String(),
		AriaSelected: pr.AriaSelected,
		Download:     props.Download,
		Role:         string(pr.Role),
		Rel:          pr.Rel,
		Classes:      pr.Classes(),
		Href:         props.Href,
		Target:       props.Target,
		TabIndex:     pr.TabIndex,
		Label:        props.Label,
	}
	if pr.Clickable {
		v.Wire = props.OnClick.Attrs()
	}
	if pr.Icon != "" {
		v.Icon = h.icon(pr.Icon)
	}
	return v
}

func (h *Hyperlink) icon(name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := h.icons.Component(name).Render(ctx, w); err != nil {
			return fmt.Errorf("%w: %v", ErrIconNotFound, err)
		}
		return nil
	})
}

func hostAttributes(props Props) templ.OrderedAttributes {
	attrs := props.Attributes()
	out := make(templ.OrderedAttributes, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, templ.KV[string, any](a.Key, a.Val))
	}
	return out
}
