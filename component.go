package hxlink

import (
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/pthm/hxlink/lib/encoding"
)

// DefaultPrefix is where the registry mounts re-render routes.
const DefaultPrefix = "/_c/"

// Component[P] is the base type embedded by element definitions. P is the
// attribute set of the element.
//
// It knows the element tag, the route that re-renders the element, and how
// to turn P into an attribute token for that route:
//
//	type Hyperlink struct {
//	    *hxlink.Component[Props]
//	}
type Component[P any] struct {
	tag     string
	prefix  string
	mode    encoding.Mode
	encoder *Encoder
}

// New creates a component for the given tag.
//
// Attribute tokens are signed by default (visible but tamper-proof). Call
// Sensitive to seal them instead.
func New[P any](tag string) *Component[P] {
	return &Component[P]{
		tag:    tag,
		prefix: DefaultPrefix + tag,
		mode:   encoding.Signed,
	}
}

// Sensitive seals attribute tokens so clients cannot read them.
func (c *Component[P]) Sensitive() *Component[P] {
	c.mode = encoding.Sealed
	return c
}

// Tag returns the custom element name.
func (c *Component[P]) Tag() string {
	return c.tag
}

// Prefix returns the component's URL prefix.
func (c *Component[P]) Prefix() string {
	return c.prefix
}

// IsSensitive returns whether attribute tokens are sealed.
func (c *Component[P]) IsSensitive() bool {
	return c.mode == encoding.Sealed
}

// SetEncoder sets the encoder for this component (called by registry).
func (c *Component[P]) SetEncoder(enc *Encoder) {
	c.encoder = enc
}

// Encoder returns the encoder for this component.
func (c *Component[P]) Encoder() *Encoder {
	return c.encoder
}

// Token encodes props for a re-render URL.
func (c *Component[P]) Token(props P) (string, error) {
	if c.encoder == nil {
		return "", ErrInvalidFormat
	}
	return c.encoder.Encode(props, c.mode)
}

// Decode reverses Token.
func (c *Component[P]) Decode(token string, props *P) error {
	if c.encoder == nil {
		return ErrInvalidFormat
	}
	return wrapEncodingError(c.encoder.Decode(token, c.mode, props))
}

// RefreshURL returns the re-render URL for props, with optional attribute
// overrides appended as attr.<name> query parameters.
func (c *Component[P]) RefreshURL(props P, overrides map[string]string) string {
	path := c.prefix + "/"
	token, err := c.Token(props)
	if err != nil {
		return path
	}

	q := url.Values{}
	q.Set("p", token)
	for k, v := range overrides {
		q.Set(overridePrefix+k, v)
	}
	return path + "?" + q.Encode()
}

// Refresh returns the htmx attributes that re-render the element in place.
func (c *Component[P]) Refresh(props P) templ.Attributes {
	path := c.prefix + "/"
	token, err := c.Token(props)
	if err != nil {
		token = ""
	}
	attrs := WireAttrs(path, http.MethodGet, token)
	attrs["hx-swap"] = string(SwapOuter)
	attrs["hx-trigger"] = RefreshEvent
	return attrs
}
