package hxlink

import (
	"strings"

	"golang.org/x/net/html"
)

// Attribute names recognised on the host element.
const (
	AttrHref        = "href"
	AttrRole        = "role"
	AttrTarget      = "target"
	AttrRel         = "rel"
	AttrDownload    = "download"
	AttrInline      = "inline"
	AttrDarkTheme   = "darktheme"
	AttrTabIsActive = "tabisactive"
)

// Role is the semantic variant requested through the role attribute.
//
// Values other than RoleButton and RoleTab are kept verbatim so that they
// degrade to the link or no-variant branch instead of failing.
type Role string

const (
	RoleNone   Role = ""
	RoleButton Role = "button"
	RoleTab    Role = "tab"
)

// Interactive reports whether the role gets tabindex, an ARIA role and a
// click binding.
func (r Role) Interactive() bool {
	return r == RoleButton || r == RoleTab
}

// TabState is the tagged boolean behind the tabisactive attribute.
type TabState uint8

const (
	TabUnset TabState = iota
	TabInactive
	TabActive
)

// ParseTabState parses the string form of tabisactive. Only the exact
// string "true" selects the tab.
func ParseTabState(s string) TabState {
	switch s {
	case "true":
		return TabActive
	case "false":
		return TabInactive
	}
	return TabUnset
}

// Active reports whether the tab is selected.
func (s TabState) Active() bool { return s == TabActive }

// String returns the attribute form of s, empty when unset.
func (s TabState) String() string {
	switch s {
	case TabActive:
		return "true"
	case TabInactive:
		return "false"
	}
	return ""
}

// Props is the attribute surface of one ods-hyperlink instance.
type Props struct {
	Href      string   `hx:"href" yaml:"href,omitempty"`
	Role      Role     `hx:"role" yaml:"role,omitempty"`
	Target    string   `hx:"target" yaml:"target,omitempty"`
	Rel       string   `hx:"rel" yaml:"rel,omitempty"`
	Download  bool     `hx:"download" yaml:"download,omitempty"`
	Inline    bool     `hx:"inline" yaml:"inline,omitempty"`
	DarkTheme bool     `hx:"darktheme" yaml:"darktheme,omitempty"`
	TabActive TabState `hx:"tabisactive" yaml:"-"`

	// Label is rendered inside the anchor when no slotted content is given.
	Label string `hx:"label" yaml:"label,omitempty"`

	// OnClick binds the click of an interactive role to a server action.
	OnClick Callback `hx:"cb,omitempty" yaml:"-"`
}

// SetAttribute applies one attribute change. Names are matched
// case-insensitively and unknown names are ignored. Boolean attributes are
// true whenever present.
func (p *Props) SetAttribute(name, value string) {
	switch strings.ToLower(name) {
	case AttrHref:
		p.Href = value
	case AttrRole:
		p.Role = Role(value)
	case AttrTarget:
		p.Target = value
	case AttrRel:
		p.Rel = value
	case AttrDownload:
		p.Download = true
	case AttrInline:
		p.Inline = true
	case AttrDarkTheme:
		p.DarkTheme = true
	case AttrTabIsActive:
		p.TabActive = ParseTabState(value)
	}
}

// RemoveAttribute restores the zero value for name.
func (p *Props) RemoveAttribute(name string) {
	switch strings.ToLower(name) {
	case AttrHref:
		p.Href = ""
	case AttrRole:
		p.Role = RoleNone
	case AttrTarget:
		p.Target = ""
	case AttrRel:
		p.Rel = ""
	case AttrDownload:
		p.Download = false
	case AttrInline:
		p.Inline = false
	case AttrDarkTheme:
		p.DarkTheme = false
	case AttrTabIsActive:
		p.TabActive = TabUnset
	}
}

// PropsFromAttributes builds props from the attributes of a parsed host node.
func PropsFromAttributes(attrs []html.Attribute) Props {
	var p Props
	for _, a := range attrs {
		if a.Namespace != "" {
			continue
		}
		p.SetAttribute(a.Key, a.Val)
	}
	return p
}

// Attributes is the inverse of PropsFromAttributes: the host attributes that
// reproduce p, in a stable order.
func (p Props) Attributes() []html.Attribute {
	var attrs []html.Attribute
	add := func(k, v string) { attrs = append(attrs, html.Attribute{Key: k, Val: v}) }

	if p.Href != "" {
		add(AttrHref, p.Href)
	}
	if p.Role != RoleNone {
		add(AttrRole, string(p.Role))
	}
	if p.Target != "" {
		add(AttrTarget, p.Target)
	}
	if p.Rel != "" {
		add(AttrRel, p.Rel)
	}
	if p.Download {
		add(AttrDownload, "")
	}
	if p.Inline {
		add(AttrInline, "")
	}
	if p.DarkTheme {
		add(AttrDarkTheme, "")
	}
	if p.TabActive != TabUnset {
		add(AttrTabIsActive, p.TabActive.String())
	}
	return attrs
}

// HXEncode flattens props for the attribute token codec.
func (p Props) HXEncode() map[string]any {
	m := map[string]any{}
	if p.Href != "" {
		m["href"] = p.Href
	}
	if p.Role != RoleNone {
		m["role"] = string(p.Role)
	}
	if p.Target != "" {
		m["target"] = p.Target
	}
	if p.Rel != "" {
		m["rel"] = p.Rel
	}
	if p.Download {
		m["download"] = true
	}
	if p.Inline {
		m["inline"] = true
	}
	if p.DarkTheme {
		m["darktheme"] = true
	}
	if p.TabActive != TabUnset {
		m["tabisactive"] = p.TabActive.String()
	}
	if p.Label != "" {
		m["label"] = p.Label
	}
	if !p.OnClick.IsZero() {
		m["cb"] = p.OnClick.encode()
	}
	return m
}

// HXDecode rebuilds props from the attribute token codec.
func (p *Props) HXDecode(m map[string]any) error {
	str := func(k string) string {
		s, _ := m[k].(string)
		return s
	}
	flag := func(k string) bool {
		b, _ := m[k].(bool)
		return b
	}

	*p = Props{
		Href:      str("href"),
		Role:      Role(str("role")),
		Target:    str("target"),
		Rel:       str("rel"),
		Download:  flag("download"),
		Inline:    flag("inline"),
		DarkTheme: flag("darktheme"),
		TabActive: ParseTabState(str("tabisactive")),
		Label:     str("label"),
	}
	if cb, ok := m["cb"].(map[string]any); ok {
		p.OnClick = CallbackFromMap(cb)
	}
	return nil
}
