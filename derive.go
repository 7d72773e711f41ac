package hxlink

import (
	"strings"

	"github.com/pthm/hxlink/lib/icons"
)

// Class names produced by the derivers.
const (
	ClassVariantButton = "variant-button"
	ClassVariantTab    = "variant-tab"
	ClassVariantLink   = "variant-link"
	ClassInline        = "inline"
	ClassBlock         = "block"
	ClassDark          = "dark"
	ClassLight         = "light"
	ClassActive        = "active"
	ClassTouching      = "is-touching"
)

const (
	// TargetBlank opens the link in a new browsing context.
	TargetBlank = "_blank"
	// RelNoOpener is forced on every new-context link.
	RelNoOpener = "noopener noreferrer"
	// TabIndexFocusable puts interactive roles in the tab order.
	TabIndexFocusable = "0"
)

// ClassifyRole returns the variant class. Role wins over href; an anchor
// without either gets no variant class.
func ClassifyRole(role Role, href string) string {
	switch {
	case role == RoleButton:
		return ClassVariantButton
	case role == RoleTab:
		return ClassVariantTab
	case href != "":
		return ClassVariantLink
	}
	return ""
}

// ClassifyContext returns the display context class.
func ClassifyContext(inline bool) string {
	if inline {
		return ClassInline
	}
	return ClassBlock
}

// ClassifyTheme returns the theme class.
func ClassifyTheme(dark bool) string {
	if dark {
		return ClassDark
	}
	return ClassLight
}

// ClassifyTabState returns ClassActive for a selected tab, empty otherwise.
func ClassifyTabState(s TabState) string {
	if s.Active() {
		return ClassActive
	}
	return ""
}

// ClassifyTabStateString classifies the raw tabisactive attribute value.
func ClassifyTabStateString(s string) string {
	return ClassifyTabState(ParseTabState(s))
}

// ResolveRel computes the rel attribute. A _blank target always gets
// RelNoOpener whatever rel says. Empty means omit the attribute.
func ResolveRel(target, rel string) string {
	if target == TargetBlank {
		return RelNoOpener
	}
	return rel
}

// AttachIcon names the icon decorating the anchor, empty for none.
func AttachIcon(target string) string {
	if target == TargetBlank {
		return icons.StepOut
	}
	return ""
}

// Presentation is everything the template needs, derived from Props.
type Presentation struct {
	Variant  string
	Context  string
	Theme    string
	TabState string

	// Role is the ARIA role attribute, empty for plain links.
	Role     Role
	Rel      string
	TabIndex string
	Icon     string

	// Pressable is true when aria-pressed is rendered.
	Pressable bool
	// AriaSelected is the aria-selected value, empty when omitted.
	AriaSelected string
	// Clickable is true when the click callback is bound.
	Clickable bool
}

// Derive computes the presentation of props.
func Derive(p Props) Presentation {
	pr := Presentation{
		Variant:  ClassifyRole(p.Role, p.Href),
		Context:  ClassifyContext(p.Inline),
		Theme:    ClassifyTheme(p.DarkTheme),
		TabState: ClassifyTabState(p.TabActive),
		Rel:      ResolveRel(p.Target, p.Rel),
		Icon:     AttachIcon(p.Target),
	}

	if p.Role.Interactive() {
		pr.Role = p.Role
		pr.TabIndex = TabIndexFocusable
		pr.Clickable = true
	}
	switch p.Role {
	case RoleButton:
		pr.Pressable = true
	case RoleTab:
		pr.AriaSelected = "false"
		if p.TabActive.Active() {
			pr.AriaSelected = "true"
		}
	}
	return pr
}

// Classes returns the non-empty classes in template order.
func (pr Presentation) Classes() []string {
	out := make([]string, 0, 4)
	for _, c := range []string{pr.Variant, pr.Context, pr.Theme, pr.TabState} {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// ClassName joins Classes for the class attribute.
func (pr Presentation) ClassName() string {
	return strings.Join(pr.Classes(), " ")
}

// HasClass reports whether class is part of the derived class list.
func (pr Presentation) HasClass(class string) bool {
	for _, c := range pr.Classes() {
		if c == class {
			return true
		}
	}
	return false
}
