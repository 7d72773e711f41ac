// Package tokens supplies the CSS injected into every hyperlink instance:
// the shape properties and the variant styles keyed on the derived classes.
package tokens

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	selcss "github.com/ericchiang/css"
	"golang.org/x/net/html"
)

// ErrParse is returned when style text cannot be parsed.
var ErrParse = errors.New("tokens: invalid stylesheet")

const shapeProperties = `
:host { display: inline; }
.ods-shape { border-radius: 4px; padding: 0.5rem 1rem; }
`

const componentStyles = `
a { cursor: pointer; text-decoration: underline; color: #0074c8; }
a:focus-visible { outline: 2px solid #01426a; }
.variant-link { text-decoration: underline; }
.variant-button { display: inline-block; padding: 0.5rem 1rem; border-radius: 4px; text-decoration: none; }
.variant-button[aria-pressed="true"] { transform: scale(0.98); }
.variant-tab { display: inline-block; text-decoration: none; border-bottom: 2px solid transparent; }
.variant-tab.active { border-bottom-color: currentColor; }
.inline { display: inline; }
.block { display: inline-block; }
.light { color: #0074c8; }
.dark { color: #ffffff; }
.ods-icon { width: 1em; height: 1em; vertical-align: middle; fill: currentColor; }
:host(.is-touching) a:hover { text-decoration: underline; }
`

// Sheet is a parsed stylesheet.
type Sheet struct {
	sheet *css.Stylesheet
}

// Parse parses text into a Sheet.
func Parse(text string) (*Sheet, error) {
	ss, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &Sheet{sheet: ss}, nil
}

// Default returns the shape properties followed by the component styles.
func Default() *Sheet {
	s, err := Parse(shapeProperties + componentStyles)
	if err != nil {
		panic(err)
	}
	return s
}

// Extend returns a new sheet with the rules of text appended after s.
func (s *Sheet) Extend(text string) (*Sheet, error) {
	extra, err := Parse(text)
	if err != nil {
		return nil, err
	}
	merged := css.NewStylesheet()
	merged.Rules = append(merged.Rules, s.sheet.Rules...)
	merged.Rules = append(merged.Rules, extra.sheet.Rules...)
	return &Sheet{sheet: merged}, nil
}

// Rules returns the top-level rules.
func (s *Sheet) Rules() []*css.Rule {
	return s.sheet.Rules
}

// Selectors lists every qualified-rule selector in source order.
func (s *Sheet) Selectors() []string {
	var out []string
	for _, r := range s.sheet.Rules {
		if r.Kind == css.QualifiedRule {
			out = append(out, r.Selectors...)
		}
	}
	return out
}

// String serialises the sheet.
func (s *Sheet) String() string {
	return s.sheet.String()
}

// StyleTag renders the sheet inside a <style> element.
func (s *Sheet) StyleTag() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<style>"); err != nil {
			return err
		}
		// Closing tags inside style text would end the element early.
		body := strings.ReplaceAll(s.String(), "</", `<\/`)
		if _, err := io.WriteString(w, body); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</style>")
		return err
	})
}

// Match returns the rules whose selectors match each element under root.
// Selectors the matcher does not understand (such as :host) are skipped.
func (s *Sheet) Match(root *html.Node) map[*html.Node][]*css.Rule {
	out := map[*html.Node][]*css.Rule{}
	for _, rule := range s.sheet.Rules {
		if rule.Kind != css.QualifiedRule {
			continue
		}
		for _, sel := range rule.Selectors {
			compiled, err := selcss.Parse(sel)
			if err != nil {
				continue
			}
			for _, n := range compiled.Select(root) {
				out[n] = append(out[n], rule)
			}
		}
	}
	return out
}

// Declarations flattens the declarations applying to n, later rules winning.
func (s *Sheet) Declarations(root, n *html.Node) map[string]string {
	decls := map[string]string{}
	for _, rule := range s.Match(root)[n] {
		for _, d := range rule.Declarations {
			decls[d.Property] = d.Value
		}
	}
	return decls
}
