package hxlink

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	selcss "github.com/ericchiang/css"
	"golang.org/x/net/html"
)

// TestResult holds the result of rendering an element for testing.
//
// The markup is kept both as text and as a parsed document so assertions
// can go through CSS selectors instead of string matching.
type TestResult struct {
	HTML       string
	Doc        *html.Node
	StatusCode int
	Headers    http.Header
}

// TestableComponent combines Hydrater and Renderer for testing.
type TestableComponent[P any] interface {
	Hydrater[P]
	Renderer[P]
}

// TestRender hydrates and renders comp and returns testable output.
//
//	result, err := hxlink.TestRender(link, hxlink.Props{Role: hxlink.RoleTab})
//	if !result.AnchorHasClass("variant-tab") {
//	    t.Fatal("missing variant class")
//	}
func TestRender[P any](comp TestableComponent[P], props P) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), comp, props)
}

// TestRenderWithContext renders comp with a custom context, for instance
// one carrying templ children.
func TestRenderWithContext[P any](ctx context.Context, comp TestableComponent[P], props P) (*TestResult, error) {
	if err := comp.Hydrate(ctx, &props); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := comp.Render(ctx, props).Render(ctx, &buf); err != nil {
		return nil, err
	}
	return newTestResult(buf.String(), http.StatusOK, make(http.Header))
}

// TestGet performs a GET against handler and parses the response.
func TestGet(handler http.Handler, url string) (*TestResult, error) {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return newTestResult(rec.Body.String(), rec.Code, rec.Header())
}

// TestElement snapshots a live element.
func TestElement(el *Element) (*TestResult, error) {
	markup, err := el.HTML()
	if err != nil {
		return nil, err
	}
	return newTestResult(markup, http.StatusOK, make(http.Header))
}

func newTestResult(markup string, status int, headers http.Header) (*TestResult, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	return &TestResult{
		HTML:       markup,
		Doc:        doc,
		StatusCode: status,
		Headers:    headers,
	}, nil
}

// HTMLContains checks if the rendered HTML contains substr.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// Query returns the nodes matching a CSS selector. Type selectors only
// cover standard HTML element names; custom elements such as the host are
// found with Hosts.
func (r *TestResult) Query(selector string) ([]*html.Node, error) {
	sel, err := selcss.Parse(selector)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", selector, err)
	}
	return sel.Select(r.Doc), nil
}

// Hosts returns the elements named tag in document order.
func (r *TestResult) Hosts(tag string) []*html.Node {
	var out []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(r.Doc)
	return out
}

// Anchor returns the first rendered anchor.
func (r *TestResult) Anchor() *html.Node {
	if nodes := anchorSelector.Select(r.Doc); len(nodes) > 0 {
		return nodes[0]
	}
	return nil
}

// AnchorAttr returns an attribute of the anchor and whether it is present.
func (r *TestResult) AnchorAttr(name string) (string, bool) {
	a := r.Anchor()
	if a == nil {
		return "", false
	}
	return lookupAttr(a, name)
}

// AnchorHasClass reports whether the anchor carries class.
func (r *TestResult) AnchorHasClass(class string) bool {
	v, _ := r.AnchorAttr("class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

func lookupAttr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// IsOK checks if the response status is 200 OK.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the response has the given status code.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}
