// Package icons is the icon asset library: SVG markup registered by name and
// handed out as freshly parsed nodes.
package icons

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StepOut is the external-navigation icon.
const StepOut = "stepout"

var (
	ErrNotFound   = errors.New("icons: icon not found")
	ErrInvalidSVG = errors.New("icons: markup is not a single svg element")
)

const stepOutSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" role="img" aria-hidden="true" class="ods-icon ods-icon--stepout"><title>opens in a new window</title><path fill-rule="evenodd" d="M14 3h7v7h-2V6.41l-8.29 8.3-1.42-1.42L17.59 5H14V3zM5 5h5v2H5v12h12v-5h2v5a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V7a2 2 0 0 1 2-2z"/></svg>`

// Library maps icon names to SVG markup.
type Library struct {
	mu    sync.RWMutex
	icons map[string]*html.Node
}

// New returns an empty library.
func New() *Library {
	return &Library{icons: make(map[string]*html.Node)}
}

// Default returns a library holding the built-in icons.
func Default() *Library {
	l := New()
	if err := l.Register(StepOut, stepOutSVG); err != nil {
		panic(fmt.Sprintf("icons: built-in %s: %v", StepOut, err))
	}
	return l
}

// Register parses svg and stores it under name, replacing any previous icon.
func (l *Library) Register(name, svg string) error {
	n, err := parseSVG(svg)
	if err != nil {
		return fmt.Errorf("icon %q: %w", name, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.icons[name] = n
	return nil
}

// LoadDir registers every *.svg file in dir under its base name, in lexical
// order. On error the count covers the icons registered before the failure.
func (l *Library) LoadDir(dir string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.svg"))
	if err != nil {
		return 0, err
	}
	n := 0
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return n, err
		}
		name := strings.TrimSuffix(filepath.Base(path), ".svg")
		if err := l.Register(name, string(data)); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Has reports whether name is registered.
func (l *Library) Has(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.icons[name]
	return ok
}

// Names lists the registered icons.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, 0, len(l.icons))
	for name := range l.icons {
		out = append(out, name)
	}
	return out
}

// Node returns a detached copy of the icon, safe to insert into a tree.
func (l *Library) Node(name string) (*html.Node, error) {
	l.mu.RLock()
	n, ok := l.icons[name]
	l.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return clone(n), nil
}

// Markup returns the serialised icon.
func (l *Library) Markup(name string) (string, error) {
	n, err := l.Node(name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Component renders the icon as a templ component.
func (l *Library) Component(name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		n, err := l.Node(name)
		if err != nil {
			return err
		}
		return html.Render(w, n)
	})
}

func parseSVG(svg string) (*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(svg), body)
	if err != nil {
		return nil, err
	}

	var root *html.Node
	for _, n := range nodes {
		switch {
		case n.Type == html.ElementNode && n.Data == "svg" && root == nil:
			root = n
		case n.Type == html.TextNode && strings.TrimSpace(n.Data) == "":
		case n.Type == html.CommentNode:
		default:
			return nil, ErrInvalidSVG
		}
	}
	if root == nil {
		return nil, ErrInvalidSVG
	}
	return root, nil
}

func clone(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(clone(child))
	}
	return c
}
