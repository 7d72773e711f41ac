package hxlink

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

// Query parameters understood by the re-render route besides p.
const (
	overridePrefix = "attr."
	unsetParam     = "unset"
)

// Registry maps custom element tags to their definitions, upgrades host
// nodes in parsed documents and serves re-render requests.
type Registry struct {
	mu      sync.RWMutex
	mux     *http.ServeMux
	encoder *Encoder
	defs    map[string]*Hyperlink
	log     zerolog.Logger

	// OnError is called when a re-render request fails.
	// Customize this to handle errors appropriately for your application.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// NewRegistry creates a registry whose attribute tokens use key.
func NewRegistry(key []byte) *Registry {
	enc, err := NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("hxlink: failed to create encoder: %v", err))
	}

	reg := &Registry{
		mux:     http.NewServeMux(),
		encoder: enc,
		defs:    make(map[string]*Hyperlink),
		log:     defaultLogger().With().Str("component", "registry").Logger(),
	}

	reg.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		switch {
		case IsDecryptionError(err), IsFormatError(err):
			http.Error(w, "Bad request", http.StatusBadRequest)
		case IsConfigError(err):
			http.Error(w, "Not found", http.StatusNotFound)
		default:
			http.Error(w, "Internal error", http.StatusInternalServerError)
		}
	}

	return reg
}

// SetLogger replaces the registry logger.
func (reg *Registry) SetLogger(l zerolog.Logger) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.log = l.With().Str("component", "registry").Logger()
}

// Encoder returns the registry's encoder.
func (reg *Registry) Encoder() *Encoder {
	return reg.encoder
}

// Define registers definitions under their tags. Like customElements.define,
// defining a tag twice panics.
func (reg *Registry) Define(defs ...*Hyperlink) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, h := range defs {
		tag := strings.ToLower(h.Tag())
		if _, exists := reg.defs[tag]; exists {
			panic(fmt.Sprintf("hxlink: tag %q already defined", tag))
		}
		h.SetEncoder(reg.encoder)
		reg.defs[tag] = h
		reg.mux.HandleFunc(h.Prefix()+"/", reg.serve(h))
		reg.log.Debug().Str("tag", tag).Str("prefix", h.Prefix()).Msg("element defined")
	}
}

// Lookup returns the definition for tag.
func (reg *Registry) Lookup(tag string) (*Hyperlink, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	h, ok := reg.defs[strings.ToLower(tag)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTag, tag)
	}
	return h, nil
}

// Tags lists the defined tags in order.
func (reg *Registry) Tags() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	tags := make([]string, 0, len(reg.defs))
	for t := range reg.defs {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Upgrade binds an Element to every host node under root whose tag is
// defined, in document order.
func (reg *Registry) Upgrade(ctx context.Context, root *html.Node, opts ...ElementOption) ([]*Element, error) {
	var hosts []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, err := reg.Lookup(n.Data); err == nil {
				hosts = append(hosts, n)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	elements := make([]*Element, 0, len(hosts))
	for _, host := range hosts {
		if err := ctx.Err(); err != nil {
			return elements, err
		}
		h, err := reg.Lookup(host.Data)
		if err != nil {
			return elements, err
		}
		el, err := h.Upgrade(host, opts...)
		if err != nil {
			return elements, fmt.Errorf("upgrade <%s>: %w", host.Data, err)
		}
		elements = append(elements, el)
	}
	return elements, nil
}

// serve re-renders one element from its attribute token. Attribute changes
// arrive as attr.<name>=<value> and unset=<name> parameters on top of it.
func (reg *Registry) serve(h *Hyperlink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var props Props
		q := r.URL.Query()
		if token := q.Get("p"); token != "" {
			if err := h.Decode(token, &props); err != nil {
				reg.fail(w, r, err)
				return
			}
		}
		for key, vals := range q {
			if name, ok := strings.CutPrefix(key, overridePrefix); ok && len(vals) > 0 {
				props.SetAttribute(name, vals[len(vals)-1])
			}
		}
		for _, name := range q[unsetParam] {
			props.RemoveAttribute(name)
		}

		if err := h.Hydrate(r.Context(), &props); err != nil {
			reg.fail(w, r, err)
			return
		}
		if err := Render(w, r, h.Render(r.Context(), props)); err != nil {
			reg.log.Error().Err(err).Str("path", r.URL.Path).Msg("render failed")
		}
	}
}

func (reg *Registry) fail(w http.ResponseWriter, r *http.Request, err error) {
	reg.log.Warn().Err(err).Str("path", r.URL.Path).Msg("re-render rejected")
	reg.OnError(w, r, err)
}

// Handler returns the HTTP handler for re-render routes.
// Mount this at DefaultPrefix in your application.
func (reg *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// CSRF protection: mutating methods require HX-Request header
		if r.Method != http.MethodGet && r.Method != http.MethodHead && !IsHTMX(r) {
			http.Error(w, "Forbidden: HTMX request required", http.StatusForbidden)
			return
		}

		reg.mux.ServeHTTP(w, r)
	})
}
