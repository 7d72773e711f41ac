// Package hxlinkecho provides Echo framework integration for hxlink elements.
//
// Mount the re-render routes onto an Echo instance and define elements:
//
//	e := echo.New()
//	reg := hxlinkecho.Mount(e)
//	reg.Define(hxlink.NewHyperlink())
//
// Or mount on a group to share its middleware:
//
//	g := e.Group("", authMiddleware)
//	reg := hxlinkecho.MountGroup(g)
package hxlinkecho

import (
	"crypto/rand"
	"fmt"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pthm/hxlink"
)

// Option configures the Mount and MountGroup functions.
type Option func(*options)

type options struct {
	key    []byte
	logger *zerolog.Logger
	defs   []*hxlink.Hyperlink
}

// WithKey sets the signing key for attribute tokens.
// The key should be at least 32 bytes of cryptographically random data.
// If not provided, a random key is generated (suitable for development only).
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithLogger sets the registry logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &l
	}
}

// WithDefinitions defines elements right after mounting.
func WithDefinitions(defs ...*hxlink.Hyperlink) Option {
	return func(o *options) {
		o.defs = append(o.defs, defs...)
	}
}

// Mount creates a registry and mounts its handler on an Echo instance.
//
//	e := echo.New()
//	reg := hxlinkecho.Mount(e, hxlinkecho.WithKey(key))
func Mount(e *echo.Echo, opts ...Option) *hxlink.Registry {
	reg := newRegistry(opts)
	e.Any(hxlink.DefaultPrefix+"*", echo.WrapHandler(reg.Handler()))
	return reg
}

// MountGroup creates a registry and mounts its handler on an Echo group, so
// re-render requests go through the group's middleware.
//
// Re-render URLs are absolute, so the group must not add a path prefix.
func MountGroup(g *echo.Group, opts ...Option) *hxlink.Registry {
	reg := newRegistry(opts)
	g.Any(hxlink.DefaultPrefix+"*", echo.WrapHandler(reg.Handler()))
	return reg
}

func newRegistry(opts []Option) *hxlink.Registry {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	key := o.key
	if key == nil {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("hxlinkecho: failed to generate random key: %v", err))
		}
	}

	reg := hxlink.NewRegistry(key)
	if o.logger != nil {
		reg.SetLogger(*o.logger)
	}
	if len(o.defs) > 0 {
		reg.Define(o.defs...)
	}
	return reg
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return hxlinkecho.Render(c, link.Render(c.Request().Context(), props))
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}
