// Package hxlink implements the ods-hyperlink element: an accessible
// hyperlink that presents itself as a plain link, a button or a tab, with
// theming, an external-navigation icon and ARIA state management.
//
// # Core Concepts
//
// The element is driven by a handful of declarative attributes collected in
// Props (href, role, target, rel, download, inline, darktheme, tabisactive).
// Two pieces turn them into behaviour:
//
//   - The presentation derivers (ClassifyRole, ClassifyContext,
//     ClassifyTheme, ClassifyTabState, ResolveRel, AttachIcon, Derive) are
//     pure functions from attributes to classes and ARIA values.
//   - PressedController is a small state machine that keeps aria-pressed in
//     step with mouse and keyboard actuation of a button.
//
// # Rendering
//
// Hyperlink is the element definition. It embeds *Component[Props] and
// renders through templ:
//
//	link := hxlink.NewHyperlink()
//	link.Render(ctx, hxlink.Props{Href: "https://example.com", Target: "_blank"})
//
// The anchor gets variant-link, block and light classes, rel="noopener
// noreferrer" and the stepout icon.
//
// # Live Elements
//
// An Element binds a definition to a host node of a golang.org/x/net/html
// tree. Attribute changes re-render the host's content; input events go
// through Dispatch:
//
//	el, _ := link.NewElement(hxlink.Props{Role: hxlink.RoleButton},
//	    hxlink.WithAnchorCallback(onClick))
//	el.Dispatch(ctx, &hxlink.Event{Type: hxlink.EventKeyDown, KeyCode: hxlink.KeyCodeSpace})
//	// aria-pressed="true", default prevented
//
// A button or tab clicked with no callback bound logs a warning and returns
// ErrCallbackUnbound; integration mistakes are never silent.
//
// # Registration
//
// The Registry maps tags to definitions, upgrades host nodes found in parsed
// documents, and serves re-render requests:
//
//	reg := hxlink.NewRegistry(key)
//	reg.Define(hxlink.NewHyperlink())
//	http.Handle(hxlink.DefaultPrefix, reg.Handler())
//
// Rendered hosts carry hx-get wiring to their own re-render route with the
// attributes encoded in a signed token. Attribute changes are applied with
// attr.<name>=<value> and unset=<name> query parameters on top of it.
package hxlink
