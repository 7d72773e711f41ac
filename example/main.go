package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pthm/hxlink"
)

type tab struct {
	id, title, body string
}

var tabs = []tab{
	{"overview", "Overview", "What the product does."},
	{"pricing", "Pricing", "What it costs."},
	{"support", "Support", "Where to get help."},
}

func main() {
	// Create registry with signing key (in production, use a real secret)
	key := []byte("example-key-must-be-32-bytes!!")
	reg := hxlink.NewRegistry(key)

	link := hxlink.NewHyperlink()
	reg.Define(link)

	// Create router
	mux := http.NewServeMux()

	// Re-render routes
	mux.Handle(hxlink.DefaultPrefix, reg.Handler())

	// Page routes
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		hxlink.Render(w, r, layout(link, tabs[0].id))
	})
	mux.HandleFunc("GET /tabs/{id}", func(w http.ResponseWriter, r *http.Request) {
		// Re-render the whole tab list so exactly one tab is active.
		hxlink.Render(w, r, tabList(link, r.PathValue("id")))
	})

	// Start server
	addr := ":8080"
	fmt.Printf("Starting server at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}

// tabProps wires one tab to re-render the whole list with itself active.
func tabProps(t tab, active string) hxlink.Props {
	state := hxlink.TabInactive
	if t.id == active {
		state = hxlink.TabActive
	}
	return hxlink.Props{
		Role:      hxlink.RoleTab,
		TabActive: state,
		Label:     t.title,
		OnClick: hxlink.Callback{
			URL:    "/tabs/" + t.id,
			Method: http.MethodGet,
			Target: "#tabs",
			Swap:   hxlink.SwapOuter,
		},
	}
}

func activeBody(active string) string {
	for _, t := range tabs {
		if t.id == active {
			return t.body
		}
	}
	return ""
}
