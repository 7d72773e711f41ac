package tokens

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestDefaultCoversDerivedClasses(t *testing.T) {
	selectors := strings.Join(Default().Selectors(), "\n")
	for _, class := range []string{".variant-link", ".variant-button", ".variant-tab", ".inline", ".block", ".light", ".dark", ".active"} {
		if !strings.Contains(selectors, class) {
			t.Errorf("Default() has no selector for %s", class)
		}
	}
}

func TestStyleTag(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().StyleTag().Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<style>") || !strings.HasSuffix(out, "</style>") {
		t.Errorf("StyleTag() = %q, want <style> wrapper", out)
	}
	if strings.Count(out, "</style>") != 1 {
		t.Errorf("StyleTag() contains an early closing tag: %q", out)
	}
}

func TestExtend(t *testing.T) {
	base := Default()
	ext, err := base.Extend(`.brand { color: red; }`)
	if err != nil {
		t.Fatalf("Extend() error = %v", err)
	}
	if got, want := len(ext.Rules()), len(base.Rules())+1; got != want {
		t.Errorf("len(Rules()) = %d, want %d", got, want)
	}
	if len(base.Rules()) == len(ext.Rules()) {
		t.Error("Extend() mutated the base sheet")
	}
}

func TestDeclarations(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<a class="variant-button block light" aria-pressed="true">x</a>`))
	if err != nil {
		t.Fatal(err)
	}
	var anchor *html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			anchor = n
			return
		}
		for c := n.FirstChild; c != nil && anchor == nil; c = c.NextSibling {
			find(c)
		}
	}
	find(doc)

	decls := Default().Declarations(doc, anchor)
	if decls["transform"] != "scale(0.98)" {
		t.Errorf("pressed button transform = %q, want scale(0.98)", decls["transform"])
	}
	if decls["display"] != "inline-block" {
		t.Errorf("display = %q, want inline-block", decls["display"])
	}
	if decls["color"] != "#0074c8" {
		t.Errorf("color = %q, want #0074c8", decls["color"])
	}
}
