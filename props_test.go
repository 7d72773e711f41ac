package hxlink

import (
	"net/http"
	"reflect"
	"testing"

	"golang.org/x/net/html"
)

func TestParseTabState(t *testing.T) {
	tests := []struct {
		in   string
		want TabState
	}{
		{"true", TabActive},
		{"false", TabInactive},
		{"", TabUnset},
		{"True", TabUnset},
		{"on", TabUnset},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseTabState(tt.in)
			if got != tt.want {
				t.Errorf("ParseTabState(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.Active() != (tt.want == TabActive) {
				t.Errorf("Active() = %v", got.Active())
			}
		})
	}
}

func TestPropsFromAttributes(t *testing.T) {
	attrs := []html.Attribute{
		{Key: "href", Val: "/docs"},
		{Key: "ROLE", Val: "tab"},
		{Key: "target", Val: "_self"},
		{Key: "rel", Val: "author"},
		{Key: "download", Val: ""},
		{Key: "inline", Val: "false"},
		{Key: "darktheme", Val: ""},
		{Key: "tabisactive", Val: "true"},
		{Key: "data-x", Val: "ignored"},
		{Namespace: "xlink", Key: "href", Val: "ignored"},
	}

	got := PropsFromAttributes(attrs)
	want := Props{
		Href:      "/docs",
		Role:      RoleTab,
		Target:    "_self",
		Rel:       "author",
		Download:  true,
		Inline:    true,
		DarkTheme: true,
		TabActive: TabActive,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PropsFromAttributes() = %+v, want %+v", got, want)
	}
}

func TestPropsAttributesRoundTrip(t *testing.T) {
	props := []Props{
		{},
		{Href: "https://example.com", Target: TargetBlank},
		{Role: RoleButton, Inline: true, DarkTheme: true},
		{Role: RoleTab, TabActive: TabInactive, Download: true, Rel: "next"},
	}

	for _, p := range props {
		got := PropsFromAttributes(p.Attributes())
		if !reflect.DeepEqual(got, p) {
			t.Errorf("PropsFromAttributes(Attributes()) = %+v, want %+v", got, p)
		}
	}
}

func TestPropsRemoveAttribute(t *testing.T) {
	p := Props{Href: "/a", Role: RoleButton, Target: "_blank", Rel: "x", Download: true, Inline: true, DarkTheme: true, TabActive: TabActive}
	for _, name := range []string{"href", "role", "target", "rel", "download", "INLINE", "darktheme", "tabisactive"} {
		p.RemoveAttribute(name)
	}
	if !reflect.DeepEqual(p, Props{}) {
		t.Errorf("after removing everything props = %+v, want zero", p)
	}
}

func TestPropsCodec(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatal(err)
	}
	comp := New[Props](TagName)
	comp.SetEncoder(enc)

	in := Props{
		Href:      "https://example.com",
		Role:      RoleTab,
		Target:    TargetBlank,
		Rel:       "opener",
		Download:  true,
		DarkTheme: true,
		TabActive: TabInactive,
		Label:     "Docs",
		OnClick:   Callback{URL: "/tabs/docs", Method: http.MethodGet, Target: "#panel", Swap: SwapInner},
	}

	token, err := comp.Token(in)
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}

	var out Props
	if err := comp.Decode(token, &out); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("Decode(Token()) = %+v, want %+v", out, in)
	}
}
