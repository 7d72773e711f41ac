package hxlink

import (
	"net/url"
	"strings"
	"testing"
)

func newTestComponent(t *testing.T) *Component[Props] {
	t.Helper()
	enc, err := NewEncoder([]byte("component-key"))
	if err != nil {
		t.Fatal(err)
	}
	c := New[Props](TagName)
	c.SetEncoder(enc)
	return c
}

func TestComponentDefaults(t *testing.T) {
	c := New[Props]("x-link")
	if c.Tag() != "x-link" {
		t.Errorf("Tag() = %q, want %q", c.Tag(), "x-link")
	}
	if c.Prefix() != "/_c/x-link" {
		t.Errorf("Prefix() = %q, want %q", c.Prefix(), "/_c/x-link")
	}
	if c.IsSensitive() {
		t.Error("IsSensitive() = true, want false")
	}
	if c.Sensitive(); !c.IsSensitive() {
		t.Error("IsSensitive() after Sensitive() = false")
	}
}

func TestComponentWithoutEncoder(t *testing.T) {
	c := New[Props](TagName)
	if _, err := c.Token(Props{}); err != ErrInvalidFormat {
		t.Errorf("Token() error = %v, want %v", err, ErrInvalidFormat)
	}
	var p Props
	if err := c.Decode("x.y", &p); err != ErrInvalidFormat {
		t.Errorf("Decode() error = %v, want %v", err, ErrInvalidFormat)
	}
	if got := c.RefreshURL(Props{}, nil); got != "/_c/ods-hyperlink/" {
		t.Errorf("RefreshURL() = %q, want bare path", got)
	}
}

func TestComponentSealedTokens(t *testing.T) {
	c := newTestComponent(t).Sensitive()
	token, err := c.Token(Props{Href: "/secret"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(token, ".") {
		t.Errorf("sealed token %q should not carry a signature part", token)
	}

	var p Props
	if err := c.Decode(token, &p); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if p.Href != "/secret" {
		t.Errorf("Href = %q, want %q", p.Href, "/secret")
	}

	tampered := []byte(token)
	if tampered[10] == 'A' {
		tampered[10] = 'B'
	} else {
		tampered[10] = 'A'
	}
	if err := c.Decode(string(tampered), &p); !IsDecryptionError(err) {
		t.Errorf("Decode(tampered) error = %v, want decryption error", err)
	}
}

func TestRefreshURL(t *testing.T) {
	c := newTestComponent(t)
	raw := c.RefreshURL(Props{Role: RoleButton}, map[string]string{"darktheme": ""})

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	if u.Path != "/_c/ods-hyperlink/" {
		t.Errorf("path = %q, want %q", u.Path, "/_c/ods-hyperlink/")
	}
	if u.Query().Get("p") == "" {
		t.Error("missing p parameter")
	}
	if _, ok := u.Query()["attr.darktheme"]; !ok {
		t.Error("missing attr.darktheme override")
	}
}

func TestRefreshAttrs(t *testing.T) {
	c := newTestComponent(t)
	attrs := c.Refresh(Props{Href: "/a"})

	get, _ := attrs["hx-get"].(string)
	if !strings.HasPrefix(get, "/_c/ods-hyperlink/?p=") {
		t.Errorf("hx-get = %q, want re-render route", get)
	}
	if attrs["hx-swap"] != "outerHTML" {
		t.Errorf("hx-swap = %v, want outerHTML", attrs["hx-swap"])
	}
	if attrs["hx-trigger"] != RefreshEvent {
		t.Errorf("hx-trigger = %v, want %q", attrs["hx-trigger"], RefreshEvent)
	}
}
