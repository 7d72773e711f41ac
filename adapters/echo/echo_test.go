package hxlinkecho

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pthm/hxlink"
)

func TestMount(t *testing.T) {
	e := echo.New()
	reg := Mount(e)

	if reg == nil {
		t.Fatal("Mount returned nil registry")
	}
	if len(reg.Tags()) != 0 {
		t.Errorf("Tags() = %v, want none", reg.Tags())
	}
}

func TestMountWithDefinitions(t *testing.T) {
	e := echo.New()
	link := hxlink.NewHyperlink(hxlink.WithLogger(zerolog.Nop()))
	reg := Mount(e, WithKey(make([]byte, 32)), WithLogger(zerolog.Nop()), WithDefinitions(link))

	if tags := reg.Tags(); len(tags) != 1 || tags[0] != hxlink.TagName {
		t.Fatalf("Tags() = %v, want [%s]", tags, hxlink.TagName)
	}

	req := httptest.NewRequest(http.MethodGet, link.RefreshURL(hxlink.Props{Role: hxlink.RoleTab}, nil), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "variant-tab") {
		t.Errorf("body = %q, want rendered tab", rec.Body.String())
	}
}

func TestMountGroup(t *testing.T) {
	e := echo.New()
	var hits int
	g := e.Group("", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			hits++
			return next(c)
		}
	})
	reg := MountGroup(g, WithDefinitions(hxlink.NewHyperlink(hxlink.WithLogger(zerolog.Nop()))))

	if reg == nil {
		t.Fatal("MountGroup returned nil registry")
	}

	req := httptest.NewRequest(http.MethodGet, "/_c/ods-hyperlink/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if hits != 1 {
		t.Errorf("group middleware hits = %d, want 1", hits)
	}
}

func TestCSRFProtection(t *testing.T) {
	e := echo.New()
	Mount(e)

	// POST without HX-Request header should be forbidden
	req := httptest.NewRequest(http.MethodPost, "/_c/test/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for POST without HX-Request, got %d", rec.Code)
	}
}

func TestGETAllowed(t *testing.T) {
	e := echo.New()
	Mount(e)

	// GET requests don't need HX-Request header
	req := httptest.NewRequest(http.MethodGet, "/_c/test/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// Should not be 403 (will be 404 since no element is defined, but not forbidden)
	if rec.Code == http.StatusForbidden {
		t.Error("GET request should not require HX-Request header")
	}
}

func TestRender(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	link := hxlink.NewHyperlink(hxlink.WithLogger(zerolog.Nop()))
	if err := Render(c, link.Render(req.Context(), hxlink.Props{Href: "/a"})); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "variant-link") {
		t.Errorf("body = %q", rec.Body.String())
	}
}
