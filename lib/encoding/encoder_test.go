package encoding

import (
	"errors"
	"strings"
	"testing"
)

// testAttrs implements Encodable and Decodable for testing.
type testAttrs struct {
	Href   string
	Role   string
	Inline bool
}

func (a testAttrs) HXEncode() map[string]any {
	return map[string]any{
		"href":   a.Href,
		"role":   a.Role,
		"inline": a.Inline,
	}
}

func (a *testAttrs) HXDecode(m map[string]any) error {
	if v, ok := m["href"].(string); ok {
		a.Href = v
	}
	if v, ok := m["role"].(string); ok {
		a.Role = v
	}
	if v, ok := m["inline"].(bool); ok {
		a.Inline = v
	}
	return nil
}

func newTestEncoder(t *testing.T, key string) *Encoder {
	t.Helper()
	enc, err := NewEncoder([]byte(key))
	if err != nil {
		t.Fatalf("NewEncoder(%q) error = %v", key, err)
	}
	return enc
}

func TestNewEncoder(t *testing.T) {
	for _, key := range []string{"short", "this-is-a-32-byte-key-for-aes!!!", strings.Repeat("k", 48)} {
		if _, err := NewEncoder([]byte(key)); err != nil {
			t.Errorf("NewEncoder(len %d) error = %v", len(key), err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		in   testAttrs
	}{
		{"signed link", Signed, testAttrs{Href: "https://example.com", Inline: true}},
		{"sealed button", Sealed, testAttrs{Role: "button"}},
		{"signed zero value", Signed, testAttrs{}},
	}

	enc := newTestEncoder(t, "test-key")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := enc.Encode(tt.in, tt.mode)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if token == "" {
				t.Fatal("Encode() returned empty token")
			}

			var out testAttrs
			if err := enc.Decode(token, tt.mode, &out); err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if out != tt.in {
				t.Errorf("Decode() = %+v, want %+v", out, tt.in)
			}
		})
	}
}

func TestSignedTokenShape(t *testing.T) {
	enc := newTestEncoder(t, "test-key")
	token, err := enc.Encode(testAttrs{Href: "/a"}, Signed)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if strings.Count(token, ".") != 1 {
		t.Errorf("signed token %q should contain exactly one separator", token)
	}
}

func TestTamperedSignature(t *testing.T) {
	enc := newTestEncoder(t, "test-key")
	token, err := enc.Encode(testAttrs{Href: "/safe"}, Signed)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	other, err := enc.Encode(testAttrs{Href: "/evil"}, Signed)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	payload, _, _ := strings.Cut(other, ".")
	_, sig, _ := strings.Cut(token, ".")

	var out testAttrs
	err = enc.Decode(payload+"."+sig, Signed, &out)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("Decode() error = %v, want %v", err, ErrSignatureInvalid)
	}
}

func TestTamperedCiphertext(t *testing.T) {
	enc := newTestEncoder(t, "test-key")
	token, err := enc.Encode(testAttrs{Role: "tab"}, Sealed)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	raw := []byte(token)
	if raw[len(raw)/2] == 'A' {
		raw[len(raw)/2] = 'B'
	} else {
		raw[len(raw)/2] = 'A'
	}

	var out testAttrs
	if err := enc.Decode(string(raw), Sealed, &out); err == nil {
		t.Error("Decode() of tampered ciphertext succeeded")
	}
}

func TestInvalidFormat(t *testing.T) {
	enc := newTestEncoder(t, "test-key")

	tests := []struct {
		name  string
		token string
		mode  Mode
	}{
		{"missing separator", "nodotinthistoken", Signed},
		{"bad payload base64", "!!!.AAAA", Signed},
		{"short sealed token", "AAAA", Sealed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out testAttrs
			err := enc.Decode(tt.token, tt.mode, &out)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Decode(%q) error = %v, want %v", tt.token, err, ErrInvalidFormat)
			}
		})
	}
}

func TestDifferentKeysCannotDecode(t *testing.T) {
	enc1 := newTestEncoder(t, "key-one")
	enc2 := newTestEncoder(t, "key-two")

	token, err := enc1.Encode(testAttrs{Href: "/x"}, Signed)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var out testAttrs
	if err := enc2.Decode(token, Signed, &out); !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("Decode() with other key error = %v, want %v", err, ErrSignatureInvalid)
	}
}

func TestNonEncodable(t *testing.T) {
	enc := newTestEncoder(t, "test-key")

	if _, err := enc.Encode(struct{}{}, Signed); !errors.Is(err, ErrNotEncodable) {
		t.Errorf("Encode(struct{}) error = %v, want %v", err, ErrNotEncodable)
	}

	token, _ := enc.Encode(testAttrs{}, Signed)
	var s struct{}
	if err := enc.Decode(token, Signed, &s); !errors.Is(err, ErrNotDecodable) {
		t.Errorf("Decode(into struct{}) error = %v, want %v", err, ErrNotDecodable)
	}
}
