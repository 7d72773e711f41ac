// Package encoding turns attribute snapshots into URL-safe tokens and back.
//
// Two modes are supported:
//   - Signed (default): msgpack + base64 + truncated HMAC, readable but tamper-proof
//   - Sealed: AES-256-GCM, opaque to the client
//
// Re-render URLs carry the full attribute set of an element, so the token is
// the only state the server needs to reproduce the markup.
package encoding

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Sentinel errors returned by Decode.
var (
	ErrInvalidFormat    = errors.New("encoding: invalid token format")
	ErrSignatureInvalid = errors.New("encoding: signature verification failed")
	ErrDecryptFailed    = errors.New("encoding: decryption failed")
	ErrNotEncodable     = errors.New("encoding: type does not implement Encodable")
	ErrNotDecodable     = errors.New("encoding: type does not implement Decodable")
)

// Mode selects how a token is protected.
type Mode uint8

const (
	// Signed tokens are visible to the client but cannot be altered.
	Signed Mode = iota
	// Sealed tokens are encrypted.
	Sealed
)

// sigLen is the number of HMAC bytes kept in a signed token.
const sigLen = 16

// Encodable is implemented by attribute sets that can flatten themselves.
type Encodable interface {
	HXEncode() map[string]any
}

// Decodable is implemented by attribute sets that can rebuild themselves.
type Decodable interface {
	HXDecode(map[string]any) error
}

// Encoder signs or seals attribute snapshots.
type Encoder struct {
	key []byte
	gcm cipher.AEAD
}

// NewEncoder creates an encoder. Keys shorter than 32 bytes are stretched
// with SHA-256.
func NewEncoder(key []byte) (*Encoder, error) {
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}

	block, err := aes.NewCipher(key[:32])
	if err != nil {
		return nil, fmt.Errorf("encoding: cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("encoding: gcm: %w", err)
	}

	return &Encoder{key: key, gcm: gcm}, nil
}

// Encode flattens v and protects it according to mode.
func (e *Encoder) Encode(v any, mode Mode) (string, error) {
	enc, ok := v.(Encodable)
	if !ok {
		return "", ErrNotEncodable
	}

	packed, err := msgpack.Marshal(enc.HXEncode())
	if err != nil {
		return "", fmt.Errorf("encoding: marshal: %w", err)
	}

	if mode == Sealed {
		return e.seal(packed)
	}
	return e.sign(packed), nil
}

// Decode verifies or opens token and feeds the result to v.
func (e *Encoder) Decode(token string, mode Mode, v any) error {
	dec, ok := v.(Decodable)
	if !ok {
		return ErrNotDecodable
	}

	var (
		packed []byte
		err    error
	)
	if mode == Sealed {
		packed, err = e.open(token)
	} else {
		packed, err = e.verify(token)
	}
	if err != nil {
		return err
	}

	var data map[string]any
	if err := msgpack.Unmarshal(packed, &data); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return dec.HXDecode(data)
}

func (e *Encoder) mac(data []byte) []byte {
	m := hmac.New(sha256.New, e.key)
	m.Write(data)
	return m.Sum(nil)[:sigLen]
}

// sign produces "<payload>.<signature>".
func (e *Encoder) sign(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data) + "." +
		base64.RawURLEncoding.EncodeToString(e.mac(data))
}

func (e *Encoder) verify(token string) ([]byte, error) {
	payload, sig, ok := strings.Cut(token, ".")
	if !ok {
		return nil, ErrInvalidFormat
	}

	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidFormat
	}
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	if !hmac.Equal(got, e.mac(data)) {
		return nil, ErrSignatureInvalid
	}
	return data, nil
}

func (e *Encoder) seal(data []byte) (string, error) {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("encoding: nonce: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(e.gcm.Seal(nonce, nonce, data, nil)), nil
}

func (e *Encoder) open(token string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidFormat
	}
	n := e.gcm.NonceSize()
	if len(raw) < n {
		return nil, ErrInvalidFormat
	}

	data, err := e.gcm.Open(nil, raw[:n], raw[n:], nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return data, nil
}
