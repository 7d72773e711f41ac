package hxlink

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pthm/hxlink/lib/encoding"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	errs := []error{
		ErrCallbackUnbound,
		ErrUnknownTag,
		ErrInvalidFormat,
		ErrSignatureInvalid,
		ErrDecryptFailed,
		ErrIconNotFound,
		ErrInvalidStyles,
	}

	for i, err1 := range errs {
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}

func TestIsDecryptionError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrDecryptFailed", ErrDecryptFailed, true},
		{"ErrSignatureInvalid", ErrSignatureInvalid, true},
		{"wrapped ErrDecryptFailed", fmt.Errorf("wrapped: %w", ErrDecryptFailed), true},
		{"wrapped ErrSignatureInvalid", fmt.Errorf("wrapped: %w", ErrSignatureInvalid), true},
		{"ErrInvalidFormat", ErrInvalidFormat, false},
		{"ErrCallbackUnbound", ErrCallbackUnbound, false},
		{"other error", errors.New("other error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsDecryptionError(tt.err)
			if result != tt.expect {
				t.Errorf("IsDecryptionError(%v) = %v, want %v", tt.err, result, tt.expect)
			}
		})
	}
}

func TestIsConfigError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrCallbackUnbound", ErrCallbackUnbound, true},
		{"ErrUnknownTag", fmt.Errorf("%w: %q", ErrUnknownTag, "x-foo"), true},
		{"ErrIconNotFound", ErrIconNotFound, true},
		{"ErrInvalidStyles", ErrInvalidStyles, true},
		{"ErrDecryptFailed", ErrDecryptFailed, false},
		{"other error", errors.New("other error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsConfigError(tt.err)
			if result != tt.expect {
				t.Errorf("IsConfigError(%v) = %v, want %v", tt.err, result, tt.expect)
			}
		})
	}
}

func TestWrapEncodingError(t *testing.T) {
	other := errors.New("other")
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"format", encoding.ErrInvalidFormat, ErrInvalidFormat},
		{"wrapped format", fmt.Errorf("%w: eof", encoding.ErrInvalidFormat), ErrInvalidFormat},
		{"signature", encoding.ErrSignatureInvalid, ErrSignatureInvalid},
		{"decrypt", encoding.ErrDecryptFailed, ErrDecryptFailed},
		{"other passes through", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapEncodingError(tt.in)
			if !errors.Is(got, tt.want) && got != tt.want {
				t.Errorf("wrapEncodingError(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
