package hxlink

import "errors"

// Sentinel errors for element operations.
var (
	ErrCallbackUnbound  = errors.New("hxlink: event not bound to anchor")
	ErrUnknownTag       = errors.New("hxlink: unknown element tag")
	ErrInvalidFormat    = errors.New("hxlink: invalid attribute token")
	ErrSignatureInvalid = errors.New("hxlink: signature verification failed")
	ErrDecryptFailed    = errors.New("hxlink: attribute token decryption failed")
	ErrIconNotFound     = errors.New("hxlink: icon not found")
	ErrInvalidStyles    = errors.New("hxlink: invalid style tokens")
)

// IsDecryptionError checks if err is a decryption or signature error.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}

// IsConfigError reports whether err is an integration mistake on the host
// side rather than a runtime failure.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrCallbackUnbound) ||
		errors.Is(err, ErrUnknownTag) ||
		errors.Is(err, ErrIconNotFound) ||
		errors.Is(err, ErrInvalidStyles)
}

// IsFormatError reports whether err is a malformed attribute token.
func IsFormatError(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}
