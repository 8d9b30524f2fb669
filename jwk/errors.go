package jwk

import "fmt"

// KeyMismatchError reports that the requested operation cannot be performed
// with the supplied key material: the algorithm and key-kind combination is
// impossible (e.g. signing with a public-only key), independent of whether
// the algorithm itself exists.
type KeyMismatchError struct{ Reason string }

func (e *KeyMismatchError) Error() string { return "jwk: key mismatch: " + e.Reason }

// AlgorithmMismatchError reports that alg is not supported for this key
// material at all, for any reason other than KeyMismatchError/KeySizeTooSmallError.
type AlgorithmMismatchError struct{ Reason string }

func (e *AlgorithmMismatchError) Error() string { return "jwk: algorithm mismatch: " + e.Reason }

// KeySizeTooSmallError reports that a key is below the minimum strength
// required for the algorithm or by checkJWK's general floor.
type KeySizeTooSmallError struct {
	Have int // bits, for RSA moduli and symmetric keys alike — see Reason
	Want int
	Reason string
}

func (e *KeySizeTooSmallError) Error() string {
	return fmt.Sprintf("jwk: key too small: have %d, want >= %d (%s)", e.Have, e.Want, e.Reason)
}

// OtherPrimesNotSupportedError reports that an RSA private key carries a
// non-empty `oth` (multi-prime) array.
type OtherPrimesNotSupportedError struct{}

func (e *OtherPrimesNotSupportedError) Error() string {
	return "jwk: RSA keys with multi-prime (oth) components are not supported"
}

// InvalidSizeError reports that a fixed-width field did not decode to the
// width required for it (an EC x/y/d coordinate, or an OKP x/d value).
type InvalidSizeError struct {
	Field    string
	Expected int
	Actual   int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("jwk: invalid size for %q: expected %d bytes, got %d", e.Field, e.Expected, e.Actual)
}

// JSONDecodeError reports malformed JSON input.
type JSONDecodeError struct {
	Reason string
	Err    error
}

func (e *JSONDecodeError) Error() string {
	if e.Err != nil {
		return "jwk: json decode: " + e.Reason + ": " + e.Err.Error()
	}
	return "jwk: json decode: " + e.Reason
}

func (e *JSONDecodeError) Unwrap() error { return e.Err }

// JSONShapeError reports JSON that decoded fine but does not match the
// shape required of a JWK/KeyMaterial (missing kty, unknown kty, missing
// required field for the given kty, etc).
type JSONShapeError struct{ Reason string }

func (e *JSONShapeError) Error() string { return "jwk: invalid shape: " + e.Reason }

// CryptoBackendError wraps an error returned unmodified by the underlying
// cryptographic primitive (crypto/rsa, crypto/ecdsa, crypto/ed25519, ...).
type CryptoBackendError struct{ Err error }

func (e *CryptoBackendError) Error() string { return "jwk: crypto backend: " + e.Err.Error() }

func (e *CryptoBackendError) Unwrap() error { return e.Err }
