package jwk

import "math/big"

// RSAPrivateKeyOthElem is one element of the `oth` (Other Primes Info)
// array, RFC 7518 §6.3.2.7. This library never signs with a key carrying
// `oth` (spec.md Non-goals: no RSA multi-prime support) but parses and
// round-trips it so OtherPrimesNotSupportedError can be raised deliberately
// at the operation that cannot proceed, rather than at parse time.
type RSAPrivateKeyOthElem struct {
	R, D, T Base64Integer
}

// RSAPrivateKeyOptionalParameters holds the CRT parameters of RFC 7518
// §6.3.2.3-6.3.2.7. Per spec.md §4.B invariant, either all of
// {p,q,dp,dq,qi} are present together or none are.
type RSAPrivateKeyOptionalParameters struct {
	P, Q, DP, DQ, QI Base64Integer
	Oth              []RSAPrivateKeyOthElem // nil unless non-empty in JSON
}

// RSAPrivateKeyParameters is the private portion of an RSA JWK: the base
// private exponent d, and optionally CRT material.
type RSAPrivateKeyParameters struct {
	D        Base64Integer
	Optional *RSAPrivateKeyOptionalParameters
}

// RSAKeyParameters is the kty=RSA payload of RFC 7518 §6.3.
type RSAKeyParameters struct {
	N SizedBase64Integer
	E Base64Integer
	Private *RSAPrivateKeyParameters // nil for a public-only key
}

func (RSAKeyParameters) KeyType() KTY   { return KTYRSA }
func (RSAKeyParameters) isKeyMaterial() {}

func (k RSAKeyParameters) IsPrivate() bool { return k.Private != nil }

// hasOth reports whether this key's private section carries a non-empty
// `oth` (multi-prime) array.
func (k RSAKeyParameters) hasOth() bool {
	return k.Private != nil && k.Private.Optional != nil && len(k.Private.Optional.Oth) > 0
}

// modulusBits is the bit length of n, used by the KeySizeTooSmallError gate.
func (k RSAKeyParameters) modulusBits() int {
	if k.N.V == nil {
		return 0
	}
	return k.N.V.BitLen()
}

func (k RSAKeyParameters) validate() error {
	if k.N.V == nil || k.N.V.Sign() <= 0 {
		return &JSONShapeError{Reason: "missing or non-positive n"}
	}
	if k.E.V == nil || k.E.V.Sign() <= 0 {
		return &JSONShapeError{Reason: "missing or non-positive e"}
	}
	// spec.md §9 hardening: reject e that is not odd, or is 1.
	if k.E.V.Bit(0) == 0 {
		return &JSONShapeError{Reason: "e must be odd"}
	}
	if k.E.V.Cmp(big.NewInt(1)) == 0 {
		return &JSONShapeError{Reason: "e must not be 1"}
	}
	if k.Private != nil && (k.Private.D.V == nil || k.Private.D.V.Sign() <= 0) {
		return &JSONShapeError{Reason: "missing or non-positive d"}
	}
	return nil
}
