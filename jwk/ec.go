package jwk

import "math/big"

// ECKeyParameters is the kty=EC payload of RFC 7518 §6.2: a point (x, y) on
// crv and, for a private key, the scalar d. Widths of x, y and d are fixed
// by crv and checked on parse.
type ECKeyParameters struct {
	Crv Crv
	X, Y SizedBase64Integer
	D   *SizedBase64Integer // nil for a public-only key
}

func (ECKeyParameters) KeyType() KTY   { return KTYEC }
func (ECKeyParameters) isKeyMaterial() {}

// IsPrivate reports whether d is present.
func (k ECKeyParameters) IsPrivate() bool { return k.D != nil }

func (k ECKeyParameters) validate() error {
	if !k.Crv.valid() {
		return &JSONShapeError{Reason: "unknown crv " + string(k.Crv)}
	}
	n := k.Crv.coordBytes()
	if err := checkSize("x", n, k.X); err != nil {
		return err
	}
	if err := checkSize("y", n, k.Y); err != nil {
		return err
	}
	if k.D != nil {
		if err := checkSize("d", k.Crv.dBytes(), *k.D); err != nil {
			return err
		}
	}
	if !pointOnCurve(k.Crv, k.X.V, k.Y.V) {
		return &JSONShapeError{Reason: "point (x,y) is not on curve " + string(k.Crv)}
	}
	return nil
}

// pointOnCurve is the hardened check spec.md §9 recommends adding beyond
// the source's behaviour: reject an (x,y) that does not satisfy the curve
// equation, which width-checking alone cannot catch.
func pointOnCurve(crv Crv, x, y *big.Int) bool {
	c := crv.curve()
	if c == nil || x == nil || y == nil {
		return false
	}
	return c.IsOnCurve(x, y)
}
