package jwk

import "crypto/ed25519"

// OKPKeyParameters is the kty=OKP payload of RFC 8037 §2: a CFRG curve
// public point x and, for a private key, the secret scalar/seed d.
type OKPKeyParameters struct {
	Crv OKPCrv
	X   Base64Octets
	D   Base64Octets // nil for a public-only key
}

func (OKPKeyParameters) KeyType() KTY   { return KTYOKP }
func (OKPKeyParameters) isKeyMaterial() {}

func (k OKPKeyParameters) IsPrivate() bool { return len(k.D) > 0 }

func (k OKPKeyParameters) validate() error {
	if !k.Crv.valid() {
		return &JSONShapeError{Reason: "unknown crv " + string(k.Crv)}
	}
	if len(k.X) == 0 {
		return &JSONShapeError{Reason: "missing x"}
	}
	if k.Crv == OKPCrvEd25519 {
		if len(k.X) != ed25519.PublicKeySize {
			return &InvalidSizeError{Field: "x", Expected: ed25519.PublicKeySize, Actual: len(k.X)}
		}
		if k.D != nil && len(k.D) != ed25519.PrivateKeySize-ed25519.PublicKeySize {
			return &InvalidSizeError{Field: "d", Expected: ed25519.PrivateKeySize - ed25519.PublicKeySize, Actual: len(k.D)}
		}
	}
	if k.Crv == OKPCrvX25519 {
		if len(k.X) != 32 {
			return &InvalidSizeError{Field: "x", Expected: 32, Actual: len(k.X)}
		}
		if k.D != nil && len(k.D) != 32 {
			return &InvalidSizeError{Field: "d", Expected: 32, Actual: len(k.D)}
		}
	}
	return nil
}
