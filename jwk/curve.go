package jwk

import "crypto/elliptic"

// Crv is the set of EC curves this library signs with: P-256, P-384, P-521.
type Crv string

const (
	CrvP256 Crv = "P-256"
	CrvP384 Crv = "P-384"
	CrvP521 Crv = "P-521"
)

func (c Crv) curve() elliptic.Curve {
	switch c {
	case CrvP256:
		return elliptic.P256()
	case CrvP384:
		return elliptic.P384()
	case CrvP521:
		return elliptic.P521()
	default:
		return nil
	}
}

// coordBytes is the big-endian byte width of an EC public coordinate (x, y)
// for crv. P-256 -> 32, P-384 -> 48, P-521 -> 66.
func (c Crv) coordBytes() int {
	switch c {
	case CrvP256:
		return 32
	case CrvP384:
		return 48
	case CrvP521:
		return 66
	default:
		return 0
	}
}

// dBytes is the big-endian byte width of the EC private scalar d for crv.
// Equal to coordBytes for every curve in this table (⌈log2(n)/8⌉ for the
// group order n happens to match the coordinate width for P-256/384/521).
func (c Crv) dBytes() int { return c.coordBytes() }

func (c Crv) valid() bool { return c.curve() != nil }

// OKPCrv is the set of CFRG Octet Key Pair curve tags this library parses.
// Only Ed25519 and X25519 are wired to a signing/key-agreement primitive;
// Ed448/X448 round-trip through JSON but fail AlgorithmMismatchError on use.
type OKPCrv string

const (
	OKPCrvEd25519 OKPCrv = "Ed25519"
	OKPCrvX25519  OKPCrv = "X25519"
	OKPCrvEd448   OKPCrv = "Ed448"
	OKPCrvX448    OKPCrv = "X448"
)

func (c OKPCrv) valid() bool {
	switch c {
	case OKPCrvEd25519, OKPCrvX25519, OKPCrvEd448, OKPCrvX448:
		return true
	default:
		return false
	}
}
