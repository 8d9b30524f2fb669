package jwk

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"io"
)

// KeyMaterialGenParam selects the kind and shape of key GenerateJWK/
// GenerateJWKFrom produces.
type KeyMaterialGenParam interface {
	generate(rng io.Reader) (KeyMaterial, error)
}

// ECGenParam generates an ECDSA keypair on curve(crv).
type ECGenParam struct{ Crv Crv }

// RSAGenParam generates an RSA keypair with public exponent 65537 and
// modulus size SizeBytes*8 bits.
type RSAGenParam struct{ SizeBytes int }

// OctGenParam draws N random bytes.
type OctGenParam struct{ N int }

// OKPGenParam generates an Ed25519 or X25519 keypair.
type OKPGenParam struct{ Crv OKPCrv }

// GenerateJWK returns a JWK wrapping freshly generated material, with every
// JWK metadata field absent (spec.md §4.E).
func GenerateJWK(param KeyMaterialGenParam) (JWK, error) {
	return GenerateJWKFrom(rand.Reader, param)
}

// GenerateJWKFrom is GenerateJWK with an explicit randomness source (the
// "externally supplied cryptographically-secure byte source" of spec.md §5).
func GenerateJWKFrom(rng io.Reader, param KeyMaterialGenParam) (JWK, error) {
	m, err := param.generate(rng)
	if err != nil {
		return JWK{}, err
	}
	return JWK{Material: m}, nil
}

func (p ECGenParam) generate(rng io.Reader) (KeyMaterial, error) {
	c := p.Crv.curve()
	if c == nil {
		return nil, &JSONShapeError{Reason: "unknown crv " + string(p.Crv)}
	}
	// Retry if keygen ever yields the point at infinity (spec.md §9):
	// negligible probability, but a key lacking (x,y) must never be emitted.
	for {
		key, err := ecdsa.GenerateKey(c, rng)
		if err != nil {
			return nil, &CryptoBackendError{Err: err}
		}
		if key.X.Sign() == 0 && key.Y.Sign() == 0 {
			continue
		}
		n := p.Crv.coordBytes()
		d := NewSizedBase64Integer(p.Crv.dBytes(), key.D)
		return ECKeyParameters{
			Crv: p.Crv,
			X:   NewSizedBase64Integer(n, key.X),
			Y:   NewSizedBase64Integer(n, key.Y),
			D:   &d,
		}, nil
	}
}

func (p RSAGenParam) generate(rng io.Reader) (KeyMaterial, error) {
	key, err := rsa.GenerateKey(rng, p.SizeBytes*8)
	if err != nil {
		return nil, &CryptoBackendError{Err: err}
	}
	key.Precompute()
	n := len(key.N.Bytes())
	opt := &RSAPrivateKeyOptionalParameters{
		P:  Base64Integer{V: key.Primes[0]},
		Q:  Base64Integer{V: key.Primes[1]},
		DP: Base64Integer{V: key.Precomputed.Dp},
		DQ: Base64Integer{V: key.Precomputed.Dq},
		QI: Base64Integer{V: key.Precomputed.Qinv},
	}
	return RSAKeyParameters{
		N: NewSizedBase64Integer(n, key.N),
		E: NewBase64Integer(int64(key.E)),
		Private: &RSAPrivateKeyParameters{
			D:        Base64Integer{V: key.D},
			Optional: opt, // never carries `oth`: spec.md §4.E forbids emitting multi-prime keys
		},
	}, nil
}

func (p OctGenParam) generate(rng io.Reader) (KeyMaterial, error) {
	b := make([]byte, p.N)
	if _, err := io.ReadFull(rng, b); err != nil {
		return nil, &CryptoBackendError{Err: err}
	}
	return OctKeyParameters{K: Base64Octets(b)}, nil
}

func (p OKPGenParam) generate(rng io.Reader) (KeyMaterial, error) {
	switch p.Crv {
	case OKPCrvEd25519:
		pub, priv, err := ed25519.GenerateKey(rng)
		if err != nil {
			return nil, &CryptoBackendError{Err: err}
		}
		seed := priv[:ed25519.SeedSize]
		return OKPKeyParameters{Crv: OKPCrvEd25519, X: Base64Octets(pub), D: Base64Octets(seed)}, nil
	case OKPCrvX25519:
		key, err := ecdh.X25519().GenerateKey(rng)
		if err != nil {
			return nil, &CryptoBackendError{Err: err}
		}
		return OKPKeyParameters{Crv: OKPCrvX25519, X: Base64Octets(key.PublicKey().Bytes()), D: Base64Octets(key.Bytes())}, nil
	default:
		return nil, &AlgorithmMismatchError{Reason: "cannot generate OKP crv " + string(p.Crv)}
	}
}
