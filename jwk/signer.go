package jwk

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha512"
	"crypto/subtle"
	"math/big"
)

// minRSAModulusBits is 2^2040's bit length, the floor spec.md §4.F and §8
// invariant 5 require for RS*/PS* signing and for CheckJWK.
const minRSAModulusBits = 2041

// minOctKeyBytes is CheckJWK's general symmetric floor (256 bits).
const minOctKeyBytes = 32

// Sign produces the JWS signature bytes for alg over msg using material,
// per the table in spec.md §4.F. Signing requires the private component;
// its absence fails KeyMismatchError.
func Sign(alg JWSAlg, material KeyMaterial, msg []byte) ([]byte, error) {
	switch alg {
	case AlgNone:
		return []byte{}, nil
	case AlgHS256, AlgHS384, AlgHS512:
		oct, ok := material.(OctKeyParameters)
		if !ok {
			return nil, &AlgorithmMismatchError{Reason: string(alg) + " requires an oct key, got " + string(material.KeyType())}
		}
		h := hmacHash(alg)
		if len(oct.K) < h.Size() {
			return nil, &KeySizeTooSmallError{Have: len(oct.K) * 8, Want: h.Size() * 8, Reason: string(alg) + " HMAC key"}
		}
		return hmacSign(h, oct.K, msg), nil
	case AlgRS256, AlgRS384, AlgRS512, AlgPS256, AlgPS384, AlgPS512:
		rsaKey, err := rsaPrivateFor(alg, material)
		if err != nil {
			return nil, err
		}
		h := rsaHash(alg)
		digest := digestOf(h, msg)
		var sig []byte
		if isPSS(alg) {
			sig, err = rsa.SignPSS(rand.Reader, rsaKey, h, digest, &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash, Hash: h})
		} else {
			sig, err = rsa.SignPKCS1v15(rand.Reader, rsaKey, h, digest)
		}
		if err != nil {
			return nil, &CryptoBackendError{Err: err}
		}
		return sig, nil
	case AlgES256, AlgES384, AlgES512:
		ec, ok := material.(ECKeyParameters)
		if !ok {
			return nil, &AlgorithmMismatchError{Reason: string(alg) + " requires an EC key, got " + string(material.KeyType())}
		}
		if err := requireECCurve(alg, ec.Crv); err != nil {
			return nil, err
		}
		if !ec.IsPrivate() {
			return nil, &KeyMismatchError{Reason: "signing requires an EC private key"}
		}
		key := &ecdsa.PrivateKey{
			PublicKey: ecdsa.PublicKey{Curve: ec.Crv.curve(), X: ec.X.V, Y: ec.Y.V},
			D:         ec.D.V,
		}
		digest := digestOf(ecdsaHash(alg), msg)
		r, s, err := ecdsa.Sign(rand.Reader, key, digest)
		if err != nil {
			return nil, &CryptoBackendError{Err: err}
		}
		n := ec.Crv.coordBytes()
		sig := make([]byte, 2*n)
		r.FillBytes(sig[:n])
		s.FillBytes(sig[n:])
		return sig, nil
	case AlgEdDSA:
		okp, ok := material.(OKPKeyParameters)
		if !ok || okp.Crv != OKPCrvEd25519 {
			return nil, &AlgorithmMismatchError{Reason: "EdDSA requires an OKP Ed25519 key"}
		}
		if !okp.IsPrivate() {
			return nil, &KeyMismatchError{Reason: "signing requires an OKP private key"}
		}
		priv := ed25519.NewKeyFromSeed(okp.D)
		return ed25519.Sign(priv, msg), nil
	default:
		return nil, &AlgorithmMismatchError{Reason: "unknown alg " + string(alg)}
	}
}

// Verify checks sig against msg under alg using material's public
// component. A genuinely mismatched signature returns (false, nil), never
// an error (spec.md §8 invariant 4); a dispatch-level failure (unknown alg,
// wrong key kind, undersized key, multi-prime RSA) returns (false, err).
func Verify(alg JWSAlg, material KeyMaterial, msg, sig []byte) (bool, error) {
	switch alg {
	case AlgNone:
		return len(sig) == 0, nil
	case AlgHS256, AlgHS384, AlgHS512:
		oct, ok := material.(OctKeyParameters)
		if !ok {
			return false, &AlgorithmMismatchError{Reason: string(alg) + " requires an oct key, got " + string(material.KeyType())}
		}
		h := hmacHash(alg)
		if len(oct.K) < h.Size() {
			return false, &KeySizeTooSmallError{Have: len(oct.K) * 8, Want: h.Size() * 8, Reason: string(alg) + " HMAC key"}
		}
		want := hmacSign(h, oct.K, msg)
		return subtle.ConstantTimeCompare(want, sig) == 1, nil
	case AlgRS256, AlgRS384, AlgRS512, AlgPS256, AlgPS384, AlgPS512:
		pub, err := rsaPublicFor(alg, material)
		if err != nil {
			return false, err
		}
		h := rsaHash(alg)
		digest := digestOf(h, msg)
		if isPSS(alg) {
			err = rsa.VerifyPSS(pub, h, digest, sig, &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthAuto, Hash: h})
		} else {
			err = rsa.VerifyPKCS1v15(pub, h, digest, sig)
		}
		return err == nil, nil
	case AlgES256, AlgES384, AlgES512:
		ec, ok := material.(ECKeyParameters)
		if !ok {
			return false, &AlgorithmMismatchError{Reason: string(alg) + " requires an EC key, got " + string(material.KeyType())}
		}
		if err := requireECCurve(alg, ec.Crv); err != nil {
			return false, err
		}
		n := ec.Crv.coordBytes()
		if len(sig) != 2*n {
			return false, nil
		}
		r := new(big.Int).SetBytes(sig[:n])
		s := new(big.Int).SetBytes(sig[n:])
		pub := &ecdsa.PublicKey{Curve: ec.Crv.curve(), X: ec.X.V, Y: ec.Y.V}
		digest := digestOf(ecdsaHash(alg), msg)
		return ecdsa.Verify(pub, digest, r, s), nil
	case AlgEdDSA:
		okp, ok := material.(OKPKeyParameters)
		if !ok || okp.Crv != OKPCrvEd25519 {
			return false, &AlgorithmMismatchError{Reason: "EdDSA requires an OKP Ed25519 key"}
		}
		if len(okp.X) != ed25519.PublicKeySize {
			return false, &InvalidSizeError{Field: "x", Expected: ed25519.PublicKeySize, Actual: len(okp.X)}
		}
		return ed25519.Verify(ed25519.PublicKey(okp.X), msg, sig), nil
	default:
		return false, &AlgorithmMismatchError{Reason: "unknown alg " + string(alg)}
	}
}

func rsaPrivateFor(alg JWSAlg, material KeyMaterial) (*rsa.PrivateKey, error) {
	rk, ok := material.(RSAKeyParameters)
	if !ok {
		return nil, &AlgorithmMismatchError{Reason: string(alg) + " requires an RSA key, got " + string(material.KeyType())}
	}
	if !rk.IsPrivate() {
		return nil, &KeyMismatchError{Reason: "signing requires an RSA private key"}
	}
	if rk.hasOth() {
		return nil, &OtherPrimesNotSupportedError{}
	}
	if rk.modulusBits() < minRSAModulusBits {
		return nil, &KeySizeTooSmallError{Have: rk.modulusBits(), Want: minRSAModulusBits, Reason: "RSA modulus"}
	}
	return rsaPrivateKeyFrom(rk), nil
}

func rsaPublicFor(alg JWSAlg, material KeyMaterial) (*rsa.PublicKey, error) {
	rk, ok := material.(RSAKeyParameters)
	if !ok {
		return nil, &AlgorithmMismatchError{Reason: string(alg) + " requires an RSA key, got " + string(material.KeyType())}
	}
	if rk.hasOth() {
		return nil, &OtherPrimesNotSupportedError{}
	}
	if rk.modulusBits() < minRSAModulusBits {
		return nil, &KeySizeTooSmallError{Have: rk.modulusBits(), Want: minRSAModulusBits, Reason: "RSA modulus"}
	}
	return &rsa.PublicKey{N: rk.N.V, E: int(rk.E.V.Int64())}, nil
}

// rsaPrivateKeyFrom builds an *rsa.PrivateKey from parsed JWK fields. Per
// spec.md §9's open question, a private key with d but no CRT parameters is
// accepted: leaving Primes nil forces crypto/rsa down its non-CRT exponent
// path (m^d mod n) instead of attempting a two-prime CRT reconstruction,
// which is the only shape that is actually correct for a key carrying no
// factorization at all.
func rsaPrivateKeyFrom(rk RSAKeyParameters) *rsa.PrivateKey {
	key := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{N: rk.N.V, E: int(rk.E.V.Int64())},
		D:         rk.Private.D.V,
	}
	if opt := rk.Private.Optional; opt != nil && opt.P.V != nil {
		key.Primes = []*big.Int{opt.P.V, opt.Q.V}
		key.Precomputed = rsa.PrecomputedValues{Dp: opt.DP.V, Dq: opt.DQ.V, Qinv: opt.QI.V}
	}
	return key
}

func requireECCurve(alg JWSAlg, crv Crv) error {
	want := map[JWSAlg]Crv{AlgES256: CrvP256, AlgES384: CrvP384, AlgES512: CrvP521}[alg]
	if crv != want {
		return &AlgorithmMismatchError{Reason: string(alg) + " requires curve " + string(want) + ", got " + string(crv)}
	}
	return nil
}

func hmacHash(alg JWSAlg) crypto.Hash {
	return map[JWSAlg]crypto.Hash{AlgHS256: crypto.SHA256, AlgHS384: crypto.SHA384, AlgHS512: crypto.SHA512}[alg]
}

func rsaHash(alg JWSAlg) crypto.Hash {
	return map[JWSAlg]crypto.Hash{
		AlgRS256: crypto.SHA256, AlgRS384: crypto.SHA384, AlgRS512: crypto.SHA512,
		AlgPS256: crypto.SHA256, AlgPS384: crypto.SHA384, AlgPS512: crypto.SHA512,
	}[alg]
}

func ecdsaHash(alg JWSAlg) crypto.Hash {
	return map[JWSAlg]crypto.Hash{AlgES256: crypto.SHA256, AlgES384: crypto.SHA384, AlgES512: crypto.SHA512}[alg]
}

func isPSS(alg JWSAlg) bool {
	switch alg {
	case AlgPS256, AlgPS384, AlgPS512:
		return true
	default:
		return false
	}
}

func digestOf(h crypto.Hash, msg []byte) []byte {
	hh := h.New()
	hh.Write(msg)
	return hh.Sum(nil)
}

func hmacSign(h crypto.Hash, key, msg []byte) []byte {
	mac := hmac.New(h.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

// CheckJWK applies the weakest acceptable-key rule usable across any JOSE
// algorithm (spec.md §4.F): RSA n >= 2^2040, Oct |k| >= 32 bytes, EC and
// OKP always accepted.
func CheckJWK(material KeyMaterial) error {
	switch k := material.(type) {
	case RSAKeyParameters:
		if k.modulusBits() < minRSAModulusBits {
			return &KeySizeTooSmallError{Have: k.modulusBits(), Want: minRSAModulusBits, Reason: "RSA modulus"}
		}
		return nil
	case OctKeyParameters:
		if len(k.K) < minOctKeyBytes {
			return &KeySizeTooSmallError{Have: len(k.K) * 8, Want: minOctKeyBytes * 8, Reason: "oct key"}
		}
		return nil
	default:
		return nil
	}
}

// BestJWSAlg picks the strongest algorithm material admits, ignoring any
// alg field carried by the caller's JWK (spec.md §4.F).
func BestJWSAlg(material KeyMaterial) (JWSAlg, error) {
	switch k := material.(type) {
	case ECKeyParameters:
		switch k.Crv {
		case CrvP256:
			return AlgES256, nil
		case CrvP384:
			return AlgES384, nil
		case CrvP521:
			return AlgES512, nil
		default:
			return "", &JSONShapeError{Reason: "unknown crv " + string(k.Crv)}
		}
	case RSAKeyParameters:
		if k.modulusBits() < minRSAModulusBits {
			return "", &KeySizeTooSmallError{Have: k.modulusBits(), Want: minRSAModulusBits, Reason: "RSA modulus"}
		}
		return AlgPS512, nil
	case OctKeyParameters:
		n := len(k.K)
		if n < minOctKeyBytes {
			return "", &KeySizeTooSmallError{Have: n * 8, Want: minOctKeyBytes * 8, Reason: "oct key"}
		}
		switch {
		case n >= sha512.Size:
			return AlgHS512, nil
		case n >= sha512.Size384:
			return AlgHS384, nil
		default:
			return AlgHS256, nil
		}
	case OKPKeyParameters:
		switch k.Crv {
		case OKPCrvEd25519:
			return AlgEdDSA, nil
		case OKPCrvX25519:
			return "", &KeyMismatchError{Reason: "cannot sign with ECDH key"}
		default:
			return "", &AlgorithmMismatchError{Reason: "unsupported OKP crv " + string(k.Crv)}
		}
	default:
		return "", &JSONShapeError{Reason: "unknown KeyMaterial implementation"}
	}
}
