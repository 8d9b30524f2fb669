package jwk_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"testing"

	"github.com/jwkcore/jwk/jwk"
	"github.com/stretchr/testify/require"
)

// TestSign_HS256Vector covers concrete vector 2 of spec.md §8.
func TestSign_HS256Vector(t *testing.T) {
	key := []byte("jdoe-secret-key-that-is-at-least-32-bytes!")
	msg := []byte("hello")

	oct := jwk.OctKeyParameters{K: jwk.Base64Octets(key)}
	sig, err := jwk.Sign(jwk.AlgHS256, oct, msg)
	require.NoError(t, err)

	mac := hmac.New(sha256.New, key)
	mac.Write(msg)
	require.Equal(t, mac.Sum(nil), sig)
}

// TestSign_ES256Size covers concrete vector 3 of spec.md §8.
func TestSign_ES256Size(t *testing.T) {
	j, err := jwk.GenerateJWK(jwk.ECGenParam{Crv: jwk.CrvP256})
	require.NoError(t, err)

	sig, err := jwk.Sign(jwk.AlgES256, j.Material, []byte("any message"))
	require.NoError(t, err)
	require.Len(t, sig, 64)
}

// TestSign_UndersizedRSARejected covers concrete vector 4 of spec.md §8.
func TestSign_UndersizedRSARejected(t *testing.T) {
	j, err := jwk.GenerateJWK(jwk.RSAGenParam{SizeBytes: 128})
	require.NoError(t, err)

	_, err = jwk.Sign(jwk.AlgRS256, j.Material, []byte("x"))
	var small *jwk.KeySizeTooSmallError
	require.ErrorAs(t, err, &small)

	_, err = jwk.BestJWSAlg(j.Material)
	require.ErrorAs(t, err, &small)
}

// TestSignVerify_CrossPrimitiveConsistency covers invariant 3 of spec.md §8:
// every (alg, kind) pair in the dispatch table signs and verifies cleanly.
func TestSignVerify_CrossPrimitiveConsistency(t *testing.T) {
	msg := []byte("cross primitive message")

	octKey, err := jwk.GenerateJWK(jwk.OctGenParam{N: 64})
	require.NoError(t, err)
	rsaKey, err := jwk.GenerateJWK(jwk.RSAGenParam{SizeBytes: 256})
	require.NoError(t, err)
	ecKey256, err := jwk.GenerateJWK(jwk.ECGenParam{Crv: jwk.CrvP256})
	require.NoError(t, err)
	ecKey384, err := jwk.GenerateJWK(jwk.ECGenParam{Crv: jwk.CrvP384})
	require.NoError(t, err)
	ecKey521, err := jwk.GenerateJWK(jwk.ECGenParam{Crv: jwk.CrvP521})
	require.NoError(t, err)
	okpKey, err := jwk.GenerateJWK(jwk.OKPGenParam{Crv: jwk.OKPCrvEd25519})
	require.NoError(t, err)

	for _, tc := range []struct {
		name string
		alg  jwk.JWSAlg
		key  jwk.JWK
	}{
		{"HS256", jwk.AlgHS256, octKey},
		{"HS384", jwk.AlgHS384, octKey},
		{"HS512", jwk.AlgHS512, octKey},
		{"RS256", jwk.AlgRS256, rsaKey},
		{"RS384", jwk.AlgRS384, rsaKey},
		{"RS512", jwk.AlgRS512, rsaKey},
		{"PS256", jwk.AlgPS256, rsaKey},
		{"PS384", jwk.AlgPS384, rsaKey},
		{"PS512", jwk.AlgPS512, rsaKey},
		{"ES256", jwk.AlgES256, ecKey256},
		{"ES384", jwk.AlgES384, ecKey384},
		{"ES512", jwk.AlgES512, ecKey521},
		{"EdDSA", jwk.AlgEdDSA, okpKey},
		{"none", jwk.AlgNone, octKey},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sig, err := jwk.Sign(tc.alg, tc.key.Material, msg)
			require.NoError(t, err)

			pub, ok := jwk.AsPublicKey(tc.key.Material)
			if !ok {
				pub = tc.key.Material // oct has no public projection
			}
			ok, err = jwk.Verify(tc.alg, pub, msg, sig)
			require.NoError(t, err)
			require.True(t, ok)
		})
	}
}

// TestVerify_NegativeSignature covers invariant 4: a corrupted signature
// verifies false, never an error.
func TestVerify_NegativeSignature(t *testing.T) {
	j, err := jwk.GenerateJWK(jwk.ECGenParam{Crv: jwk.CrvP256})
	require.NoError(t, err)
	msg := []byte("do not tamper")

	sig, err := jwk.Sign(jwk.AlgES256, j.Material, msg)
	require.NoError(t, err)
	sig[0] ^= 0x01

	pub, ok := jwk.AsPublicKey(j.Material)
	require.True(t, ok)
	valid, err := jwk.Verify(jwk.AlgES256, pub, msg, sig)
	require.NoError(t, err)
	require.False(t, valid)
}

// TestVerify_AlgorithmConfusionRejected covers invariant 8 and concrete
// scenario in spec.md §8: HS256 against an RSA public key interpreted as
// oct must fail with AlgorithmMismatch, not silently succeed.
func TestVerify_AlgorithmConfusionRejected(t *testing.T) {
	j, err := jwk.GenerateJWK(jwk.RSAGenParam{SizeBytes: 256})
	require.NoError(t, err)
	pub, ok := jwk.AsPublicKey(j.Material)
	require.True(t, ok)

	_, err = jwk.Verify(jwk.AlgHS256, pub, []byte("hello"), []byte("forged-mac"))
	var mismatch *jwk.AlgorithmMismatchError
	require.ErrorAs(t, err, &mismatch)
}

// TestSign_OthRejected covers concrete vector 6 of spec.md §8.
func TestSign_OthRejected(t *testing.T) {
	j, err := jwk.GenerateJWK(jwk.RSAGenParam{SizeBytes: 256})
	require.NoError(t, err)
	rk := j.Material.(jwk.RSAKeyParameters)
	rk.Private.Optional.Oth = []jwk.RSAPrivateKeyOthElem{{
		R: jwk.NewBase64Integer(3), D: jwk.NewBase64Integer(3), T: jwk.NewBase64Integer(3),
	}}

	_, err = jwk.Sign(jwk.AlgRS256, rk, []byte("x"))
	var othErr *jwk.OtherPrimesNotSupportedError
	require.ErrorAs(t, err, &othErr)
}

// TestSign_CRTAbsentRSAKey covers the spec.md §9 open question: a private
// RSA key carrying d but no p,q,dp,dq,qi must still sign, and the signature
// must verify against the key's own public projection.
func TestSign_CRTAbsentRSAKey(t *testing.T) {
	j, err := jwk.GenerateJWK(jwk.RSAGenParam{SizeBytes: 256})
	require.NoError(t, err)
	rk := j.Material.(jwk.RSAKeyParameters)
	rk.Private = &jwk.RSAPrivateKeyParameters{D: rk.Private.D}

	sig, err := jwk.Sign(jwk.AlgRS256, rk, []byte("no crt here"))
	require.NoError(t, err)

	pub, ok := jwk.AsPublicKey(rk)
	require.True(t, ok)
	valid, err := jwk.Verify(jwk.AlgRS256, pub, []byte("no crt here"), sig)
	require.NoError(t, err)
	require.True(t, valid)
}

func TestGenerateJWKFrom_UsesSuppliedRandomness(t *testing.T) {
	seed := bytes.Repeat([]byte{0xab}, 32)
	j, err := jwk.GenerateJWKFrom(bytes.NewReader(seed), jwk.OctGenParam{N: 32})
	require.NoError(t, err)
	oct := j.Material.(jwk.OctKeyParameters)
	require.Len(t, oct.K, 32)
	require.Equal(t, jwk.Base64Octets(seed), oct.K)
}
