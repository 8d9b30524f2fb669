package jwk_test

import (
	"crypto"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/jwkcore/jwk/jwk"
	"github.com/stretchr/testify/require"
)

func jwkB64(p []byte) string { return base64.RawURLEncoding.EncodeToString(p) }

// rfc7638ExampleJWK is the literal 2048-bit RSA public key from RFC 7638
// §3.1, used to check the canonical-JSON thumbprint byte-for-byte.
const rfc7638ExampleJWK = `{
	"kty": "RSA",
	"n": "0vx7agoebGcQSuuPiLJXZptN9nndrQmbXEps2aiAFbWhM78LhWx4cbbfAAtVT86zwu1RK7aPFFxuhDR1L6tSoc_BJECPebWKRXjBZCiFV4n3oknjhMstn64tZ_2W-5JsGY4Hc5n9yBXArwl93lqt7_RN5w6Cf0h4QyQ5v-65YGjQR0_FDW2QvzqY368QQMicAtaSqzs8KJZgnYb9c7d0zgdAZHzu6qMQvRL5hajrn1n91CbOpbISD08qNLyrdkt-bFTWhAI4vMQFh6WeZu0fM4lFd2NcRwr3XPksINHaQ-G_xBniIqbw0Ls1jF44-csFCur-kEgU8awapJzKnqDKgw",
	"e": "AQAB"
}`

// TestThumbprint_RFC7638Vector covers concrete vector 1 of spec.md §8.
func TestThumbprint_RFC7638Vector(t *testing.T) {
	m, err := jwk.ParseKeyMaterial([]byte(rfc7638ExampleJWK))
	require.NoError(t, err)

	sum, err := jwk.Thumbprint(m, crypto.SHA256)
	require.NoError(t, err)

	require.Equal(t, "NzbLsXh8uDCcd-6MNwXF4W_7noWXFZAfHkxZsRGC9Xs", jwkB64(sum))
}

// TestThumbprint_IgnoresMetadata covers invariant 7: thumbprint depends only
// on the required subset, not on kid/use/alg/x5*.
func TestThumbprint_IgnoresMetadata(t *testing.T) {
	m, err := jwk.ParseKeyMaterial([]byte(rfc7638ExampleJWK))
	require.NoError(t, err)

	plain, err := jwk.Thumbprint(m, crypto.SHA256)
	require.NoError(t, err)

	j := jwk.JWK{Material: m}
	j = j.WithKID("some-key").WithUse(jwk.UseSig).WithAlg("RS256")
	withMeta, err := jwk.Thumbprint(j.Material, crypto.SHA256)
	require.NoError(t, err)

	require.Equal(t, plain, withMeta)
}

func TestThumbprint_EveryKty(t *testing.T) {
	for _, param := range []jwk.KeyMaterialGenParam{
		jwk.ECGenParam{Crv: jwk.CrvP256},
		jwk.RSAGenParam{SizeBytes: 256},
		jwk.OctGenParam{N: 32},
		jwk.OKPGenParam{Crv: jwk.OKPCrvEd25519},
	} {
		j, err := jwk.GenerateJWKFrom(rand.Reader, param)
		require.NoError(t, err)
		sum, err := jwk.Thumbprint(j.Material, crypto.SHA256)
		require.NoError(t, err)
		require.Len(t, sum, crypto.SHA256.Size())
	}
}
