package jwk_test

import (
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/jwkcore/jwk/jwk"
	"github.com/stretchr/testify/require"
)

// TestParseEmit_RoundTrip covers invariant 1 of spec.md §8: parse(emit(k)) ≡ k
// for every kty, modulo field ordering.
func TestParseEmit_RoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name  string
		param jwk.KeyMaterialGenParam
	}{
		{"ec-p256", jwk.ECGenParam{Crv: jwk.CrvP256}},
		{"ec-p384", jwk.ECGenParam{Crv: jwk.CrvP384}},
		{"ec-p521", jwk.ECGenParam{Crv: jwk.CrvP521}},
		{"rsa-2048", jwk.RSAGenParam{SizeBytes: 256}},
		{"oct-32", jwk.OctGenParam{N: 32}},
		{"okp-ed25519", jwk.OKPGenParam{Crv: jwk.OKPCrvEd25519}},
		{"okp-x25519", jwk.OKPGenParam{Crv: jwk.OKPCrvX25519}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			j, err := jwk.GenerateJWKFrom(rand.Reader, tc.param)
			require.NoError(t, err)

			p, err := jwk.EmitKeyMaterial(j.Material)
			require.NoError(t, err)

			got, err := jwk.ParseKeyMaterial(p)
			require.NoError(t, err)

			p2, err := jwk.EmitKeyMaterial(got)
			require.NoError(t, err)
			require.JSONEq(t, string(p), string(p2))
		})
	}
}

// TestJWK_X5TS256RoundTrip covers concrete vector 5 of spec.md §8: a JWK carrying
// the literal `x5t#S256` member must re-emit it unchanged.
func TestJWK_X5TS256RoundTrip(t *testing.T) {
	const in = `{"kty":"oct","k":"AQID","x5t#S256":"AAAA"}`

	var j jwk.JWK
	require.NoError(t, json.Unmarshal([]byte(in), &j))
	require.Equal(t, jwk.Base64RawURL{0, 0, 0}, j.X5TS256())

	out, err := json.Marshal(j)
	require.NoError(t, err)
	require.JSONEq(t, in, string(out))
}

func TestJWKSet_EmptyKeysNeverNull(t *testing.T) {
	var set jwk.JWKSet
	p, err := json.Marshal(set)
	require.NoError(t, err)
	require.JSONEq(t, `{"keys":[]}`, string(p))
}

func TestParseKeyMaterial_MissingKty(t *testing.T) {
	_, err := jwk.ParseKeyMaterial([]byte(`{"x":"AQID"}`))
	require.Error(t, err)
	var shape *jwk.JSONShapeError
	require.ErrorAs(t, err, &shape)
}

func TestParseKeyMaterial_RSAPartialCRTRejected(t *testing.T) {
	// p present without q,dp,dq,qi violates the all-or-none invariant.
	_, err := jwk.ParseKeyMaterial([]byte(`{
		"kty":"RSA","n":"AQID","e":"AQAB","d":"AQID","p":"AQID"
	}`))
	require.Error(t, err)
	var shape *jwk.JSONShapeError
	require.ErrorAs(t, err, &shape)
}

func TestParseKeyMaterial_EC_RejectsPointNotOnCurve(t *testing.T) {
	_, err := jwk.ParseKeyMaterial([]byte(`{
		"kty":"EC","crv":"P-256",
		"x":"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
		"y":"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
	}`))
	require.Error(t, err)
	var shape *jwk.JSONShapeError
	require.ErrorAs(t, err, &shape)
}
