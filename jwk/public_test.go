package jwk_test

import (
	"encoding/json"
	"testing"

	"github.com/jwkcore/jwk/jwk"
	"github.com/stretchr/testify/require"
)

// TestAsPublicKey_Idempotent covers invariant 6 of spec.md §8.
func TestAsPublicKey_Idempotent(t *testing.T) {
	for _, param := range []jwk.KeyMaterialGenParam{
		jwk.ECGenParam{Crv: jwk.CrvP256},
		jwk.RSAGenParam{SizeBytes: 256},
		jwk.OKPGenParam{Crv: jwk.OKPCrvEd25519},
	} {
		j, err := jwk.GenerateJWK(param)
		require.NoError(t, err)

		once, ok := jwk.AsPublicKey(j.Material)
		require.True(t, ok)

		twice, ok := jwk.AsPublicKey(once)
		require.True(t, ok)

		p1, err := jwk.EmitKeyMaterial(once)
		require.NoError(t, err)
		p2, err := jwk.EmitKeyMaterial(twice)
		require.NoError(t, err)
		require.JSONEq(t, string(p1), string(p2))
	}
}

func TestAsPublicKey_OctHasNoProjection(t *testing.T) {
	j, err := jwk.GenerateJWK(jwk.OctGenParam{N: 32})
	require.NoError(t, err)

	_, ok := jwk.AsPublicKey(j.Material)
	require.False(t, ok)

	_, ok = jwk.AsPublicJWK(j)
	require.False(t, ok)
}

// TestAsPublicKey_DropsSecretFields covers the second half of invariant 6:
// emitted JSON of asPublicKey(k) contains none of the secret members.
func TestAsPublicKey_DropsSecretFields(t *testing.T) {
	j, err := jwk.GenerateJWK(jwk.RSAGenParam{SizeBytes: 256})
	require.NoError(t, err)

	pub, ok := jwk.AsPublicJWK(j)
	require.True(t, ok)

	p, err := json.Marshal(pub)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(p, &raw))
	for _, forbidden := range []string{"d", "p", "q", "dp", "dq", "qi", "oth", "k"} {
		require.NotContains(t, raw, forbidden)
	}
}
