package jwk_test

import (
	"crypto/rand"
	"testing"

	"github.com/jwkcore/jwk/jwk"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJWK_YAMLRoundTrip(t *testing.T) {
	j, err := jwk.GenerateJWKFrom(rand.Reader, jwk.ECGenParam{Crv: jwk.CrvP256})
	require.NoError(t, err)
	j = j.WithKID("yaml-key").WithUse(jwk.UseSig)

	p, err := yaml.Marshal(j)
	require.NoError(t, err)

	var got jwk.JWK
	require.NoError(t, yaml.Unmarshal(p, &got))

	wantJSON, err := jwk.EmitKeyMaterial(j.Material)
	require.NoError(t, err)
	gotJSON, err := jwk.EmitKeyMaterial(got.Material)
	require.NoError(t, err)
	require.JSONEq(t, string(wantJSON), string(gotJSON))
	require.Equal(t, j.KID(), got.KID())
	require.Equal(t, j.Use(), got.Use())
}

func TestJWKSet_YAMLRoundTrip(t *testing.T) {
	j1, err := jwk.GenerateJWKFrom(rand.Reader, jwk.OctGenParam{N: 32})
	require.NoError(t, err)
	j2, err := jwk.GenerateJWKFrom(rand.Reader, jwk.RSAGenParam{SizeBytes: 256})
	require.NoError(t, err)
	set := jwk.JWKSet{Keys: []jwk.JWK{j1, j2}}

	p, err := yaml.Marshal(set)
	require.NoError(t, err)

	var got jwk.JWKSet
	require.NoError(t, yaml.Unmarshal(p, &got))
	require.Len(t, got.Keys, 2)
}
