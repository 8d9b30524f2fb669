package jwk_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/jwkcore/jwk/jwk"
	"github.com/stretchr/testify/require"
)

func TestBase64Octets_RoundTrip(t *testing.T) {
	want := jwk.Base64Octets{0x01, 0x02, 0x03, 0xff}
	p, err := json.Marshal(want)
	require.NoError(t, err)
	require.Equal(t, `"AQID_w"`, string(p))

	var got jwk.Base64Octets
	require.NoError(t, json.Unmarshal(p, &got))
	require.Equal(t, want, got)
}

func TestBase64Octets_Empty(t *testing.T) {
	var x jwk.Base64Octets
	require.NoError(t, json.Unmarshal([]byte(`""`), &x))
	require.Equal(t, jwk.Base64Octets{}, x)
}

func TestBase64Integer_MinimalEncoding(t *testing.T) {
	x := jwk.NewBase64Integer(65537)
	p, err := json.Marshal(x)
	require.NoError(t, err)
	require.Equal(t, `"AQAB"`, string(p))

	var got jwk.Base64Integer
	require.NoError(t, json.Unmarshal(p, &got))
	require.Equal(t, 0, got.V.Cmp(big.NewInt(65537)))
}

func TestSizedBase64Integer_PreservesWidth(t *testing.T) {
	x := jwk.NewSizedBase64Integer(32, big.NewInt(1))
	p, err := json.Marshal(x)
	require.NoError(t, err)

	var got jwk.SizedBase64Integer
	require.NoError(t, json.Unmarshal(p, &got))
	require.Equal(t, 32, got.N)
	require.Equal(t, 0, got.V.Cmp(big.NewInt(1)))
}

func TestSizedBase64Integer_WidthTakenFromInput(t *testing.T) {
	var got jwk.SizedBase64Integer
	require.NoError(t, json.Unmarshal([]byte(`"AA"`), &got))
	require.Equal(t, 1, got.N)
}
