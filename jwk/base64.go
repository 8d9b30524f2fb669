package jwk

import (
	"encoding/base64"
	"math/big"

	"gopkg.in/yaml.v3"
)

// b64 is the base64url-no-pad alphabet required by RFC 7515 §2, used for
// every integer and octet field in a JWK.
func b64() *base64.Encoding { return base64.RawURLEncoding.Strict() }

func b64Encode(p []byte) string { return b64().EncodeToString(p) }

func b64Decode(s string) ([]byte, error) {
	p, err := b64().DecodeString(s)
	if err != nil {
		return nil, &JSONDecodeError{Reason: "invalid base64url", Err: err}
	}
	return p, nil
}

// Base64Octets is a raw byte sequence, base64url-no-pad encoded in JSON.
// It is used for fields with no integer semantics: oct `k`, OKP `x`/`d`.
type Base64Octets []byte

func (x Base64Octets) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b64Encode(x) + `"`), nil
}

func (x *Base64Octets) UnmarshalJSON(p []byte) error {
	s, err := unquoteJSONString(p)
	if err != nil {
		return err
	}
	if s == "" {
		*x = Base64Octets{}
		return nil
	}
	v, err := b64Decode(s)
	if err != nil {
		return err
	}
	*x = Base64Octets(v)
	return nil
}

func (x Base64Octets) MarshalYAML() (any, error) { return b64Encode(x), nil }

func (x *Base64Octets) UnmarshalYAML(n *yaml.Node) error {
	if n.Value == "" {
		*x = Base64Octets{}
		return nil
	}
	v, err := b64Decode(n.Value)
	if err != nil {
		return err
	}
	*x = Base64Octets(v)
	return nil
}

// Base64Integer is a non-negative integer without a declared byte width.
// It decodes any length and, on encode, emits the minimal unsigned
// big-endian representation (no leading zero byte).
type Base64Integer struct{ V *big.Int }

func NewBase64Integer(v int64) Base64Integer { return Base64Integer{V: big.NewInt(v)} }

func (x Base64Integer) MarshalJSON() ([]byte, error) {
	if x.V == nil {
		return []byte(`""`), nil
	}
	return []byte(`"` + b64Encode(x.V.Bytes()) + `"`), nil
}

func (x *Base64Integer) UnmarshalJSON(p []byte) error {
	s, err := unquoteJSONString(p)
	if err != nil {
		return err
	}
	if s == "" {
		x.V = big.NewInt(0)
		return nil
	}
	v, err := b64Decode(s)
	if err != nil {
		return err
	}
	x.V = new(big.Int).SetBytes(v)
	return nil
}

func (x Base64Integer) MarshalYAML() (any, error) {
	if x.V == nil {
		return "", nil
	}
	return b64Encode(x.V.Bytes()), nil
}

func (x *Base64Integer) UnmarshalYAML(n *yaml.Node) error {
	if n.Value == "" {
		x.V = big.NewInt(0)
		return nil
	}
	v, err := b64Decode(n.Value)
	if err != nil {
		return err
	}
	x.V = new(big.Int).SetBytes(v)
	return nil
}

// SizedBase64Integer is a non-negative integer together with its declared
// big-endian byte length. On decode N is the decoded length; on encode the
// value is emitted as exactly N big-endian bytes, left-padded with zeros.
type SizedBase64Integer struct {
	N int
	V *big.Int
}

// NewSizedBase64Integer builds a SizedBase64Integer with an explicit width,
// used by key generation where the width is known up front (coord-bytes(crv)).
func NewSizedBase64Integer(n int, v *big.Int) SizedBase64Integer {
	return SizedBase64Integer{N: n, V: v}
}

func (x SizedBase64Integer) MarshalJSON() ([]byte, error) {
	if x.V == nil {
		x.V = big.NewInt(0)
	}
	buf := x.V.FillBytes(make([]byte, x.N))
	return []byte(`"` + b64Encode(buf) + `"`), nil
}

func (x *SizedBase64Integer) UnmarshalJSON(p []byte) error {
	s, err := unquoteJSONString(p)
	if err != nil {
		return err
	}
	v, err := b64Decode(s)
	if err != nil {
		return err
	}
	x.N = len(v)
	x.V = new(big.Int).SetBytes(v)
	return nil
}

func (x SizedBase64Integer) MarshalYAML() (any, error) {
	if x.V == nil {
		x.V = big.NewInt(0)
	}
	return b64Encode(x.V.FillBytes(make([]byte, x.N))), nil
}

func (x *SizedBase64Integer) UnmarshalYAML(n *yaml.Node) error {
	v, err := b64Decode(n.Value)
	if err != nil {
		return err
	}
	x.N = len(v)
	x.V = new(big.Int).SetBytes(v)
	return nil
}

// checkSize fails with InvalidSizeError if v's declared width does not
// match expected. field names the JSON member for the error message.
func checkSize(field string, expected int, v SizedBase64Integer) error {
	if v.N != expected {
		return &InvalidSizeError{Field: field, Expected: expected, Actual: v.N}
	}
	return nil
}

// stdB64 is plain RFC 4648 base64 with padding, used only for x5c (RFC
// 7517 §4.7 specifies "base64-encoded", not base64url-no-pad, for the
// X.509 certificate chain).
func stdB64() *base64.Encoding { return base64.StdEncoding.Strict() }

func stdB64Encode(p []byte) string { return stdB64().EncodeToString(p) }

func stdB64Decode(s string) ([]byte, error) {
	p, err := stdB64().DecodeString(s)
	if err != nil {
		return nil, &JSONDecodeError{Reason: "invalid base64", Err: err}
	}
	return p, nil
}

func unquoteJSONString(p []byte) (string, error) {
	l := len(p)
	if l == 0 {
		return "", &JSONDecodeError{Reason: "empty field"}
	}
	if l == 2 && p[0] == '"' && p[1] == '"' {
		return "", nil
	}
	if l < 2 || p[0] != '"' || p[l-1] != '"' {
		return "", &JSONDecodeError{Reason: "expected JSON string"}
	}
	return string(p[1 : l-1]), nil
}
