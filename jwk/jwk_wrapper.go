package jwk

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// JWK is key material plus the RFC 7517 §4 metadata members. It is
// immutable; WithKID/WithUse/WithAlg/... return a new JWK.
type JWK struct {
	Material KeyMaterial

	use     Use
	keyOps  []KeyOp
	alg     string // raw JWKAlg string, round-tripped opaquely; see SPEC_FULL.md §3
	kid     string
	x5u     string
	x5c     []Base64Std
	x5t     Base64RawURL
	x5tS256 Base64RawURL
}

// Base64Std is standard base64 (with padding), used for x5c per RFC 7517
// §4.7, which carries DER certificates the same way PEM-without-headers does.
type Base64Std []byte

func (x Base64Std) MarshalJSON() ([]byte, error) {
	return []byte(`"` + stdB64Encode(x) + `"`), nil
}
func (x *Base64Std) UnmarshalJSON(p []byte) error {
	s, err := unquoteJSONString(p)
	if err != nil {
		return err
	}
	v, err := stdB64Decode(s)
	if err != nil {
		return err
	}
	*x = Base64Std(v)
	return nil
}

func (x Base64Std) MarshalYAML() (any, error) { return stdB64Encode(x), nil }

func (x *Base64Std) UnmarshalYAML(n *yaml.Node) error {
	v, err := stdB64Decode(n.Value)
	if err != nil {
		return err
	}
	*x = Base64Std(v)
	return nil
}

// Base64RawURL is the same base64url-no-pad alphabet as the rest of this
// package, exposed under RFC 7517's x5t naming for certificate thumbprints.
type Base64RawURL = Base64Octets

func (x JWK) Use() Use         { return x.use }
func (x JWK) KeyOps() []KeyOp  { return x.keyOps }
func (x JWK) Alg() string      { return x.alg }
func (x JWK) KID() string      { return x.kid }
func (x JWK) X5U() string      { return x.x5u }
func (x JWK) X5C() []Base64Std { return x.x5c }
func (x JWK) X5T() Base64RawURL     { return x.x5t }
func (x JWK) X5TS256() Base64RawURL { return x.x5tS256 }

func (x JWK) WithKID(kid string) JWK          { x.kid = kid; return x }
func (x JWK) WithUse(use Use) JWK             { x.use = use; return x }
func (x JWK) WithKeyOps(ops ...KeyOp) JWK     { x.keyOps = ops; return x }
func (x JWK) WithAlg(alg string) JWK          { x.alg = alg; return x }
func (x JWK) WithX5U(x5u string) JWK          { x.x5u = x5u; return x }
func (x JWK) WithX5C(x5c ...Base64Std) JWK    { x.x5c = x5c; return x }

// jwkWire embeds keyMaterialWire so that MarshalJSON/UnmarshalJSON produce
// one flat JSON object combining KeyMaterial fields and JWK metadata,
// per spec.md §4.D. Note the literal `#` in the x5t#S256 tag.
type jwkWire struct {
	keyMaterialWire `yaml:",inline"`

	Use     Use          `json:"use,omitempty" yaml:"use,omitempty"`
	KeyOps  []KeyOp      `json:"key_ops,omitempty" yaml:"key_ops,omitempty"`
	Alg     string       `json:"alg,omitempty" yaml:"alg,omitempty"`
	KID     string       `json:"kid,omitempty" yaml:"kid,omitempty"`
	X5U     string       `json:"x5u,omitempty" yaml:"x5u,omitempty"`
	X5C     []Base64Std  `json:"x5c,omitempty" yaml:"x5c,omitempty"`
	X5T     Base64RawURL `json:"x5t,omitempty" yaml:"x5t,omitempty"`
	X5TS256 Base64RawURL `json:"x5t#S256,omitempty" yaml:"x5t#S256,omitempty"`
}

func (x JWK) MarshalJSON() ([]byte, error) {
	mw, err := keyMaterialToWire(x.Material)
	if err != nil {
		return nil, err
	}
	w := jwkWire{
		keyMaterialWire: mw,
		Use:             x.use,
		KeyOps:          x.keyOps,
		Alg:             x.alg,
		KID:             x.kid,
		X5U:             x.x5u,
		X5C:             x.x5c,
		X5T:             x.x5t,
		X5TS256:         x.x5tS256,
	}
	return json.Marshal(w)
}

func (x *JWK) UnmarshalJSON(p []byte) error {
	var w jwkWire
	if err := json.Unmarshal(p, &w); err != nil {
		return &JSONDecodeError{Reason: "jwk", Err: err}
	}
	m, err := keyMaterialFromWire(w.keyMaterialWire)
	if err != nil {
		return err
	}
	*x = JWK{
		Material: m,
		use:      w.Use,
		keyOps:   w.KeyOps,
		alg:      w.Alg,
		kid:      w.KID,
		x5u:      w.X5U,
		x5c:      w.X5C,
		x5t:      w.X5T,
		x5tS256:  w.X5TS256,
	}
	return nil
}

// MarshalYAML/UnmarshalYAML reuse the same flat wire shape as the JSON
// codec, for jwkctl's `--format yaml` output.
func (x JWK) MarshalYAML() (any, error) {
	mw, err := keyMaterialToWire(x.Material)
	if err != nil {
		return nil, err
	}
	return jwkWire{
		keyMaterialWire: mw,
		Use:             x.use,
		KeyOps:          x.keyOps,
		Alg:             x.alg,
		KID:             x.kid,
		X5U:             x.x5u,
		X5C:             x.x5c,
		X5T:             x.x5t,
		X5TS256:         x.x5tS256,
	}, nil
}

func (x *JWK) UnmarshalYAML(n *yaml.Node) error {
	var w jwkWire
	if err := n.Decode(&w); err != nil {
		return &JSONDecodeError{Reason: "jwk (yaml)", Err: err}
	}
	m, err := keyMaterialFromWire(w.keyMaterialWire)
	if err != nil {
		return err
	}
	*x = JWK{
		Material: m,
		use:      w.Use,
		keyOps:   w.KeyOps,
		alg:      w.Alg,
		kid:      w.KID,
		x5u:      w.X5U,
		x5c:      w.X5C,
		x5t:      w.X5T,
		x5tS256:  w.X5TS256,
	}
	return nil
}

// JWKSet is `{"keys": [...]}`, RFC 7517 §5. The JSON field is always "keys",
// even for an empty set.
type JWKSet struct {
	Keys []JWK
}

type jwkSetWire struct {
	Keys []JWK `json:"keys" yaml:"keys"`
}

func (x JWKSet) MarshalJSON() ([]byte, error) {
	keys := x.Keys
	if keys == nil {
		keys = []JWK{}
	}
	return json.Marshal(jwkSetWire{Keys: keys})
}

func (x *JWKSet) UnmarshalJSON(p []byte) error {
	var w jwkSetWire
	if err := json.Unmarshal(p, &w); err != nil {
		return &JSONDecodeError{Reason: "jwk set", Err: err}
	}
	x.Keys = w.Keys
	return nil
}

func (x JWKSet) MarshalYAML() (any, error) {
	keys := x.Keys
	if keys == nil {
		keys = []JWK{}
	}
	return jwkSetWire{Keys: keys}, nil
}

func (x *JWKSet) UnmarshalYAML(n *yaml.Node) error {
	var w jwkSetWire
	if err := n.Decode(&w); err != nil {
		return &JSONDecodeError{Reason: "jwk set (yaml)", Err: err}
	}
	x.Keys = w.Keys
	return nil
}
