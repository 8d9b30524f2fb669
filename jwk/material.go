package jwk

import (
	"encoding/json"
	"math/big"
)

// KeyMaterial is the discriminated union of spec.md §3: EC, RSA, Oct or OKP
// key parameters. Concrete variants are ECKeyParameters, RSAKeyParameters,
// OctKeyParameters and OKPKeyParameters. Values are immutable; mutation
// operations (asPublicKey, JWK metadata setters) produce new values.
type KeyMaterial interface {
	// KeyType returns the kty discriminator of the concrete variant.
	KeyType() KTY
	isKeyMaterial()
}

// keyMaterialWire is the flat wire representation of every kty, used both
// standalone and embedded in jwkWire (see jwk_wrapper.go) so that emitting a
// full JWK produces one flat JSON object per RFC 7517, never a nested one.
type keyMaterialWire struct {
	KTY KTY `json:"kty" yaml:"kty"`

	CRV string       `json:"crv,omitempty" yaml:"crv,omitempty"`
	X   Base64Octets `json:"x,omitempty" yaml:"x,omitempty"`
	Y   Base64Octets `json:"y,omitempty" yaml:"y,omitempty"`
	D   Base64Octets `json:"d,omitempty" yaml:"d,omitempty"`

	E   *Base64Integer `json:"e,omitempty" yaml:"e,omitempty"`
	N   Base64Octets   `json:"n,omitempty" yaml:"n,omitempty"`
	P   *Base64Integer `json:"p,omitempty" yaml:"p,omitempty"`
	Q   *Base64Integer `json:"q,omitempty" yaml:"q,omitempty"`
	DP  *Base64Integer `json:"dp,omitempty" yaml:"dp,omitempty"`
	DQ  *Base64Integer `json:"dq,omitempty" yaml:"dq,omitempty"`
	QI  *Base64Integer `json:"qi,omitempty" yaml:"qi,omitempty"`
	OTH []othWire      `json:"oth,omitempty" yaml:"oth,omitempty"`

	K Base64Octets `json:"k,omitempty" yaml:"k,omitempty"`
}

type othWire struct {
	R Base64Integer `json:"r,omitempty" yaml:"r,omitempty"`
	D Base64Integer `json:"d,omitempty" yaml:"d,omitempty"`
	T Base64Integer `json:"t,omitempty" yaml:"t,omitempty"`
}

// ParseKeyMaterial parses a flat JSON object into a KeyMaterial, dispatching
// on `kty` first rather than attempting each variant's parser in sequence
// (spec.md §9: "parse tries kty first and dispatches").
func ParseKeyMaterial(p []byte) (KeyMaterial, error) {
	var w keyMaterialWire
	if err := json.Unmarshal(p, &w); err != nil {
		return nil, &JSONDecodeError{Reason: "key material", Err: err}
	}
	return keyMaterialFromWire(w)
}

func keyMaterialFromWire(w keyMaterialWire) (KeyMaterial, error) {
	switch w.KTY {
	case KTYEC:
		return ecFromWire(w)
	case KTYRSA:
		return rsaFromWire(w)
	case KTYOct:
		return octFromWire(w)
	case KTYOKP:
		return okpFromWire(w)
	case "":
		return nil, &JSONShapeError{Reason: "missing kty"}
	default:
		return nil, &JSONShapeError{Reason: "unknown kty " + string(w.KTY)}
	}
}

func ecFromWire(w keyMaterialWire) (KeyMaterial, error) {
	k := ECKeyParameters{
		Crv: Crv(w.CRV),
		X:   sizedFromOctets(w.X),
		Y:   sizedFromOctets(w.Y),
	}
	if len(w.D) > 0 {
		d := sizedFromOctets(w.D)
		k.D = &d
	}
	if err := k.validate(); err != nil {
		return nil, err
	}
	return k, nil
}

// rsaFromWire parses the RSA private fields as siblings of n, e in the
// same object (spec.md §4.B: "the private fields live as siblings of n,
// e"), pulling in RSAPrivateKeyOptionalParameters only if any of
// {p,q,dp,dq,qi,oth} is present.
func rsaFromWire(w keyMaterialWire) (KeyMaterial, error) {
	k := RSAKeyParameters{N: sizedFromOctets(w.N), E: derefBase64Integer(w.E)}
	if len(w.D) > 0 {
		priv := &RSAPrivateKeyParameters{D: Base64Integer{V: bytesToBigInt(w.D)}}
		present := []bool{w.P != nil, w.Q != nil, w.DP != nil, w.DQ != nil, w.QI != nil}
		n := 0
		for _, b := range present {
			if b {
				n++
			}
		}
		if n != 0 && n != len(present) {
			return nil, &JSONShapeError{Reason: "RSA private key must carry all of p,q,dp,dq,qi or none"}
		}
		if n > 0 || len(w.OTH) > 0 {
			opt := &RSAPrivateKeyOptionalParameters{
				P: derefBase64Integer(w.P), Q: derefBase64Integer(w.Q),
				DP: derefBase64Integer(w.DP), DQ: derefBase64Integer(w.DQ), QI: derefBase64Integer(w.QI),
			}
			for _, o := range w.OTH {
				opt.Oth = append(opt.Oth, RSAPrivateKeyOthElem{R: o.R, D: o.D, T: o.T})
			}
			priv.Optional = opt
		}
		k.Private = priv
	}
	if err := k.validate(); err != nil {
		return nil, err
	}
	return k, nil
}

func bytesToBigInt(b []byte) *big.Int {
	if len(b) == 0 {
		return big.NewInt(0)
	}
	return new(big.Int).SetBytes(b)
}

// derefBase64Integer reads a possibly-absent wire field, since
// keyMaterialWire's integer fields are pointers so that encoding/json's
// omitempty (a no-op on struct-kind fields) actually drops them when unset.
func derefBase64Integer(p *Base64Integer) Base64Integer {
	if p == nil {
		return Base64Integer{}
	}
	return *p
}

// base64IntegerPtr is the emit-side counterpart of derefBase64Integer: it
// yields nil (and so gets omitted) for an unset integer, and a pointer to a
// copy of x otherwise.
func base64IntegerPtr(x Base64Integer) *Base64Integer {
	if x.V == nil {
		return nil
	}
	v := x
	return &v
}

func octFromWire(w keyMaterialWire) (KeyMaterial, error) {
	k := OctKeyParameters{K: w.K}
	if err := k.validate(); err != nil {
		return nil, err
	}
	return k, nil
}

func okpFromWire(w keyMaterialWire) (KeyMaterial, error) {
	k := OKPKeyParameters{Crv: OKPCrv(w.CRV), X: w.X}
	if len(w.D) > 0 {
		k.D = w.D
	}
	if err := k.validate(); err != nil {
		return nil, err
	}
	return k, nil
}

func sizedFromOctets(b Base64Octets) SizedBase64Integer {
	return SizedBase64Integer{N: len(b), V: bytesToBigInt(b)}
}

// EmitKeyMaterial serialises m to its flat RFC 7517 JSON form.
func EmitKeyMaterial(m KeyMaterial) ([]byte, error) {
	w, err := keyMaterialToWire(m)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func keyMaterialToWire(m KeyMaterial) (keyMaterialWire, error) {
	switch k := m.(type) {
	case ECKeyParameters:
		w := keyMaterialWire{
			KTY: KTYEC,
			CRV: string(k.Crv),
			X:   k.X.V.FillBytes(make([]byte, k.X.N)),
			Y:   k.Y.V.FillBytes(make([]byte, k.Y.N)),
		}
		if k.D != nil {
			w.D = k.D.V.FillBytes(make([]byte, k.D.N))
		}
		return w, nil
	case RSAKeyParameters:
		w := keyMaterialWire{KTY: KTYRSA, N: k.N.V.FillBytes(make([]byte, k.N.N)), E: base64IntegerPtr(k.E)}
		if k.Private != nil {
			w.D = k.Private.D.V.Bytes()
			if opt := k.Private.Optional; opt != nil {
				w.P, w.Q = base64IntegerPtr(opt.P), base64IntegerPtr(opt.Q)
				w.DP, w.DQ, w.QI = base64IntegerPtr(opt.DP), base64IntegerPtr(opt.DQ), base64IntegerPtr(opt.QI)
				for _, o := range opt.Oth {
					w.OTH = append(w.OTH, othWire{R: o.R, D: o.D, T: o.T})
				}
			}
		}
		return w, nil
	case OctKeyParameters:
		return keyMaterialWire{KTY: KTYOct, K: k.K}, nil
	case OKPKeyParameters:
		return keyMaterialWire{KTY: KTYOKP, CRV: string(k.Crv), X: k.X, D: k.D}, nil
	default:
		return keyMaterialWire{}, &JSONShapeError{Reason: "unknown KeyMaterial implementation"}
	}
}
