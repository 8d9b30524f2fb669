package jwk

import (
	"crypto"
	"sort"
)

// Thumbprint computes the RFC 7638 JWK thumbprint of material: hash over a
// canonical JSON rendering containing only the required subset of fields
// for material's kty, in lexicographic order of field name, with no
// insignificant whitespace. The caller chooses the digest (commonly
// crypto.SHA256); the return value is the raw digest bytes.
//
// This does not reuse the ordinary JSON emitter (material.go), which makes
// no ordering guarantee: it builds the canonical bytes directly, per
// spec.md §9 ("do not reuse the normal JSON emitter; it may reorder fields
// or emit whitespace").
func Thumbprint(material KeyMaterial, h crypto.Hash) ([]byte, error) {
	fields, err := thumbprintFields(material)
	if err != nil {
		return nil, err
	}
	canonical := canonicalJSONObject(fields)
	hh := h.New()
	hh.Write(canonical)
	return hh.Sum(nil), nil
}

// thumbprintFields returns the RFC 7638 §3.2 required subset for material's
// kty, as base64url-no-pad encoded strings keyed by JSON field name.
func thumbprintFields(material KeyMaterial) (map[string]string, error) {
	switch k := material.(type) {
	case ECKeyParameters:
		return map[string]string{
			"crv": string(k.Crv),
			"kty": string(KTYEC),
			"x":   b64Encode(k.X.V.FillBytes(make([]byte, k.X.N))),
			"y":   b64Encode(k.Y.V.FillBytes(make([]byte, k.Y.N))),
		}, nil
	case RSAKeyParameters:
		return map[string]string{
			"e":   b64Encode(k.E.V.Bytes()),
			"kty": string(KTYRSA),
			"n":   b64Encode(k.N.V.FillBytes(make([]byte, k.N.N))),
		}, nil
	case OctKeyParameters:
		return map[string]string{
			"k":   b64Encode(k.K),
			"kty": string(KTYOct),
		}, nil
	case OKPKeyParameters:
		return map[string]string{
			"crv": string(k.Crv),
			"kty": string(KTYOKP),
			"x":   b64Encode(k.X),
		}, nil
	default:
		return nil, &JSONShapeError{Reason: "unknown KeyMaterial implementation"}
	}
}

// canonicalJSONObject renders fields as a JSON object with keys in
// lexicographic order and no whitespace. Values are plain strings so no
// escaping beyond quoting is needed — base64url-no-pad output and JSON
// field names here never contain a character requiring escape.
func canonicalJSONObject(fields map[string]string) []byte {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf := make([]byte, 0, 64)
	buf = append(buf, '{')
	for i, k := range keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, '"')
		buf = append(buf, k...)
		buf = append(buf, '"', ':', '"')
		buf = append(buf, fields[k]...)
		buf = append(buf, '"')
	}
	buf = append(buf, '}')
	return buf
}
