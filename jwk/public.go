package jwk

// AsPublicKey projects material to its public-only form: EC clears d, RSA
// clears the private section, OKP clears d. Oct keys have no public half —
// this is the one case where the projection returns (nil, false); callers
// must treat that as "not a shareable key" (spec.md §4.H).
func AsPublicKey(material KeyMaterial) (KeyMaterial, bool) {
	switch k := material.(type) {
	case ECKeyParameters:
		k.D = nil
		return k, true
	case RSAKeyParameters:
		k.Private = nil
		return k, true
	case OctKeyParameters:
		return nil, false
	case OKPKeyParameters:
		k.D = nil
		return k, true
	default:
		return nil, false
	}
}

// AsPublicJWK lifts AsPublicKey to a full JWK, preserving metadata. ok is
// false iff the underlying material has no public projection (Oct).
func AsPublicJWK(j JWK) (JWK, bool) {
	pub, ok := AsPublicKey(j.Material)
	if !ok {
		return JWK{}, false
	}
	out := j
	out.Material = pub
	return out, true
}
