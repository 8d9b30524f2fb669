package jwk

// OctKeyParameters is the kty=oct payload of RFC 7518 §6.4: a raw symmetric
// key octet sequence. Oct keys have no public/private split — see
// AsPublicKey's treatment of Oct in public.go.
type OctKeyParameters struct {
	K Base64Octets
}

func (OctKeyParameters) KeyType() KTY   { return KTYOct }
func (OctKeyParameters) isKeyMaterial() {}

func (k OctKeyParameters) validate() error {
	if len(k.K) == 0 {
		return &JSONShapeError{Reason: "missing k"}
	}
	return nil
}
