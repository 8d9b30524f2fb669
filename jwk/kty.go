package jwk

// KTY is the `kty` (Key Type) discriminator of RFC 7517 §4.1.
type KTY string

const (
	KTYEC  KTY = "EC"
	KTYRSA KTY = "RSA"
	KTYOct KTY = "oct"
	KTYOKP KTY = "OKP"
)

// Use is the `use` (Public Key Use) member of RFC 7517 §4.2.
type Use string

const (
	UseSig Use = "sig"
	UseEnc Use = "enc"
)

// KeyOp is one value of the `key_ops` (Key Operations) array, RFC 7517 §4.3.
type KeyOp string

const (
	KeyOpSign       KeyOp = "sign"
	KeyOpVerify     KeyOp = "verify"
	KeyOpEncrypt    KeyOp = "encrypt"
	KeyOpDecrypt    KeyOp = "decrypt"
	KeyOpWrapKey    KeyOp = "wrapKey"
	KeyOpUnwrapKey  KeyOp = "unwrapKey"
	KeyOpDeriveKey  KeyOp = "deriveKey"
	KeyOpDeriveBits KeyOp = "deriveBits"
)

// JWSAlg is an RFC 7518 §3 JSON Web Signature algorithm identifier — the
// subset of JWKAlg this library's sign/verify dispatcher understands.
type JWSAlg string

const (
	AlgNone  JWSAlg = "none"
	AlgHS256 JWSAlg = "HS256"
	AlgHS384 JWSAlg = "HS384"
	AlgHS512 JWSAlg = "HS512"
	AlgRS256 JWSAlg = "RS256"
	AlgRS384 JWSAlg = "RS384"
	AlgRS512 JWSAlg = "RS512"
	AlgES256 JWSAlg = "ES256"
	AlgES384 JWSAlg = "ES384"
	AlgES512 JWSAlg = "ES512"
	AlgPS256 JWSAlg = "PS256"
	AlgPS384 JWSAlg = "PS384"
	AlgPS512 JWSAlg = "PS512"
	AlgEdDSA JWSAlg = "EdDSA"
)
