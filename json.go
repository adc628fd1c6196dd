package paillier

import (
	"encoding/base64"
	"encoding/json"
	"math/big"

	"github.com/pkg/errors"
)

// Wire format (spec §6, JOSE-adjacent). Byte strings are URL-safe base64
// (no padding) of the big-endian unsigned byte representation of the
// integer; ciphertext values are decimal strings instead, to match the
// interoperable wire format named in the spec.

type jsonPublicKey struct {
	Alg    string   `json:"alg"`
	Kty    string   `json:"kty"`
	Kid    string   `json:"kid,omitempty"`
	N      string   `json:"n"`
	KeyOps []string `json:"key_ops"`
}

type jsonPrivateKey struct {
	Kty    string         `json:"kty"`
	KeyOps []string       `json:"key_ops"`
	Kid    string         `json:"kid,omitempty"`
	Pub    *jsonPublicKey `json:"pub"`
	Lambda string         `json:"lambda"`
	Mu     string         `json:"mu"`
}

type jsonCiphertext struct {
	V string `json:"v"`
	E int    `json:"e"`
}

func b64Encode(n *big.Int) string {
	return base64.RawURLEncoding.EncodeToString(n.Bytes())
}

func b64Decode(s string) (*big.Int, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "decoding base64 integer")
	}
	return new(big.Int).SetBytes(b), nil
}

// MarshalPublicKeyJSON encodes pk in the wire format of spec §6. kid is an
// arbitrary caller-supplied comment and is not part of the key's identity.
func MarshalPublicKeyJSON(pk *PublicKey, kid string) ([]byte, error) {
	return json.Marshal(toJSONPublicKey(pk, kid))
}

func toJSONPublicKey(pk *PublicKey, kid string) *jsonPublicKey {
	return &jsonPublicKey{
		Alg:    "PAI-GN1",
		Kty:    "DAJ",
		Kid:    kid,
		N:      b64Encode(pk.N),
		KeyOps: []string{"encrypt"},
	}
}

// UnmarshalPublicKeyJSON decodes a public key encoded by MarshalPublicKeyJSON,
// returning the key and its kid comment.
func UnmarshalPublicKeyJSON(data []byte) (*PublicKey, string, error) {
	var jpk jsonPublicKey
	if err := json.Unmarshal(data, &jpk); err != nil {
		return nil, "", errors.Wrap(err, "decoding public key json")
	}
	return fromJSONPublicKey(&jpk)
}

func fromJSONPublicKey(jpk *jsonPublicKey) (*PublicKey, string, error) {
	n, err := b64Decode(jpk.N)
	if err != nil {
		return nil, "", errors.Wrap(err, "decoding public key modulus")
	}
	return NewPublicKey(n), jpk.Kid, nil
}

// MarshalPrivateKeyJSON encodes sk in the λ form named in spec §6: the
// private key is stored as (pub, lambda, mu=lambda^-1 mod n); CRT terms are
// recomputed internally on load (spec §9).
func MarshalPrivateKeyJSON(sk *PrivateKey, kid string) ([]byte, error) {
	mu := modInverse(sk.Lambda, sk.N)
	if mu == nil {
		return nil, invalidArgumentf("lambda has no inverse modulo n")
	}
	jsk := &jsonPrivateKey{
		Kty:    "DAJ",
		KeyOps: []string{"decrypt"},
		Kid:    kid,
		Pub:    toJSONPublicKey(&sk.PublicKey, kid),
		Lambda: b64Encode(sk.Lambda),
		Mu:     b64Encode(mu),
	}
	return json.Marshal(jsk)
}

// UnmarshalPrivateKeyJSON decodes a private key encoded by
// MarshalPrivateKeyJSON, recovering p, q and the CRT terms from the stored
// totient λ (spec §3, §9).
func UnmarshalPrivateKeyJSON(data []byte) (*PrivateKey, string, error) {
	var jsk jsonPrivateKey
	if err := json.Unmarshal(data, &jsk); err != nil {
		return nil, "", errors.Wrap(err, "decoding private key json")
	}
	if jsk.Pub == nil {
		return nil, "", invalidArgumentf("private key json is missing its pub object")
	}
	pub, _, err := fromJSONPublicKey(jsk.Pub)
	if err != nil {
		return nil, "", err
	}
	lambda, err := b64Decode(jsk.Lambda)
	if err != nil {
		return nil, "", errors.Wrap(err, "decoding private key lambda")
	}
	sk, err := NewPrivateKeyFromLambda(pub.N, lambda)
	if err != nil {
		return nil, "", err
	}
	return sk, jsk.Kid, nil
}

// MarshalJSON implements json.Marshaler for EncryptedNumber, always
// obfuscating an unsafe ciphertext first (spec §4.E) before exposing it.
func (en *EncryptedNumber) MarshalJSON() ([]byte, error) {
	c, err := en.obfuscatedCiphertext()
	if err != nil {
		return nil, err
	}
	return json.Marshal(jsonCiphertext{V: c.String(), E: en.Exponent})
}

// UnmarshalEncryptedNumberJSON decodes a ciphertext encoded by
// EncryptedNumber.MarshalJSON. The caller must supply the EncodingContext
// under which it was encrypted, since that is not itself part of the wire
// format (spec §6).
func UnmarshalEncryptedNumberJSON(data []byte, ctx *EncodingContext) (*EncryptedNumber, error) {
	var jc jsonCiphertext
	if err := json.Unmarshal(data, &jc); err != nil {
		return nil, errors.Wrap(err, "decoding ciphertext json")
	}
	c, ok := new(big.Int).SetString(jc.V, 10)
	if !ok {
		return nil, invalidArgumentf("ciphertext value %q is not a decimal integer", jc.V)
	}
	return newEncryptedNumber(ctx, c, jc.E, false)
}
