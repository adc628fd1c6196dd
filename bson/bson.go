// Package bson provides BSON marshaling of Paillier keys and ciphertexts
// for callers persisting key material to a document store, adapted from
// the teacher library's own bson package (which serialized its now-removed
// threshold types) to the PublicKey/PrivateKey/EncryptedNumber of this
// module.
package bson

import (
	"math/big"

	"github.com/pkg/errors"
	mgobson "gopkg.in/mgo.v2/bson"

	"github.com/crypto-phe/paillier"
)

type dbPublicKey struct {
	N   string `bson:"n"`
	Kid string `bson:"kid,omitempty"`
}

type dbPrivateKey struct {
	N      string `bson:"n"`
	Lambda string `bson:"lambda"`
	Kid    string `bson:"kid,omitempty"`
}

type dbCiphertext struct {
	V string `bson:"v"`
	E int    `bson:"e"`
}

// MarshalPublicKey encodes pk as BSON, hex-encoding the modulus.
func MarshalPublicKey(pk *paillier.PublicKey, kid string) ([]byte, error) {
	return mgobson.Marshal(&dbPublicKey{N: hexOf(pk.N), Kid: kid})
}

// UnmarshalPublicKey decodes a public key encoded by MarshalPublicKey.
func UnmarshalPublicKey(data []byte) (*paillier.PublicKey, string, error) {
	var db dbPublicKey
	if err := mgobson.Unmarshal(data, &db); err != nil {
		return nil, "", errors.Wrap(err, "decoding public key bson")
	}
	n, err := fromHex(db.N)
	if err != nil {
		return nil, "", err
	}
	return paillier.NewPublicKey(n), db.Kid, nil
}

// MarshalPrivateKey encodes sk as BSON in the λ form (spec §6); CRT terms
// are recomputed on load.
func MarshalPrivateKey(sk *paillier.PrivateKey, kid string) ([]byte, error) {
	return mgobson.Marshal(&dbPrivateKey{N: hexOf(sk.N), Lambda: hexOf(sk.Lambda), Kid: kid})
}

// UnmarshalPrivateKey decodes a private key encoded by MarshalPrivateKey.
func UnmarshalPrivateKey(data []byte) (*paillier.PrivateKey, string, error) {
	var db dbPrivateKey
	if err := mgobson.Unmarshal(data, &db); err != nil {
		return nil, "", errors.Wrap(err, "decoding private key bson")
	}
	n, err := fromHex(db.N)
	if err != nil {
		return nil, "", err
	}
	lambda, err := fromHex(db.Lambda)
	if err != nil {
		return nil, "", err
	}
	sk, err := paillier.NewPrivateKeyFromLambda(n, lambda)
	if err != nil {
		return nil, "", err
	}
	return sk, db.Kid, nil
}

// MarshalEncryptedNumber encodes en as BSON, obfuscating it first if it is
// not already safe to release (spec §4.E).
func MarshalEncryptedNumber(en *paillier.EncryptedNumber) ([]byte, error) {
	c, e, err := en.ObfuscatedParts()
	if err != nil {
		return nil, err
	}
	return mgobson.Marshal(&dbCiphertext{V: c.String(), E: e})
}

// UnmarshalEncryptedNumber decodes a ciphertext encoded by
// MarshalEncryptedNumber under the supplied EncodingContext.
func UnmarshalEncryptedNumber(data []byte, ctx *paillier.EncodingContext) (*paillier.EncryptedNumber, error) {
	var db dbCiphertext
	if err := mgobson.Unmarshal(data, &db); err != nil {
		return nil, errors.Wrap(err, "decoding ciphertext bson")
	}
	c, ok := new(big.Int).SetString(db.V, 10)
	if !ok {
		return nil, errors.Errorf("ciphertext value %q is not a decimal integer", db.V)
	}
	return paillier.NewEncryptedNumberFromParts(ctx, c, db.E)
}

func hexOf(n *big.Int) string {
	return n.Text(16)
}

func fromHex(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, errors.Errorf("%q is not a hexadecimal integer", s)
	}
	return n, nil
}
