package paillier

import (
	"math/big"
)

// EncryptedNumber is a Paillier ciphertext bound to an EncodingContext and
// carrying the exponent of the EncodedNumber it encrypts (spec §3). isSafe
// is set by Obfuscate (and so by Encrypt); EncryptWithoutObfuscation and
// wire-decoded values start with it false, and arithmetic results inherit
// it from their operands (see AddEncrypted, AddEncoded, MultiplyEncoded).
type EncryptedNumber struct {
	Context    *EncodingContext
	Ciphertext *big.Int
	Exponent   int
	isSafe     bool
}

// validateCiphertext returns ErrInvalidCiphertext if c is not in [0, n²).
func validateCiphertext(pub *PublicKey, c *big.Int) error {
	if c.Sign() < 0 || c.Cmp(pub.NSquare()) >= 0 {
		return ErrInvalidCiphertext
	}
	return nil
}

// newEncryptedNumber validates c against ctx's modulus before wrapping it.
func newEncryptedNumber(ctx *EncodingContext, c *big.Int, exponent int, safe bool) (*EncryptedNumber, error) {
	if err := validateCiphertext(ctx.PublicKey, c); err != nil {
		return nil, err
	}
	return &EncryptedNumber{Context: ctx, Ciphertext: c, Exponent: exponent, isSafe: safe}, nil
}

// EncryptWithoutObfuscation encrypts e using the closed-form PAI-GN1
// encryption of spec §4.C without re-randomization; the result's isSafe is
// false. Useful as a fast intermediate step when the caller knows further
// arithmetic (and thus further obfuscation) will follow.
func (e *EncodedNumber) EncryptWithoutObfuscation() *EncryptedNumber {
	c := rawEncryptWithoutObfuscation(e.Context.PublicKey, e.Value)
	// c is constructed to be in [0, n^2) by rawEncryptWithoutObfuscation's
	// own Mod, so the error return here can never fire.
	en, _ := newEncryptedNumber(e.Context, c, e.Exponent, false)
	return en
}

// Encrypt encrypts e and obfuscates the result with fresh randomness, so
// the returned EncryptedNumber is always safe to release.
func (e *EncodedNumber) Encrypt() (*EncryptedNumber, error) {
	return e.EncryptWithoutObfuscation().Obfuscate()
}

// Obfuscate returns a new EncryptedNumber encrypting the same plaintext
// under fresh randomness (spec §4.E): decrypt(obfuscate(c)) = decrypt(c),
// but obfuscate(c) != c with overwhelming probability.
func (en *EncryptedNumber) Obfuscate() (*EncryptedNumber, error) {
	c, err := rawObfuscate(en.Context.PublicKey, en.Ciphertext)
	if err != nil {
		return nil, err
	}
	return &EncryptedNumber{Context: en.Context, Ciphertext: c, Exponent: en.Exponent, isSafe: true}, nil
}

// obfuscatedCiphertext returns en's ciphertext, obfuscating it first if it
// is not already safe. Any getter that serializes or otherwise exposes the
// raw ciphertext must go through this (spec §4.E).
func (en *EncryptedNumber) obfuscatedCiphertext() (*big.Int, error) {
	if en.isSafe {
		return en.Ciphertext, nil
	}
	return rawObfuscate(en.Context.PublicKey, en.Ciphertext)
}

// IsSafe reports whether the ciphertext already carries fresh randomness.
func (en *EncryptedNumber) IsSafe() bool {
	return en.isSafe
}

// ObfuscatedParts returns en's ciphertext (obfuscating it first if it is not
// already safe) and its exponent, for callers outside this package that need
// to serialize an EncryptedNumber in their own wire format (e.g. paillier/bson).
func (en *EncryptedNumber) ObfuscatedParts() (*big.Int, int, error) {
	c, err := en.obfuscatedCiphertext()
	if err != nil {
		return nil, 0, err
	}
	return c, en.Exponent, nil
}

// NewEncryptedNumberFromParts wraps a raw ciphertext and exponent under ctx,
// validating the ciphertext's range (spec §4.D). The result's isSafe is
// false, matching the conservative default used when decoding from the wire.
func NewEncryptedNumberFromParts(ctx *EncodingContext, c *big.Int, exponent int) (*EncryptedNumber, error) {
	return newEncryptedNumber(ctx, c, exponent, false)
}

// Decrypt recovers the EncodedNumber that en encrypts. It fails with
// ErrKeyMismatch if sk's public key differs from en's.
func (en *EncryptedNumber) Decrypt(sk *PrivateKey) (*EncodedNumber, error) {
	if !sk.PublicKey.Equal(en.Context.PublicKey) {
		return nil, ErrKeyMismatch
	}
	m := rawDecrypt(sk, en.Ciphertext)
	return &EncodedNumber{Context: en.Context, Value: m, Exponent: en.Exponent}, nil
}
