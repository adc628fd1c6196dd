// Package mock is a plaintext shadow of the paillier package: it exposes
// the same encoding/encryption/arithmetic shapes but performs no actual
// encryption, obfuscation, or modular exponentiation. It exists for
// debugging and test cross-validation (spec §4.G) and must never be used
// to protect real data.
package mock

import (
	"log"
	"math/big"

	"github.com/pkg/errors"

	"github.com/crypto-phe/paillier"
)

// Context is the mock counterpart of paillier.EncodingContext. Its
// construction logs an unmissable warning, per spec §4.G.
type Context struct {
	real *paillier.EncodingContext
	n    *big.Int
}

// NewContext wraps a real EncodingContext in a mock one. The public key and
// encoding bounds are reused verbatim from real so mock arithmetic stays
// comparable to the genuine implementation; only encryption is elided.
func NewContext(real *paillier.EncodingContext) *Context {
	log.Printf("paillier/mock: MOCK CONTEXT IN USE — no encryption is performed, plaintext is stored directly. Never use this outside tests.")
	return &Context{real: real, n: real.PublicKey.N}
}

// EncodedNumber is the mock counterpart of paillier.EncodedNumber: its
// Value and Exponent carry the exact same ring representation as the real
// type, so the two can be cross-checked.
type EncodedNumber struct {
	ctx   *Context
	value *big.Int
	exp   int
}

// Encode mirrors paillier.EncodingContext.EncodeInt.
func (c *Context) Encode(k int64) (*EncodedNumber, error) {
	en, err := c.real.EncodeInt(big.NewInt(k))
	if err != nil {
		return nil, err
	}
	return &EncodedNumber{ctx: c, value: en.Value, exp: en.Exponent}, nil
}

// EncryptedNumber is the mock counterpart of paillier.EncryptedNumber: the
// "ciphertext" slot holds the plaintext significand directly, unobfuscated
// and unencrypted.
type EncryptedNumber struct {
	ctx   *Context
	value *big.Int
	exp   int
}

// Encrypt returns an EncryptedNumber that stores e's plaintext value
// directly: no modular exponentiation, no randomness, no obfuscation.
func (e *EncodedNumber) Encrypt() *EncryptedNumber {
	return &EncryptedNumber{ctx: e.ctx, value: new(big.Int).Set(e.value), exp: e.exp}
}

// Decrypt returns the plaintext EncodedNumber stored in en. There is no
// key check: mock mode has no secret to check against.
func (en *EncryptedNumber) Decrypt() *EncodedNumber {
	return &EncodedNumber{ctx: en.ctx, value: new(big.Int).Set(en.value), exp: en.exp}
}

// Value returns the significand stored in e, interpreted as a signed
// integer in the context's significand range (spec §3).
func (e *EncodedNumber) Value() *big.Int {
	return e.ctx.significand(e.value)
}

// Add adds two EncryptedNumbers, reconciling exponents exactly as the real
// package does, and warns if the result overflows the significand range.
func (en *EncryptedNumber) Add(other *EncryptedNumber) (*EncryptedNumber, error) {
	if en.ctx != other.ctx {
		return nil, errors.New("mock: mismatched contexts")
	}
	exp := en.exp
	a, b := new(big.Int).Set(en.value), new(big.Int).Set(other.value)
	if en.exp > other.exp {
		a = rescale(en.ctx, a, en.exp-other.exp)
		exp = other.exp
	} else if other.exp > en.exp {
		b = rescale(en.ctx, b, other.exp-en.exp)
	}
	sum := new(big.Int).Mod(new(big.Int).Add(a, b), en.ctx.n)
	result := &EncryptedNumber{ctx: en.ctx, value: sum, exp: exp}
	en.ctx.checkOverflow(sum, "add")
	return result, nil
}

// Multiply multiplies en by a plaintext EncodedNumber scalar, warning if
// the product overflows the significand range.
func (en *EncryptedNumber) Multiply(e *EncodedNumber) (*EncryptedNumber, error) {
	if en.ctx != e.ctx {
		return nil, errors.New("mock: mismatched contexts")
	}
	product := new(big.Int).Mod(new(big.Int).Mul(en.value, e.value), en.ctx.n)
	en.ctx.checkOverflow(product, "multiply")
	return &EncryptedNumber{ctx: en.ctx, value: product, exp: en.exp + e.exp}, nil
}

func rescale(ctx *Context, v *big.Int, deltaE int) *big.Int {
	pow := new(big.Int).Exp(ctx.real.Base, big.NewInt(int64(deltaE)), nil)
	return new(big.Int).Mod(new(big.Int).Mul(v, pow), ctx.n)
}

// significand recovers the signed significand of a ring value under the
// real context's actual base/signedness/precision (EncodingContext.SignificandOf);
// it falls back to a plain half-n split only if that fails, i.e. v is
// already outside the valid range (checkOverflow has then already warned).
func (c *Context) significand(v *big.Int) *big.Int {
	if s, err := c.real.SignificandOf(v); err == nil {
		return s
	}
	half := new(big.Int).Rsh(c.n, 1)
	if v.Cmp(half) > 0 {
		return new(big.Int).Sub(v, c.n)
	}
	return new(big.Int).Set(v)
}

// checkOverflow warns (does not abort) if v falls outside the real
// context's configured significand range — precision-aware, not a blanket
// n/2 proxy, so a partial-precision signed context (spec §4.G) is actually
// exercised.
func (c *Context) checkOverflow(v *big.Int, op string) {
	if _, err := c.real.SignificandOf(v); err != nil {
		log.Printf("paillier/mock: significand overflow detected after %s: %s exceeds the encoding range", op, c.significand(v).String())
	}
}
