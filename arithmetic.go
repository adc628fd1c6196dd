package paillier

import (
	"math/big"
)

// AdditiveInverse returns an EncryptedNumber that, added to en, decrypts to
// zero: modInverse(c, n²), exponent preserved (spec §4.F).
func (en *EncryptedNumber) AdditiveInverse() (*EncryptedNumber, error) {
	inv := modInverse(en.Ciphertext, en.Context.PublicKey.NSquare())
	if inv == nil {
		return nil, ErrInvalidCiphertext
	}
	return newEncryptedNumber(en.Context, inv, en.Exponent, en.isSafe)
}

// AdditiveInverse returns the EncodedNumber whose significand is the
// negation of e's: n - v when v != 0, exponent preserved (spec §4.F).
func (e *EncodedNumber) AdditiveInverse() *EncodedNumber {
	if e.Value.Sign() == 0 {
		return &EncodedNumber{Context: e.Context, Value: new(big.Int).Set(e.Value), Exponent: e.Exponent}
	}
	newVal := new(big.Int).Sub(e.Context.PublicKey.N, e.Value)
	return &EncodedNumber{Context: e.Context, Value: newVal, Exponent: e.Exponent}
}

// AddEncrypted adds two EncryptedNumbers, reconciling exponents when they
// differ (spec §4.F, §8 property 8): the result's exponent is
// min(en.Exponent, other.Exponent) and its isSafe is the conjunction of the
// operands'.
func (en *EncryptedNumber) AddEncrypted(other *EncryptedNumber) (*EncryptedNumber, error) {
	if err := en.Context.checkSameContext(other.Context); err != nil {
		return nil, err
	}

	a, b := en, other
	if a.Exponent > b.Exponent {
		rescaled, err := a.DecreaseExponentTo(b.Exponent)
		if err != nil {
			return nil, err
		}
		a = rescaled
	} else if b.Exponent > a.Exponent {
		rescaled, err := b.DecreaseExponentTo(a.Exponent)
		if err != nil {
			return nil, err
		}
		b = rescaled
	}

	c := rawAdd(en.Context.PublicKey, a.Ciphertext, b.Ciphertext)
	return newEncryptedNumber(en.Context, c, a.Exponent, a.isSafe && b.isSafe)
}

// AddEncoded adds a plaintext EncodedNumber to en. Exponent reconciliation
// prefers the cheap side (a modular multiplication on the encoded operand)
// over an expensive modular exponentiation on the ciphertext whenever that
// is possible without loss, per spec §4.F; both directions of
// encoded/encrypted addition in this package funnel through this one
// implementation so they cannot disagree (spec §9, Open Question 1).
func (en *EncryptedNumber) AddEncoded(e *EncodedNumber) (*EncryptedNumber, error) {
	if err := en.Context.checkSameContext(e.Context); err != nil {
		return nil, err
	}
	ctx := en.Context
	n := ctx.PublicKey.N

	if e.Exponent == en.Exponent {
		encOnly := e.EncryptWithoutObfuscation()
		c := rawAdd(ctx.PublicKey, en.Ciphertext, encOnly.Ciphertext)
		return newEncryptedNumber(ctx, c, en.Exponent, en.isSafe)
	}

	if e.Exponent > en.Exponent {
		// Cheap path: scale the encoded value up by a modular multiplication,
		// lowering its exponent to en's. This may overflow the modulus; no
		// check is performed here, as documented in spec §4.F and §7
		// ("silent overflow").
		delta := e.Exponent - en.Exponent
		pow := ctx.rescalingFactor(delta)
		newVal := new(big.Int).Mod(new(big.Int).Mul(e.Value, pow), n)
		scaled := &EncodedNumber{Context: ctx, Value: newVal, Exponent: en.Exponent}
		return en.AddEncoded(scaled)
	}

	// e.Exponent < en.Exponent: try to raise the encoded side's exponent to
	// en's by an exact division instead of paying for a ciphertext-side
	// modular exponentiation.
	if s, err := ctx.significandFromValue(e.Value); err == nil && s.Sign() > 0 {
		delta := en.Exponent - e.Exponent
		pow := ctx.rescalingFactor(delta)
		if new(big.Int).Mod(s, pow).Sign() == 0 {
			newS := new(big.Int).Div(s, pow)
			scaled := &EncodedNumber{Context: ctx, Value: ctx.valueFromSignificand(newS), Exponent: en.Exponent}
			return en.AddEncoded(scaled)
		}
	}

	// Fall back to the ciphertext-ciphertext path, which rescales en's
	// ciphertext down to e's exponent via a modular exponentiation.
	encAtEExp := e.EncryptWithoutObfuscation()
	return en.AddEncrypted(encAtEExp)
}

// AddEncrypted adds an EncryptedNumber to e, delegating to
// EncryptedNumber.AddEncoded so both call orders share one implementation.
func (e *EncodedNumber) AddEncrypted(en *EncryptedNumber) (*EncryptedNumber, error) {
	return en.AddEncoded(e)
}

// SubtractEncoded subtracts a plaintext value from en.
func (en *EncryptedNumber) SubtractEncoded(e *EncodedNumber) (*EncryptedNumber, error) {
	return en.AddEncoded(e.AdditiveInverse())
}

// SubtractEncrypted subtracts another ciphertext from en.
func (en *EncryptedNumber) SubtractEncrypted(other *EncryptedNumber) (*EncryptedNumber, error) {
	inv, err := other.AdditiveInverse()
	if err != nil {
		return nil, err
	}
	return en.AddEncrypted(inv)
}

// MultiplyEncoded multiplies en by a plaintext scalar e (spec §4.F). When e
// is "large negative" in the signed encoding (n - k <= maxEncoded), the
// ciphertext's modular inverse is raised to n-k instead of k: algebraically
// equivalent, numerically faster because the resulting exponent is smaller.
// The result's isSafe equals en's: the product reveals no further
// randomness than en already carried, though fresh obfuscation is still
// recommended before the result is released to a third party.
func (en *EncryptedNumber) MultiplyEncoded(e *EncodedNumber) (*EncryptedNumber, error) {
	if err := en.Context.checkSameContext(e.Context); err != nil {
		return nil, err
	}
	ctx := en.Context
	pub := ctx.PublicKey

	var resultC *big.Int
	if ctx.Signed && e.Value.Cmp(ctx.minEncoded) >= 0 {
		inv := modInverse(en.Ciphertext, pub.NSquare())
		if inv == nil {
			return nil, ErrInvalidCiphertext
		}
		negK := new(big.Int).Sub(pub.N, e.Value)
		resultC = rawMultiply(pub, inv, negK)
	} else {
		resultC = rawMultiply(pub, en.Ciphertext, e.Value)
	}

	return newEncryptedNumber(ctx, resultC, en.Exponent+e.Exponent, en.isSafe)
}

// MultiplyEncoded multiplies two EncodedNumbers: value = v1*v2 mod n,
// exponent = e1+e2 (spec §4.F). The multiplication is carried out directly
// on the ring representatives, which is valid because negative significands
// are already represented as n-|s|.
func (a *EncodedNumber) MultiplyEncoded(b *EncodedNumber) (*EncodedNumber, error) {
	if err := a.Context.checkSameContext(b.Context); err != nil {
		return nil, err
	}
	value := new(big.Int).Mod(new(big.Int).Mul(a.Value, b.Value), a.Context.PublicKey.N)
	return &EncodedNumber{Context: a.Context, Value: value, Exponent: a.Exponent + b.Exponent}, nil
}

// DivideByInt64 divides en by a nonzero plaintext scalar, implemented as
// multiplication by the encoded reciprocal (spec §4.F). This is lossy for
// non-power-of-base divisors, as documented there.
func (en *EncryptedNumber) DivideByInt64(divisor int64) (*EncryptedNumber, error) {
	if divisor == 0 {
		return nil, invalidArgumentf("division by zero")
	}
	reciprocal, err := en.Context.EncodeFloat64(1.0 / float64(divisor))
	if err != nil {
		return nil, err
	}
	return en.MultiplyEncoded(reciprocal)
}

// DecreaseExponentTo rescales en to a smaller exponent via a modular
// exponentiation of the ciphertext, failing with ErrInvalidArgument if
// target is larger than en's current exponent (spec §4.F).
func (en *EncryptedNumber) DecreaseExponentTo(target int) (*EncryptedNumber, error) {
	if target > en.Exponent {
		return nil, invalidArgumentf("cannot increase exponent from %d to %d", en.Exponent, target)
	}
	pow := en.Context.rescalingFactor(en.Exponent - target)
	c := rawMultiply(en.Context.PublicKey, en.Ciphertext, pow)
	return newEncryptedNumber(en.Context, c, target, en.isSafe)
}

// DecreaseExponentTo rescales e to a smaller exponent via a single modular
// multiplication, failing with ErrInvalidArgument if target is larger than
// e's current exponent (spec §4.F).
func (e *EncodedNumber) DecreaseExponentTo(target int) (*EncodedNumber, error) {
	if target > e.Exponent {
		return nil, invalidArgumentf("cannot increase exponent from %d to %d", e.Exponent, target)
	}
	pow := e.Context.rescalingFactor(e.Exponent - target)
	newVal := new(big.Int).Mod(new(big.Int).Mul(e.Value, pow), e.Context.PublicKey.N)
	return &EncodedNumber{Context: e.Context, Value: newVal, Exponent: target}, nil
}
