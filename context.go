package paillier

import (
	"math/big"
)

// DefaultBase is the base used when a caller does not otherwise specify
// one (spec §3).
const DefaultBase = 16

// EncodingContext is the immutable configuration that binds a base-B
// significand/exponent encoding to a PublicKey (spec §3). Two contexts are
// interchangeable in a binary operation only if they are Equal.
type EncodingContext struct {
	PublicKey *PublicKey
	Base      *big.Int
	Signed    bool
	Precision int

	encSpace       *big.Int
	maxEncoded     *big.Int
	minEncoded     *big.Int
	maxSignificand *big.Int
	minSignificand *big.Int
}

// NewContext builds an EncodingContext for pub with the given base,
// signedness and precision (bits of the encoding space, spec §3). base must
// be >= 2; precision must be in [1, bitlength(n)], and >= 2 when signed is
// true (a 1-bit signed space cannot hold both signs).
func NewContext(pub *PublicKey, base int, signed bool, precision int) (*EncodingContext, error) {
	if base < 2 {
		return nil, invalidArgumentf("base %d must be >= 2", base)
	}
	bitLen := pub.N.BitLen()
	if precision < 1 || precision > bitLen {
		return nil, invalidArgumentf("precision %d out of range [1, %d]", precision, bitLen)
	}
	if signed && precision < 2 {
		return nil, invalidArgumentf("signed context requires precision >= 2")
	}

	ctx := &EncodingContext{
		PublicKey: pub,
		Base:      big.NewInt(int64(base)),
		Signed:    signed,
		Precision: precision,
	}

	if precision == bitLen {
		ctx.encSpace = new(big.Int).Set(pub.N)
	} else {
		ctx.encSpace = new(big.Int).Lsh(one, uint(precision))
	}

	if !signed {
		ctx.maxEncoded = new(big.Int).Sub(ctx.encSpace, one)
		ctx.minEncoded = big.NewInt(0)
		ctx.maxSignificand = new(big.Int).Set(ctx.maxEncoded)
		ctx.minSignificand = big.NewInt(0)
	} else {
		half := new(big.Int).Div(new(big.Int).Add(ctx.encSpace, one), two)
		ctx.maxEncoded = new(big.Int).Sub(half, one)
		ctx.minEncoded = new(big.Int).Sub(pub.N, ctx.maxEncoded)
		ctx.maxSignificand = new(big.Int).Set(ctx.maxEncoded)
		ctx.minSignificand = new(big.Int).Neg(ctx.maxEncoded)
	}

	return ctx, nil
}

// DefaultContext builds a signed, full-precision context with the default
// base, the configuration used by the CLI of spec §6.
func DefaultContext(pub *PublicKey) (*EncodingContext, error) {
	return NewContext(pub, DefaultBase, true, pub.N.BitLen())
}

// Equal reports whether two contexts are interchangeable in a binary
// operation: same public key, same signedness, same precision, same base.
func (c *EncodingContext) Equal(other *EncodingContext) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.PublicKey.Equal(other.PublicKey) &&
		c.Signed == other.Signed &&
		c.Precision == other.Precision &&
		c.Base.Cmp(other.Base) == 0
}

// checkSameContext returns ErrContextMismatch if c and other are not Equal.
func (c *EncodingContext) checkSameContext(other *EncodingContext) error {
	if !c.Equal(other) {
		return ErrContextMismatch
	}
	return nil
}

// rescalingFactor returns B^deltaE, used to shift an encoded significand
// from exponent e to exponent e-deltaE (spec §4.D).
func (c *EncodingContext) rescalingFactor(deltaE int) *big.Int {
	if deltaE < 0 {
		deltaE = -deltaE
	}
	return new(big.Int).Exp(c.Base, big.NewInt(int64(deltaE)), nil)
}

// isValidSignificand reports whether s is within [minSignificand, maxSignificand].
func (c *EncodingContext) isValidSignificand(s *big.Int) bool {
	return s.Cmp(c.minSignificand) >= 0 && s.Cmp(c.maxSignificand) <= 0
}

// SignificandOf recovers the signed significand for a raw ring value v
// under c's configured base, signedness and precision, exactly as decoding
// would (spec §4.D); it fails with ErrDecodeOverflow when v falls outside
// c's valid encoded range. Exported so callers outside this package that
// hold a raw ring value — notably paillier/mock's overflow check, which
// needs the context's actual precision-aware bounds rather than a fixed
// proxy — can interpret it the same way the real package does.
func (c *EncodingContext) SignificandOf(v *big.Int) (*big.Int, error) {
	return c.significandFromValue(v)
}
