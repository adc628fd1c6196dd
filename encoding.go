package paillier

import (
	"log"
	"math"
	"math/big"
)

// EncodedNumber is a rational x = s*B^e represented as a significand s
// reduced modulo n (spec §3). All constructors return a value already
// validated against its EncodingContext's significand bounds.
type EncodedNumber struct {
	Context  *EncodingContext
	Value    *big.Int
	Exponent int
}

// valueFromSignificand maps a significand s in [minSignificand, maxSignificand]
// to its ring representative v in [0, n): non-negative s map to themselves,
// negative s map to n - |s| (spec §3).
func (c *EncodingContext) valueFromSignificand(s *big.Int) *big.Int {
	if s.Sign() < 0 {
		return new(big.Int).Add(c.PublicKey.N, s)
	}
	return new(big.Int).Set(s)
}

// significandFromValue is the inverse of valueFromSignificand: it recovers
// the significand from a ring value v, or fails with ErrDecodeOverflow if v
// lies in neither the non-negative nor the (signed) negative range (spec
// §4.D, "corrupted significand").
func (c *EncodingContext) significandFromValue(v *big.Int) (*big.Int, error) {
	if v.Cmp(c.maxEncoded) <= 0 {
		return new(big.Int).Set(v), nil
	}
	if c.Signed && v.Cmp(c.minEncoded) >= 0 {
		return new(big.Int).Sub(v, c.PublicKey.N), nil
	}
	return nil, decodeOverflowf("corrupted significand: value %v outside valid range", v)
}

// roundHalfUp returns floor(r + 1/2), ties rounding toward +infinity,
// computed exactly over big.Rat so no float64 rounding error leaks in.
func roundHalfUp(r *big.Rat) *big.Int {
	shifted := new(big.Rat).Add(r, big.NewRat(1, 2))
	return new(big.Int).Div(shifted.Num(), shifted.Denom())
}

// roundHalfEven returns the nearest integer to r, ties rounding to even,
// used by the BigDecimal-equivalent constructor (spec §4.D).
func roundHalfEven(r *big.Rat) *big.Int {
	floor := new(big.Int).Div(r.Num(), r.Denom())
	rem := new(big.Rat).Sub(r, new(big.Rat).SetInt(floor))
	cmp := rem.Cmp(big.NewRat(1, 2))
	if cmp < 0 {
		return floor
	}
	if cmp > 0 {
		return new(big.Int).Add(floor, one)
	}
	if floor.Bit(0) == 0 {
		return floor
	}
	return new(big.Int).Add(floor, one)
}

// innerEncode computes round_half_up(x * B^-e) as an exact integer (spec
// §4.D), operating on x as a big.Rat so float64 inputs lose no precision
// beyond what they already carry.
func innerEncode(ctx *EncodingContext, x *big.Rat, e int) *big.Int {
	absE := e
	if absE < 0 {
		absE = -absE
	}
	pow := new(big.Int).Exp(ctx.Base, big.NewInt(int64(absE)), nil)
	var scaled *big.Rat
	if e >= 0 {
		scaled = new(big.Rat).Quo(x, new(big.Rat).SetInt(pow))
	} else {
		scaled = new(big.Rat).Mul(x, new(big.Rat).SetInt(pow))
	}
	return roundHalfUp(scaled)
}

func (ctx *EncodingContext) buildFromSignificand(s *big.Int, e int) (*EncodedNumber, error) {
	if !ctx.isValidSignificand(s) {
		return nil, encodeOverflowf("significand %v out of range [%v, %v]", s, ctx.minSignificand, ctx.maxSignificand)
	}
	return &EncodedNumber{Context: ctx, Value: ctx.valueFromSignificand(s), Exponent: e}, nil
}

// EncodeInt encodes an integer, dividing out trailing factors of the
// context's base to find the smallest-magnitude significand (spec §4.D).
func (ctx *EncodingContext) EncodeInt(k *big.Int) (*EncodedNumber, error) {
	s := new(big.Int).Set(k)
	e := 0
	if s.Sign() != 0 {
		mod := new(big.Int)
		for {
			mod.Mod(s, ctx.Base)
			if mod.Sign() != 0 {
				break
			}
			s.Div(s, ctx.Base)
			e++
		}
	}
	return ctx.buildFromSignificand(s, e)
}

// binaryExponent returns floor(log2|d|), i.e. the base-2 exponent of the
// leading bit of a normal, non-zero float64.
func binaryExponent(d float64) int {
	return math.Ilogb(d)
}

// exponentForFloat computes the precision-aware exponent e of spec §4.D:
// the binary LSB exponent of d's 53-bit mantissa, translated into base B.
func exponentForFloat(ctx *EncodingContext, d float64) int {
	be := binaryExponent(d)
	log2Base := math.Log2(float64(ctx.Base.Int64()))
	return int(math.Floor(float64(be+1-53) / log2Base))
}

// EncodeFloat64 encodes an IEEE-754 double, rejecting NaN/±Inf and (in an
// unsigned context) negatives (spec §4.D).
func (ctx *EncodingContext) EncodeFloat64(d float64) (*EncodedNumber, error) {
	return ctx.EncodeFloat64WithMaxExponent(d, math.MaxInt32)
}

// EncodeFloat64WithMaxExponent encodes d like EncodeFloat64 but caps the
// chosen exponent at maxExponent (spec §4.D).
func (ctx *EncodingContext) EncodeFloat64WithMaxExponent(d float64, maxExponent int) (*EncodedNumber, error) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return nil, encodeOverflowf("cannot encode NaN or infinite value")
	}
	if !ctx.Signed && d < 0 {
		return nil, encodeOverflowf("negative value %v in unsigned context", d)
	}
	if d == 0 {
		return ctx.buildFromSignificand(big.NewInt(0), 0)
	}

	e := exponentForFloat(ctx, d)
	if e > maxExponent {
		e = maxExponent
	}

	x := new(big.Rat).SetFloat64(d)
	if x == nil {
		return nil, encodeOverflowf("cannot represent %v exactly as a rational", d)
	}
	s := innerEncode(ctx, x, e)
	return ctx.buildFromSignificand(s, e)
}

// EncodeFloat64WithPrecision encodes d choosing the largest exponent e with
// B^e <= precision, 0 < precision <= 1 (spec §4.D), so the absolute
// rounding step is at most precision whatever the magnitude of d.
func (ctx *EncodingContext) EncodeFloat64WithPrecision(d float64, precision float64) (*EncodedNumber, error) {
	if precision <= 0 || precision > 1 {
		return nil, invalidArgumentf("precision %v out of range (0, 1]", precision)
	}
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return nil, encodeOverflowf("cannot encode NaN or infinite value")
	}
	if !ctx.Signed && d < 0 {
		return nil, encodeOverflowf("negative value %v in unsigned context", d)
	}
	if d == 0 {
		return ctx.buildFromSignificand(big.NewInt(0), 0)
	}

	logBase := math.Log(float64(ctx.Base.Int64()))
	e := int(math.Floor(math.Log(precision) / logBase))

	x := new(big.Rat).SetFloat64(d)
	s := innerEncode(ctx, x, e)
	return ctx.buildFromSignificand(s, e)
}

// EncodeRat encodes an exact rational at a given relative precision in bits
// of the context's base, the Go-idiomatic stand-in for the BigDecimal
// overload of spec §4.D (Go has no arbitrary-precision decimal type in the
// example corpus or the standard library); ties round half-even, matching
// the spec's rule for this overload specifically.
func (ctx *EncodingContext) EncodeRat(x *big.Rat, precision int) (*EncodedNumber, error) {
	if precision < 1 {
		return nil, invalidArgumentf("precision %d must be >= 1", precision)
	}
	if !ctx.Signed && x.Sign() < 0 {
		return nil, encodeOverflowf("negative value %v in unsigned context", x)
	}
	if x.Sign() == 0 {
		return ctx.buildFromSignificand(big.NewInt(0), 0)
	}

	f, _ := x.Float64()
	logBase := math.Log(math.Abs(f)) / math.Log(float64(ctx.Base.Int64()))
	e := int(math.Floor(logBase)) - precision

	s := roundHalfEven(func() *big.Rat {
		absE := e
		if absE < 0 {
			absE = -absE
		}
		pow := new(big.Int).Exp(ctx.Base, big.NewInt(int64(absE)), nil)
		if e >= 0 {
			return new(big.Rat).Quo(x, new(big.Rat).SetInt(pow))
		}
		return new(big.Rat).Mul(x, new(big.Rat).SetInt(pow))
	}())
	return ctx.buildFromSignificand(s, e)
}

// DecodeBigInt recovers the exact integer value of e, when its exponent is
// non-negative or its significand is evenly divisible by B^-e. Otherwise it
// logs a lossy-decode warning and returns the truncated quotient (spec
// §4.D): a lossy decode is an acceptable outcome, but must be signalled.
func (e *EncodedNumber) DecodeBigInt() (*big.Int, error) {
	s, err := e.Context.significandFromValue(e.Value)
	if err != nil {
		return nil, err
	}
	if e.Exponent >= 0 {
		pow := e.Context.rescalingFactor(e.Exponent)
		return new(big.Int).Mul(s, pow), nil
	}
	pow := e.Context.rescalingFactor(e.Exponent)
	q, r := new(big.Int).QuoRem(s, pow, new(big.Int))
	if r.Sign() != 0 {
		log.Printf("paillier: lossy decode of encoded value %v at exponent %d (base %v does not evenly divide)", s, e.Exponent, e.Context.Base)
	}
	return q, nil
}

// DecodeFloat64 recovers a float64 approximation of e's value, computed at
// extended precision (200 bits, the closest stdlib stand-in for the
// decimal128 intermediate named in spec §4.D — no decimal128 type exists in
// the standard library or anywhere in the example corpus) before casting
// down.
func (e *EncodedNumber) DecodeFloat64() (float64, error) {
	s, err := e.Context.significandFromValue(e.Value)
	if err != nil {
		return 0, err
	}
	sf := new(big.Float).SetPrec(200).SetInt(s)
	pow := new(big.Float).SetPrec(200).SetInt(e.Context.rescalingFactor(e.Exponent))

	var result *big.Float
	if e.Exponent >= 0 {
		result = new(big.Float).SetPrec(200).Mul(sf, pow)
	} else {
		result = new(big.Float).SetPrec(200).Quo(sf, pow)
	}

	f, _ := result.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, decodeOverflowf("decoded value overflows float64")
	}
	return f, nil
}

// DecodeInt64 decodes e as an exact integer and fails with ErrDecodeOverflow
// if it does not fit in an int64 (spec §4.D, "decodeLong").
func (e *EncodedNumber) DecodeInt64() (int64, error) {
	v, err := e.DecodeBigInt()
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, decodeOverflowf("decoded value %v does not fit in an int64", v)
	}
	return v.Int64(), nil
}
