package paillier

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func encryptFloat(t *testing.T, ctx *EncodingContext, f float64) *EncryptedNumber {
	t.Helper()
	encoded, err := ctx.EncodeFloat64(f)
	require.NoError(t, err)
	cipher, err := encoded.Encrypt()
	require.NoError(t, err)
	return cipher
}

func decryptFloat(t *testing.T, sk *PrivateKey, en *EncryptedNumber) float64 {
	t.Helper()
	decoded, err := en.Decrypt(sk)
	require.NoError(t, err)
	f, err := decoded.DecodeFloat64()
	require.NoError(t, err)
	return f
}

func TestAddEncryptedSameExponent(t *testing.T) {
	sk := testKeyPair(t)
	ctx, err := DefaultContext(&sk.PublicKey)
	require.NoError(t, err)

	a := encryptFloat(t, ctx, 2.0)
	b := encryptFloat(t, ctx, 3.0)
	sum, err := a.AddEncrypted(b)
	require.NoError(t, err)
	require.InDelta(t, 5.0, decryptFloat(t, sk, sum), 1e-9)
}

func TestAddEncryptedDifferentExponents(t *testing.T) {
	// E6: encrypt 1.0 at one exponent, 0.5 at another, add, decrypt -> 1.5;
	// result exponent is the minimum of the two.
	sk := testKeyPair(t)
	ctx, err := DefaultContext(&sk.PublicKey)
	require.NoError(t, err)

	e1, err := ctx.EncodeFloat64WithMaxExponent(1.0, -2)
	require.NoError(t, err)
	e2, err := ctx.EncodeFloat64WithMaxExponent(0.5, -4)
	require.NoError(t, err)
	require.NotEqual(t, e1.Exponent, e2.Exponent)

	c1, err := e1.Encrypt()
	require.NoError(t, err)
	c2, err := e2.Encrypt()
	require.NoError(t, err)

	sum, err := c1.AddEncrypted(c2)
	require.NoError(t, err)
	minExp := e1.Exponent
	if e2.Exponent < minExp {
		minExp = e2.Exponent
	}
	require.Equal(t, minExp, sum.Exponent)
	require.InDelta(t, 1.5, decryptFloat(t, sk, sum), 1e-6)
}

func TestAddEncodedEqualsAddEncrypted(t *testing.T) {
	sk := testKeyPair(t)
	ctx, err := DefaultContext(&sk.PublicKey)
	require.NoError(t, err)

	cipher := encryptFloat(t, ctx, 10.0)
	plain, err := ctx.EncodeFloat64(4.0)
	require.NoError(t, err)

	sum, err := cipher.AddEncoded(plain)
	require.NoError(t, err)
	require.InDelta(t, 14.0, decryptFloat(t, sk, sum), 1e-9)

	sum2, err := plain.AddEncrypted(cipher)
	require.NoError(t, err)
	require.InDelta(t, 14.0, decryptFloat(t, sk, sum2), 1e-9)
}

func TestMultiplyEncodedByScalar(t *testing.T) {
	sk := testKeyPair(t)
	ctx, err := DefaultContext(&sk.PublicKey)
	require.NoError(t, err)

	cipher := encryptFloat(t, ctx, 6.0)
	scalar, err := ctx.EncodeFloat64(7.0)
	require.NoError(t, err)

	product, err := cipher.MultiplyEncoded(scalar)
	require.NoError(t, err)
	require.InDelta(t, 42.0, decryptFloat(t, sk, product), 1e-6)
}

func TestMultiplyEncodedByNegativeScalar(t *testing.T) {
	sk := testKeyPair(t)
	ctx, err := DefaultContext(&sk.PublicKey)
	require.NoError(t, err)

	cipher := encryptFloat(t, ctx, 6.0)
	scalar, err := ctx.EncodeFloat64(-7.0)
	require.NoError(t, err)

	product, err := cipher.MultiplyEncoded(scalar)
	require.NoError(t, err)
	require.InDelta(t, -42.0, decryptFloat(t, sk, product), 1e-6)
}

func TestAdditiveInverseCancels(t *testing.T) {
	sk := testKeyPair(t)
	ctx, err := DefaultContext(&sk.PublicKey)
	require.NoError(t, err)

	cipher := encryptFloat(t, ctx, 9.5)
	inverse, err := cipher.AdditiveInverse()
	require.NoError(t, err)
	sum, err := cipher.AddEncrypted(inverse)
	require.NoError(t, err)
	require.InDelta(t, 0.0, decryptFloat(t, sk, sum), 1e-9)
}

func TestSubtractEncoded(t *testing.T) {
	sk := testKeyPair(t)
	ctx, err := DefaultContext(&sk.PublicKey)
	require.NoError(t, err)

	cipher := encryptFloat(t, ctx, 10.0)
	plain, err := ctx.EncodeFloat64(3.0)
	require.NoError(t, err)

	diff, err := cipher.SubtractEncoded(plain)
	require.NoError(t, err)
	require.InDelta(t, 7.0, decryptFloat(t, sk, diff), 1e-9)
}

func TestArithmeticRejectsContextMismatch(t *testing.T) {
	sk1 := testKeyPair(t)
	ctx1, err := DefaultContext(&sk1.PublicKey)
	require.NoError(t, err)

	sk2 := NewPrivateKeyFromPrimes(big.NewInt(4611686018427387847), big.NewInt(9223372036854775783))
	ctx2, err := DefaultContext(&sk2.PublicKey)
	require.NoError(t, err)

	a := encryptFloat(t, ctx1, 1.0)
	b := encryptFloat(t, ctx2, 1.0)
	_, err = a.AddEncrypted(b)
	require.ErrorIs(t, err, ErrContextMismatch)
}

func TestDecreaseExponentToRejectsIncrease(t *testing.T) {
	sk := testKeyPair(t)
	ctx, err := DefaultContext(&sk.PublicKey)
	require.NoError(t, err)

	cipher := encryptFloat(t, ctx, 1.0)
	_, err = cipher.DecreaseExponentTo(cipher.Exponent + 1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
