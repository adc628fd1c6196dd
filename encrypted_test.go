package paillier

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	sk := testKeyPair(t)
	ctx, err := DefaultContext(&sk.PublicKey)
	require.NoError(t, err)

	for i := int64(-50); i < 50; i++ {
		encoded, err := ctx.EncodeInt(big.NewInt(i))
		require.NoError(t, err)
		cipher, err := encoded.Encrypt()
		require.NoError(t, err)
		decoded, err := cipher.Decrypt(sk)
		require.NoError(t, err)
		v, err := decoded.DecodeInt64()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
}

func TestEncryptProducesSafeCiphertext(t *testing.T) {
	sk := testKeyPair(t)
	ctx, err := DefaultContext(&sk.PublicKey)
	require.NoError(t, err)
	encoded, err := ctx.EncodeInt(big.NewInt(7))
	require.NoError(t, err)

	unsafe := encoded.EncryptWithoutObfuscation()
	require.False(t, unsafe.IsSafe())

	safe, err := unsafe.Obfuscate()
	require.NoError(t, err)
	require.True(t, safe.IsSafe())
	require.NotEqual(t, 0, unsafe.Ciphertext.Cmp(safe.Ciphertext))

	decoded, err := safe.Decrypt(sk)
	require.NoError(t, err)
	v, err := decoded.DecodeInt64()
	require.NoError(t, err)
	require.Equal(t, int64(7), v)
}

func TestObfuscateIsIdempotentOnPlaintext(t *testing.T) {
	sk := testKeyPair(t)
	ctx, err := DefaultContext(&sk.PublicKey)
	require.NoError(t, err)
	encoded, err := ctx.EncodeInt(big.NewInt(3))
	require.NoError(t, err)

	c1, err := encoded.Encrypt()
	require.NoError(t, err)
	c2, err := encoded.Encrypt()
	require.NoError(t, err)
	require.NotEqual(t, 0, c1.Ciphertext.Cmp(c2.Ciphertext))

	d1, err := c1.Decrypt(sk)
	require.NoError(t, err)
	d2, err := c2.Decrypt(sk)
	require.NoError(t, err)
	require.Equal(t, 0, d1.Value.Cmp(d2.Value))
}

func TestDecryptRejectsKeyMismatch(t *testing.T) {
	sk1 := testKeyPair(t)
	sk2 := NewPrivateKeyFromPrimes(big.NewInt(523), big.NewInt(601))

	ctx1, err := DefaultContext(&sk1.PublicKey)
	require.NoError(t, err)
	encoded, err := ctx1.EncodeInt(big.NewInt(1))
	require.NoError(t, err)
	cipher, err := encoded.Encrypt()
	require.NoError(t, err)

	_, err = cipher.Decrypt(sk2)
	require.ErrorIs(t, err, ErrKeyMismatch)
}

func TestNewEncryptedNumberFromPartsValidatesRange(t *testing.T) {
	sk := testKeyPair(t)
	ctx, err := DefaultContext(&sk.PublicKey)
	require.NoError(t, err)

	_, err = NewEncryptedNumberFromParts(ctx, new(big.Int).Neg(one), 0)
	require.ErrorIs(t, err, ErrInvalidCiphertext)

	_, err = NewEncryptedNumberFromParts(ctx, ctx.PublicKey.NSquare(), 0)
	require.ErrorIs(t, err, ErrInvalidCiphertext)
}
