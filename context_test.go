package paillier

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewContextRejectsBadBase(t *testing.T) {
	sk := testKeyPair(t)
	_, err := NewContext(&sk.PublicKey, 1, true, 8)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewContextRejectsBadPrecision(t *testing.T) {
	sk := testKeyPair(t)
	bitLen := sk.N.BitLen()

	_, err := NewContext(&sk.PublicKey, 16, false, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewContext(&sk.PublicKey, 16, false, bitLen+1)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewContext(&sk.PublicKey, 16, true, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestContextEqual(t *testing.T) {
	sk := testKeyPair(t)
	c1, err := DefaultContext(&sk.PublicKey)
	require.NoError(t, err)
	c2, err := DefaultContext(&sk.PublicKey)
	require.NoError(t, err)
	require.True(t, c1.Equal(c2))

	c3, err := NewContext(&sk.PublicKey, 10, true, sk.N.BitLen())
	require.NoError(t, err)
	require.False(t, c1.Equal(c3))
}

func TestSignificandRingMapping(t *testing.T) {
	sk := testKeyPair(t)
	ctx, err := DefaultContext(&sk.PublicKey)
	require.NoError(t, err)

	for _, s := range []int64{0, 1, -1, 100, -100} {
		sig := big.NewInt(s)
		v := ctx.valueFromSignificand(sig)
		back, err := ctx.significandFromValue(v)
		require.NoError(t, err)
		require.Equal(t, 0, sig.Cmp(back))
	}
}

func TestRescalingFactor(t *testing.T) {
	sk := testKeyPair(t)
	ctx, err := DefaultContext(&sk.PublicKey)
	require.NoError(t, err)
	require.Equal(t, 0, ctx.rescalingFactor(2).Cmp(big.NewInt(16*16)))
	require.Equal(t, 0, ctx.rescalingFactor(-2).Cmp(big.NewInt(16*16)))
}
