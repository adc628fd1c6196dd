package paillier

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModPow(t *testing.T) {
	require.Equal(t, 0, modPow(big.NewInt(4), big.NewInt(13), big.NewInt(497)).Cmp(big.NewInt(445)))
}

func TestModInverse(t *testing.T) {
	inv := modInverse(big.NewInt(3), big.NewInt(11))
	require.Equal(t, 0, inv.Cmp(big.NewInt(4)))
	require.Nil(t, modInverse(big.NewInt(2), big.NewInt(4)))
}

func TestIsqrt(t *testing.T) {
	for _, n := range []int64{0, 1, 2, 4, 15, 16, 17, 1000000} {
		root := isqrt(big.NewInt(n))
		require.True(t, new(big.Int).Mul(root, root).Cmp(big.NewInt(n)) <= 0)
		next := new(big.Int).Add(root, one)
		require.True(t, new(big.Int).Mul(next, next).Cmp(big.NewInt(n)) > 0)
	}
}

func TestProbablePrime(t *testing.T) {
	p, err := probablePrime(32)
	require.NoError(t, err)
	require.True(t, p.ProbablyPrime(20))
	require.Equal(t, 32, p.BitLen())
}
