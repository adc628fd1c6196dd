package paillier

import (
	"math/big"
)

// PublicKey is the Paillier public key of the PAI-GN1 variant: generator
// g = n+1. Identity is determined solely by N. Immutable once constructed.
type PublicKey struct {
	N       *big.Int
	G       *big.Int
	nSquare *big.Int
}

// NewPublicKey builds a PublicKey for modulus n, caching n² and setting
// g = n+1 as required by the PAI-GN1 variant.
func NewPublicKey(n *big.Int) *PublicKey {
	return &PublicKey{
		N:       n,
		G:       new(big.Int).Add(n, one),
		nSquare: new(big.Int).Mul(n, n),
	}
}

// NSquare returns the cached value of N².
func (pk *PublicKey) NSquare() *big.Int {
	return pk.nSquare
}

// Equal reports whether pk and other share the same modulus, which is the
// sole determinant of PublicKey identity (spec §3).
func (pk *PublicKey) Equal(other *PublicKey) bool {
	if pk == nil || other == nil {
		return pk == other
	}
	return pk.N.Cmp(other.N) == 0
}
