package paillier

import (
	"math/big"
)

var zero = big.NewInt(0)
var one = big.NewInt(1)
var two = big.NewInt(2)

// getRandomNumberInMultiplicativeGroup returns a random element of the
// multiplicative group of integers modulo n, i.e. an r in [1, n) with
// gcd(r, n) = 1.
func getRandomNumberInMultiplicativeGroup(n *big.Int) (*big.Int, error) {
	r, err := cryptoRandInt(n)
	if err != nil {
		return nil, err
	}
	if zero.Cmp(r) == 0 || one.Cmp(new(big.Int).GCD(nil, nil, n, r)) != 0 {
		return getRandomNumberInMultiplicativeGroup(n)
	}
	return r, nil
}
