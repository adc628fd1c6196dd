package paillier

import (
	"crypto/rand"
	"math/big"
)

// cryptoRandInt draws a uniform random value in [0, max) from the package
// crypto/rand source.
func cryptoRandInt(max *big.Int) (*big.Int, error) {
	return rand.Int(rand.Reader, max)
}

// modPow computes base^exp mod m for a non-secret exponent.
func modPow(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// modPowSecure computes base^exp mod m where exp may be secret (a private
// key component or fresh randomness). math/big.Int.Exp already routes odd
// moduli through a Montgomery ladder internally, which is the best
// constant-time-leaning routine available anywhere in the example corpus;
// every call site that handles a secret exponent (obfuscation, decryption,
// ciphertext scalar multiplication) goes through this one indirection so the
// choice can be revisited in one place if a dedicated constant-time bigint
// library is ever adopted.
func modPowSecure(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// modInverse returns g^-1 mod m, or nil if g has no inverse modulo m.
func modInverse(g, m *big.Int) *big.Int {
	return new(big.Int).ModInverse(g, m)
}

// isqrt returns the floor of the square root of n via Newton's method. n
// must be non-negative. The first iterate is produced by the same update
// rule as every later one (seeding x at n, whose own update is (n/n+n)/2);
// a separate ad hoc seed used to return n unconverged for small n (e.g.
// n=2), since it could compare equal to x before the loop ever corrected it.
func isqrt(n *big.Int) *big.Int {
	if n.Sign() == 0 {
		return big.NewInt(0)
	}
	x := new(big.Int).Set(n)
	y := newtonStep(n, x)
	for y.Cmp(x) < 0 {
		x.Set(y)
		y = newtonStep(n, x)
	}
	return x
}

// newtonStep computes (n/x + x)/2, one iteration toward floor(sqrt(n)).
func newtonStep(n, x *big.Int) *big.Int {
	return new(big.Int).Div(new(big.Int).Add(new(big.Int).Div(n, x), x), two)
}

// probablePrime draws a random probable prime of the given bit length using
// a cryptographically secure source.
func probablePrime(bits int) (*big.Int, error) {
	return rand.Prime(rand.Reader, bits)
}
