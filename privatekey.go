package paillier

import (
	"math/big"
)

// PrivateKey is the Paillier private key. It always carries the prime
// factors and the CRT precomputations of spec §3, regardless of whether it
// was constructed from p, q directly or recovered from a bare totient λ
// (spec §9: factor recovery happens once, here, not on every decryption).
type PrivateKey struct {
	PublicKey

	Lambda *big.Int // λ = (p-1)(q-1)

	P, Q         *big.Int
	PSquare      *big.Int
	QSquare      *big.Int
	PInverseModQ *big.Int // p^-1 mod q
	Hp           *big.Int // L(g^(p-1) mod p^2, p)^-1 mod p
	Hq           *big.Int // L(g^(q-1) mod q^2, q)^-1 mod q
}

// L implements L(x, n) = (x-1)/n with flooring (integer) division, as used
// throughout Paillier decryption (spec §4.C).
func L(x, n *big.Int) *big.Int {
	t := new(big.Int).Sub(x, one)
	return new(big.Int).Div(t, n)
}

// NewPrivateKeyFromPrimes builds a PrivateKey directly from its two prime
// factors, computing λ and every CRT term up front. The factors are stored
// in ascending order (P < Q), so a key rebuilt from λ by
// NewPrivateKeyFromLambda has the same P and Q.
func NewPrivateKeyFromPrimes(p, q *big.Int) *PrivateKey {
	if p.Cmp(q) > 0 {
		p, q = q, p
	}
	n := new(big.Int).Mul(p, q)
	pub := NewPublicKey(n)

	pMinus1 := new(big.Int).Sub(p, one)
	qMinus1 := new(big.Int).Sub(q, one)
	lambda := new(big.Int).Mul(pMinus1, qMinus1)

	sk := &PrivateKey{
		PublicKey: *pub,
		Lambda:    lambda,
		P:         new(big.Int).Set(p),
		Q:         new(big.Int).Set(q),
		PSquare:   new(big.Int).Mul(p, p),
		QSquare:   new(big.Int).Mul(q, q),
	}
	sk.PInverseModQ = modInverse(sk.P, sk.Q)
	sk.Hp = sk.computeH(sk.P, sk.PSquare)
	sk.Hq = sk.computeH(sk.Q, sk.QSquare)
	return sk
}

// computeH returns L(g^(prime-1) mod primeSquare, prime)^-1 mod prime, the
// per-prime CRT decryption constant of spec §3.
func (sk *PrivateKey) computeH(prime, primeSquare *big.Int) *big.Int {
	expo := new(big.Int).Sub(prime, one)
	gExp := modPowSecure(sk.G, expo, primeSquare)
	l := L(gExp, prime)
	return modInverse(l, prime)
}

// NewPrivateKeyFromLambda recovers p and q from a bare totient λ by solving
// x² - (n+1-λ)x + n = 0 over the integers via exact integer square root
// (spec §3, §9), then delegates to NewPrivateKeyFromPrimes so CRT terms are
// always available afterwards.
func NewPrivateKeyFromLambda(n, lambda *big.Int) (*PrivateKey, error) {
	if lambda.Sign() <= 0 || lambda.Cmp(n) >= 0 {
		return nil, invalidArgumentf("lambda %v out of range (0, %v)", lambda, n)
	}

	// s = n + 1 - lambda = p + q
	s := new(big.Int).Sub(new(big.Int).Add(n, one), lambda)

	// discriminant = s^2 - 4n
	disc := new(big.Int).Sub(new(big.Int).Mul(s, s), new(big.Int).Mul(big.NewInt(4), n))
	if disc.Sign() < 0 {
		return nil, invalidArgumentf("lambda %v does not correspond to a valid modulus", lambda)
	}
	root := isqrt(disc)
	if new(big.Int).Mul(root, root).Cmp(disc) != 0 {
		return nil, invalidArgumentf("lambda %v does not correspond to a valid modulus", lambda)
	}

	p := new(big.Int).Div(new(big.Int).Add(s, root), two)
	q := new(big.Int).Div(new(big.Int).Sub(s, root), two)
	if new(big.Int).Mul(p, q).Cmp(n) != 0 {
		return nil, invalidArgumentf("lambda %v does not correspond to a valid modulus", lambda)
	}

	return NewPrivateKeyFromPrimes(p, q), nil
}
