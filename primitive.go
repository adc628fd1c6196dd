package paillier

import (
	"math/big"
)

// rawEncryptWithoutObfuscation computes c = (1 + m*n) mod n², the closed
// form that holds because g = n+1 and (1+n)^m ≡ 1 + m*n (mod n²) (spec
// §4.C). m must already be known to lie in [0, n).
func rawEncryptWithoutObfuscation(pub *PublicKey, m *big.Int) *big.Int {
	mn := new(big.Int).Mul(m, pub.N)
	c := new(big.Int).Add(one, mn)
	return c.Mod(c, pub.NSquare())
}

// rawObfuscate re-randomizes ciphertext c by multiplying it with r^n mod n²
// for a fresh r drawn from the multiplicative group modulo n.
func rawObfuscate(pub *PublicKey, c *big.Int) (*big.Int, error) {
	r, err := getRandomNumberInMultiplicativeGroup(pub.N)
	if err != nil {
		return nil, err
	}
	rn := modPowSecure(r, pub.N, pub.NSquare())
	result := new(big.Int).Mul(c, rn)
	return result.Mod(result, pub.NSquare()), nil
}

// rawAdd returns (c1 * c2) mod n², the Paillier ciphertext-addition
// operator.
func rawAdd(pub *PublicKey, c1, c2 *big.Int) *big.Int {
	result := new(big.Int).Mul(c1, c2)
	return result.Mod(result, pub.NSquare())
}

// rawMultiply returns c^k mod n² for a plaintext scalar k in [0, n). The
// exponent may be secret (e.g. a blinded scalar), so this always routes
// through modPowSecure.
func rawMultiply(pub *PublicKey, c, k *big.Int) *big.Int {
	return modPowSecure(c, k, pub.NSquare())
}

// rawDecrypt decrypts ciphertext c using the CRT form of spec §4.C, about
// four times faster than the single-modulus λ form because each modular
// exponentiation operates on a modulus half the bit length of n².
func rawDecrypt(sk *PrivateKey, c *big.Int) *big.Int {
	pMinus1 := new(big.Int).Sub(sk.P, one)
	qMinus1 := new(big.Int).Sub(sk.Q, one)

	cp := modPowSecure(c, pMinus1, sk.PSquare)
	mp := new(big.Int).Mod(new(big.Int).Mul(L(cp, sk.P), sk.Hp), sk.P)

	cq := modPowSecure(c, qMinus1, sk.QSquare)
	mq := new(big.Int).Mod(new(big.Int).Mul(L(cq, sk.Q), sk.Hq), sk.Q)

	// CRT recombination: m = mp + p * ((mq - mp) * p^-1 mod q)
	diff := new(big.Int).Mod(new(big.Int).Sub(mq, mp), sk.Q)
	h := new(big.Int).Mod(new(big.Int).Mul(diff, sk.PInverseModQ), sk.Q)
	m := new(big.Int).Add(mp, new(big.Int).Mul(sk.P, h))
	return m.Mod(m, sk.N)
}

// rawDecryptLambda decrypts using only the totient λ, for callers that
// have not (or cannot) recover p, q. Kept as the documented fallback named
// in spec §4.C; NewPrivateKeyFromLambda itself always recovers p, q so the
// CRT path is used by EncryptedNumber.Decrypt.
func rawDecryptLambda(pub *PublicKey, lambda *big.Int, c *big.Int) *big.Int {
	n2 := pub.NSquare()
	u := modPowSecure(c, lambda, n2)
	l := L(u, pub.N)
	lambdaInv := modInverse(lambda, pub.N)
	m := new(big.Int).Mul(l, lambdaInv)
	return m.Mod(m, pub.N)
}
