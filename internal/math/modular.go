// Package math provides modular arithmetic primitives over prime fields
package math

import "math/big"

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Normalize reduces an arbitrary integer into the canonical residue range
// [0, p). Inputs may be negative, e.g. intermediate results of a subtraction.
// big.Int.Mod already returns a non-negative residue for positive p; the
// double-reduction form is kept so the function stays correct under any
// modulo semantics.
func Normalize(n, p *big.Int) *big.Int {
	z := new(big.Int).Mod(n, p)
	z.Add(z, p)
	return z.Mod(z, p)
}

// FermatInverse computes the multiplicative inverse of n mod p using
// Fermat's little theorem: n^(p-2) mod p. p must be prime; primality is a
// caller precondition and is not checked here. A zero residue has no inverse
// and is reported as ErrZeroOperand rather than silently yielding 0.
func FermatInverse(n, p *big.Int) (*big.Int, error) {
	r := Normalize(n, p)
	if r.Sign() == 0 {
		return nil, ErrZeroOperand
	}

	e := new(big.Int).Sub(p, two)
	return r.Exp(r, e, p), nil
}

// Legendre computes the Legendre symbol (n|p) by Euler's criterion:
// 1 if n is a nonzero quadratic residue mod p, -1 if it is a non-residue,
// 0 if n is congruent to zero.
func Legendre(n, p *big.Int) int {
	r := Normalize(n, p)
	if r.Sign() == 0 {
		return 0
	}

	// n^((p-1)/2) mod p is 1 for residues and p-1 for non-residues
	e := new(big.Int).Sub(p, one)
	e.Rsh(e, 1)
	v := r.Exp(r, e, p)

	if v.Cmp(one) == 0 {
		return 1
	}
	return -1
}

// SqrtModP computes a square root of n mod p for an odd prime p. The other
// root is its negation mod p. Returns ErrNoSquareRoot when n is not a
// quadratic residue.
func SqrtModP(n, p *big.Int) (*big.Int, error) {
	a := Normalize(n, p)
	if a.Sign() == 0 {
		return big.NewInt(0), nil
	}
	if Legendre(a, p) != 1 {
		return nil, ErrNoSquareRoot
	}

	// For p ≡ 3 (mod 4) the root is a^((p+1)/4) mod p
	if p.Bit(1) == 1 {
		e := new(big.Int).Add(p, one)
		e.Rsh(e, 2)
		return new(big.Int).Exp(a, e, p), nil
	}

	return tonelliShanks(a, p), nil
}

// tonelliShanks finds a square root of the quadratic residue a mod p for
// p ≡ 1 (mod 4)
func tonelliShanks(a, p *big.Int) *big.Int {
	// Write p - 1 = q * 2^s with q odd
	q := new(big.Int).Sub(p, one)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	// Any quadratic non-residue works as the seed
	z := big.NewInt(2)
	for Legendre(z, p) != -1 {
		z.Add(z, one)
	}

	m := s
	c := new(big.Int).Exp(z, q, p)
	t := new(big.Int).Exp(a, q, p)

	e := new(big.Int).Add(q, one)
	e.Rsh(e, 1)
	r := new(big.Int).Exp(a, e, p)

	for t.Cmp(one) != 0 {
		// Least i with t^(2^i) = 1; guaranteed i < m for a residue
		i := 0
		t2 := new(big.Int).Set(t)
		for t2.Cmp(one) != 0 {
			t2.Mul(t2, t2).Mod(t2, p)
			i++
		}

		b := new(big.Int).Lsh(one, uint(m-i-1))
		b.Exp(c, b, p)

		m = i
		c.Mul(b, b).Mod(c, p)
		t.Mul(t, c).Mod(t, p)
		r.Mul(r, b).Mod(r, p)
	}

	return r
}
