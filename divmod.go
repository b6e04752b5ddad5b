package fastbigint

import "math/big"

// DivModBailoutBits is the divisor bit-length below which DivMod defers to
// math/big's own QuoRem instead of recursing. Below this size the native
// implementation outruns anything built on top of it.
const DivModBailoutBits = 10000

// divModBailoutBits backs DivModBailoutBits for the algorithm itself. It is
// a var rather than a reference to the constant so package-internal tests
// can lower it and exercise the recursive branches on small operands;
// nothing outside the package can observe or change it, so the exported
// threshold stays effectively fixed as spec'd.
var divModBailoutBits uint = DivModBailoutBits

// DivMod returns the quotient and remainder of m divided by n using
// floored division: q = floor(m/n), and r takes the sign of n (or is
// zero). It panics if n is zero, the same way (*big.Int).DivMod does,
// since the division-by-zero check is never performed independently of
// the host's own schoolbook primitive.
func DivMod(m, n *big.Int) (q, r *big.Int) {
	mAbs := new(big.Int).Abs(m)
	nAbs := new(big.Int).Abs(n)
	q, r = divModPositive(mAbs, nAbs)

	switch {
	case m.Sign() >= 0 && n.Sign() > 0:
		return q, r
	case m.Sign() < 0 && n.Sign() < 0:
		return q, r.Neg(r)
	case r.Sign() == 0:
		return q.Neg(q), r
	}

	q.Add(q, bigOne)
	q.Neg(q)
	if m.Sign() > 0 {
		r.Add(n, r)
	} else {
		r.Sub(n, r)
	}
	return q, r
}

// divModPositive computes q, r such that m = q*n + r and 0 <= r < n, for
// m >= 0 and n > 0. It recurses by bit-length, splitting a 2K-by-K-bit
// division into K-by-(K/2) subdivisions plus corrective additions; see
// DivMod for the signed wrapper and the floored-division sign rules.
func divModPositive(m, n *big.Int) (q, r *big.Int) {
	k := uint(n.BitLen())

	if k < divModBailoutBits {
		r = new(big.Int)
		q, _ = new(big.Int).QuoRem(m, n, r)
		return q, r
	}

	mLen := uint(m.BitLen())

	switch {
	case mLen < k:
		return new(big.Int), new(big.Int).Set(m)

	case mLen == k:
		q = new(big.Int)
		r = new(big.Int).Set(m)
		for r.Cmp(n) >= 0 {
			r.Sub(r, n)
			q.Add(q, bigOne)
		}
		return q, r

	case mLen < 2*k:
		return divModUnequal(m, n, mLen, k)

	case mLen == 2*k:
		return divModIdeal(m, n, k)
	}

	return divModLong(m, n, k)
}

// divModUnequal handles k < mLen < 2*k: m is longer than n but has less
// excess bit-length than the ideal 2*k case, too little for a full split. It borrows the
// top bits from both operands to manufacture an (approximately) ideal
// division, then corrects.
func divModUnequal(m, n *big.Int, mLen, k uint) (q, r *big.Int) {
	excess := mLen - k
	highBits := k - excess

	mHi, mLo := split(m, highBits)
	nHi, nLo := split(n, highBits)
	// highBits > 0 here since excess < k (mLen < 2*k), so nHi retains at
	// least the top bit of n and is never zero.

	q, r = divModPositive(mHi, nHi)

	r.Lsh(r, highBits)
	r.Or(r, mLo)
	r.Sub(r, new(big.Int).Mul(nLo, q))

	for r.Sign() < 0 {
		r.Add(r, n)
		q.Sub(q, bigOne)
	}
	for r.Cmp(n) >= 0 {
		r.Sub(r, n)
		q.Add(q, bigOne)
	}
	return q, r
}

// divModIdeal handles the mLen == 2*k case: m splits cleanly into a
// top-k-bit slice and two half-width slices of n's bit-length, reducing
// the division to two k-by-(k/2) subdivisions.
func divModIdeal(m, n *big.Int, k uint) (q, r *big.Int) {
	kLo := k / 2
	kHi := k - kLo

	mHi, mRest := split(m, k)
	mMid, mLo := split(mRest, kHi)
	nHi, nLo := split(n, kLo)

	q1, r1 := divModPositive(mHi, nHi)
	r1.Lsh(r1, kLo)
	r1.Or(r1, mMid)
	r1.Sub(r1, new(big.Int).Mul(nLo, q1))

	for r1.Sign() < 0 {
		r1.Add(r1, n)
		q1.Sub(q1, bigOne)
	}
	for r1.Cmp(n) >= 0 {
		r1.Sub(r1, n)
		q1.Add(q1, bigOne)
	}

	q2, r2 := divModPositive(r1, nHi)
	if k&1 != 0 {
		q2.Lsh(q2, 1)
	}
	r2.Lsh(r2, kHi)
	r2.Or(r2, mLo)
	r2.Sub(r2, new(big.Int).Mul(nLo, q2))

	for r2.Sign() < 0 {
		r2.Add(r2, n)
		q2.Sub(q2, bigOne)
	}
	for r2.Cmp(n) >= 0 {
		r2.Sub(r2, n)
		q2.Add(q2, bigOne)
	}

	q = new(big.Int).Lsh(q1, kHi)
	q.Add(q, q2)
	return q, r2
}

// divModLong handles mLen > 2*k by peeling 2k-bit chunks off the working
// remainder and dividing each chunk through divModIdeal, the same way
// schoolbook long division peels digits in base 2**k.
func divModLong(m, n *big.Int, k uint) (q, r *big.Int) {
	q = new(big.Int)
	r = new(big.Int).Set(m)
	remaining := remainingBits(r, k)

	for r.Cmp(n) >= 0 {
		newRemaining := remainingBits(r, k)
		q.Lsh(q, remaining-newRemaining)
		remaining = newRemaining

		rHi, rLo := split(r, remaining)
		qi, ri := divModPositive(rHi, n)

		r = new(big.Int).Lsh(ri, remaining)
		r.Or(r, rLo)
		q.Add(q, qi)
	}
	q.Lsh(q, remaining)
	return q, r
}

func remainingBits(r *big.Int, k uint) uint {
	bl := r.BitLen()
	if bl <= int(2*k) {
		return 0
	}
	return uint(bl) - 2*k
}
