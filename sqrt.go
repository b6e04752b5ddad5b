package fastbigint

import "math/big"

// FloorSqrt returns the largest s such that s*s <= n. It panics with
// DomainError if n is negative.
func FloorSqrt(n *big.Int) *big.Int {
	if n.Sign() < 0 {
		panic(DomainError{"FloorSqrt: negative argument"})
	}
	return floorSqrtPositive(n)
}

// floorSqrtPositive computes the integer square root of n >= 0 using
// Newton's method seeded from the square root of n's high half: each
// recursive call doubles the number of correct bits, so after one
// Newton step only a small, bounded number of +-1 corrections remain.
func floorSqrtPositive(n *big.Int) *big.Int {
	bitLen := n.BitLen()
	if bitLen <= 1 {
		return new(big.Int).Set(n)
	}
	if bitLen < 8 {
		s := int64(1)
		nn := n.Int64()
		for (s+1)*(s+1) <= nn {
			s++
		}
		return big.NewInt(s)
	}

	resultPadBits := uint(bitLen) / 4
	padBits := 2 * resultPadBits

	approx := floorSqrtPositive(new(big.Int).Rsh(n, padBits))
	approx.Lsh(approx, resultPadBits)

	quotient, _ := divModPositive(n, approx)
	approx.Add(approx, quotient)
	approx.Rsh(approx, 1)

	square := new(big.Int).Mul(approx, approx)
	if square.Cmp(n) > 0 {
		for {
			approx.Sub(approx, bigOne)
			step := new(big.Int).Lsh(approx, 1)
			step.Or(step, bigOne)
			square.Sub(square, step)
			if square.Cmp(n) <= 0 {
				break
			}
		}
	} else {
		step := new(big.Int).Lsh(approx, 1)
		step.Or(step, bigOne)
		square.Add(square, step)
		for square.Cmp(n) <= 0 {
			approx.Add(approx, bigOne)
			step = new(big.Int).Lsh(approx, 1)
			step.Or(step, bigOne)
			square.Add(square, step)
		}
	}
	return approx
}
