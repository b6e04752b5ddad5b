package fastbigint

import "math/big"

var bigOne = big.NewInt(1)

// split divides num into a high and low half at bitIdx: hi = num >> bitIdx
// and lo = num & ((1<<bitIdx)-1). It returns freshly allocated values and
// never mutates num. Callers must not pass a negative bitIdx.
//
// Invariants: num == (hi<<bitIdx)+lo and 0 <= lo < 1<<bitIdx.
func split(num *big.Int, bitIdx uint) (hi, lo *big.Int) {
	hi = new(big.Int).Rsh(num, bitIdx)
	mask := new(big.Int).Lsh(bigOne, bitIdx)
	mask.Sub(mask, bigOne)
	lo = new(big.Int).And(num, mask)
	return hi, lo
}
