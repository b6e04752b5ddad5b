// Package fastbigint implements division, base-10 stringification, and
// floor square root for *big.Int using recursive divide-and-conquer
// algorithms that outperform the schoolbook fallback once operands grow
// past roughly ten thousand bits.
//
// The package adds no new integer representation: every entry point takes
// and returns *big.Int, and the primitive operations (addition,
// comparison, shifts, bit masking, bit length, and small-operand div/mod)
// are all supplied by math/big itself. Only the three algorithms named in
// the package are implemented here.
package fastbigint
