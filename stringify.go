package fastbigint

import "math/big"

// StringifyBailoutBits is the operand bit-length below which
// Base10Stringify formats with (*big.Int).String instead of recursing.
const StringifyBailoutBits = 20000

var stringifyBailoutBits uint = StringifyBailoutBits

var bigTen = big.NewInt(10)

// Base10Stringify returns the decimal representation of n: no leading
// zeros except for "0" itself, and a leading "-" iff n is negative. It
// is functionally equivalent to n.String() but recurses through the
// package's division kernel to accelerate the conversion of very large
// operands.
func Base10Stringify(n *big.Int) string {
	if n.Sign() == 0 {
		return "0"
	}
	if n.Sign() < 0 {
		return "-" + Base10Stringify(new(big.Int).Neg(n))
	}

	powers := buildPowerTable(n)
	digits := base10Helper(n, powers, len(powers))

	i := 0
	for i < len(digits)-1 && digits[i] == '0' {
		i++
	}
	return digits[i:]
}

// buildPowerTable grows a table P with P[0] = 10 and P[i] = P[i-1]^2 until
// P's last entry has at least half of n's bit-length, so its square has at
// least n's bit-length minus one; the square need not exceed n. The table
// lives only for the duration of one Base10Stringify call.
func buildPowerTable(n *big.Int) []*big.Int {
	powers := []*big.Int{bigTen}
	for powers[len(powers)-1].BitLen()*2 < n.BitLen() {
		last := powers[len(powers)-1]
		powers = append(powers, new(big.Int).Mul(last, last))
	}
	return powers
}

// base10Helper returns the decimal digits of n left-padded with '0' to
// 2**digitsLog2 characters, where powers holds precomputed values
// 10**(2**i). If n has more than 2**digitsLog2 digits, the result is
// longer than that and has no leading zeros.
func base10Helper(n *big.Int, powers []*big.Int, digitsLog2 int) string {
	if uint(n.BitLen()) < stringifyBailoutBits {
		s := n.String()
		width := 1 << uint(digitsLog2)
		if len(s) >= width {
			return s
		}
		padding := make([]byte, width-len(s))
		for i := range padding {
			padding[i] = '0'
		}
		return string(padding) + s
	}

	q, r := divModPositive(n, powers[digitsLog2-1])
	return base10Helper(q, powers, digitsLog2-1) + base10Helper(r, powers, digitsLog2-1)
}
