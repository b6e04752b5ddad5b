package fastbigint

import (
	"crypto/rand"
	"math/big"
	"testing"
)

func TestFloorSqrtLiteralScenarios(t *testing.T) {
	cases := []struct{ n, want int64 }{
		{0, 0},
		{1, 1},
		{2, 1},
		{15, 3},
		{16, 4},
	}
	for _, c := range cases {
		got := FloorSqrt(big.NewInt(c.n))
		if got.Int64() != c.want {
			t.Errorf("FloorSqrt(%d) = %d, want %d", c.n, got.Int64(), c.want)
		}
	}
}

func TestFloorSqrtDomainError(t *testing.T) {
	defer func() {
		p := recover()
		if _, ok := p.(DomainError); !ok {
			t.Fatalf("FloorSqrt(-1) panicked with %v (%T), want DomainError", p, p)
		}
	}()
	FloorSqrt(big.NewInt(-1))
}

func checkFloorSqrt(t *testing.T, n *big.Int) {
	t.Helper()
	s := FloorSqrt(n)
	if s.Sign() < 0 {
		t.Fatalf("FloorSqrt(%v) = %v is negative", n, s)
	}
	sq := new(big.Int).Mul(s, s)
	if sq.Cmp(n) > 0 {
		t.Fatalf("FloorSqrt(%v) = %v but s*s = %v > n", n, s, sq)
	}
	next := new(big.Int).Add(s, bigOne)
	next.Mul(next, next)
	if next.Cmp(n) <= 0 {
		t.Fatalf("FloorSqrt(%v) = %v but (s+1)^2 = %v <= n", n, s, next)
	}
}

func TestFloorSqrtAgainstReference(t *testing.T) {
	r := rand.Reader
	for _, bits := range []uint{1, 2, 5, 8, 16, 32, 64, 128, 256, 1000} {
		max := new(big.Int).Lsh(bigOne, bits)
		for trial := 0; trial < 6; trial++ {
			n, err := rand.Int(r, max)
			if err != nil {
				t.Fatalf("rand.Int: %v", err)
			}
			checkFloorSqrt(t, n)

			want := new(big.Int).Sqrt(n)
			if got := FloorSqrt(n); got.Cmp(want) != 0 {
				t.Errorf("FloorSqrt(%v) = %v, want %v (math/big reference)", n, got, want)
			}
		}
	}
}

func TestFloorSqrtLargeOperand(t *testing.T) {
	ten := big.NewInt(10)
	exp := big.NewInt(1 << 21)
	pow := new(big.Int).Exp(ten, exp, nil)
	n := new(big.Int).Mul(big.NewInt(2), pow)

	want := new(big.Int).Sqrt(n)
	if got := FloorSqrt(n); got.Cmp(want) != 0 {
		t.Errorf("FloorSqrt(2*10^(2^21)) mismatched math/big reference")
	}
}
