// Package facade adapts fastbigint's typed, panic-on-contract-violation
// API to hosts that only have an untyped value in hand: a CLI flag, a
// JSON-decoded request field, a REPL argument. It performs the type and
// domain checks the typed API leaves to the compiler, and turns every
// panic fastbigint can raise into an ordinary error return.
package facade

import (
	"fmt"
	"math/big"

	"github.com/dgryski/fastbigint"
)

// DivMod computes m/n the way fastbigint.DivMod does, but accepts
// interface{} operands and reports a TypeError instead of failing to
// compile when one of them is not a *big.Int.
func DivMod(m, n any) (q, r *big.Int, err error) {
	mi, ok := m.(*big.Int)
	if !ok {
		return nil, nil, fastbigint.NewTypeError("DivMod", m)
	}
	ni, ok := n.(*big.Int)
	if !ok {
		return nil, nil, fastbigint.NewTypeError("DivMod", n)
	}

	defer func() {
		if p := recover(); p != nil {
			q, r, err = nil, nil, toError(p)
		}
	}()
	q, r = fastbigint.DivMod(mi, ni)
	return q, r, nil
}

// Base10Stringify formats n as decimal, accepting interface{} the way
// DivMod does.
func Base10Stringify(n any) (s string, err error) {
	ni, ok := n.(*big.Int)
	if !ok {
		return "", fastbigint.NewTypeError("Base10Stringify", n)
	}

	defer func() {
		if p := recover(); p != nil {
			s, err = "", toError(p)
		}
	}()
	return fastbigint.Base10Stringify(ni), nil
}

// FloorSqrt computes the floor square root of n, accepting interface{}
// the way DivMod does.
func FloorSqrt(n any) (s *big.Int, err error) {
	ni, ok := n.(*big.Int)
	if !ok {
		return nil, fastbigint.NewTypeError("FloorSqrt", n)
	}

	defer func() {
		if p := recover(); p != nil {
			s, err = nil, toError(p)
		}
	}()
	return fastbigint.FloorSqrt(ni), nil
}

// toError recovers a panic raised by fastbigint and turns it into an
// error value. fastbigint.DomainError panics pass through unchanged;
// math/big's own "division by zero" string panic (raised by the host
// schoolbook primitive DivMod bails out to) is wrapped as
// fastbigint.DivideByZeroError so callers never have to type-switch on
// a bare string.
func toError(p any) error {
	switch v := p.(type) {
	case error:
		return v
	case string:
		return fastbigint.NewDivideByZeroError(v)
	default:
		return fmt.Errorf("fastbigint: unexpected panic: %v", p)
	}
}
