package common

import (
	"github.com/go-errors/errors"
	"github.com/verifierkit/cft/big"
)

// No point in creating the same small constant again and again.
var bigONE = big.NewInt(1)

var ErrNoModInverse = errors.New("modular inverse does not exist")

// ModPow computes x^y mod m. The exponent (y) can be negative, in which case it
// uses the modular inverse to compute the result (in contrast to Go's Exp
// function).
func ModPow(x, y, m *big.Int) (*big.Int, error) {
	if y.Sign() == -1 {
		t := new(big.Int).ModInverse(x, m)
		if t == nil {
			return nil, ErrNoModInverse
		}
		return t.Exp(t, new(big.Int).Neg(y), m), nil
	}
	return new(big.Int).Exp(x, y, m), nil
}

// PowerOfTwo returns 2^e.
func PowerOfTwo(e uint) *big.Int {
	return new(big.Int).Lsh(bigONE, e)
}
