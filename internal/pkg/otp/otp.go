package otp

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// Generator defines the contract for one-time code generation.
type Generator interface {
	// Generate creates a fresh numeric code.
	Generate() (string, error)
}

// Numeric implements Generator with uniformly random n-digit codes.
type Numeric struct {
	min  int64
	span int64
}

// NewNumeric constructs a Numeric generator producing codes with the given
// number of digits. If digits is outside 4..9, it falls back to 6.
func NewNumeric(digits int) *Numeric {
	if digits < 4 || digits > 9 {
		digits = 6
	}

	min := int64(1)
	for i := 1; i < digits; i++ {
		min *= 10
	}

	return &Numeric{min: min, span: min*10 - min}
}

// Generate draws a uniform code in [10^(digits-1), 10^digits - 1] from
// crypto/rand, so every code is equally likely and none has a leading zero.
func (g *Numeric) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(g.span))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(g.min+n.Int64(), 10), nil
}
