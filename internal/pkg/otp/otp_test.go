package otp

import (
	"strconv"
	"testing"
)

func TestNumericGenerate(t *testing.T) {
	gen := NewNumeric(6)

	for range 50 {
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}

		if len(code) != 6 {
			t.Fatalf("code %q length = %d, want 6", code, len(code))
		}

		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric: %v", code, err)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d out of range [100000, 999999]", n)
		}
	}
}

func TestNumericDigitsFallback(t *testing.T) {
	cases := []struct {
		digits  int
		wantLen int
	}{
		{digits: 4, wantLen: 4},
		{digits: 8, wantLen: 8},
		{digits: 0, wantLen: 6},
		{digits: 15, wantLen: 6},
	}

	for _, tc := range cases {
		code, err := NewNumeric(tc.digits).Generate()
		if err != nil {
			t.Fatalf("generate with digits=%d: %v", tc.digits, err)
		}
		if len(code) != tc.wantLen {
			t.Fatalf("digits=%d produced %q, want length %d", tc.digits, code, tc.wantLen)
		}
	}
}
