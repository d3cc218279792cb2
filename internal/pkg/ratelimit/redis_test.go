package ratelimit

import (
	"testing"
	"time"
)

func TestRedisLimiterZeroRule(t *testing.T) {
	l := NewRedis(nil)

	res, err := l.Allow(t.Context(), "1.2.3.4", Rule{})
	if err != nil {
		t.Fatalf("err want nil got %v", err)
	}
	if !res.Allowed {
		t.Fatal("zero rule should allow")
	}
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  int64
		ok    bool
	}{
		{name: "int64", input: int64(10), want: 10, ok: true},
		{name: "int", input: int(11), want: 11, ok: true},
		{name: "float64", input: float64(12.9), want: 12, ok: true},
		{name: "string", input: "bad", want: 0, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := toInt64(tc.input)
			if ok != tc.ok {
				t.Fatalf("ok want %v got %v", tc.ok, ok)
			}
			if got != tc.want {
				t.Fatalf("value want %d got %d", tc.want, got)
			}
		})
	}
}

func TestRuleWindowSeconds(t *testing.T) {
	rule := Rule{Prefix: "ratelimit:otp", Window: 3 * time.Minute, MaxRequests: 5}
	if got := int(rule.Window / time.Second); got != 180 {
		t.Fatalf("window seconds want 180 got %d", got)
	}
}
