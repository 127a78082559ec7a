package wallet

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRound2HalfUp(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"123.319", "123.32"},
		{"32.123", "32.12"},
		{"33.377", "33.38"},
		{"1234.8764", "1234.88"},
		{"10.005", "10.01"},
		{"10", "10"},
		{"0", "0"},
	}
	for _, c := range cases {
		got := Round2(decimal.RequireFromString(c.in))
		require.True(t, got.Equal(decimal.RequireFromString(c.want)),
			"Round2(%s) = %s, want %s", c.in, got, c.want)
	}
}

func TestLockKeyDistinguishesPairs(t *testing.T) {
	require.Equal(t, "42NGN", LockKey(42, "NGN"))
	require.NotEqual(t, LockKey(42, "NGN"), LockKey(42, "USD"))
	require.NotEqual(t, LockKey(42, "NGN"), LockKey(43, "NGN"))
}
