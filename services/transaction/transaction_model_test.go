package transaction

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusTerminal(t *testing.T) {
	require.False(t, StatusPending.Terminal())
	require.True(t, StatusCompleted.Terminal())
	require.True(t, StatusError.Terminal())
}

func TestStatusValid(t *testing.T) {
	require.True(t, StatusPending.Valid())
	require.True(t, StatusCompleted.Valid())
	require.True(t, StatusError.Valid())
	require.False(t, Status("CANCELLED").Valid())
	require.False(t, Status("").Valid())
}

func TestReferenceGenerator(t *testing.T) {
	g, err := NewReferenceGenerator("test-salt")
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := g.Next()
		require.GreaterOrEqual(t, len(ref), 12)
		require.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}
