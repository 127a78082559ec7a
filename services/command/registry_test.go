package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type noteCommand struct {
	Text string `json:"text"`
}

func (c *noteCommand) CommandName() string    { return "test.note" }
func (c *noteCommand) CommandVersion() string { return "v1" }

type otherCommand struct{}

func (c *otherCommand) CommandName() string    { return "test.other" }
func (c *otherCommand) CommandVersion() string { return "v1" }

type noteHandler struct {
	name   string
	handle func(ctx context.Context, tx Tx, cmd Command, vars Vars) (*Outcome, error)
}

func (h *noteHandler) CommandName() string   { return h.name }
func (h *noteHandler) AggregateType() string { return "note" }

func (h *noteHandler) Handle(ctx context.Context, tx Tx, cmd Command, vars Vars) (*Outcome, error) {
	if h.handle == nil {
		return nil, nil
	}
	return h.handle(ctx, tx, cmd, vars)
}

func TestRegistryRejectsMismatchedHandler(t *testing.T) {
	r := NewRegistry()

	err := r.Register(&noteCommand{}, &noteHandler{name: "test.other"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "accepts")

	_, ok := r.Lookup("test.note")
	require.False(t, ok, "mismatched handler must not be registered")
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(&noteCommand{}, &noteHandler{name: "test.note"}))
	err := r.Register(&noteCommand{}, &noteHandler{name: "test.note"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate")
}

func TestRegistryRejectsNil(t *testing.T) {
	r := NewRegistry()

	require.Error(t, r.Register(nil, &noteHandler{name: "test.note"}))
	require.Error(t, r.Register(&noteCommand{}, nil))
}

func TestMustRegisterPanicsOnFault(t *testing.T) {
	r := NewRegistry()

	require.Panics(t, func() {
		r.MustRegister(&noteCommand{}, &noteHandler{name: "test.other"})
	})
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	h := &noteHandler{name: "test.note"}
	require.NoError(t, r.Register(&noteCommand{}, h))

	got, ok := r.Lookup("test.note")
	require.True(t, ok)
	require.Same(t, h, got.(*noteHandler))

	_, ok = r.Lookup("test.unknown")
	require.False(t, ok)
}
