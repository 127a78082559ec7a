package command

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	c := NewCodec()
	require.NoError(t, c.RegisterFactory(&noteCommand{}, func() Command { return &noteCommand{} }))

	original := &noteCommand{Text: "hello"}
	raw, err := c.Encode(original)
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	require.Equal(t, "test.note", env.Name)
	require.Equal(t, "v1", env.Version)

	decoded, err := c.Decode(raw)
	require.NoError(t, err)
	require.Equal(t, original, decoded)
}

func TestCodecRejectsUnknownCommand(t *testing.T) {
	c := NewCodec()

	raw, err := json.Marshal(Envelope{Name: "test.unknown", Version: "v1", Payload: []byte(`{}`)})
	require.NoError(t, err)

	_, err = c.Decode(raw)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown command")
}

func TestCodecRejectsVersionMismatch(t *testing.T) {
	c := NewCodec()
	require.NoError(t, c.RegisterFactory(&noteCommand{}, func() Command { return &noteCommand{} }))

	raw, err := json.Marshal(Envelope{Name: "test.note", Version: "v0", Payload: []byte(`{}`)})
	require.NoError(t, err)

	_, err = c.Decode(raw)
	require.Error(t, err)
	require.Contains(t, err.Error(), "version")
}

func TestCodecRejectsMismatchedFactory(t *testing.T) {
	c := NewCodec()

	err := c.RegisterFactory(&noteCommand{}, func() Command { return &otherCommand{} })
	require.Error(t, err)
}

func TestCodecRejectsDuplicateFactory(t *testing.T) {
	c := NewCodec()
	factory := func() Command { return &noteCommand{} }

	require.NoError(t, c.RegisterFactory(&noteCommand{}, factory))
	require.Error(t, c.RegisterFactory(&noteCommand{}, factory))
}
