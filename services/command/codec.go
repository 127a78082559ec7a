package command

import (
	"encoding/json"
	"fmt"
)

// Envelope is the durable, self-describing form a command is stored in.
// Name and version tag the payload schema so audit rows written under an
// old shape can still be decoded into the right concrete type.
type Envelope struct {
	Name    string          `json:"name"`
	Version string          `json:"version"`
	Payload json.RawMessage `json:"payload"`
}

// Codec serializes commands for the audit store and deserializes them back
// for replay. Decode factories are registered alongside handlers at startup.
type Codec struct {
	factories map[string]func() Command
}

func NewCodec() *Codec {
	return &Codec{
		factories: make(map[string]func() Command),
	}
}

func (c *Codec) RegisterFactory(prototype Command, factory func() Command) error {
	if prototype == nil || factory == nil {
		return fmt.Errorf("codec: prototype and factory must both be non-nil")
	}

	name := prototype.CommandName()
	if fresh := factory(); fresh == nil || fresh.CommandName() != name {
		return fmt.Errorf("codec: factory for %q produces the wrong command type", name)
	}

	if _, exists := c.factories[name]; exists {
		return fmt.Errorf("codec: duplicate factory for command %q", name)
	}

	c.factories[name] = factory
	return nil
}

func (c *Codec) Encode(cmd Command) (json.RawMessage, error) {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("encode command %s: %w", cmd.CommandName(), err)
	}

	raw, err := json.Marshal(Envelope{
		Name:    cmd.CommandName(),
		Version: cmd.CommandVersion(),
		Payload: payload,
	})
	if err != nil {
		return nil, fmt.Errorf("encode envelope %s: %w", cmd.CommandName(), err)
	}

	return raw, nil
}

func (c *Codec) Decode(raw json.RawMessage) (Command, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	factory, ok := c.factories[env.Name]
	if !ok {
		return nil, fmt.Errorf("decode: unknown command %q", env.Name)
	}

	cmd := factory()
	if cmd.CommandVersion() != env.Version {
		return nil, fmt.Errorf("decode %s: stored version %q does not match current %q",
			env.Name, env.Version, cmd.CommandVersion())
	}

	if err := json.Unmarshal(env.Payload, cmd); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", env.Name, err)
	}

	return cmd, nil
}
