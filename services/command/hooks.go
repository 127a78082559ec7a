package command

import "context"

// Hooks form an explicit ordered pipeline around the handler call, so the
// lock acquire/release pairing reads as plain control flow. Pre-hooks run
// before the unit of work opens and may dispatch auxiliary commands through
// the engine; finally-hooks run unconditionally, even when anything between
// them failed.

type PreHook interface {
	Before(ctx context.Context, cmd Command, vars Vars) error
}

type PostHook interface {
	After(ctx context.Context, cmd Command, vars Vars) error
}

type FinallyHook interface {
	Finally(ctx context.Context, cmd Command, vars Vars)
}
