package command

import "fmt"

// Registry is the closed handler set, built once at process start. Register
// validates the handler's declared command against a prototype of the
// concrete command type, so a handler wired to the wrong command family is
// rejected before the process serves anything.
type Registry struct {
	handlers map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

func (r *Registry) Register(prototype Command, h Handler) error {
	if prototype == nil || h == nil {
		return fmt.Errorf("registry: prototype and handler must both be non-nil")
	}

	name := prototype.CommandName()
	if h.CommandName() != name {
		return fmt.Errorf("registry: handler %T accepts %q but was registered for %q",
			h, h.CommandName(), name)
	}

	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("registry: duplicate handler for command %q", name)
	}

	r.handlers[name] = h
	return nil
}

// MustRegister panics on a registration fault. A misrouted handler is a
// configuration error and the process must refuse to start.
func (r *Registry) MustRegister(prototype Command, h Handler) {
	if err := r.Register(prototype, h); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}
