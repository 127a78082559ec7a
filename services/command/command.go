package command

import (
	"context"

	"github.com/CrestPay/CrestPay-Backend/services/audit"
	"github.com/CrestPay/CrestPay-Backend/services/events"
)

// Command is an immutable intention to mutate exactly one aggregate. Concrete
// commands are plain value structs carrying everything needed to create or
// transition their aggregate, tagged with a name and a schema version so the
// stored form stays replayable as shapes evolve.
type Command interface {
	CommandName() string
	CommandVersion() string
}

// Vars is the mutable side channel between a handler and the engine. Handlers
// drop the pre/post mutation numbers in here under the well-known keys below;
// the engine reads them when it writes the ledger columns of the audit event.
type Vars map[string]interface{}

// Well-known Vars keys. Values under the Total* keys are decimal.Decimal.
const (
	VarResourceName = "resource_name"
	VarTotalBefore  = "total_before"
	VarTotalAmount  = "total_amount"
	VarTotalAfter   = "total_after"
)

// Outcome is what a handler gives back to the engine on success: the mutated
// aggregate, its id for the audit trail, and optionally one downstream event.
type Outcome struct {
	AggregateID string
	Aggregate   interface{}
	Event       *events.Event
}

// Result is the caller-facing wrapper around the mutated aggregate. A nil
// Result with a nil error means the handler applied nothing worth returning.
type Result struct {
	AggregateID string
	Value       interface{}
}

// Handler applies exactly one command type to exactly one aggregate type.
// Handlers own the aggregate mutation but never the audit write; the engine
// appends that, which is what guarantees one event per applied command.
type Handler interface {
	CommandName() string
	AggregateType() string
	Handle(ctx context.Context, tx Tx, cmd Command, vars Vars) (*Outcome, error)
}

// Tx is the transaction-scoped store bundle handed to handlers. The engine
// only needs the audit side; handlers assert the concrete bundle for their
// own aggregate stores.
type Tx interface {
	Audit() audit.Store
}

// UnitOfWork runs fn inside one newly-started, isolated unit of work. It is
// never joined to a caller transaction: a failure inside must not roll back
// the caller, and vice versa. If fn returns an error every write made
// through the Tx is rolled back.
type UnitOfWork interface {
	Run(ctx context.Context, fn func(tx Tx) error) error
}

// Dispatcher is the engine seen from hooks and event adapters. It exists so
// a pre-hook can recursively dispatch an auxiliary command without importing
// the engine wiring.
type Dispatcher interface {
	Handle(ctx context.Context, cmd Command) (*Result, error)
}

// Publisher pushes a domain event to downstream modules. Publication is
// fire-and-forget relative to persistence.
type Publisher interface {
	Publish(ctx context.Context, event events.Event) error
}
