package command

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/CrestPay/CrestPay-Backend/services/audit"
	"github.com/CrestPay/CrestPay-Backend/services/monitoring/logging"
)

// Engine is the generic dispatch core. Every Handle call runs in its own
// isolated unit of work and, when the handler applies the command, leaves
// behind exactly one audit event.
type Engine struct {
	registry  *Registry
	codec     *Codec
	uow       UnitOfWork
	publisher Publisher
	validate  *validator.Validate
	logger    *logging.Logger

	pre     []PreHook
	post    []PostHook
	finally []FinallyHook
}

func NewEngine(registry *Registry, codec *Codec, uow UnitOfWork, logger *logging.Logger) *Engine {
	return &Engine{
		registry: registry,
		codec:    codec,
		uow:      uow,
		validate: validator.New(),
		logger:   logger,
	}
}

func (e *Engine) SetPublisher(p Publisher) {
	e.publisher = p
}

func (e *Engine) AddPreHook(h PreHook) {
	e.pre = append(e.pre, h)
}

func (e *Engine) AddPostHook(h PostHook) {
	e.post = append(e.post, h)
}

func (e *Engine) AddFinallyHook(h FinallyHook) {
	e.finally = append(e.finally, h)
}

// Handle routes cmd to its registered handler and returns the mutated
// aggregate wrapped in a Result. A *CannotApplyError comes back verbatim —
// callers treat it as an expected outcome. Anything else surfaces as
// ErrInternal, with the real cause only in the logs. Either way, no partial
// audit event survives a failure.
func (e *Engine) Handle(ctx context.Context, cmd Command) (res *Result, err error) {
	if cmd == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrNoHandler)
	}

	vars := Vars{}

	// Finally-hooks release whatever the pre-hooks acquired, whether or not
	// anything below succeeded.
	defer func() {
		for _, h := range e.finally {
			h.Finally(ctx, cmd, vars)
		}
		err = e.classify(cmd, err)
	}()

	if verr := e.validate.Struct(cmd); verr != nil {
		return nil, CannotApply(cmd, "invalid command: %v", verr)
	}

	for _, h := range e.pre {
		if herr := h.Before(ctx, cmd, vars); herr != nil {
			return nil, herr
		}
	}

	handler, ok := e.registry.Lookup(cmd.CommandName())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoHandler, cmd.CommandName())
	}

	var outcome *Outcome
	err = e.uow.Run(ctx, func(tx Tx) error {
		out, herr := handler.Handle(ctx, tx, cmd, vars)
		if herr != nil {
			return herr
		}
		outcome = out
		if out == nil {
			return nil
		}

		for _, h := range e.post {
			if perr := h.After(ctx, cmd, vars); perr != nil {
				return perr
			}
		}

		// Publication happens before the audit write commits, but a publish
		// failure must not abort the unit of work.
		if out.Event != nil && e.publisher != nil {
			if perr := e.publisher.Publish(ctx, *out.Event); perr != nil {
				e.logger.Error(fmt.Sprintf("event publish failed for %s: %v", cmd.CommandName(), perr))
			}
		}

		return e.appendAudit(ctx, tx, cmd, out, vars)
	})
	if err != nil {
		return nil, err
	}

	if outcome == nil {
		return nil, nil
	}
	return &Result{AggregateID: outcome.AggregateID, Value: outcome.Aggregate}, nil
}

func (e *Engine) appendAudit(ctx context.Context, tx Tx, cmd Command, out *Outcome, vars Vars) error {
	raw, err := e.codec.Encode(cmd)
	if err != nil {
		return err
	}

	event := audit.Event{
		AggregateID: out.AggregateID,
		CommandName: cmd.CommandName(),
		Command:     raw,
		CreatedAt:   time.Now(),
	}

	if name, ok := vars[VarResourceName].(string); ok {
		event.ResourceName = name
	}
	event.TotalBefore = varDecimal(vars, VarTotalBefore)
	event.TotalAmount = varDecimal(vars, VarTotalAmount)
	event.TotalAfter = varDecimal(vars, VarTotalAfter)

	return tx.Audit().Append(ctx, event)
}

// classify maps failures onto the error taxonomy: expected business refusals
// pass through at debug, everything else is logged and replaced.
func (e *Engine) classify(cmd Command, err error) error {
	if err == nil {
		return nil
	}
	if IsCannotApply(err) {
		e.logger.Debug(fmt.Sprintf("command not applied: %v", err))
		return err
	}
	e.logger.Error(fmt.Sprintf("command %s failed: %v", cmd.CommandName(), err))
	return ErrInternal
}

func varDecimal(vars Vars, key string) decimal.NullDecimal {
	if d, ok := vars[key].(decimal.Decimal); ok {
		return decimal.NullDecimal{Decimal: d, Valid: true}
	}
	return decimal.NullDecimal{}
}
