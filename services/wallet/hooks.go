package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/CrestPay/CrestPay-Backend/services/command"
	"github.com/CrestPay/CrestPay-Backend/services/lock"
	"github.com/CrestPay/CrestPay-Backend/services/monitoring/logging"
)

// ProvisionHook makes "first touch creates the account" an implicit property
// of every Add/Subtract: when the target pair has no asset yet, it dispatches
// an internal zero-amount Create through the engine before the real command
// proceeds.
type ProvisionHook struct {
	dispatcher command.Dispatcher
	assets     Reader
	logger     *logging.Logger
}

func NewProvisionHook(dispatcher command.Dispatcher, assets Reader, logger *logging.Logger) *ProvisionHook {
	return &ProvisionHook{
		dispatcher: dispatcher,
		assets:     assets,
		logger:     logger,
	}
}

func (h *ProvisionHook) Before(ctx context.Context, cmd command.Command, _ command.Vars) error {
	scoped, ok := cmd.(AssetScoped)
	if !ok {
		return nil
	}

	_, err := h.assets.GetByUserAndCurrency(ctx, scoped.AssetUserID(), scoped.AssetCurrency())
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrAssetNotFound) {
		return err
	}

	h.logger.Debug(fmt.Sprintf("auto-creating wallet asset for user %d in %s",
		scoped.AssetUserID(), scoped.AssetCurrency()))

	// The existence check above runs before the lock is taken, so two
	// first-touch callers can both reach this dispatch. The storage layer's
	// unique index makes the loser's Create come back as already-exists,
	// which is safe to ignore here.
	_, err = h.dispatcher.Handle(ctx, &CreateAssetCommand{
		UserID:   scoped.AssetUserID(),
		Currency: scoped.AssetCurrency(),
		Amount:   decimal.Zero,
	})
	if err != nil && !command.IsCannotApply(err) {
		return err
	}
	return nil
}

// LockHook serializes mutations per (user, currency) pair. Acquisition is
// best-effort: a pair already under lease is logged and the command still
// proceeds, the unit-of-work boundary being the authoritative serialization
// point. Release in Finally is unconditional and idempotent.
type LockHook struct {
	locks  lock.Provider
	logger *logging.Logger
}

func NewLockHook(locks lock.Provider, logger *logging.Logger) *LockHook {
	return &LockHook{
		locks:  locks,
		logger: logger,
	}
}

func (h *LockHook) Before(ctx context.Context, cmd command.Command, _ command.Vars) error {
	lk, ok := cmd.(Lockable)
	if !ok {
		return nil
	}
	if !h.locks.TryLock(ctx, lk.LockKey()) {
		h.logger.Debug(fmt.Sprintf("advisory lock not acquired for %s, proceeding", lk.LockKey()))
	}
	return nil
}

func (h *LockHook) Finally(ctx context.Context, cmd command.Command, _ command.Vars) {
	if lk, ok := cmd.(Lockable); ok {
		h.locks.Unlock(ctx, lk.LockKey())
	}
}
