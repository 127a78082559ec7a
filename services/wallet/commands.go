package wallet

import "github.com/shopspring/decimal"

// Command names and the outbound event names the handlers emit.
const (
	CommandCreateAsset   = "wallet.asset.create"
	CommandAddFunds      = "wallet.asset.add"
	CommandSubtractFunds = "wallet.asset.subtract"

	EventAssetCreated  = "wallet.asset.created"
	EventAssetCredited = "wallet.asset.credited"
	EventAssetDebited  = "wallet.asset.debited"
)

// AssetScoped marks commands that target an existing (user, currency) pair
// and therefore want the lazy auto-create pre-hook. Create deliberately
// does not implement it.
type AssetScoped interface {
	AssetUserID() int64
	AssetCurrency() string
}

// Lockable marks commands whose handling must be serialized per pair. All
// three wallet commands share the lock discipline.
type Lockable interface {
	LockKey() string
}

// CreateAssetCommand materializes a new zero-or-given-amount asset. It is
// both a public command and the one the provisioning hook issues internally
// with amount zero.
type CreateAssetCommand struct {
	UserID   int64           `json:"user_id" validate:"required,gt=0"`
	Currency string          `json:"currency" validate:"required"`
	Amount   decimal.Decimal `json:"amount"`
}

func (c *CreateAssetCommand) CommandName() string    { return CommandCreateAsset }
func (c *CreateAssetCommand) CommandVersion() string { return "v1" }
func (c *CreateAssetCommand) LockKey() string        { return LockKey(c.UserID, c.Currency) }

type AddFundsCommand struct {
	UserID   int64           `json:"user_id" validate:"required,gt=0"`
	Currency string          `json:"currency" validate:"required"`
	Amount   decimal.Decimal `json:"amount"`
}

func (c *AddFundsCommand) CommandName() string    { return CommandAddFunds }
func (c *AddFundsCommand) CommandVersion() string { return "v1" }
func (c *AddFundsCommand) AssetUserID() int64     { return c.UserID }
func (c *AddFundsCommand) AssetCurrency() string  { return c.Currency }
func (c *AddFundsCommand) LockKey() string        { return LockKey(c.UserID, c.Currency) }

type SubtractFundsCommand struct {
	UserID   int64           `json:"user_id" validate:"required,gt=0"`
	Currency string          `json:"currency" validate:"required"`
	Amount   decimal.Decimal `json:"amount"`
}

func (c *SubtractFundsCommand) CommandName() string    { return CommandSubtractFunds }
func (c *SubtractFundsCommand) CommandVersion() string { return "v1" }
func (c *SubtractFundsCommand) AssetUserID() int64     { return c.UserID }
func (c *SubtractFundsCommand) AssetCurrency() string  { return c.Currency }
func (c *SubtractFundsCommand) LockKey() string        { return LockKey(c.UserID, c.Currency) }

// BalanceChange is the payload of the credited/debited events.
type BalanceChange struct {
	UserID   int64           `json:"user_id"`
	Currency string          `json:"currency"`
	Previous decimal.Decimal `json:"previous"`
	Current  decimal.Decimal `json:"current"`
}
