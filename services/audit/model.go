package audit

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Event is the write-once record proving a command was applied. The command
// itself travels inside as a versioned JSON envelope, so the row alone is
// enough to reconstruct the mutation later. The Total* columns are filled
// only for ledger aggregates and snapshot the balance around the mutation.
type Event struct {
	ID           int64
	AggregateID  string
	CommandName  string
	Command      json.RawMessage
	ResourceName string
	TotalBefore  decimal.NullDecimal
	TotalAmount  decimal.NullDecimal
	TotalAfter   decimal.NullDecimal
	CreatedAt    time.Time
}
