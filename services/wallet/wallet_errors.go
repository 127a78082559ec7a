package wallet

import "fmt"

var (
	ErrAssetNotFound  = fmt.Errorf("wallet asset not found")
	ErrAssetExists    = fmt.Errorf("wallet asset already exists")
	ErrNotEnoughMoney = fmt.Errorf("not enough money")
	ErrNegativeAmount = fmt.Errorf("amount must not be negative")
	ErrNoStoreAccess  = fmt.Errorf("transaction scope has no wallet store access")
)
