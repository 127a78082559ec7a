package transaction

import "fmt"

var (
	ErrTransactionNotFound = fmt.Errorf("transaction not found")
	ErrTransactionExists   = fmt.Errorf("transaction already exists")
	ErrNoStoreAccess       = fmt.Errorf("transaction scope has no transaction store access")
)
