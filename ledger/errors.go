package ledger

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace scopes the host environment's own failures, kept distinct from
// the registry program's error taxonomy.
const Codespace = "ledger"

var (
	ErrNotAllocated      = errorsmod.Register(Codespace, 2, "account storage not allocated")
	ErrAlreadyAllocated  = errorsmod.Register(Codespace, 3, "account storage already allocated")
	ErrSizeMismatch      = errorsmod.Register(Codespace, 4, "data length does not match allocation")
	ErrInsufficientFunds = errorsmod.Register(Codespace, 5, "insufficient funds")
	ErrAmountOverflow    = errorsmod.Register(Codespace, 6, "amount overflows account balance")
	ErrReadOnly          = errorsmod.Register(Codespace, 7, "write attempted outside a transaction")
	ErrInvalidAllocation = errorsmod.Register(Codespace, 8, "invalid allocation size")
)
