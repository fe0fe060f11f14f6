package types

import (
	"cosmossdk.io/errors"
)

// The registry's error enumeration is flat and externally stable: codes are
// part of the wire contract and never renumbered.
var (
	ErrInvalidNameFormat       = errors.Register(ModuleName, 1101, "invalid name format")
	ErrNameTaken               = errors.Register(ModuleName, 1102, "name already taken")
	ErrInsufficientFee         = errors.Register(ModuleName, 1103, "insufficient fee")
	ErrNameAlreadyRegistered   = errors.Register(ModuleName, 1104, "name already registered for address")
	ErrNotNameOwner            = errors.Register(ModuleName, 1105, "not name owner")
	ErrInvalidAddress          = errors.Register(ModuleName, 1106, "invalid address")
	ErrCooldownNotOver         = errors.Register(ModuleName, 1107, "cooldown period not over")
	ErrNoPendingUpdate         = errors.Register(ModuleName, 1108, "no pending update")
	ErrNotPendingAddress       = errors.Register(ModuleName, 1109, "not the pending address")
	ErrNotContractOwner        = errors.Register(ModuleName, 1110, "not contract owner")
	ErrInvalidNewOwner         = errors.Register(ModuleName, 1111, "invalid new owner")
	ErrNotPendingContractOwner = errors.Register(ModuleName, 1112, "not the pending contract owner")
	ErrNotInitialized          = errors.Register(ModuleName, 1113, "record not initialized")
	ErrAlreadyInitialized      = errors.Register(ModuleName, 1114, "record already initialized")
	ErrNameNotFound            = errors.Register(ModuleName, 1115, "name not found")
	ErrNothingToWithdraw       = errors.Register(ModuleName, 1116, "nothing to withdraw")
	ErrMalformedRecord         = errors.Register(ModuleName, 1117, "malformed record data")
)
