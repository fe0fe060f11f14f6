package app

import (
	errorsmod "cosmossdk.io/errors"
)

const (
	errCodeInvalidInstruction uint32 = 2
	errCodeInvalidAccounts    uint32 = 3
	errCodeMissingSignature   uint32 = 4
	errCodeInvalidSignature   uint32 = 5
)

var (
	ErrInvalidInstruction = errorsmod.Register(Name, errCodeInvalidInstruction, "invalid instruction")
	ErrInvalidAccounts    = errorsmod.Register(Name, errCodeInvalidAccounts, "invalid account list")
	ErrMissingSignature   = errorsmod.Register(Name, errCodeMissingSignature, "missing required signature")
	ErrInvalidSignature   = errorsmod.Register(Name, errCodeInvalidSignature, "invalid signature")
)
