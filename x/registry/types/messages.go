package types

import (
	"namechain/ledger"
)

// Msg types pair a decoded instruction with its resolved accounts. The
// dispatcher builds them from a Tx after signature verification, so Signer is
// always an authenticated key by the time a handler sees it.

type MsgInitialize struct {
	Signer          ledger.Address
	Config          ledger.Address
	RegistrationFee uint64
}

type MsgRegisterName struct {
	Signer        ledger.Address
	NameRecord    ledger.Address
	ReverseRecord ledger.Address
	Config        ledger.Address
	Name          string
}

type MsgRequestAddressUpdate struct {
	Signer     ledger.Address
	NameRecord ledger.Address
	Escrow     ledger.Address
	NewAddress ledger.Address
}

type MsgCompleteAddressUpdate struct {
	Signer        ledger.Address
	NameRecord    ledger.Address
	ReverseRecord ledger.Address
	Escrow        ledger.Address
}

type MsgRenameName struct {
	Signer        ledger.Address
	OldNameRecord ledger.Address
	NewNameRecord ledger.Address
	ReverseRecord ledger.Address
	NewName       string
}

type MsgSetRegistrationFee struct {
	Signer ledger.Address
	Config ledger.Address
	NewFee uint64
}

type MsgChangeProgramOwner struct {
	Signer   ledger.Address
	Config   ledger.Address
	NewOwner ledger.Address
}

type MsgAcceptProgramOwnership struct {
	Signer ledger.Address
	Config ledger.Address
}

type MsgWithdraw struct {
	Signer ledger.Address
	Config ledger.Address
}
