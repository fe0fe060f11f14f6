package keeper

import (
	"context"

	"namechain/x/registry/types"
)

// MsgServer executes the registry's mutating operations. Callers must run
// each method inside one host transaction; a returned error means nothing was
// committed.
type MsgServer interface {
	Initialize(ctx context.Context, msg *types.MsgInitialize) error
	RegisterName(ctx context.Context, msg *types.MsgRegisterName) error
	RequestAddressUpdate(ctx context.Context, msg *types.MsgRequestAddressUpdate) error
	CompleteAddressUpdate(ctx context.Context, msg *types.MsgCompleteAddressUpdate) error
	RenameName(ctx context.Context, msg *types.MsgRenameName) error
	SetRegistrationFee(ctx context.Context, msg *types.MsgSetRegistrationFee) error
	ChangeProgramOwner(ctx context.Context, msg *types.MsgChangeProgramOwner) error
	AcceptProgramOwnership(ctx context.Context, msg *types.MsgAcceptProgramOwnership) error
	Withdraw(ctx context.Context, msg *types.MsgWithdraw) error
}

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of MsgServer wrapping the keeper.
func NewMsgServerImpl(keeper Keeper) MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ MsgServer = msgServer{}
