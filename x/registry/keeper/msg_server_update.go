package keeper

import (
	"context"

	"namechain/ledger"
	"namechain/x/registry/types"
)

// RequestAddressUpdate escrows a proposed new resolved address for a name.
// Only the name's owner may request, and only after the cooldown has elapsed.
// A new request silently replaces any prior one for the same name.
func (k msgServer) RequestAddressUpdate(ctx context.Context, msg *types.MsgRequestAddressUpdate) error {
	if err := types.ValidateAddress(msg.NewAddress); err != nil {
		return err
	}

	nameRec, err := k.initializedNameRecord(ctx, msg.NameRecord)
	if err != nil {
		return err
	}
	if err := types.ValidateOwner(nameRec.Owner, msg.Signer); err != nil {
		return err
	}
	if err := types.ValidateCooldown(k.now(), nameRec.CooldownUntil); err != nil {
		return err
	}

	escrow := types.EscrowRecord{
		Initialized:   true,
		TargetAddress: msg.NewAddress,
	}
	if err := k.SetEscrowRecord(ctx, msg.Escrow, escrow); err != nil {
		return err
	}

	k.logger.Info("address update requested",
		"name", nameRec.Name,
		"target", msg.NewAddress.String(),
	)
	return nil
}

// CompleteAddressUpdate consumes a pending escrow. Only the escrowed target
// address can complete, proving control by signing; the name's owner and
// resolved address both move to the target and the escrow is cleared.
func (k msgServer) CompleteAddressUpdate(ctx context.Context, msg *types.MsgCompleteAddressUpdate) error {
	escrow, err := k.GetEscrowRecord(ctx, msg.Escrow)
	if err != nil {
		return err
	}
	if !escrow.Initialized {
		return types.ErrNoPendingUpdate
	}
	if escrow.TargetAddress != msg.Signer {
		return types.ErrNotPendingAddress
	}

	nameRec, err := k.initializedNameRecord(ctx, msg.NameRecord)
	if err != nil {
		return err
	}
	reverseRec, err := k.GetReverseRecord(ctx, msg.ReverseRecord)
	if err != nil {
		return err
	}
	if !reverseRec.Initialized {
		return types.ErrNotInitialized.Wrap("reverse record")
	}

	nameRec.Owner = msg.Signer
	nameRec.ResolvedAddress = msg.Signer
	nameRec.CooldownUntil = k.now()

	if err := k.SetNameRecord(ctx, msg.NameRecord, nameRec); err != nil {
		return err
	}
	if err := k.SetEscrowRecord(ctx, msg.Escrow, types.EscrowRecord{
		Initialized:   false,
		TargetAddress: ledger.ZeroAddress,
	}); err != nil {
		return err
	}

	k.logger.Info("address update completed",
		"name", nameRec.Name,
		"new_owner", msg.Signer.String(),
	)
	return nil
}
