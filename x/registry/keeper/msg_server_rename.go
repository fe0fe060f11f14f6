package keeper

import (
	"context"

	"namechain/x/registry/types"
)

// RenameName moves a name to a new label in one atomic three-record step: the
// new name record is populated, the owner's reverse pointer is rewritten, and
// the old name record is cleared entirely. The reverse record's identifier is
// keyed by owner address, so only its name field changes.
func (k msgServer) RenameName(ctx context.Context, msg *types.MsgRenameName) error {
	if err := types.ValidateName(msg.NewName); err != nil {
		return err
	}

	oldRec, err := k.initializedNameRecord(ctx, msg.OldNameRecord)
	if err != nil {
		return err
	}
	if err := types.ValidateOwner(oldRec.Owner, msg.Signer); err != nil {
		return err
	}
	if err := types.ValidateCooldown(k.now(), oldRec.CooldownUntil); err != nil {
		return err
	}

	newRec, err := k.GetNameRecord(ctx, msg.NewNameRecord)
	if err != nil {
		return err
	}
	if newRec.Initialized {
		return types.ErrNameTaken.Wrap(msg.NewName)
	}

	reverseRec, err := k.GetReverseRecord(ctx, msg.ReverseRecord)
	if err != nil {
		return err
	}
	if !reverseRec.Initialized {
		return types.ErrNotInitialized.Wrap("reverse record")
	}

	newRec = types.NameRecord{
		Initialized:     true,
		Owner:           msg.Signer,
		Name:            msg.NewName,
		ResolvedAddress: oldRec.ResolvedAddress,
		CooldownUntil:   k.now(),
	}
	reverseRec.Name = msg.NewName

	if err := k.SetNameRecord(ctx, msg.NewNameRecord, newRec); err != nil {
		return err
	}
	if err := k.SetReverseRecord(ctx, msg.ReverseRecord, reverseRec); err != nil {
		return err
	}
	// Clearing the old record resets every field to its zero value.
	if err := k.SetNameRecord(ctx, msg.OldNameRecord, types.NameRecord{}); err != nil {
		return err
	}

	k.logger.Info("name renamed",
		"old_name", oldRec.Name,
		"new_name", msg.NewName,
		"owner", msg.Signer.String(),
	)
	return nil
}
