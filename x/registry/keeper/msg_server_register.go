package keeper

import (
	"context"

	"namechain/x/registry/types"
)

// RegisterName claims a free name for the signer. The registration fee moves
// from the signer to the config slot's vault before any record is written;
// the name record and the signer's reverse record are then stamped together.
func (k msgServer) RegisterName(ctx context.Context, msg *types.MsgRegisterName) error {
	if err := types.ValidateName(msg.Name); err != nil {
		return err
	}

	cfg, err := k.initializedConfig(ctx, msg.Config)
	if err != nil {
		return err
	}

	nameRec, err := k.GetNameRecord(ctx, msg.NameRecord)
	if err != nil {
		return err
	}
	if nameRec.Initialized {
		return types.ErrNameTaken.Wrap(msg.Name)
	}

	reverseRec, err := k.GetReverseRecord(ctx, msg.ReverseRecord)
	if err != nil {
		return err
	}
	if reverseRec.Initialized {
		return types.ErrNameAlreadyRegistered.Wrapf("address %s holds %q", msg.Signer, reverseRec.Name)
	}

	if cfg.RegistrationFee > 0 {
		if err := k.bank.Transfer(ctx, msg.Signer, msg.Config, cfg.RegistrationFee); err != nil {
			return types.ErrInsufficientFee.Wrap(err.Error())
		}
	}

	now := k.now()
	nameRec = types.NameRecord{
		Initialized:     true,
		Owner:           msg.Signer,
		Name:            msg.Name,
		ResolvedAddress: msg.Signer,
		CooldownUntil:   now,
	}
	reverseRec = types.ReverseRecord{
		Initialized: true,
		Name:        msg.Name,
	}

	if err := k.SetNameRecord(ctx, msg.NameRecord, nameRec); err != nil {
		return err
	}
	if err := k.SetReverseRecord(ctx, msg.ReverseRecord, reverseRec); err != nil {
		return err
	}

	k.logger.Info("name registered",
		"name", msg.Name,
		"owner", msg.Signer.String(),
		"fee", cfg.RegistrationFee,
	)
	return nil
}
