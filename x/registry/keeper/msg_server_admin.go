package keeper

import (
	"context"

	"namechain/ledger"
	"namechain/x/registry/types"
)

// SetRegistrationFee updates the fee charged on registration. Administrator only.
func (k msgServer) SetRegistrationFee(ctx context.Context, msg *types.MsgSetRegistrationFee) error {
	cfg, err := k.initializedConfig(ctx, msg.Config)
	if err != nil {
		return err
	}
	if err := types.ValidateProgramOwner(cfg.Administrator, msg.Signer); err != nil {
		return err
	}

	cfg.RegistrationFee = msg.NewFee
	if err := k.SetConfigRecord(ctx, msg.Config, cfg); err != nil {
		return err
	}

	k.logger.Info("registration fee updated", "fee", msg.NewFee)
	return nil
}

// ChangeProgramOwner stages the first half of the two-step administrator
// handoff. The new administrator takes over only after accepting, so a typo
// here is recoverable: the current administrator can stage a different key at
// any time before acceptance.
func (k msgServer) ChangeProgramOwner(ctx context.Context, msg *types.MsgChangeProgramOwner) error {
	if err := types.ValidateAddress(msg.NewOwner); err != nil {
		return err
	}

	cfg, err := k.initializedConfig(ctx, msg.Config)
	if err != nil {
		return err
	}
	if err := types.ValidateProgramOwner(cfg.Administrator, msg.Signer); err != nil {
		return err
	}

	cfg.PendingAdministrator = msg.NewOwner
	if err := k.SetConfigRecord(ctx, msg.Config, cfg); err != nil {
		return err
	}

	k.logger.Info("administrator handoff staged", "pending", msg.NewOwner.String())
	return nil
}

// AcceptProgramOwnership completes the handoff: the pending administrator
// proves control of its key by signing, becomes administrator, and the
// pending field is cleared.
func (k msgServer) AcceptProgramOwnership(ctx context.Context, msg *types.MsgAcceptProgramOwnership) error {
	cfg, err := k.initializedConfig(ctx, msg.Config)
	if err != nil {
		return err
	}
	if cfg.PendingAdministrator != msg.Signer {
		return types.ErrNotPendingContractOwner
	}

	cfg.Administrator = msg.Signer
	cfg.PendingAdministrator = ledger.ZeroAddress
	if err := k.SetConfigRecord(ctx, msg.Config, cfg); err != nil {
		return err
	}

	k.logger.Info("administrator handoff accepted", "administrator", msg.Signer.String())
	return nil
}
