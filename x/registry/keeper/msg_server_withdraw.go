package keeper

import (
	"context"

	"namechain/x/registry/types"
)

// Withdraw drains the fee vault: every unit of value held by the config slot
// moves to the administrator. The credit is checked by the host and fails
// distinctly on overflow rather than wrapping.
func (k msgServer) Withdraw(ctx context.Context, msg *types.MsgWithdraw) error {
	cfg, err := k.initializedConfig(ctx, msg.Config)
	if err != nil {
		return err
	}
	if err := types.ValidateProgramOwner(cfg.Administrator, msg.Signer); err != nil {
		return err
	}

	held, err := k.bank.Balance(ctx, msg.Config)
	if err != nil {
		return err
	}
	if held == 0 {
		return types.ErrNothingToWithdraw
	}
	if err := k.bank.Transfer(ctx, msg.Config, msg.Signer, held); err != nil {
		return err
	}

	k.logger.Info("fees withdrawn",
		"amount", held,
		"administrator", msg.Signer.String(),
	)
	return nil
}
