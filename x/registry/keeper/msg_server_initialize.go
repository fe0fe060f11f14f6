package keeper

import (
	"context"

	"namechain/ledger"
	"namechain/x/registry/types"
)

// Initialize creates the config singleton: the caller becomes administrator
// and sets the initial registration fee. It can succeed once.
func (k msgServer) Initialize(ctx context.Context, msg *types.MsgInitialize) error {
	cfg, err := k.GetConfigRecord(ctx, msg.Config)
	if err != nil {
		return err
	}
	if cfg.Initialized {
		return types.ErrAlreadyInitialized.Wrap("config")
	}

	cfg = types.ConfigRecord{
		Initialized:          true,
		Administrator:        msg.Signer,
		PendingAdministrator: ledger.ZeroAddress,
		RegistrationFee:      msg.RegistrationFee,
	}
	if err := k.SetConfigRecord(ctx, msg.Config, cfg); err != nil {
		return err
	}

	k.logger.Info("registry initialized",
		"administrator", msg.Signer.String(),
		"registration_fee", msg.RegistrationFee,
	)
	return nil
}
