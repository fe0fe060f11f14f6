package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"namechain/app"
	"namechain/crypto/keys"
	"namechain/ledger"
	"namechain/x/registry/types"
)

// newInitCmd creates the node home, generates the administrator key,
// allocates the config slot, and runs a signed Initialize.
func newInitCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the registry with a fresh administrator key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			home := homeDir(v)
			fee := cast.ToUint64(v.Get(flagFee))
			logger := newLogger()

			admin, err := keys.Generate()
			if err != nil {
				return err
			}
			if err := keys.Save(keyfilePath(home, "admin"), admin); err != nil {
				return err
			}

			db, err := openDB(home)
			if err != nil {
				return err
			}
			defer db.Close()

			a, err := app.New(logger, db, ledger.NewSystemClock())
			if err != nil {
				return err
			}

			ctx := context.Background()
			configID := types.ConfigID()
			if err := a.Ledger().WithTx(ctx, func(ctx context.Context) error {
				return a.Ledger().Allocate(ctx, configID, types.ConfigRecordSize)
			}); err != nil {
				return err
			}

			tx, err := signTx(admin, types.Initialize{RegistrationFee: fee}, []types.AccountMeta{
				{ID: admin.Address(), Signer: true},
				{ID: configID},
			})
			if err != nil {
				return err
			}
			if _, err := a.Execute(ctx, tx); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "registry initialized\nadministrator: %s\nregistration fee: %d\n",
				admin.Address(), fee)
			return nil
		},
	}
	cmd.Flags().Uint64(flagFee, 1_000_000, "initial registration fee")
	return cmd
}

// signTx assembles and signs an envelope for one instruction.
func signTx(kp keys.Keypair, instr types.Instruction, accounts []types.AccountMeta) (*types.Tx, error) {
	raw, err := types.EncodeInstruction(instr)
	if err != nil {
		return nil, err
	}
	tx := &types.Tx{Instruction: raw, Accounts: accounts}
	tx.Signature = kp.Sign(tx.SigningBytes())
	return tx, nil
}
