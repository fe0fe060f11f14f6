package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"namechain/app"
	"namechain/gateway"
	"namechain/ledger"
)

func newStartCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Serve the registry gateway",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger()

			db, err := openDB(homeDir(v))
			if err != nil {
				return err
			}
			defer db.Close()

			a, err := app.New(logger, db, ledger.NewSystemClock())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return gateway.New(a, logger).ListenAndServe(ctx, cast.ToString(v.Get(flagListen)))
		},
	}
	cmd.Flags().String(flagListen, "127.0.0.1:8545", "gateway listen address")
	return cmd
}
