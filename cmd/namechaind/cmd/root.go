package cmd

import (
	"os"
	"path/filepath"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagHome   = "home"
	flagListen = "listen"
	flagFee    = "fee"

	dbName = "namechain"
)

func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "namechaind",
		Short:         "namechain registry node",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			v.SetEnvPrefix("NAMECHAIN")
			v.AutomaticEnv()

			// An optional config.yaml in the home dir overrides defaults but
			// not explicit flags.
			v.SetConfigName("config")
			v.AddConfigPath(cast.ToString(v.Get(flagHome)))
			if err := v.ReadInConfig(); err != nil {
				if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
					return err
				}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String(flagHome, defaultHome(), "node home directory")

	rootCmd.AddCommand(
		newInitCmd(v),
		newKeysCmd(v),
		newStartCmd(v),
	)
	return rootCmd
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".namechain"
	}
	return filepath.Join(home, ".namechain")
}

func newLogger() log.Logger {
	return log.NewLogger(os.Stderr)
}

func homeDir(v *viper.Viper) string {
	return cast.ToString(v.Get(flagHome))
}

func openDB(home string) (dbm.DB, error) {
	return dbm.NewGoLevelDB(dbName, filepath.Join(home, "data"), nil)
}

func keyfilePath(home, name string) string {
	return filepath.Join(home, "keys", name+".json")
}
