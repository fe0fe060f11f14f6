package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"namechain/crypto/keys"
)

func newKeysCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage signing keys",
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Generate a new keypair and store it in the home dir",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := keys.Generate()
			if err != nil {
				return err
			}
			path := keyfilePath(homeDir(v), args[0])
			if err := keys.Save(path, kp); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "key %q stored at %s\naddress: %s\n", args[0], path, kp.Address())
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a stored key's address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := keys.Load(keyfilePath(homeDir(v), args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), kp.Address())
			return nil
		},
	}

	cmd.AddCommand(addCmd, showCmd)
	return cmd
}
