package main

import (
	"github.com/cordialsys/xcm/cmd/xcm/commands"
	"github.com/cordialsys/xcm/cmd/xcm/setup"
	"github.com/spf13/cobra"
)

func CmdXcm() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "xcm",
		Short:        "Build and submit cross-chain transfers",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			args, err := setup.ArgsFromCmd(cmd)
			if err != nil {
				return err
			}
			cfg, err := setup.LoadConfig(args)
			if err != nil {
				return err
			}
			setup.ConfigureLogger(args, cfg)

			ctx := setup.WrapConfig(cmd.Context(), cfg)
			ctx = setup.WrapArgs(ctx, args)
			cmd.SetContext(ctx)
			return nil
		},
	}
	setup.AddArgs(cmd)

	cmd.AddCommand(commands.CmdNetworks())
	cmd.AddCommand(commands.CmdTransfer())
	cmd.AddCommand(commands.CmdClaim())
	cmd.AddCommand(commands.CmdChannel())
	cmd.AddCommand(commands.CmdRoute())

	return cmd
}

func main() {
	rootCmd := CmdXcm()
	_ = rootCmd.Execute()
}
