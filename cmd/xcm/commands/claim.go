package commands

import (
	"fmt"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/builder"
	"github.com/cordialsys/xcm/client"
	"github.com/cordialsys/xcm/location"
	"github.com/cordialsys/xcm/node"
	"github.com/spf13/cobra"
)

func CmdClaim() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim <network> <amount> <account>",
		Short: "Claim relay native assets trapped on a network. The amount should be a decimal amount.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			network, err := parseNetwork(args[0])
			if err != nil {
				return err
			}
			relay, err := node.Get(network.RelayChain())
			if err != nil {
				return err
			}
			human, err := xcm.NewAmountHumanReadableFromStr(args[1])
			if err != nil {
				return err
			}
			account, err := normalizeAddress(network, args[2])
			if err != nil {
				return err
			}
			submit, _ := cmd.Flags().GetBool("submit")
			serialized, _ := cmd.Flags().GetBool("serialized")
			versionFlag, _ := cmd.Flags().GetString("version")
			version, err := parseVersion(versionFlag)
			if err != nil {
				return err
			}
			if version == 0 {
				version = xcm.V3
			}

			scenario := xcm.ParaToPara
			if network.IsRelayChain() {
				scenario = xcm.RelayToPara
			}
			assets := []location.Asset{
				location.NewAsset(location.RelayNativeAsset(scenario), human.ToBlockchain(relay.Decimals)),
			}
			final := func(conn client.Connection) *builder.ClaimFinalBuilder {
				return builder.New(conn).ClaimFrom(network).Fungible(assets).Account(account).XcmVersion(version)
			}

			if serialized {
				call, err := final(nil).BuildSerializedCall(ctx)
				if err != nil {
					return err
				}
				fmt.Println(asJson(call))
				return nil
			}
			return dispatch(ctx, network, submit, func(conn client.Connection) (xcm.Call, error) {
				return final(conn).Build(ctx)
			})
		},
	}
	cmd.Flags().Bool("serialized", false, "Print the serialized call without connecting.")
	cmd.Flags().Bool("submit", false, "Sign and submit the call, waiting for finality.")
	cmd.Flags().String("version", "V3", "XCM version of the claim (V2 or V3).")
	return cmd
}
