package commands

import (
	"context"
	"fmt"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/builder"
	"github.com/cordialsys/xcm/client"
	"github.com/cordialsys/xcm/cmd/xcm/setup"
	"github.com/spf13/cobra"
)

func CmdTransfer() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transfer <from> <to> <currency> <amount> <address>",
		Aliases: []string{"tf"},
		Short:   "Build a cross-chain transfer. The amount should be a decimal amount of the currency.",
		Args:    cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			from, err := parseNetwork(args[0])
			if err != nil {
				return err
			}
			to, err := parseNetwork(args[1])
			if err != nil {
				return err
			}
			currencyID, _ := cmd.Flags().GetString("currency-id")
			currency := xcm.Currency{Symbol: args[2], ID: currencyID}
			amount, err := parseAmount(from, currency, args[3])
			if err != nil {
				return err
			}
			recipient, err := normalizeAddress(to, args[4])
			if err != nil {
				return err
			}

			serialized, _ := cmd.Flags().GetBool("serialized")
			submit, _ := cmd.Flags().GetBool("submit")
			keepAlive, _ := cmd.Flags().GetBool("keep-alive")
			paraID, _ := cmd.Flags().GetUint32("para-id")
			versionFlag, _ := cmd.Flags().GetString("version")
			version, err := parseVersion(versionFlag)
			if err != nil {
				return err
			}
			if serialized && (submit || keepAlive) {
				return fmt.Errorf("--serialized cannot be combined with --submit or --keep-alive")
			}

			final := func(conn client.Connection) *builder.FinalBuilder {
				origin := builder.New(conn).From(from)
				var stage *builder.ToBuilder
				if paraID > 0 {
					stage = origin.To(to, paraID)
				} else {
					stage = origin.To(to)
				}
				b := stage.Currency(currency).Amount(amount).Address(recipient)
				if version != 0 {
					b = b.XcmVersion(version)
				}
				return b
			}

			if serialized {
				call, err := final(nil).BuildSerializedCall(ctx)
				if err != nil {
					return err
				}
				fmt.Println(asJson(call))
				return nil
			}

			return dispatch(ctx, from, submit, func(conn client.Connection) (xcm.Call, error) {
				b := final(conn)
				if keepAlive {
					destination, err := connect(ctx, to)
					if err != nil {
						return nil, err
					}
					defer destination.Close()
					b, err = b.UseKeepAlive(ctx, destination)
					if err != nil {
						return nil, err
					}
				}
				return b.Build(ctx)
			})
		},
	}
	cmd.Flags().Bool("serialized", false, "Print the serialized call without connecting.")
	cmd.Flags().Bool("submit", false, "Sign and submit the call, waiting for finality.")
	cmd.Flags().Bool("keep-alive", false, "Reject amounts below the destination's existential deposit.")
	cmd.Flags().String("version", "", "XCM version to use (V1-V4). Defaults to the origin's version.")
	cmd.Flags().String("currency-id", "", "Optional asset id to select the currency by.")
	cmd.Flags().Uint32("para-id", 0, "Optional parachain id overriding the destination's.")
	return cmd
}

func connect(ctx context.Context, network xcm.Network) (client.Connection, error) {
	cfg := setup.UnwrapConfig(ctx)
	provider, err := setup.Provider(cfg, setup.UnwrapArgs(ctx), "")
	if err != nil {
		return nil, err
	}
	return provider.Connect(ctx, network)
}
