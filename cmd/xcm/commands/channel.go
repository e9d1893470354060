package commands

import (
	"fmt"
	"strconv"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/builder"
	"github.com/cordialsys/xcm/client"
	"github.com/spf13/cobra"
)

func parseUint32(name string, value string) (uint32, error) {
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", name, err)
	}
	return uint32(parsed), nil
}

func CmdChannel() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channel",
		Short: "Open or close HRMP channels. Calls are dispatched with sudo on the relay chain.",
		Long:  "Open or close HRMP channels. Channel calls are resolved against the relay chain metadata, so a relay RPC is always required. Without --submit the encoded call is printed.",
	}
	cmd.PersistentFlags().Bool("submit", false, "Sign and submit the call, waiting for finality.")
	cmd.AddCommand(CmdChannelOpen())
	cmd.AddCommand(CmdChannelClose())
	return cmd
}

func CmdChannelOpen() *cobra.Command {
	return &cobra.Command{
		Use:   "open <from> <to> <max-size> <max-message-size>",
		Short: "Open a channel between two parachains.",
		Args:  cobra.ExactArgs(4),
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
			maxSize, err := parseUint32("max-size", args[2])
			if err != nil {
				return err
			}
			maxMessageSize, err := parseUint32("max-message-size", args[3])
			if err != nil {
				return err
			}
			submit, _ := cmd.Flags().GetBool("submit")

			final := func(conn client.Connection) (*builder.OpenChannelFinalBuilder, error) {
				open, err := builder.New(conn).From(from).To(to).OpenChannel()
				if err != nil {
					return nil, err
				}
				return open.MaxSize(maxSize).MaxMessageSize(maxMessageSize), nil
			}
			return dispatch(ctx, from.RelayChain(), submit, func(conn client.Connection) (xcm.Call, error) {
				b, err := final(conn)
				if err != nil {
					return nil, err
				}
				return b.Build(ctx)
			})
		},
	}
}

func CmdChannelClose() *cobra.Command {
	return &cobra.Command{
		Use:   "close <network> <inbound> <outbound>",
		Short: "Force clean the channels of a parachain.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			network, err := parseNetwork(args[0])
			if err != nil {
				return err
			}
			inbound, err := parseUint32("inbound", args[1])
			if err != nil {
				return err
			}
			outbound, err := parseUint32("outbound", args[2])
			if err != nil {
				return err
			}
			submit, _ := cmd.Flags().GetBool("submit")

			final := func(conn client.Connection) (*builder.CloseChannelFinalBuilder, error) {
				closeChannel, err := builder.New(conn).From(network).CloseChannel()
				if err != nil {
					return nil, err
				}
				return closeChannel.Inbound(inbound).Outbound(outbound), nil
			}
			return dispatch(ctx, network.RelayChain(), submit, func(conn client.Connection) (xcm.Call, error) {
				b, err := final(conn)
				if err != nil {
					return nil, err
				}
				return b.Build(ctx)
			})
		},
	}
}
