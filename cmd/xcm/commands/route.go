package commands

import (
	"context"
	"fmt"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/chain/ethereum"
	substrateclient "github.com/cordialsys/xcm/chain/substrate/client"
	"github.com/cordialsys/xcm/cmd/xcm/setup"
	"github.com/cordialsys/xcm/config"
	"github.com/cordialsys/xcm/exchange"
	"github.com/cordialsys/xcm/router"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type routeFlags struct {
	typ        string
	exchange   string
	injector   string
	recipient  string
	hubAddress string
	ethAddress string
	slippage   string
	execute    bool
}

func CmdRoute() *cobra.Command {
	flags := routeFlags{}
	cmd := &cobra.Command{
		Use:   "route <from> <to> <currency-from> <currency-to> <amount>",
		Short: "Preview or execute a route through an exchange. The amount should be a decimal amount of the origin currency.",
		Long: "Preview or execute a route through an exchange, bridging through the configured hub when either end is the bridge network. " +
			"Without --execute the steps are printed.",
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := setup.UnwrapConfig(ctx)
			opts, err := routeOptions(cfg, flags, args)
			if err != nil {
				return err
			}

			deps := router.Dependencies{
				Submitter:     substrateclient.NewSubmitter(),
				Hub:           cfg.Hub,
				BridgeNetwork: cfg.BridgeNetwork,
			}
			deps.Connections, err = setup.Provider(cfg, setup.UnwrapArgs(ctx), "")
			if err != nil {
				return err
			}
			// no dex adapters ship with the cli, so only the bridge slices can run
			deps.Exchanges, err = exchange.NewRegistry()
			if err != nil {
				return err
			}

			if !flags.execute {
				steps, err := router.New(deps).BuildTransferSteps(ctx, opts)
				if err != nil {
					return err
				}
				fmt.Println(asJson(steps))
				return nil
			}

			if err := withSigners(ctx, cfg, &opts); err != nil {
				return err
			}
			if opts.From == cfg.BridgeNetwork {
				bridge, err := ethereum.Dial(ctx, cfg.BridgeNetwork, cfg.Ethereum.URL, cfg.Ethereum.Gateway, cfg.Ethereum.ChainID)
				if err != nil {
					return err
				}
				deps.Bridge = bridge
			}
			events := []router.StatusEvent{}
			opts.OnStatusChange = func(event router.StatusEvent) {
				log := logrus.WithFields(logrus.Fields{
					"type":    event.Type,
					"status":  event.Status,
					"network": event.Network,
				})
				if event.Error != nil {
					log = log.WithError(event.Error)
				}
				log.Info("step status")
				if event.Status == router.Success {
					events = append(events, event)
				}
			}
			err = router.New(deps).Transfer(ctx, opts)
			fmt.Println(asJson(events))
			return err
		},
	}
	cmd.Flags().StringVar(&flags.typ, "type", string(router.FullTransfer), fmt.Sprintf("Slice of the route to run, one of %v.", router.TransactionTypeList))
	cmd.Flags().StringVar(&flags.exchange, "exchange", "", "Exchange to swap on. Defaults to the best quote.")
	cmd.Flags().StringVar(&flags.injector, "injector", "", "Sending account. Defaults to the signer's account when executing.")
	cmd.Flags().StringVar(&flags.recipient, "recipient", "", "Receiving account on the destination.")
	cmd.Flags().StringVar(&flags.hubAddress, "hub-address", "", "Account on the hub for routes touching the bridge network. Defaults to the signer's account when executing.")
	cmd.Flags().StringVar(&flags.ethAddress, "eth-address", "", "Sender on the bridge network. Defaults to the configured ethereum key when executing.")
	cmd.Flags().StringVar(&flags.slippage, "slippage", router.DefaultSlippagePct, "Slippage tolerance of the swap in percent.")
	cmd.Flags().BoolVar(&flags.execute, "execute", false, "Sign and submit every step, waiting for each to finalize.")
	return cmd
}

func routeOptions(cfg *config.Config, flags routeFlags, args []string) (router.TransferOptions, error) {
	opts := router.TransferOptions{
		CurrencyFrom: xcm.CurrencySymbol(args[2]),
		CurrencyTo:   xcm.CurrencySymbol(args[3]),
		Exchange:     flags.exchange,
		SlippagePct:  flags.slippage,
	}
	var err error
	if opts.Type, err = router.ParseTransactionType(flags.typ); err != nil {
		return opts, err
	}
	if opts.From, err = parseNetwork(args[0]); err != nil {
		return opts, err
	}
	if opts.To, err = parseNetwork(args[1]); err != nil {
		return opts, err
	}
	// amounts leaving the bridge network are denominated like the hub's bridged asset
	priced := opts.From
	if priced == cfg.BridgeNetwork {
		priced = cfg.Hub
	}
	if opts.Amount, err = parseAmount(priced, opts.CurrencyFrom, args[4]); err != nil {
		return opts, err
	}

	if flags.injector != "" {
		if opts.InjectorAddress, err = normalizeAddress(opts.From, flags.injector); err != nil {
			return opts, err
		}
		if xcm.IsEthereumAddress(opts.InjectorAddress) {
			opts.EvmInjectorAddress, opts.InjectorAddress = opts.InjectorAddress, ""
		}
	}
	if flags.recipient != "" {
		if opts.RecipientAddress, err = normalizeAddress(opts.To, flags.recipient); err != nil {
			return opts, err
		}
	}
	if flags.hubAddress != "" {
		if opts.AssetHubAddress, err = normalizeAddress(cfg.Hub, flags.hubAddress); err != nil {
			return opts, err
		}
	}
	if flags.ethAddress != "" {
		opts.EthAddress = xcm.Address(flags.ethAddress)
		if !xcm.IsEthereumAddress(opts.EthAddress) {
			return opts, fmt.Errorf("invalid --eth-address %s", flags.ethAddress)
		}
	}
	return opts, nil
}

// withSigners loads the substrate signer and, for routes leaving the bridge network,
// the ethereum key. Missing accounts default to the signers' own.
func withSigners(ctx context.Context, cfg *config.Config, opts *router.TransferOptions) error {
	args := setup.UnwrapArgs(ctx)
	if opts.Type != router.FromEth {
		origin := opts.From
		if origin == cfg.BridgeNetwork {
			origin = cfg.Hub
		}
		signer, account, err := setup.Signer(cfg, args, origin)
		if err != nil {
			return err
		}
		opts.Signer = signer
		if opts.InjectorAddress == "" && opts.EvmInjectorAddress == "" {
			opts.InjectorAddress = account
		}
		if opts.AssetHubAddress == "" && (opts.From == cfg.BridgeNetwork || opts.To == cfg.BridgeNetwork) {
			if opts.AssetHubAddress, err = normalizeAddress(cfg.Hub, string(account)); err != nil {
				return err
			}
		}
	}
	if opts.From != cfg.BridgeNetwork {
		return nil
	}
	key, err := cfg.Ethereum.Key.Load()
	if err != nil {
		return fmt.Errorf("could not load ethereum key: %v", err)
	}
	if key == "" {
		return fmt.Errorf("no ethereum key found, set the configured key reference (%s)", cfg.Ethereum.Key)
	}
	ethSigner, err := ethereum.NewSigner(key)
	if err != nil {
		return err
	}
	from, err := ethereum.AddressOf(ethSigner)
	if err != nil {
		return err
	}
	opts.EthSigner = ethSigner
	opts.EthAddress = xcm.Address(from.Hex())
	return nil
}
