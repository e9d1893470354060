package setup

import (
	"context"
	"fmt"
	"os"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/chain/substrate"
	"github.com/cordialsys/xcm/chain/substrate/address"
	substrateclient "github.com/cordialsys/xcm/chain/substrate/client"
	"github.com/cordialsys/xcm/config"
	"github.com/cordialsys/xcm/config/constants"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type ContextKey string

const ContextConfig ContextKey = "config"
const ContextArgs ContextKey = "args"

func WrapConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ContextConfig, cfg)
}

func UnwrapConfig(ctx context.Context) *config.Config {
	return ctx.Value(ContextConfig).(*config.Config)
}

func WrapArgs(ctx context.Context, args *Args) context.Context {
	return context.WithValue(ctx, ContextArgs, args)
}

func UnwrapArgs(ctx context.Context) *Args {
	return ctx.Value(ContextArgs).(*Args)
}

type Args struct {
	ConfigPath     string
	Rpc            string
	VerbosityCount int
	Secret         config.Secret
	SignatureType  xcm.SignatureType
}

func AddArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", fmt.Sprintf("Path to config.yaml (may also set %s).", constants.ConfigEnv))
	cmd.PersistentFlags().String("rpc", "", "RPC url of the network the call is dispatched on. Optional.")
	cmd.PersistentFlags().CountP("verbose", "v", "Set verbosity.")
	cmd.PersistentFlags().String("secret", "", "Secret reference for the hex seed of the signer (default is the configured seed).")
	cmd.PersistentFlags().String("signature", string(xcm.Sr25519), "Signature scheme of the signer (sr25519 or ed255).")
}

func ArgsFromCmd(cmd *cobra.Command) (*Args, error) {
	configPath, _ := cmd.Flags().GetString("config")
	rpc, _ := cmd.Flags().GetString("rpc")
	count, _ := cmd.Flags().GetCount("verbose")
	secret, _ := cmd.Flags().GetString("secret")
	signatureType, _ := cmd.Flags().GetString("signature")
	if secret != "" && !config.HasTypePrefix(secret) {
		return nil, fmt.Errorf("--secret must not be passed directly on command, instead you should use a reference (e.g. env:XCM_SEED)")
	}
	return &Args{
		ConfigPath:     configPath,
		Rpc:            rpc,
		VerbosityCount: count,
		Secret:         config.Secret(secret),
		SignatureType:  xcm.SignatureType(signatureType),
	}, nil
}

func ConfigureLogger(args *Args, cfg *config.Config) {
	switch {
	case args.VerbosityCount == 0:
		config.ConfigureLogger(cfg.LogLevel)
		if cfg.LogLevel == "" || cfg.LogLevel == "info" {
			logrus.SetLevel(logrus.WarnLevel)
		}
	case args.VerbosityCount == 1:
		config.ConfigureLogger("info")
	case args.VerbosityCount == 2:
		config.ConfigureLogger("debug")
	default:
		config.ConfigureLogger("trace")
	}
}

func LoadConfig(args *Args) (*config.Config, error) {
	if args.ConfigPath != "" {
		_ = os.Setenv(constants.ConfigEnv, args.ConfigPath)
	}
	return config.Load()
}

// Provider connects to the configured endpoints; --rpc overrides the endpoint of the dispatching network
func Provider(cfg *config.Config, args *Args, network xcm.Network) (*substrateclient.Provider, error) {
	endpoints, err := cfg.Endpoints()
	if err != nil {
		return nil, err
	}
	if args.Rpc != "" && network != "" {
		endpoints[network] = args.Rpc
	}
	return substrateclient.NewProvider(endpoints), nil
}

// Signer loads the signer and derives its account on the network
func Signer(cfg *config.Config, args *Args, network xcm.Network) (xcm.Signer, xcm.Address, error) {
	ref := args.Secret
	if ref == "" {
		ref = cfg.Seed
	}
	seed, err := ref.Load()
	if err != nil {
		return nil, "", fmt.Errorf("could not load secret: %v", err)
	}
	if seed == "" {
		return nil, "", fmt.Errorf("no seed found, set --secret or the configured seed reference (%s)", cfg.Seed)
	}
	signer, err := substrate.NewSigner(args.SignatureType, seed)
	if err != nil {
		return nil, "", err
	}
	account, err := address.Encode(signer.PublicKey(), address.Prefix(network))
	if err != nil {
		return nil, "", err
	}
	return signer, account, nil
}
