package commands

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/chain/substrate/address"
	substrateclient "github.com/cordialsys/xcm/chain/substrate/client"
	"github.com/cordialsys/xcm/client"
	"github.com/cordialsys/xcm/cmd/xcm/setup"
	"github.com/cordialsys/xcm/errors"
	"github.com/cordialsys/xcm/node"
	"github.com/sirupsen/logrus"
)

func asJson(data any) string {
	bz, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(bz)
}

func parseNetwork(name string) (xcm.Network, error) {
	return xcm.ParseNetwork(name)
}

func parseVersion(version string) (xcm.Version, error) {
	if version == "" {
		return 0, nil
	}
	return xcm.ParseVersion(version)
}

// normalizeAddress renders an SS58 address with the prefix of the network it is used on.
// Ethereum addresses are passed through.
func normalizeAddress(network xcm.Network, addr string) (xcm.Address, error) {
	if xcm.IsEthereumAddress(xcm.Address(addr)) {
		return xcm.Address(addr), nil
	}
	normalized, err := address.Reencode(xcm.Address(addr), network)
	if err != nil {
		return "", errors.InvalidAddressFormatf("invalid address for %s: %v", network, err)
	}
	return normalized, nil
}

// parseAmount converts a decimal amount of the currency on the network into its base units
func parseAmount(network xcm.Network, currency xcm.Currency, amount string) (xcm.AmountBlockchain, error) {
	n, err := node.Get(network)
	if err != nil {
		return xcm.AmountBlockchain{}, err
	}
	asset, err := n.FindAsset(currency)
	if err != nil {
		return xcm.AmountBlockchain{}, err
	}
	human, err := xcm.NewAmountHumanReadableFromStr(amount)
	if err != nil {
		return xcm.AmountBlockchain{}, err
	}
	return human.ToBlockchain(asset.Decimals), nil
}

type output struct {
	Call    xcm.SerializedCall `json:"call"`
	Encoded string             `json:"encoded,omitempty"`
	Hash    xcm.TxHash         `json:"hash,omitempty"`
}

// dispatch connects to the network the call is dispatched on, builds the call and
// either prints it or submits it with the configured signer
func dispatch(ctx context.Context, network xcm.Network, submit bool, build func(conn client.Connection) (xcm.Call, error)) error {
	cfg := setup.UnwrapConfig(ctx)
	args := setup.UnwrapArgs(ctx)
	provider, err := setup.Provider(cfg, args, network)
	if err != nil {
		return err
	}
	conn, err := provider.Connect(ctx, network)
	if err != nil {
		return err
	}
	defer conn.Close()

	call, err := build(conn)
	if err != nil {
		return err
	}
	bz, err := call.Bytes()
	if err != nil {
		return fmt.Errorf("could not encode call: %v", err)
	}
	out := output{
		Call:    call.Serialized(),
		Encoded: "0x" + hex.EncodeToString(bz),
	}
	if submit {
		signer, account, err := setup.Signer(cfg, args, network)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"network": network,
			"account": account,
		}).Info("submitting")
		out.Hash, err = substrateclient.NewSubmitter().Submit(ctx, conn, call, signer, account)
		if err != nil {
			return err
		}
	}
	fmt.Println(asJson(out))
	return nil
}
