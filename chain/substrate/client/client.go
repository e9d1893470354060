package client

import (
	"context"
	"fmt"
	"sync"

	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/chain/substrate"
	"github.com/cordialsys/xcm/chain/substrate/address"
	"github.com/cordialsys/xcm/chain/substrate/tx"
	"github.com/cordialsys/xcm/chain/substrate/tx_input"
	xclient "github.com/cordialsys/xcm/client"
	"github.com/sirupsen/logrus"
)

// AccountInfoMinimal decodes the leading fields of System.Account
type AccountInfoMinimal struct {
	Nonce       types.U32
	Consumers   types.U32
	Providers   types.U32
	Sufficients types.U32
	Data        struct {
		Free types.U128
		// skip fields after this point as we don't need them
	}
}

// Client is a live connection to a substrate node
type Client struct {
	network   xcm.Network
	DotClient *gsrpc.SubstrateAPI
	meta      *types.Metadata

	mu    sync.Mutex
	calls tx_input.Metadata
}

var _ xclient.Connection = &Client{}

func NewClient(network xcm.Network, rpcurl string) (*Client, error) {
	api, err := gsrpc.NewSubstrateAPI(rpcurl)
	if err != nil {
		return nil, substrate.CheckError(fmt.Errorf("could not connect to %s (%s): %w", network, rpcurl, err))
	}
	meta, err := api.RPC.State.GetMetadataLatest()
	if err != nil {
		api.Client.Close()
		return nil, substrate.CheckError(fmt.Errorf("could not fetch metadata of %s: %w", network, err))
	}
	return &Client{
		network:   network,
		DotClient: api,
		meta:      meta,
	}, nil
}

func (client *Client) Network() xcm.Network {
	return client.network
}

func (client *Client) resolve(name string) (types.CallIndex, error) {
	client.mu.Lock()
	defer client.mu.Unlock()
	return client.calls.Resolve(client.meta, name)
}

func (client *Client) NewCall(ctx context.Context, call xcm.SerializedCall) (xcm.Call, error) {
	return substrate.NewCall(client.network, call, client.resolve)
}

func (client *Client) ExistentialDeposit(ctx context.Context) (xcm.AmountBlockchain, error) {
	for _, pallet := range client.meta.AsMetadataV14.Pallets {
		if string(pallet.Name) != "Balances" {
			continue
		}
		for _, constant := range pallet.Constants {
			if string(constant.Name) != "ExistentialDeposit" {
				continue
			}
			var deposit types.U128
			if err := codec.Decode(constant.Value, &deposit); err != nil {
				return xcm.AmountBlockchain{}, fmt.Errorf("could not decode existential deposit of %s: %w", client.network, err)
			}
			return xcm.AmountBlockchain(*deposit.Int), nil
		}
	}
	return xcm.AmountBlockchain{}, fmt.Errorf("%s does not define Balances.ExistentialDeposit", client.network)
}

func (client *Client) Close() {
	client.DotClient.Client.Close()
}

func (client *Client) FetchTxInputChain() (*tx_input.TxInput, error) {
	txInput := tx_input.NewTxInput()
	rpc := client.DotClient.RPC
	var err error
	txInput.Meta, err = tx_input.ParseMeta(client.meta)
	if err != nil {
		return txInput, err
	}
	txInput.GenesisHash, err = rpc.Chain.GetBlockHash(0)
	if err != nil {
		return txInput, err
	}
	rv, err := rpc.State.GetRuntimeVersionLatest()
	if err != nil {
		return txInput, err
	}
	txInput.Rv = *rv
	header, err := rpc.Chain.GetHeaderLatest()
	if err != nil {
		return txInput, err
	}
	txInput.CurrentHeight = uint64(header.Number)
	txInput.CurHash, err = rpc.Chain.GetBlockHash(txInput.CurrentHeight)
	if err != nil {
		return txInput, err
	}
	return txInput, nil
}

func (client *Client) FetchAccountNonce(from xcm.Address) (uint64, error) {
	sender, err := address.DecodeMulti(from)
	if err != nil {
		return 0, err
	}
	storageKey, err := types.CreateStorageKey(client.meta, "System", "Account", sender.AsID[:])
	if err != nil {
		return 0, err
	}
	var accountInfo AccountInfoMinimal
	ok, err := client.DotClient.RPC.State.GetStorageLatest(storageKey, &accountInfo)
	if err != nil || !ok {
		return 0, err
	}
	return uint64(accountInfo.Nonce), nil
}

// EstimateTip averages the tips of the latest block, if enough extrinsics carry one
func (client *Client) EstimateTip(ctx context.Context) (uint64, error) {
	block, err := client.DotClient.RPC.Chain.GetBlockLatest()
	if err != nil {
		return 0, err
	}

	var total uint64
	var count uint64
	for _, ext := range block.Block.Extrinsics {
		tip := ext.Signature.Tip.Int64()
		if tip > 0 {
			total += uint64(tip)
			count += 1
		}
	}
	if count < 5 {
		return 0, nil
	}

	return total / count, nil
}

func (client *Client) FetchTxInput(ctx context.Context, from xcm.Address) (*tx_input.TxInput, error) {
	txInput, err := client.FetchTxInputChain()
	if err != nil {
		return txInput, substrate.CheckError(err)
	}
	txInput.Nonce, err = client.FetchAccountNonce(from)
	if err != nil {
		return txInput, substrate.CheckError(err)
	}
	tip, err := client.EstimateTip(ctx)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"network": client.network,
			"error":   err,
		}).Warn("could not estimate tip")
	}
	txInput.Tip = tip
	return txInput, nil
}

// SubmitAndWatch submits the signed extrinsic and blocks until it is finalized.
// An extrinsic that is finalized but failed to dispatch is a TransactionFailure.
func (client *Client) SubmitAndWatch(ctx context.Context, signed *tx.Tx) (xcm.TxHash, error) {
	data, err := signed.Serialize()
	if err != nil {
		return "", err
	}
	hash := signed.Hash()
	encoded := codec.HexEncodeToString(data)
	log := logrus.WithFields(logrus.Fields{
		"network": client.network,
		"hash":    hash,
	})
	log.WithField("tx", encoded).Debug("submitting tx")

	updates := make(chan types.ExtrinsicStatus)
	sub, err := client.DotClient.Client.Subscribe(ctx, "author", "submitAndWatchExtrinsic", "unwatchExtrinsic", "extrinsicUpdate", updates, encoded)
	if err != nil {
		return hash, substrate.CheckError(substrate.AsRpcErrorMaybe(err))
	}
	defer sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return hash, ctx.Err()
		case err := <-sub.Err():
			return hash, substrate.CheckError(substrate.AsRpcErrorMaybe(err))
		case status := <-updates:
			if err := substrate.StatusError(status); err != nil {
				return hash, err
			}
			switch {
			case status.IsInBlock:
				log.WithField("block", status.AsInBlock.Hex()).Info("included in block")
			case status.IsFinalized:
				log.WithField("block", status.AsFinalized.Hex()).Info("finalized")
				if err := client.checkFinalized(status.AsFinalized, data); err != nil {
					log.WithError(err).Error("extrinsic failed")
					return hash, err
				}
				return hash, nil
			}
		}
	}
}
