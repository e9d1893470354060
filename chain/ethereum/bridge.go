package ethereum

import (
	"context"
	_ "embed"
	"fmt"
	"math/big"
	"strings"

	xcm "github.com/cordialsys/xcm"
	xclient "github.com/cordialsys/xcm/client"
	clienterrors "github.com/cordialsys/xcm/client/errors"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sirupsen/logrus"
)

//go:embed gateway.json
var gatewayJson string

//go:embed erc20.json
var erc20Json string

var GatewayABI abi.ABI
var ERC20ABI abi.ABI

func init() {
	var err error
	GatewayABI, err = abi.JSON(strings.NewReader(gatewayJson))
	if err != nil {
		panic(err)
	}
	ERC20ABI, err = abi.JSON(strings.NewReader(erc20Json))
	if err != nil {
		panic(err)
	}
}

// Kinds of gateway MultiAddress
const (
	KindIndex     uint8 = 0
	KindAddress32 uint8 = 1
	KindAddress20 uint8 = 2
)

// MultiAddress mirrors the gateway's destination address tuple
type MultiAddress struct {
	Kind uint8
	Data []byte
}

// NewMultiAddress encodes a parachain account for the gateway
func NewMultiAddress(addr xcm.Address) (MultiAddress, error) {
	if xcm.IsEthereumAddress(addr) {
		key, err := xcm.AccountKey20(addr)
		if err != nil {
			return MultiAddress{}, err
		}
		return MultiAddress{Kind: KindAddress20, Data: key[:]}, nil
	}
	id, err := xcm.AccountID32(addr)
	if err != nil {
		return MultiAddress{}, err
	}
	return MultiAddress{Kind: KindAddress32, Data: id[:]}, nil
}

// Backend is the subset of an ethereum rpc client the bridge needs
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Bridge submits token transfers to the gateway contract and waits for their receipt
type Bridge struct {
	network xcm.Network
	backend Backend
	gateway common.Address
}

var _ xclient.Bridge = &Bridge{}

func NewBridge(network xcm.Network, backend Backend, gateway string) (*Bridge, error) {
	if !common.IsHexAddress(gateway) {
		return nil, fmt.Errorf("invalid gateway contract: %s", gateway)
	}
	return &Bridge{
		network: network,
		backend: backend,
		gateway: common.HexToAddress(gateway),
	}, nil
}

// Dial connects to an ethereum rpc endpoint. A non-zero chainID must match the endpoint's.
func Dial(ctx context.Context, network xcm.Network, url string, gateway string, chainID uint64) (*Bridge, error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, clienterrors.NetworkErrorf("could not connect to %s: %v", network, err)
	}
	bridge, err := NewBridge(network, client, gateway)
	if err != nil {
		client.Close()
		return nil, err
	}
	if chainID != 0 {
		if err := bridge.CheckChainID(ctx, chainID); err != nil {
			client.Close()
			return nil, err
		}
	}
	return bridge, nil
}

func (b *Bridge) CheckChainID(ctx context.Context, expected uint64) error {
	chainID, err := b.backend.ChainID(ctx)
	if err != nil {
		return clienterrors.NetworkErrorf("could not fetch chain id of %s: %v", b.network, err)
	}
	if !chainID.IsUint64() || chainID.Uint64() != expected {
		return fmt.Errorf("%s endpoint is on chain %s, expected %d", b.network, chainID, expected)
	}
	return nil
}

func (b *Bridge) Network() xcm.Network {
	return b.network
}

// Transactor returns transact options that sign with the given signer
func Transactor(ctx context.Context, signer xcm.Signer, chainID *big.Int) (*bind.TransactOpts, error) {
	from, err := AddressOf(signer)
	if err != nil {
		return nil, err
	}
	txSigner := types.LatestSignerForChainID(chainID)
	return &bind.TransactOpts{
		From:    from,
		Context: ctx,
		Signer: func(address common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if address != from {
				return nil, bind.ErrNotAuthorized
			}
			sig, err := signer.Sign(txSigner.Hash(tx).Bytes())
			if err != nil {
				return nil, err
			}
			return tx.WithSignature(txSigner, sig)
		},
	}, nil
}

func (b *Bridge) waitMined(ctx context.Context, tx *types.Transaction, method string) error {
	log := logrus.WithFields(logrus.Fields{
		"network": b.network,
		"method":  method,
		"hash":    tx.Hash().Hex(),
	})
	log.Debug("waiting for receipt")
	receipt, err := bind.WaitMined(ctx, b.backend, tx)
	if err != nil {
		return clienterrors.NetworkErrorf("%s: %v", method, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return clienterrors.TransactionFailuref("%s reverted in block %v", method, receipt.BlockNumber)
	}
	log.WithField("block", receipt.BlockNumber).Info("mined")
	return nil
}

// approve raises the gateway's allowance to amount if it is not already sufficient
func (b *Bridge) approve(ctx context.Context, opts *bind.TransactOpts, token common.Address, amount *big.Int) error {
	erc20 := bind.NewBoundContract(token, ERC20ABI, b.backend, b.backend, b.backend)
	var out []interface{}
	err := erc20.Call(&bind.CallOpts{Context: ctx, From: opts.From}, &out, "allowance", opts.From, b.gateway)
	if err != nil {
		return fmt.Errorf("could not fetch allowance: %w", err)
	}
	if len(out) == 1 {
		if allowance, ok := out[0].(*big.Int); ok && allowance.Cmp(amount) >= 0 {
			return nil
		}
	}
	tx, err := erc20.Transact(opts, "approve", b.gateway, amount)
	if err != nil {
		return fmt.Errorf("could not approve %s: %w", token.Hex(), err)
	}
	return b.waitMined(ctx, tx, "approve")
}

// QuoteFee returns the fee in wei the gateway charges to deliver to the destination parachain
func (b *Bridge) QuoteFee(ctx context.Context, token common.Address, destinationParaID uint32, destinationFee *big.Int) (*big.Int, error) {
	gateway := bind.NewBoundContract(b.gateway, GatewayABI, b.backend, b.backend, b.backend)
	var out []interface{}
	err := gateway.Call(&bind.CallOpts{Context: ctx}, &out, "quoteSendTokenFee", token, destinationParaID, destinationFee)
	if err != nil {
		return nil, fmt.Errorf("could not quote bridge fee: %w", err)
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("unexpected quote response: %v", out)
	}
	fee, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected quote response: %v", out)
	}
	return fee, nil
}

// Transfer approves the token, quotes the fee and sends the token to the parachain
func (b *Bridge) Transfer(ctx context.Context, transfer xclient.BridgeTransfer, signer xcm.Signer) (xcm.TxHash, error) {
	if !common.IsHexAddress(transfer.Token) {
		return "", fmt.Errorf("invalid token contract: %s", transfer.Token)
	}
	token := common.HexToAddress(transfer.Token)
	destination, err := NewMultiAddress(transfer.Recipient)
	if err != nil {
		return "", err
	}
	amount := transfer.Amount.Int()
	destinationFee := transfer.DestinationFee.Int()

	chainID, err := b.backend.ChainID(ctx)
	if err != nil {
		return "", clienterrors.NetworkErrorf("could not fetch chain id: %v", err)
	}
	opts, err := Transactor(ctx, signer, chainID)
	if err != nil {
		return "", err
	}

	if err := b.approve(ctx, opts, token, amount); err != nil {
		return "", err
	}
	fee, err := b.QuoteFee(ctx, token, transfer.DestinationParaID, destinationFee)
	if err != nil {
		return "", err
	}
	logrus.WithFields(logrus.Fields{
		"network":     b.network,
		"token":       transfer.Symbol,
		"destination": transfer.DestinationParaID,
		"amount":      transfer.Amount.String(),
		"fee":         fee.String(),
	}).Info("sending token")

	gateway := bind.NewBoundContract(b.gateway, GatewayABI, b.backend, b.backend, b.backend)
	opts.Value = fee
	tx, err := gateway.Transact(opts, "sendToken", token, transfer.DestinationParaID, destination, destinationFee, amount)
	if err != nil {
		return "", fmt.Errorf("could not send token: %w", err)
	}
	hash := xcm.TxHash(tx.Hash().Hex())
	if err := b.waitMined(ctx, tx, "sendToken"); err != nil {
		return hash, err
	}
	return hash, nil
}
