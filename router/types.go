package router

import (
	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/errors"
)

// TransactionType selects the slice of the route to build or execute
type TransactionType string

const (
	FullTransfer  TransactionType = "FULL_TRANSFER"
	ToExchange    TransactionType = "TO_EXCHANGE"
	Swap          TransactionType = "SWAP"
	ToDestination TransactionType = "TO_DESTINATION"
	ToEth         TransactionType = "TO_ETH"
	FromEth       TransactionType = "FROM_ETH"
)

var TransactionTypeList = []TransactionType{
	FullTransfer,
	ToExchange,
	Swap,
	ToDestination,
	ToEth,
	FromEth,
}

func ParseTransactionType(s string) (TransactionType, error) {
	for _, t := range TransactionTypeList {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errors.InvalidTransferOptionsf("invalid transaction type: %s", s)
}

// includes reports whether a step of the given type belongs to this slice
func (t TransactionType) includes(step TransactionType) bool {
	switch t {
	case FullTransfer:
		return true
	case ToExchange:
		return step == FromEth || step == ToExchange
	case ToDestination:
		return step == ToDestination || step == ToEth
	}
	return t == step
}

type TransactionStatus string

const (
	Pending    TransactionStatus = "PENDING"
	InProgress TransactionStatus = "IN_PROGRESS"
	Success    TransactionStatus = "SUCCESS"
	Failed     TransactionStatus = "FAILED"
)

// StatusEvent is reported at each step boundary
type StatusEvent struct {
	Type    TransactionType   `json:"type"`
	Status  TransactionStatus `json:"status"`
	Network xcm.Network       `json:"network"`
	// set on success
	TxHash xcm.TxHash `json:"txHash,omitempty"`
	// set on failure
	Error error `json:"-"`
}

type StatusCallback func(event StatusEvent)

type StepKind string

const (
	// a transfer submitted on the external bridge network
	BridgeStep StepKind = "BRIDGE"
	// a call submitted on a relay chain or parachain
	ChainCallStep StepKind = "CHAIN_CALL"
)

// Step is one planned effect of a route
type Step struct {
	Kind StepKind `json:"kind"`
	// network the step is submitted on
	Network xcm.Network     `json:"network"`
	Type    TransactionType `json:"type"`
	// client.BridgeTransfer for bridge steps, xcm.SerializedCall for chain calls
	Payload any `json:"payload"`
}

// TransferOptions describes a route from an origin through an exchange to a destination
type TransferOptions struct {
	From         xcm.Network
	To           xcm.Network
	CurrencyFrom xcm.Currency
	CurrencyTo   xcm.Currency
	Amount       xcm.AmountBlockchain

	// account on the origin, and on the exchange unless an EVM injector is set
	InjectorAddress  xcm.Address
	RecipientAddress xcm.Address
	// account on EVM exchange networks; must be paired with EvmSigner
	EvmInjectorAddress xcm.Address
	EvmSigner          xcm.Signer
	Signer             xcm.Signer
	// signs bridge transfers on the external network
	EthSigner xcm.Signer
	// account on the hub used when a leg touches the external network
	AssetHubAddress xcm.Address
	// sender on the external network
	EthAddress xcm.Address

	// exchange name; empty selects the best quote
	Exchange    string
	SlippagePct string
	// empty is FULL_TRANSFER
	Type           TransactionType
	OnStatusChange StatusCallback
}

func (opts TransferOptions) notify(event StatusEvent) {
	if opts.OnStatusChange != nil {
		opts.OnStatusChange(event)
	}
}

// the account and signer holding funds on the exchange network
func (opts TransferOptions) exchangeAccount() (xcm.Address, xcm.Signer) {
	if opts.EvmInjectorAddress != "" {
		return opts.EvmInjectorAddress, opts.EvmSigner
	}
	return opts.InjectorAddress, opts.Signer
}
