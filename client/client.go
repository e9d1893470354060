package client

import (
	"context"

	xcm "github.com/cordialsys/xcm"
)

// Connection is a live connection to one network
type Connection interface {
	xcm.CallBuilder

	Network() xcm.Network

	// Minimum balance an account must retain to stay alive (Balances.ExistentialDeposit)
	ExistentialDeposit(ctx context.Context) (xcm.AmountBlockchain, error)

	// Release the connection
	Close()
}

// ConnectionProvider opens connections to networks. The caller owns the returned connection and must Close it.
type ConnectionProvider interface {
	Connect(ctx context.Context, network xcm.Network) (Connection, error)
}

// Submitter signs a call, submits it and waits for finality
type Submitter interface {
	Submit(ctx context.Context, conn Connection, call xcm.Call, signer xcm.Signer, account xcm.Address) (xcm.TxHash, error)
}

// BridgeTransfer moves an ERC20 token from the external network onto a parachain
type BridgeTransfer struct {
	// ERC20 contract
	Token  string `json:"token"`
	Symbol string `json:"symbol"`
	// parachain the tokens are delivered to
	DestinationParaID uint32 `json:"destinationParaId"`
	// execution fee paid on the destination parachain, zero when the destination is the hub
	DestinationFee xcm.AmountBlockchain `json:"destinationFee"`
	Amount         xcm.AmountBlockchain `json:"amount"`
	Recipient      xcm.Address          `json:"recipient"`
}

// Bridge submits transfers on the external network and waits for their receipt
type Bridge interface {
	Network() xcm.Network
	Transfer(ctx context.Context, transfer BridgeTransfer, signer xcm.Signer) (xcm.TxHash, error)
}
