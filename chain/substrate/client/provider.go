package client

import (
	"context"
	"fmt"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/chain/substrate"
	"github.com/cordialsys/xcm/chain/substrate/address"
	"github.com/cordialsys/xcm/chain/substrate/tx"
	xclient "github.com/cordialsys/xcm/client"
	"github.com/cordialsys/xcm/node"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Provider opens connections to the configured endpoint of each network,
// falling back to the registry's public endpoint.
type Provider struct {
	endpoints map[xcm.Network]string
}

var _ xclient.ConnectionProvider = &Provider{}

func NewProvider(endpoints map[xcm.Network]string) *Provider {
	if endpoints == nil {
		endpoints = map[xcm.Network]string{}
	}
	return &Provider{endpoints: endpoints}
}

func (p *Provider) Endpoint(network xcm.Network) (string, error) {
	if url, ok := p.endpoints[network]; ok && url != "" {
		return url, nil
	}
	n, err := node.Get(network)
	if err != nil {
		return "", err
	}
	if n.Endpoint == "" {
		return "", fmt.Errorf("no endpoint configured for %s", network)
	}
	return n.Endpoint, nil
}

func (p *Provider) Connect(ctx context.Context, network xcm.Network) (xclient.Connection, error) {
	url, err := p.Endpoint(network)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"network":  network,
		"endpoint": url,
	}).Debug("connecting")
	return NewClient(network, url)
}

// Submitter signs calls as extrinsics on the connection's network
type Submitter struct {
	// Optional multiplier applied to the estimated tip
	TipMultiplier decimal.Decimal
	// Optional cap on the tip, zero is no cap
	MaxTip xcm.AmountBlockchain
}

var _ xclient.Submitter = &Submitter{}

func NewSubmitter() *Submitter {
	return &Submitter{}
}

func (s *Submitter) Submit(ctx context.Context, conn xclient.Connection, call xcm.Call, signer xcm.Signer, account xcm.Address) (xcm.TxHash, error) {
	client, ok := conn.(*Client)
	if !ok {
		return "", fmt.Errorf("cannot submit on %s: unsupported connection %T", conn.Network(), conn)
	}
	substrateCall, ok := call.(*substrate.Call)
	if !ok {
		return "", fmt.Errorf("cannot submit %s: unsupported call %T", call, call)
	}
	if substrateCall.Network() != client.Network() {
		return "", fmt.Errorf("call for %s cannot be submitted on %s", substrateCall.Network(), client.Network())
	}
	sender, err := address.DecodeMulti(account)
	if err != nil {
		return "", err
	}

	txInput, err := client.FetchTxInput(ctx, account)
	if err != nil {
		return "", err
	}
	if !s.TipMultiplier.IsZero() {
		txInput.MultiplyTip(s.TipMultiplier)
	}
	txInput.CapTip(s.MaxTip)

	signed, err := tx.NewTx(substrateCall.Raw(), sender, signer.SignatureType(), txInput)
	if err != nil {
		return "", err
	}
	sighash, err := signed.Sighash()
	if err != nil {
		return "", err
	}
	signature, err := signer.Sign(sighash)
	if err != nil {
		return "", err
	}
	if err := signed.SetSignature(signature); err != nil {
		return "", err
	}
	logrus.WithFields(logrus.Fields{
		"network": client.Network(),
		"call":    substrateCall.String(),
		"account": account,
		"nonce":   txInput.Nonce,
	}).Info("submitting")
	return client.SubmitAndWatch(ctx, signed)
}
