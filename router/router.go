// Package router moves funds from an origin through an exchange to a destination,
// bridging through the hub when either end is the external network.
package router

import (
	"context"
	"fmt"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/builder"
	"github.com/cordialsys/xcm/client"
	"github.com/cordialsys/xcm/errors"
	"github.com/cordialsys/xcm/exchange"
	"github.com/cordialsys/xcm/node"
	"github.com/sirupsen/logrus"
)

const DefaultSlippagePct = "1"

type Dependencies struct {
	Connections client.ConnectionProvider
	Submitter   client.Submitter
	Exchanges   *exchange.Registry
	// required only to execute routes from the bridge network
	Bridge client.Bridge
	// defaults to AssetHubPolkadot
	Hub xcm.Network
	// defaults to Ethereum
	BridgeNetwork xcm.Network
}

type Router struct {
	connections   client.ConnectionProvider
	submitter     client.Submitter
	exchanges     *exchange.Registry
	bridge        client.Bridge
	hub           xcm.Network
	bridgeNetwork xcm.Network
}

func New(deps Dependencies) *Router {
	r := &Router{
		connections:   deps.Connections,
		submitter:     deps.Submitter,
		exchanges:     deps.Exchanges,
		bridge:        deps.Bridge,
		hub:           deps.Hub,
		bridgeNetwork: deps.BridgeNetwork,
	}
	if r.hub == "" {
		r.hub = xcm.AssetHubPolkadot
	}
	if r.bridgeNetwork == "" {
		r.bridgeNetwork = xcm.Ethereum
	}
	return r
}

func (r *Router) prepare(opts TransferOptions, execute bool) (TransferOptions, error) {
	if opts.Type == "" {
		opts.Type = FullTransfer
	}
	if _, err := ParseTransactionType(string(opts.Type)); err != nil {
		return opts, err
	}
	if opts.SlippagePct == "" {
		opts.SlippagePct = DefaultSlippagePct
	}
	return opts, r.validate(opts, execute)
}

func (r *Router) selectExchange(ctx context.Context, opts TransferOptions) (exchange.Adapter, error) {
	if r.exchanges == nil {
		return nil, errors.NoExchangeAvailablef("no exchanges are registered")
	}
	if opts.Exchange != "" {
		adapter, ok := r.exchanges.Get(opts.Exchange)
		if !ok {
			return nil, errors.NoExchangeAvailablef("exchange %s is not registered", opts.Exchange)
		}
		return adapter, nil
	}
	selection, err := r.exchanges.SelectBest(ctx, opts.CurrencyFrom, opts.CurrencyTo, opts.Amount)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"exchange":   selection.Adapter.Name(),
		"network":    selection.Adapter.Network(),
		"amount_out": selection.AmountOut.String(),
	}).Info("selected exchange")
	return selection.Adapter, nil
}

// exchangeFor selects the exchange the route swaps on. The bridge slices only
// touch the hub and the bridge network so they run without an exchange.
func (r *Router) exchangeFor(ctx context.Context, opts TransferOptions) (exchange.Adapter, xcm.Network, error) {
	if opts.Type == FromEth || opts.Type == ToEth {
		return nil, r.hub, nil
	}
	adapter, err := r.selectExchange(ctx, opts)
	if err != nil {
		return nil, "", err
	}
	return adapter, adapter.Network(), nil
}

// leg is a planned step. Amounts are resolved while walking the plan since
// every leg after the swap moves the swap output.
type leg struct {
	typ     TransactionType
	kind    StepKind
	network xcm.Network
	// for transfers
	destination xcm.Network
	recipient   xcm.Address
	currency    xcm.Currency
	// sender
	account xcm.Address
	signer  xcm.Signer
}

func (l leg) String() string {
	if l.typ == Swap {
		return fmt.Sprintf("%s on %s", l.typ, l.network)
	}
	return fmt.Sprintf("%s %s->%s", l.typ, l.network, l.destination)
}

func (r *Router) plan(opts TransferOptions, exchangeNetwork xcm.Network) []leg {
	exchangeAccount, exchangeSigner := opts.exchangeAccount()
	legs := []leg{}

	switch {
	case opts.From == r.bridgeNetwork:
		legs = append(legs, leg{
			typ: FromEth, kind: BridgeStep, network: r.bridgeNetwork,
			destination: r.hub, recipient: opts.AssetHubAddress, currency: opts.CurrencyFrom,
			account: opts.EthAddress, signer: opts.EthSigner,
		})
		if exchangeNetwork != r.hub {
			legs = append(legs, leg{
				typ: ToExchange, kind: ChainCallStep, network: r.hub,
				destination: exchangeNetwork, recipient: exchangeAccount, currency: opts.CurrencyFrom,
				account: opts.AssetHubAddress, signer: opts.Signer,
			})
		}
	case opts.From != exchangeNetwork:
		legs = append(legs, leg{
			typ: ToExchange, kind: ChainCallStep, network: opts.From,
			destination: exchangeNetwork, recipient: exchangeAccount, currency: opts.CurrencyFrom,
			account: opts.InjectorAddress, signer: opts.Signer,
		})
	}

	legs = append(legs, leg{
		typ: Swap, kind: ChainCallStep, network: exchangeNetwork,
		currency: opts.CurrencyFrom, account: exchangeAccount, signer: exchangeSigner,
	})

	switch {
	case opts.To == r.bridgeNetwork:
		if exchangeNetwork != r.hub {
			legs = append(legs, leg{
				typ: ToDestination, kind: ChainCallStep, network: exchangeNetwork,
				destination: r.hub, recipient: opts.AssetHubAddress, currency: opts.CurrencyTo,
				account: exchangeAccount, signer: exchangeSigner,
			})
		}
		// the hub leg is a regular call on the hub that exits through the bridge
		legs = append(legs, leg{
			typ: ToEth, kind: ChainCallStep, network: r.hub,
			destination: r.bridgeNetwork, recipient: opts.RecipientAddress, currency: opts.CurrencyTo,
			account: opts.AssetHubAddress, signer: opts.Signer,
		})
	case opts.To != exchangeNetwork:
		legs = append(legs, leg{
			typ: ToDestination, kind: ChainCallStep, network: exchangeNetwork,
			destination: opts.To, recipient: opts.RecipientAddress, currency: opts.CurrencyTo,
			account: exchangeAccount, signer: exchangeSigner,
		})
	}

	selected := []leg{}
	for _, l := range legs {
		if opts.Type.includes(l.typ) {
			selected = append(selected, l)
		}
	}
	return selected
}

func (r *Router) bridgeTransfer(l leg, amount xcm.AmountBlockchain) (client.BridgeTransfer, error) {
	hub, err := node.Get(l.destination)
	if err != nil {
		return client.BridgeTransfer{}, err
	}
	asset, err := hub.FindAsset(l.currency)
	if err != nil {
		return client.BridgeTransfer{}, err
	}
	if asset.Contract == "" {
		return client.BridgeTransfer{}, errors.InvalidCurrencyf("%s cannot be bridged from %s", asset.Symbol, l.network)
	}
	return client.BridgeTransfer{
		Token:             asset.Contract,
		Symbol:            asset.Symbol,
		DestinationParaID: hub.ParaID,
		Amount:            amount,
		Recipient:         l.recipient,
	}, nil
}

func (l leg) transfer(conn client.Connection, amount xcm.AmountBlockchain) *builder.FinalBuilder {
	return builder.New(conn).
		From(l.network).
		To(l.destination).
		Currency(l.currency).
		Amount(amount).
		Address(l.recipient)
}

func (r *Router) connect(ctx context.Context, network xcm.Network) (client.Connection, error) {
	if r.connections == nil {
		return nil, errors.MissingConnectionf("no connection provider for %s", network)
	}
	return r.connections.Connect(ctx, network)
}

func (r *Router) swap(ctx context.Context, adapter exchange.Adapter, opts TransferOptions, l leg, amount xcm.AmountBlockchain, submit bool) (exchange.SwapResult, xcm.TxHash, error) {
	conn, err := r.connect(ctx, l.network)
	if err != nil {
		return exchange.SwapResult{}, "", err
	}
	defer conn.Close()
	result, err := adapter.SwapCurrency(ctx, conn, exchange.SwapArgs{
		From:            opts.CurrencyFrom,
		To:              opts.CurrencyTo,
		Amount:          amount,
		SlippagePct:     opts.SlippagePct,
		InjectorAddress: l.account,
		Signer:          l.signer,
	})
	if err != nil {
		return exchange.SwapResult{}, "", err
	}
	if !submit {
		return result, "", nil
	}
	hash, err := r.submitter.Submit(ctx, conn, result.Call, l.signer, l.account)
	return result, hash, err
}

// BuildTransferSteps previews the route. Transfers are returned as descriptors;
// the swap is built on a connection to the exchange network but not submitted.
func (r *Router) BuildTransferSteps(ctx context.Context, opts TransferOptions) ([]Step, error) {
	opts, err := r.prepare(opts, false)
	if err != nil {
		return nil, err
	}
	adapter, exchangeNetwork, err := r.exchangeFor(ctx, opts)
	if err != nil {
		return nil, err
	}

	amount := opts.Amount
	steps := []Step{}
	for _, l := range r.plan(opts, exchangeNetwork) {
		step := Step{Kind: l.kind, Network: l.network, Type: l.typ}
		switch {
		case l.kind == BridgeStep:
			step.Payload, err = r.bridgeTransfer(l, amount)
		case l.typ == Swap:
			var result exchange.SwapResult
			result, _, err = r.swap(ctx, adapter, opts, l, amount, false)
			if err == nil {
				step.Payload = result.Call.Serialized()
				amount = result.AmountOut
			}
		default:
			step.Payload, err = l.transfer(nil, amount).BuildSerializedCall(ctx)
		}
		if err != nil {
			return nil, fmt.Errorf("%v: %w", l, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Transfer executes the route one step at a time, each awaiting finality before the next.
// The first failure stops the route; completed steps are not reverted.
func (r *Router) Transfer(ctx context.Context, opts TransferOptions) error {
	opts, err := r.prepare(opts, true)
	if err != nil {
		return err
	}
	adapter, exchangeNetwork, err := r.exchangeFor(ctx, opts)
	if err != nil {
		return err
	}
	legs := r.plan(opts, exchangeNetwork)
	for _, l := range legs {
		opts.notify(StatusEvent{Type: l.typ, Status: Pending, Network: l.network})
	}

	amount := opts.Amount
	for _, l := range legs {
		log := logrus.WithFields(logrus.Fields{
			"type":    l.typ,
			"network": l.network,
			"amount":  amount.String(),
		})
		opts.notify(StatusEvent{Type: l.typ, Status: InProgress, Network: l.network})
		log.Info("executing step")

		out, hash, err := r.execute(ctx, adapter, opts, l, amount)
		if err != nil {
			log.WithError(err).Error("step failed")
			opts.notify(StatusEvent{Type: l.typ, Status: Failed, Network: l.network, Error: err})
			return fmt.Errorf("%v: %w", l, err)
		}
		log.WithField("hash", hash).Info("step finalized")
		opts.notify(StatusEvent{Type: l.typ, Status: Success, Network: l.network, TxHash: hash})
		amount = out
	}
	return nil
}

// execute runs one step and returns the amount available to the next.
// Each step holds its own connection until it is finalized.
func (r *Router) execute(ctx context.Context, adapter exchange.Adapter, opts TransferOptions, l leg, amount xcm.AmountBlockchain) (xcm.AmountBlockchain, xcm.TxHash, error) {
	switch {
	case l.kind == BridgeStep:
		if r.bridge == nil {
			return amount, "", errors.MissingConnectionf("a bridge is required to transfer from %s", l.network)
		}
		transfer, err := r.bridgeTransfer(l, amount)
		if err != nil {
			return amount, "", err
		}
		hash, err := r.bridge.Transfer(ctx, transfer, l.signer)
		return amount, hash, err

	case l.typ == Swap:
		result, hash, err := r.swap(ctx, adapter, opts, l, amount, true)
		if err != nil {
			return amount, "", err
		}
		return result.AmountOut, hash, nil
	}

	// build before connecting so invalid legs fail without network i/o
	if _, err := l.transfer(nil, amount).BuildSerializedCall(ctx); err != nil {
		return amount, "", err
	}
	conn, err := r.connect(ctx, l.network)
	if err != nil {
		return amount, "", err
	}
	defer conn.Close()
	call, err := l.transfer(conn, amount).Build(ctx)
	if err != nil {
		return amount, "", err
	}
	hash, err := r.submitter.Submit(ctx, conn, call, l.signer, l.account)
	return amount, hash, err
}
