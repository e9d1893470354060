// Package exchange selects a decentralized exchange for a swap by querying every registered adapter for a quote.
package exchange

import (
	"context"
	"fmt"
	"strings"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/client"
	"github.com/cordialsys/xcm/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// SwapArgs describes a swap on the exchange network
type SwapArgs struct {
	From   xcm.Currency
	To     xcm.Currency
	Amount xcm.AmountBlockchain
	// tolerated loss in percent, e.g. "1"
	SlippagePct     string
	InjectorAddress xcm.Address
	Signer          xcm.Signer
}

// SwapResult is the signable swap call and the amount it is expected to yield
type SwapResult struct {
	Call      xcm.Call
	AmountOut xcm.AmountBlockchain
}

// Adapter is a decentralized exchange running on a single network
type Adapter interface {
	Name() string
	// network the swap is executed on
	Network() xcm.Network
	Quote(ctx context.Context, from xcm.Currency, to xcm.Currency, amount xcm.AmountBlockchain) (xcm.AmountBlockchain, error)
	SwapCurrency(ctx context.Context, conn client.Connection, args SwapArgs) (SwapResult, error)
}

// MinAmountOut is the least amount a swap may yield given the slippage tolerance
func MinAmountOut(amount xcm.AmountBlockchain, slippagePct string) (xcm.AmountBlockchain, error) {
	return amount.ApplySlippage(slippagePct)
}

// Registry holds exchange adapters in registration order
type Registry struct {
	adapters []Adapter
}

func NewRegistry(adapters ...Adapter) (*Registry, error) {
	r := &Registry{}
	for _, adapter := range adapters {
		if err := r.Register(adapter); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) Register(adapter Adapter) error {
	if _, ok := r.Get(adapter.Name()); ok {
		return fmt.Errorf("exchange %s is already registered", adapter.Name())
	}
	r.adapters = append(r.adapters, adapter)
	return nil
}

// Get looks up an adapter by name (case-insensitive)
func (r *Registry) Get(name string) (Adapter, bool) {
	for _, adapter := range r.adapters {
		if strings.EqualFold(adapter.Name(), name) {
			return adapter, true
		}
	}
	return nil, false
}

func (r *Registry) List() []Adapter {
	return append([]Adapter{}, r.adapters...)
}

func (r *Registry) SelectBest(ctx context.Context, from xcm.Currency, to xcm.Currency, amount xcm.AmountBlockchain) (Selection, error) {
	return SelectBest(ctx, r.adapters, from, to, amount)
}

// Selection is the chosen adapter and its quote
type Selection struct {
	Adapter   Adapter
	AmountOut xcm.AmountBlockchain
}

type quote struct {
	amountOut xcm.AmountBlockchain
	err       error
}

// SelectBest queries all adapters concurrently and returns the one quoting the greatest output.
// Failed and zero quotes are discarded; ties go to the adapter registered first.
func SelectBest(ctx context.Context, adapters []Adapter, from xcm.Currency, to xcm.Currency, amount xcm.AmountBlockchain) (Selection, error) {
	quotes := make([]quote, len(adapters))
	var group errgroup.Group
	for i, adapter := range adapters {
		i, adapter := i, adapter
		group.Go(func() error {
			// a failing adapter must not cancel the others
			out, err := adapter.Quote(ctx, from, to, amount)
			quotes[i] = quote{amountOut: out, err: err}
			return nil
		})
	}
	_ = group.Wait()

	best := -1
	for i, q := range quotes {
		log := logrus.WithFields(logrus.Fields{
			"exchange": adapters[i].Name(),
			"from":     from.String(),
			"to":       to.String(),
		})
		if q.err != nil {
			log.WithError(q.err).Warn("discarding exchange quote")
			continue
		}
		if q.amountOut.Sign() <= 0 {
			log.Warn("discarding zero exchange quote")
			continue
		}
		log.WithField("amount_out", q.amountOut.String()).Debug("exchange quote")
		if best < 0 || q.amountOut.Cmp(&quotes[best].amountOut) > 0 {
			best = i
		}
	}
	if best < 0 {
		return Selection{}, errors.NoExchangeAvailablef("no exchange could swap %s to %s", from, to)
	}
	return Selection{Adapter: adapters[best], AmountOut: quotes[best].amountOut}, nil
}
