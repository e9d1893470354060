// Package builder is a staged builder for transfer, channel and claim calls.
// Each stage is its own type and exposes only the operations legal at that stage.
package builder

import (
	"context"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/client"
	"github.com/cordialsys/xcm/errors"
	"github.com/cordialsys/xcm/location"
	"github.com/cordialsys/xcm/node"
)

// GeneralBuilder is the entry stage. A nil connection restricts the builder to serialized calls.
type GeneralBuilder struct {
	conn  client.Connection
	batch *batchManager
}

func New(conn client.Connection) *GeneralBuilder {
	return &GeneralBuilder{conn: conn, batch: &batchManager{}}
}

func (b *GeneralBuilder) From(network xcm.Network) *FromBuilder {
	return &FromBuilder{general: b, from: network}
}

func (b *GeneralBuilder) ClaimFrom(network xcm.Network) *ClaimBuilder {
	return &ClaimBuilder{general: b, network: network}
}

// BuildBatch combines every call added to the batch into one utility call on the common origin.
func (b *GeneralBuilder) BuildBatch(ctx context.Context, options BatchOptions) (xcm.Call, error) {
	return b.batch.build(ctx, b.conn, options)
}

// the connection must be to the network the call is dispatched on
func (b *GeneralBuilder) connectionFor(network xcm.Network) (client.Connection, error) {
	if b.conn == nil {
		return nil, errors.MissingConnectionf("a connection to %s is required to build a signable call", network)
	}
	if b.conn.Network() != network {
		return nil, errors.MissingConnectionf("connection is to %s but the call is dispatched on %s", b.conn.Network(), network)
	}
	return b.conn, nil
}

type FromBuilder struct {
	general *GeneralBuilder
	from    xcm.Network
}

// To selects the destination, optionally overriding its parachain id.
func (b *FromBuilder) To(destination xcm.Network, paraIDTo ...uint32) *ToBuilder {
	input := node.TransferInput{
		Origin:      b.from,
		Destination: destination,
	}
	if len(paraIDTo) > 0 {
		id := paraIDTo[0]
		input.DestinationParaID = &id
	}
	return &ToBuilder{general: b.general, input: input}
}

// CloseChannel cleans the channels of the origin parachain; the call is submitted on its relay chain.
func (b *FromBuilder) CloseChannel() (*CloseChannelBuilder, error) {
	if b.general.conn == nil {
		return nil, errors.MissingConnectionForChannelOpf("closing channels of %s requires a connection to %s", b.from, b.from.RelayChain())
	}
	return &CloseChannelBuilder{general: b.general, input: node.CloseChannelInput{Network: b.from}}, nil
}

type ToBuilder struct {
	general *GeneralBuilder
	input   node.TransferInput
}

func (b *ToBuilder) Currency(currency xcm.Currency) *CurrencyBuilder {
	input := b.input
	input.Currency = currency
	return &CurrencyBuilder{general: b.general, input: input}
}

// FeeAsset selects the fee paying asset item and transfers the relay chain asset.
func (b *ToBuilder) FeeAsset(item uint32) *FeeAssetBuilder {
	return b.Currency(xcm.CurrencySymbol(b.input.Origin.RelaySymbol())).FeeAsset(item)
}

// OpenChannel opens a channel from the origin to the destination parachain; the call is submitted on their relay chain.
func (b *ToBuilder) OpenChannel() (*OpenChannelBuilder, error) {
	if b.general.conn == nil {
		return nil, errors.MissingConnectionForChannelOpf("opening a channel from %s requires a connection to %s", b.input.Origin, b.input.Origin.RelayChain())
	}
	return &OpenChannelBuilder{general: b.general, input: node.OpenChannelInput{From: b.input.Origin, To: b.input.Destination}}, nil
}

type CurrencyBuilder struct {
	general *GeneralBuilder
	input   node.TransferInput
}

func (b *CurrencyBuilder) FeeAsset(item uint32) *FeeAssetBuilder {
	input := b.input
	input.FeeAsset = &item
	return &FeeAssetBuilder{general: b.general, input: input}
}

func (b *CurrencyBuilder) Amount(amount xcm.AmountBlockchain) *AmountBuilder {
	return amountStage(b.general, b.input, amount)
}

type FeeAssetBuilder struct {
	general *GeneralBuilder
	input   node.TransferInput
}

func (b *FeeAssetBuilder) Amount(amount xcm.AmountBlockchain) *AmountBuilder {
	return amountStage(b.general, b.input, amount)
}

func amountStage(general *GeneralBuilder, input node.TransferInput, amount xcm.AmountBlockchain) *AmountBuilder {
	input.Amount = amount
	return &AmountBuilder{general: general, input: input}
}

type AmountBuilder struct {
	general *GeneralBuilder
	input   node.TransferInput
}

func (b *AmountBuilder) Address(address xcm.Address) *FinalBuilder {
	return b.recipient(location.AddressRecipient(address))
}

// Beneficiary sends to a structured location instead of an address.
func (b *AmountBuilder) Beneficiary(beneficiary location.Location) *FinalBuilder {
	return b.recipient(location.LocationRecipient(beneficiary))
}

func (b *AmountBuilder) recipient(recipient location.Recipient) *FinalBuilder {
	input := b.input
	input.Recipient = recipient
	return &FinalBuilder{general: b.general, input: input}
}
