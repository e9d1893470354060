package builder

import (
	"context"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/client"
	"github.com/cordialsys/xcm/errors"
	"github.com/cordialsys/xcm/node"
	"github.com/sirupsen/logrus"
)

// FinalBuilder is a fully staged transfer.
type FinalBuilder struct {
	general *GeneralBuilder
	input   node.TransferInput
}

func (b *FinalBuilder) XcmVersion(version xcm.Version) *FinalBuilder {
	input := b.input
	input.Version = version
	return &FinalBuilder{general: b.general, input: input}
}

// UseKeepAlive rejects the transfer when the amount would not keep the recipient
// above the destination's existential deposit.
func (b *FinalBuilder) UseKeepAlive(ctx context.Context, destination client.Connection) (*FinalBuilder, error) {
	if destination == nil {
		return nil, errors.MissingConnectionf("keep alive requires a connection to %s", b.input.Destination)
	}
	deposit, err := destination.ExistentialDeposit(ctx)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"network": destination.Network(),
		"deposit": deposit.String(),
		"amount":  b.input.Amount.String(),
	}).Debug("existential deposit")
	if b.input.Amount.Cmp(&deposit) < 0 {
		return nil, errors.KeepAlivef(
			"amount %s is below the existential deposit %s of %s", b.input.Amount.String(), deposit.String(), destination.Network(),
		)
	}
	return b, nil
}

// the network the transfer is dispatched on
func (b *FinalBuilder) origin() xcm.Network {
	return b.input.Origin
}

func (b *FinalBuilder) Build(ctx context.Context) (xcm.Call, error) {
	conn, err := b.general.connectionFor(b.origin())
	if err != nil {
		return nil, err
	}
	input := b.input
	input.Serialized = false
	result, err := node.Transfer(ctx, conn, input)
	if err != nil {
		return nil, err
	}
	return result.Call, nil
}

func (b *FinalBuilder) BuildSerializedCall(ctx context.Context) (xcm.SerializedCall, error) {
	input := b.input
	input.Serialized = true
	result, err := node.Transfer(ctx, nil, input)
	if err != nil {
		return xcm.SerializedCall{}, err
	}
	return *result.Serialized, nil
}

// AddToBatch queues the transfer; it is built when the batch is built.
func (b *FinalBuilder) AddToBatch() *GeneralBuilder {
	b.general.batch.add(b.origin(), b.Build)
	return b.general
}
