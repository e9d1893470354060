package builder

import (
	"context"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/errors"
	"github.com/cordialsys/xcm/node"
)

// channel calls are dispatched with sudo on the relay chain
func (b *GeneralBuilder) buildChannelCall(ctx context.Context, origin xcm.Network, call xcm.SerializedCall) (xcm.Call, error) {
	relay := origin.RelayChain()
	if b.conn == nil || b.conn.Network() != relay {
		return nil, errors.MissingConnectionForChannelOpf("channel operations for %s require a connection to %s", origin, relay)
	}
	return b.conn.NewCall(ctx, call)
}

type OpenChannelBuilder struct {
	general *GeneralBuilder
	input   node.OpenChannelInput
}

func (b *OpenChannelBuilder) MaxSize(size uint32) *MaxMessageSizeBuilder {
	input := b.input
	input.MaxSize = size
	return &MaxMessageSizeBuilder{general: b.general, input: input}
}

type MaxMessageSizeBuilder struct {
	general *GeneralBuilder
	input   node.OpenChannelInput
}

func (b *MaxMessageSizeBuilder) MaxMessageSize(size uint32) *OpenChannelFinalBuilder {
	input := b.input
	input.MaxMessageSize = size
	return &OpenChannelFinalBuilder{general: b.general, input: input}
}

type OpenChannelFinalBuilder struct {
	general *GeneralBuilder
	input   node.OpenChannelInput
}

func (b *OpenChannelFinalBuilder) Build(ctx context.Context) (xcm.Call, error) {
	call, err := node.OpenChannelCall(b.input)
	if err != nil {
		return nil, err
	}
	return b.general.buildChannelCall(ctx, b.input.From, call)
}

func (b *OpenChannelFinalBuilder) BuildSerializedCall(ctx context.Context) (xcm.SerializedCall, error) {
	return node.OpenChannelCall(b.input)
}

type CloseChannelBuilder struct {
	general *GeneralBuilder
	input   node.CloseChannelInput
}

func (b *CloseChannelBuilder) Inbound(inbound uint32) *OutboundBuilder {
	input := b.input
	input.Inbound = inbound
	return &OutboundBuilder{general: b.general, input: input}
}

type OutboundBuilder struct {
	general *GeneralBuilder
	input   node.CloseChannelInput
}

func (b *OutboundBuilder) Outbound(outbound uint32) *CloseChannelFinalBuilder {
	input := b.input
	input.Outbound = outbound
	return &CloseChannelFinalBuilder{general: b.general, input: input}
}

type CloseChannelFinalBuilder struct {
	general *GeneralBuilder
	input   node.CloseChannelInput
}

func (b *CloseChannelFinalBuilder) Build(ctx context.Context) (xcm.Call, error) {
	call, err := node.CloseChannelCall(b.input)
	if err != nil {
		return nil, err
	}
	return b.general.buildChannelCall(ctx, b.input.Network, call)
}

func (b *CloseChannelFinalBuilder) BuildSerializedCall(ctx context.Context) (xcm.SerializedCall, error) {
	return node.CloseChannelCall(b.input)
}
