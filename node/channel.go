package node

import (
	"context"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/errors"
	"github.com/cordialsys/xcm/param"
)

// OpenChannelInput describes a sudo request to open an HRMP channel between two parachains.
type OpenChannelInput struct {
	From           xcm.Network
	To             xcm.Network
	MaxSize        uint32
	MaxMessageSize uint32
	Serialized     bool
}

// CloseChannelInput describes a sudo request to clean the HRMP channels of a parachain.
type CloseChannelInput struct {
	Network    xcm.Network
	Inbound    uint32
	Outbound   uint32
	Serialized bool
}

func sudo(call xcm.SerializedCall) xcm.SerializedCall {
	return xcm.SerializedCall{
		Module:     "sudo",
		Section:    "sudo",
		Parameters: []any{call},
	}
}

// sudo.sudo(parasSudoWrapper.sudoEstablishHrmpChannel(from, to, maxSize, maxMessageSize)), submitted on the relay chain
func OpenChannelCall(input OpenChannelInput) (xcm.SerializedCall, error) {
	from, err := Get(input.From)
	if err != nil {
		return xcm.SerializedCall{}, err
	}
	to, err := Get(input.To)
	if err != nil {
		return xcm.SerializedCall{}, err
	}
	for _, n := range []*Node{from, to} {
		if !n.Supports(OpenChannel) {
			return xcm.SerializedCall{}, errors.ScenarioNotSupportedf("%s does not support opening channels", n.Network)
		}
	}
	if from.Relay() != to.Relay() {
		return xcm.SerializedCall{}, errors.ScenarioNotSupportedf("%s and %s are not under the same relay chain", from.Network, to.Network)
	}
	if from.ParaID == to.ParaID {
		return xcm.SerializedCall{}, errors.ScenarioNotSupportedf("cannot open a channel from %s to itself", from.Network)
	}
	return sudo(xcm.SerializedCall{
		Module:  "parasSudoWrapper",
		Section: "sudoEstablishHrmpChannel",
		Parameters: []any{
			param.U32(from.ParaID),
			param.U32(to.ParaID),
			param.U32(input.MaxSize),
			param.U32(input.MaxMessageSize),
		},
	}), nil
}

func OpenChannelTx(ctx context.Context, builder xcm.CallBuilder, input OpenChannelInput) (Result, error) {
	call, err := OpenChannelCall(input)
	if err != nil {
		return Result{}, err
	}
	return Finish(ctx, builder, call, input.Serialized)
}

// sudo.sudo(hrmp.forceCleanHrmp(paraID, inbound, outbound)), submitted on the relay chain
func CloseChannelCall(input CloseChannelInput) (xcm.SerializedCall, error) {
	n, err := Get(input.Network)
	if err != nil {
		return xcm.SerializedCall{}, err
	}
	if !n.Supports(CloseChannel) {
		return xcm.SerializedCall{}, errors.ScenarioNotSupportedf("%s does not support closing channels", n.Network)
	}
	return sudo(xcm.SerializedCall{
		Module:  "hrmp",
		Section: "forceCleanHrmp",
		Parameters: []any{
			param.U32(n.ParaID),
			param.U32(input.Inbound),
			param.U32(input.Outbound),
		},
	}), nil
}

func CloseChannelTx(ctx context.Context, builder xcm.CallBuilder, input CloseChannelInput) (Result, error) {
	call, err := CloseChannelCall(input)
	if err != nil {
		return Result{}, err
	}
	return Finish(ctx, builder, call, input.Serialized)
}
