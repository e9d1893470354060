package builder

import (
	"context"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/location"
	"github.com/cordialsys/xcm/node"
)

type ClaimBuilder struct {
	general *GeneralBuilder
	network xcm.Network
}

// Fungible selects the trapped assets to claim.
func (b *ClaimBuilder) Fungible(assets []location.Asset) *AccountBuilder {
	return &AccountBuilder{general: b.general, input: node.ClaimInput{Network: b.network, Assets: assets}}
}

type AccountBuilder struct {
	general *GeneralBuilder
	input   node.ClaimInput
}

func (b *AccountBuilder) Account(address xcm.Address) *VersionBuilder {
	input := b.input
	input.Account = location.AddressRecipient(address)
	return &VersionBuilder{ClaimFinalBuilder{general: b.general, input: input}}
}

// VersionBuilder can be built directly with the default claim version.
type VersionBuilder struct {
	ClaimFinalBuilder
}

func (b *VersionBuilder) XcmVersion(version xcm.Version) *ClaimFinalBuilder {
	input := b.input
	input.Version = version
	return &ClaimFinalBuilder{general: b.general, input: input}
}

type ClaimFinalBuilder struct {
	general *GeneralBuilder
	input   node.ClaimInput
}

func (b *ClaimFinalBuilder) Build(ctx context.Context) (xcm.Call, error) {
	call, err := node.ClaimCall(b.input)
	if err != nil {
		return nil, err
	}
	conn, err := b.general.connectionFor(b.input.Network)
	if err != nil {
		return nil, err
	}
	result, err := node.Finish(ctx, conn, call, false)
	if err != nil {
		return nil, err
	}
	return result.Call, nil
}

func (b *ClaimFinalBuilder) BuildSerializedCall(ctx context.Context) (xcm.SerializedCall, error) {
	return node.ClaimCall(b.input)
}
