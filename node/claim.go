package node

import (
	"context"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/errors"
	"github.com/cordialsys/xcm/location"
)

const DefaultClaimVersion = xcm.V3

// ClaimInput describes the recovery of assets trapped on a network.
type ClaimInput struct {
	Network xcm.Network
	Assets  []location.Asset
	Account location.Recipient
	// V2 or V3, zero selects V3
	Version    xcm.Version
	Serialized bool
}

// <pallet>.claimAssets(assets, beneficiary)
func ClaimCall(input ClaimInput) (xcm.SerializedCall, error) {
	n, err := Get(input.Network)
	if err != nil {
		return xcm.SerializedCall{}, err
	}
	if !n.Supports(AssetClaim) {
		return xcm.SerializedCall{}, errors.NodeNotSupportedf("%s does not support claiming assets", n.Network)
	}
	if len(input.Assets) == 0 {
		return xcm.SerializedCall{}, errors.InvalidCurrencyf("no assets to claim on %s", n.Network)
	}
	version := input.Version
	if version == 0 {
		version = DefaultClaimVersion
	}
	if version != xcm.V2 && version != xcm.V3 {
		return xcm.SerializedCall{}, errors.ScenarioNotSupportedf("asset claims support %s or %s, got %s", xcm.V2, xcm.V3, version)
	}

	pallet := xcm.PolkadotXcm
	if n.IsRelayChain() {
		pallet = xcm.XcmPallet
	}
	beneficiary, err := location.EncodeAddress(version, xcm.RelayToPara, pallet, input.Account, nil)
	if err != nil {
		return xcm.SerializedCall{}, err
	}
	return xcm.SerializedCall{
		Module:  pallet.Module(),
		Section: "claimAssets",
		Parameters: []any{
			location.NewAssets(version, input.Assets...),
			beneficiary,
		},
	}, nil
}

func ClaimTx(ctx context.Context, builder xcm.CallBuilder, input ClaimInput) (Result, error) {
	call, err := ClaimCall(input)
	if err != nil {
		return Result{}, err
	}
	return Finish(ctx, builder, call, input.Serialized)
}
