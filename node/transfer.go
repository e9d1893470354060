package node

import (
	"context"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/errors"
	"github.com/cordialsys/xcm/location"
	"github.com/cordialsys/xcm/param"
	"github.com/sirupsen/logrus"
)

// TransferInput is a fully staged transfer request.
type TransferInput struct {
	Origin      xcm.Network
	Destination xcm.Network
	// overrides the registry para id of the destination
	DestinationParaID *uint32
	Currency          xcm.Currency
	// index of the fee paying item in the asset list
	FeeAsset  *uint32
	Amount    xcm.AmountBlockchain
	Recipient location.Recipient
	// zero selects the node default
	Version xcm.Version
	// return the descriptor instead of constructing the call
	Serialized bool
}

// Result holds exactly one of a serialized descriptor or a signable call.
type Result struct {
	Serialized *xcm.SerializedCall
	Call       xcm.Call
}

// Finish either returns the descriptor or constructs the signable call on the connection.
func Finish(ctx context.Context, builder xcm.CallBuilder, call xcm.SerializedCall, serialized bool) (Result, error) {
	if serialized {
		return Result{Serialized: &call}, nil
	}
	if builder == nil {
		return Result{}, errors.MissingConnectionf("a connection is required to build %s.%s, use the serialized call instead", call.Module, call.Section)
	}
	built, err := builder.NewCall(ctx, call)
	if err != nil {
		return Result{}, err
	}
	return Result{Call: built}, nil
}

// Transfer builds the transfer call for the staged input.
func Transfer(ctx context.Context, builder xcm.CallBuilder, input TransferInput) (Result, error) {
	call, err := TransferCall(input)
	if err != nil {
		return Result{}, err
	}
	logrus.WithFields(logrus.Fields{
		"from":    input.Origin,
		"to":      input.Destination,
		"module":  call.Module,
		"section": call.Section,
	}).Debug("transfer call")
	return Finish(ctx, builder, call, input.Serialized)
}

// TransferCall selects the capability for the scenario and builds the descriptor.
func TransferCall(input TransferInput) (xcm.SerializedCall, error) {
	if input.Origin.IsExternal() {
		return xcm.SerializedCall{}, errors.NodeNotSupportedf("transfers from %s are not supported, use the bridge", input.Origin)
	}
	if input.Origin == input.Destination {
		return xcm.SerializedCall{}, errors.ScenarioNotSupportedf("origin and destination are both %s", input.Origin)
	}
	if input.Destination.IsExternal() {
		origin, err := Get(input.Origin)
		if err != nil {
			return xcm.SerializedCall{}, err
		}
		if !origin.Supports(BridgeTransfer) {
			return xcm.SerializedCall{}, errors.NodeNotSupportedf("%s cannot transfer to %s", input.Origin, input.Destination)
		}
		return origin.bridgeTransfer(input)
	}

	scenario := xcm.DetermineScenario(input.Origin, input.Destination)
	if scenario == xcm.RelayToPara {
		destination, err := Get(input.Destination)
		if err != nil {
			return xcm.SerializedCall{}, err
		}
		if !destination.Supports(RelayToParaTransfer) {
			return xcm.SerializedCall{}, errors.NodeNotSupportedf("%s cannot receive transfers from %s", input.Destination, input.Origin)
		}
		return destination.relayToPara(input)
	}

	origin, err := Get(input.Origin)
	if err != nil {
		return xcm.SerializedCall{}, err
	}
	if !origin.SupportsScenario(scenario) {
		return xcm.SerializedCall{}, errors.ScenarioNotSupportedf("scenario %s is not supported by %s", scenario, origin.Network)
	}
	paraID := uint32(0)
	if scenario == xcm.ParaToPara {
		destination, err := Get(input.Destination)
		if err != nil {
			return xcm.SerializedCall{}, err
		}
		if destination.Relay() != origin.Relay() {
			return xcm.SerializedCall{}, errors.ScenarioNotSupportedf("%s and %s are not under the same relay chain", origin.Network, destination.Network)
		}
		paraID = destination.ParaID
	} else if origin.Relay() != input.Destination {
		return xcm.SerializedCall{}, errors.ScenarioNotSupportedf("%s is not the relay chain of %s", input.Destination, origin.Network)
	}
	if input.DestinationParaID != nil {
		paraID = *input.DestinationParaID
	}

	switch origin.Pallet {
	case xcm.PolkadotXcm:
		if !origin.Supports(MessagePalletTransfer) {
			return xcm.SerializedCall{}, errors.ScenarioNotSupportedf("%s does not support %s transfers", origin.Network, origin.Pallet)
		}
		return origin.messagePalletTransfer(input, scenario, paraID)
	case xcm.XTokens:
		if !origin.Supports(AssetPalletTransfer) {
			return xcm.SerializedCall{}, errors.ScenarioNotSupportedf("%s does not support %s transfers", origin.Network, origin.Pallet)
		}
		return origin.assetPalletTransfer(input, scenario, paraID)
	}
	return xcm.SerializedCall{}, errors.NodeNotSupportedf("%s has no transfer pallet", origin.Network)
}

func (n *Node) version(requested xcm.Version) (xcm.Version, error) {
	if requested == 0 {
		return n.Version, nil
	}
	if !requested.Valid() {
		return 0, errors.ScenarioNotSupportedf("invalid xcm version %d", requested)
	}
	return requested, nil
}

func (n *Node) section(scenario xcm.Scenario) string {
	switch {
	case scenario == xcm.ParaToRelay && n.ParaToRelaySection != "":
		return n.ParaToRelaySection
	case scenario == xcm.ParaToPara && n.ParaToParaSection != "":
		return n.ParaToParaSection
	}
	return sectionReserve
}

// the asset sent to the relay chain must be the relay asset
func (n *Node) transferAsset(input TransferInput, scenario xcm.Scenario) (Asset, error) {
	asset, err := n.FindAsset(input.Currency)
	if err != nil {
		return Asset{}, err
	}
	if scenario == xcm.ParaToRelay && !asset.Is(n.Network.RelaySymbol()) {
		return Asset{}, errors.InvalidCurrencyf("only %s can be sent from %s to its relay chain", n.Network.RelaySymbol(), n.Network)
	}
	return asset, nil
}

func feeAssetItem(input TransferInput, assets location.Assets) (param.U32, error) {
	if input.FeeAsset == nil {
		return 0, nil
	}
	if int(*input.FeeAsset) >= len(assets.Items) {
		return 0, errors.InvalidCurrencyf("fee asset item %d is out of range for %d assets", *input.FeeAsset, len(assets.Items))
	}
	return param.U32(*input.FeeAsset), nil
}

// polkadotXcm.<section>(dest, beneficiary, assets, feeAssetItem, weightLimit)
func (n *Node) messagePalletTransfer(input TransferInput, scenario xcm.Scenario, paraID uint32) (xcm.SerializedCall, error) {
	version, err := n.version(input.Version)
	if err != nil {
		return xcm.SerializedCall{}, err
	}
	asset, err := n.transferAsset(input, scenario)
	if err != nil {
		return xcm.SerializedCall{}, err
	}
	beneficiary, err := location.EncodeAddress(version, scenario, xcm.PolkadotXcm, input.Recipient, &paraID)
	if err != nil {
		return xcm.SerializedCall{}, err
	}
	assets := location.NewAssets(version, location.NewAsset(asset.Location, input.Amount))
	fee, err := feeAssetItem(input, assets)
	if err != nil {
		return xcm.SerializedCall{}, err
	}
	return xcm.SerializedCall{
		Module:  xcm.PolkadotXcm.Module(),
		Section: n.section(scenario),
		Parameters: []any{
			location.DestinationHeader(version, scenario, paraID),
			beneficiary,
			assets,
			fee,
			location.Unlimited,
		},
	}, nil
}

// xTokens.transfer(currency, amount, dest, weightLimit), or
// xTokens.transferMultiasset(asset, dest, weightLimit) for assets selected by location
func (n *Node) assetPalletTransfer(input TransferInput, scenario xcm.Scenario, paraID uint32) (xcm.SerializedCall, error) {
	if input.FeeAsset != nil {
		return xcm.SerializedCall{}, errors.InvalidCurrencyf("%s does not support selecting a fee asset", n.Network)
	}
	version, err := n.version(input.Version)
	if err != nil {
		return xcm.SerializedCall{}, err
	}
	asset, err := n.transferAsset(input, scenario)
	if err != nil {
		return xcm.SerializedCall{}, err
	}
	dest, err := location.EncodeAddress(version, scenario, xcm.XTokens, input.Recipient, &paraID)
	if err != nil {
		return xcm.SerializedCall{}, err
	}

	selection := asset.Selection
	if n.currencyRule != nil {
		selection, err = n.currencyRule(n, asset, input.Currency)
		if err != nil {
			return xcm.SerializedCall{}, err
		}
	}
	if selection == nil {
		return xcm.SerializedCall{
			Module:  xcm.XTokens.Module(),
			Section: "transferMultiasset",
			Parameters: []any{
				location.VersionedAsset{Version: version, Asset: location.NewAsset(asset.Location, input.Amount)},
				dest,
				location.Unlimited,
			},
		}, nil
	}
	return xcm.SerializedCall{
		Module:  xcm.XTokens.Module(),
		Section: "transfer",
		Parameters: []any{
			selection,
			param.NewU128(input.Amount),
			dest,
			location.Unlimited,
		},
	}, nil
}

// built for the destination node; the call itself is submitted on the relay chain
// xcmPallet.<section>(dest, beneficiary, assets, 0, Unlimited)
func (n *Node) relayToPara(input TransferInput) (xcm.SerializedCall, error) {
	relay, err := Get(input.Origin)
	if err != nil {
		return xcm.SerializedCall{}, err
	}
	if relay.Network != n.Relay() {
		return xcm.SerializedCall{}, errors.ScenarioNotSupportedf("%s is not the relay chain of %s", relay.Network, n.Network)
	}
	if !input.Currency.IsEmpty() && !input.Currency.Is(relay.NativeSymbol) {
		return xcm.SerializedCall{}, errors.InvalidCurrencyf("only %s can be sent from %s", relay.NativeSymbol, relay.Network)
	}
	version, err := relay.version(input.Version)
	if err != nil {
		return xcm.SerializedCall{}, err
	}
	paraID := n.ParaID
	if input.DestinationParaID != nil {
		paraID = *input.DestinationParaID
	}
	beneficiary, err := location.EncodeAddress(version, xcm.RelayToPara, xcm.XcmPallet, input.Recipient, &paraID)
	if err != nil {
		return xcm.SerializedCall{}, err
	}
	section := n.RelayToParaSection
	if section == "" {
		section = sectionReserve
	}
	return xcm.SerializedCall{
		Module:  xcm.XcmPallet.Module(),
		Section: section,
		Parameters: []any{
			location.DestinationHeader(version, xcm.RelayToPara, paraID),
			beneficiary,
			location.NewAssets(version, location.NewAsset(location.RelayNativeAsset(xcm.RelayToPara), input.Amount)),
			param.U32(0),
			location.Unlimited,
		},
	}, nil
}

// polkadotXcm.transferAssets(dest, beneficiary, assets, 0, Unlimited) towards the Ethereum consensus
func (n *Node) bridgeTransfer(input TransferInput) (xcm.SerializedCall, error) {
	version, err := n.version(input.Version)
	if err != nil {
		return xcm.SerializedCall{}, err
	}
	if version < xcm.V3 {
		return xcm.SerializedCall{}, errors.ScenarioNotSupportedf("transfers to %s require xcm %s or later", input.Destination, xcm.V3)
	}
	asset, err := n.FindAsset(input.Currency)
	if err != nil {
		return xcm.SerializedCall{}, err
	}
	if asset.Contract == "" {
		return xcm.SerializedCall{}, errors.InvalidCurrencyf("asset %s cannot be bridged to %s", asset.Symbol, input.Destination)
	}
	beneficiary := input.Recipient.Location
	if beneficiary == nil {
		key, err := xcm.AccountKey20(input.Recipient.Address)
		if err != nil {
			return xcm.SerializedCall{}, err
		}
		l := location.New(0, location.AccountKey20(location.NetworkNone, key))
		beneficiary = &l
	}
	return xcm.SerializedCall{
		Module:  xcm.PolkadotXcm.Module(),
		Section: "transferAssets",
		Parameters: []any{
			location.NewVersioned(version, location.New(2, location.GlobalConsensusEthereum(EthereumChainID))),
			location.NewVersioned(version, *beneficiary),
			location.NewAssets(version, location.NewAsset(asset.Location, input.Amount)),
			param.U32(0),
			location.Unlimited,
		},
	}, nil
}
