package xcm

// Pallet is the chain-side module a transfer call is dispatched through.
type Pallet string

const (
	// message pallet on parachains
	PolkadotXcm = Pallet("PolkadotXcm")
	// asset pallet; uses asset-pallet location semantics
	XTokens = Pallet("XTokens")
	// message pallet on relay chains
	XcmPallet = Pallet("XcmPallet")
)

// UsesAssetSemantics is true for pallets that address the beneficiary relative to the relay chain.
func (p Pallet) UsesAssetSemantics() bool {
	return p == XTokens
}

// Module is the lower camel case module name used in serialized calls.
func (p Pallet) Module() string {
	switch p {
	case PolkadotXcm:
		return "polkadotXcm"
	case XTokens:
		return "xTokens"
	case XcmPallet:
		return "xcmPallet"
	}
	return string(p)
}
