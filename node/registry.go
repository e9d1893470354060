package node

import (
	"strconv"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/errors"
	"github.com/cordialsys/xcm/location"
	"github.com/cordialsys/xcm/param"
)

const (
	sectionReserve  = "limitedReserveTransferAssets"
	sectionTeleport = "limitedTeleportAssets"
)

var bothScenarios = []xcm.Scenario{xcm.ParaToRelay, xcm.ParaToPara}

const channels = OpenChannel | CloseChannel

// asset of the relay chain, as seen from a parachain
func relayAsset(symbol string, decimals int32, selection any) Asset {
	return Asset{Symbol: symbol, Decimals: decimals, Location: location.Here(1), Selection: selection}
}

func nativeAsset(symbol string, decimals int32, selection any) Asset {
	return Asset{Symbol: symbol, Decimals: decimals, Location: location.Here(0), Selection: selection}
}

// asset of the assets pallet (instance 50) on a system parachain
func palletAsset(symbol string, id uint64, decimals int32) Asset {
	return Asset{
		Symbol:   symbol,
		ID:       strconv.FormatUint(id, 10),
		Decimals: decimals,
		Location: location.New(0, location.PalletInstance(50), location.GeneralIndex(id)),
	}
}

// asset bridged from Ethereum, held on the hub as a foreign asset
func bridgedAsset(symbol string, contract string, decimals int32) Asset {
	key, _ := xcm.AccountKey20(xcm.Address(contract))
	return Asset{
		Symbol:   symbol,
		Decimals: decimals,
		Contract: contract,
		Location: location.New(2, location.GlobalConsensusEthereum(EthereumChainID), location.AccountKey20(location.NetworkNone, key)),
	}
}

func token(name string, index uint8) param.Enum {
	return param.NewEnum("Token", 0, param.NewEnum(name, index, nil))
}

// {XCM: id} selection for the native asset only
func pendulumCurrencyRule(n *Node, asset Asset, currency xcm.Currency) (any, error) {
	if !asset.Is(n.NativeSymbol) {
		return nil, errors.InvalidCurrencyf("asset %s is not supported by node %s", currency, n.Network)
	}
	id := uint64(0)
	if currency.ID != "" {
		var err error
		id, err = strconv.ParseUint(currency.ID, 10, 8)
		if err != nil {
			return nil, errors.InvalidCurrencyf("invalid currency id %s for %s", currency.ID, n.Network)
		}
	}
	return param.NewEnum("XCM", 1, param.U8(id)), nil
}

func (a Asset) Is(symbol string) bool {
	return xcm.CurrencySymbol(a.Symbol).Is(symbol)
}

func init() {
	register(
		&Node{
			Network:      xcm.Polkadot,
			Name:         "polkadot",
			NativeSymbol: "DOT",
			Decimals:     10,
			Version:      xcm.V3,
			Pallet:       xcm.XcmPallet,
			Capabilities: AssetClaim,
			Endpoint:     "wss://rpc.polkadot.io",
			Assets:       []Asset{nativeAsset("DOT", 10, nil)},
		},
		&Node{
			Network:      xcm.Kusama,
			Name:         "kusama",
			NativeSymbol: "KSM",
			Decimals:     12,
			Version:      xcm.V3,
			Pallet:       xcm.XcmPallet,
			Capabilities: AssetClaim,
			Endpoint:     "wss://kusama-rpc.polkadot.io",
			Assets:       []Asset{nativeAsset("KSM", 12, nil)},
		},
		&Node{
			Network:            xcm.AssetHubPolkadot,
			Name:               "PolkadotAssetHub",
			ParaID:             1000,
			NativeSymbol:       "DOT",
			Decimals:           10,
			Version:            xcm.V3,
			Pallet:             xcm.PolkadotXcm,
			Capabilities:       MessagePalletTransfer | RelayToParaTransfer | BridgeTransfer | channels | AssetClaim,
			Endpoint:           "wss://polkadot-asset-hub-rpc.polkadot.io",
			Scenarios:          bothScenarios,
			ParaToRelaySection: sectionTeleport,
			RelayToParaSection: sectionTeleport,
			Assets: []Asset{
				relayAsset("DOT", 10, nil),
				palletAsset("USDT", 1984, 6),
				palletAsset("USDC", 1337, 6),
				bridgedAsset("WETH", "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", 18),
				bridgedAsset("WBTC", "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599", 8),
				bridgedAsset("tBTC", "0x18084fbA666a33d37592fA2633fD49a74DD93a88", 18),
			},
		},
		&Node{
			Network:            xcm.AssetHubKusama,
			Name:               "KusamaAssetHub",
			ParaID:             1000,
			NativeSymbol:       "KSM",
			Decimals:           12,
			Version:            xcm.V3,
			Pallet:             xcm.PolkadotXcm,
			Capabilities:       MessagePalletTransfer | RelayToParaTransfer | channels | AssetClaim,
			Endpoint:           "wss://kusama-asset-hub-rpc.polkadot.io",
			Scenarios:          bothScenarios,
			ParaToRelaySection: sectionTeleport,
			RelayToParaSection: sectionTeleport,
			Assets: []Asset{
				relayAsset("KSM", 12, nil),
				palletAsset("USDT", 1984, 6),
			},
		},
		&Node{
			Network:            xcm.BridgeHubPolkadot,
			Name:               "polkadotBridgeHub",
			ParaID:             1002,
			NativeSymbol:       "DOT",
			Decimals:           10,
			Version:            xcm.V3,
			Pallet:             xcm.PolkadotXcm,
			Capabilities:       MessagePalletTransfer | RelayToParaTransfer,
			Endpoint:           "wss://polkadot-bridge-hub-rpc.polkadot.io",
			Scenarios:          []xcm.Scenario{xcm.ParaToRelay},
			ParaToRelaySection: sectionTeleport,
			RelayToParaSection: sectionTeleport,
			Assets:             []Asset{relayAsset("DOT", 10, nil)},
		},
		&Node{
			Network:            xcm.Collectives,
			Name:               "polkadotCollectives",
			ParaID:             1001,
			NativeSymbol:       "DOT",
			Decimals:           10,
			Version:            xcm.V3,
			Pallet:             xcm.PolkadotXcm,
			Capabilities:       MessagePalletTransfer | RelayToParaTransfer | AssetClaim,
			Endpoint:           "wss://polkadot-collectives-rpc.polkadot.io",
			Scenarios:          []xcm.Scenario{xcm.ParaToRelay},
			ParaToRelaySection: sectionTeleport,
			RelayToParaSection: sectionTeleport,
			Assets:             []Asset{relayAsset("DOT", 10, nil)},
		},
		&Node{
			Network:      xcm.Acala,
			Name:         "acala",
			ParaID:       2000,
			NativeSymbol: "ACA",
			Decimals:     12,
			Version:      xcm.V3,
			Pallet:       xcm.XTokens,
			Capabilities: AssetPalletTransfer | RelayToParaTransfer | channels | AssetClaim,
			Endpoint:     "wss://acala-rpc.dwellir.com",
			Scenarios:    bothScenarios,
			Assets: []Asset{
				nativeAsset("ACA", 12, token("ACA", 0)),
				relayAsset("DOT", 10, token("DOT", 2)),
				{Symbol: "LDOT", Decimals: 10, Selection: token("LDOT", 3)},
				{Symbol: "AUSD", Decimals: 12, Selection: token("AUSD", 1)},
				{Symbol: "USDT", ID: "12", Decimals: 6, Selection: param.NewEnum("ForeignAsset", 5, param.U16(12))},
			},
		},
		&Node{
			Network:      xcm.Karura,
			Name:         "karura",
			ParaID:       2000,
			NativeSymbol: "KAR",
			Decimals:     12,
			Version:      xcm.V3,
			Pallet:       xcm.XTokens,
			Capabilities: AssetPalletTransfer | RelayToParaTransfer | channels | AssetClaim,
			Endpoint:     "wss://karura-rpc.dwellir.com",
			Scenarios:    bothScenarios,
			Assets: []Asset{
				nativeAsset("KAR", 12, token("KAR", 128)),
				relayAsset("KSM", 12, token("KSM", 130)),
				{Symbol: "KUSD", Decimals: 12, Selection: token("KUSD", 129)},
				{Symbol: "LKSM", Decimals: 12, Selection: token("LKSM", 131)},
			},
		},
		&Node{
			Network:      xcm.Astar,
			Name:         "astar",
			ParaID:       2006,
			NativeSymbol: "ASTR",
			Decimals:     18,
			Version:      xcm.V3,
			Pallet:       xcm.PolkadotXcm,
			Capabilities: MessagePalletTransfer | RelayToParaTransfer | channels | AssetClaim,
			Endpoint:     "wss://rpc.astar.network",
			Scenarios:    bothScenarios,
			Assets: []Asset{
				nativeAsset("ASTR", 18, nil),
				relayAsset("DOT", 10, nil),
			},
		},
		&Node{
			Network:      xcm.Hydration,
			Name:         "hydradx",
			ParaID:       2034,
			NativeSymbol: "HDX",
			Decimals:     12,
			Version:      xcm.V3,
			Pallet:       xcm.XTokens,
			Capabilities: AssetPalletTransfer | RelayToParaTransfer | channels | AssetClaim,
			Endpoint:     "wss://rpc.hydradx.cloud",
			Scenarios:    bothScenarios,
			Assets: []Asset{
				{Symbol: "HDX", ID: "0", Decimals: 12, Location: location.Here(0), Selection: param.U32(0)},
				{Symbol: "DOT", ID: "5", Decimals: 10, Location: location.Here(1), Selection: param.U32(5)},
				{Symbol: "USDT", ID: "10", Decimals: 6, Selection: param.U32(10)},
				{Symbol: "USDC", ID: "22", Decimals: 6, Selection: param.U32(22)},
				{Symbol: "WETH", ID: "1000189", Decimals: 18, Selection: param.U32(1000189)},
			},
		},
		&Node{
			Network:      xcm.BifrostPolkadot,
			Name:         "bifrost",
			ParaID:       2030,
			NativeSymbol: "BNC",
			Decimals:     12,
			Version:      xcm.V3,
			Pallet:       xcm.XTokens,
			Capabilities: AssetPalletTransfer | RelayToParaTransfer | channels | AssetClaim,
			Endpoint:     "wss://hk.p.bifrost-rpc.liebi.com/ws",
			Scenarios:    bothScenarios,
			Assets: []Asset{
				nativeAsset("BNC", 12, param.NewEnum("Native", 0, param.NewEnum("BNC", 1, nil))),
				relayAsset("DOT", 10, param.NewEnum("Token2", 8, param.U8(0))),
				{Symbol: "vDOT", Decimals: 10, Selection: param.NewEnum("VToken2", 9, param.U8(0))},
			},
		},
		&Node{
			Network:      xcm.Moonbeam,
			Name:         "moonbeam",
			ParaID:       2004,
			NativeSymbol: "GLMR",
			Decimals:     18,
			Version:      xcm.V3,
			Pallet:       xcm.XTokens,
			Capabilities: AssetPalletTransfer | RelayToParaTransfer | channels | AssetClaim,
			Endpoint:     "wss://wss.api.moonbeam.network",
			Scenarios:    bothScenarios,
			Assets: []Asset{
				nativeAsset("GLMR", 18, param.NewEnum("SelfReserve", 0, nil)),
				relayAsset("DOT", 10, param.NewEnum("ForeignAsset", 1,
					param.NewU128(xcm.NewAmountBlockchainFromStr("42259045809535163221576417993425387648")))),
			},
		},
		&Node{
			Network:      xcm.Interlay,
			Name:         "interlay",
			ParaID:       2032,
			NativeSymbol: "INTR",
			Decimals:     10,
			Version:      xcm.V3,
			Pallet:       xcm.XTokens,
			Capabilities: AssetPalletTransfer | RelayToParaTransfer | channels | AssetClaim,
			Endpoint:     "wss://api.interlay.io/parachain",
			Scenarios:    bothScenarios,
			Assets: []Asset{
				nativeAsset("INTR", 10, token("INTR", 2)),
				relayAsset("DOT", 10, token("DOT", 0)),
				{Symbol: "IBTC", Decimals: 8, Selection: token("IBTC", 1)},
				{Symbol: "USDT", ID: "2", Decimals: 6, Selection: param.NewEnum("ForeignAsset", 1, param.U32(2))},
			},
		},
		&Node{
			Network:      xcm.Pendulum,
			Name:         "pendulum",
			ParaID:       2094,
			NativeSymbol: "PEN",
			Decimals:     12,
			Version:      xcm.V3,
			Pallet:       xcm.XTokens,
			Capabilities: AssetPalletTransfer | channels,
			Endpoint:     "wss://rpc-pendulum.prd.pendulumchain.tech",
			Scenarios:    []xcm.Scenario{xcm.ParaToPara},
			Assets:       []Asset{nativeAsset("PEN", 12, nil)},
			currencyRule: pendulumCurrencyRule,
		},
		&Node{
			Network:      xcm.Unique,
			Name:         "unique",
			ParaID:       2037,
			NativeSymbol: "UNQ",
			Decimals:     18,
			Version:      xcm.V3,
			Pallet:       xcm.XTokens,
			Capabilities: AssetPalletTransfer | RelayToParaTransfer | channels,
			Endpoint:     "wss://ws.unique.network",
			Scenarios:    bothScenarios,
			Assets: []Asset{
				nativeAsset("UNQ", 18, param.NewEnum("NativeAssetId", 1, param.NewEnum("Here", 0, nil))),
				relayAsset("DOT", 10, param.NewEnum("NativeAssetId", 1, param.NewEnum("Parent", 1, nil))),
			},
		},
	)
}
