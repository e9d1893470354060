// Package node is the per-network adapter registry. Every network is a data record
// declaring its capabilities, pallet, default protocol version and asset table.
package node

import (
	"sort"
	"strings"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/errors"
	"github.com/cordialsys/xcm/location"
)

const EthereumChainID = 1

// Asset is a currency a node can send.
type Asset struct {
	Symbol   string `yaml:"symbol" json:"symbol"`
	ID       string `yaml:"id,omitempty" json:"id,omitempty"`
	Decimals int32  `yaml:"decimals" json:"decimals"`
	// ERC20 contract of assets bridged from Ethereum
	Contract string `yaml:"contract,omitempty" json:"contract,omitempty"`

	// location relative to the node, used by message pallet transfers
	Location location.Location `yaml:"-" json:"-"`
	// currency argument of asset pallet transfers
	Selection any `yaml:"-" json:"-"`
}

// CurrencyRule overrides how an asset pallet node maps a currency onto its currency argument.
type CurrencyRule func(n *Node, asset Asset, currency xcm.Currency) (any, error)

type Node struct {
	Network      xcm.Network  `yaml:"network" json:"network"`
	Name         string       `yaml:"name" json:"name"`
	ParaID       uint32       `yaml:"para_id" json:"para_id"`
	NativeSymbol string       `yaml:"native_symbol" json:"native_symbol"`
	Decimals     int32        `yaml:"decimals" json:"decimals"`
	Version      xcm.Version  `yaml:"version" json:"version"`
	Pallet       xcm.Pallet   `yaml:"pallet" json:"pallet"`
	Capabilities Capability   `yaml:"capabilities" json:"capabilities"`
	Endpoint     string       `yaml:"endpoint" json:"endpoint"`
	Assets       []Asset      `yaml:"assets,omitempty" json:"assets,omitempty"`
	// scenarios the node can originate
	Scenarios []xcm.Scenario `yaml:"scenarios,omitempty" json:"scenarios,omitempty"`

	// message pallet section overrides, default is limitedReserveTransferAssets
	ParaToRelaySection string `yaml:"-" json:"-"`
	ParaToParaSection  string `yaml:"-" json:"-"`
	// section the relay chain uses to send to this node
	RelayToParaSection string `yaml:"-" json:"-"`

	currencyRule CurrencyRule
}

func (n *Node) Relay() xcm.Network {
	return n.Network.RelayChain()
}

func (n *Node) IsRelayChain() bool {
	return n.Network.IsRelayChain()
}

func (n *Node) Supports(capability Capability) bool {
	return n.Capabilities.Has(capability)
}

func (n *Node) SupportsScenario(scenario xcm.Scenario) bool {
	for _, s := range n.Scenarios {
		if s == scenario {
			return true
		}
	}
	return false
}

// FindAsset resolves a currency by symbol (case-insensitive) or by asset id.
func (n *Node) FindAsset(currency xcm.Currency) (Asset, error) {
	if currency.IsEmpty() {
		return Asset{}, errors.InvalidCurrencyf("no currency selected for %s", n.Network)
	}
	for _, asset := range n.Assets {
		if currency.ID != "" && asset.ID == currency.ID {
			return asset, nil
		}
		if currency.Symbol != "" && strings.EqualFold(asset.Symbol, currency.Symbol) {
			return asset, nil
		}
	}
	return Asset{}, errors.InvalidCurrencyf("asset %s is not supported by node %s", currency, n.Network)
}

func (n *Node) NativeAsset() Asset {
	asset, err := n.FindAsset(xcm.CurrencySymbol(n.NativeSymbol))
	if err != nil {
		return Asset{Symbol: n.NativeSymbol, Decimals: n.Decimals, Location: location.Here(0)}
	}
	return asset
}

var registry = map[xcm.Network]*Node{}

func register(nodes ...*Node) {
	for _, n := range nodes {
		if _, ok := registry[n.Network]; ok {
			panic("duplicate node " + n.Network)
		}
		registry[n.Network] = n
	}
}

// Get returns the adapter record of a network.
func Get(network xcm.Network) (*Node, error) {
	if network.IsExternal() {
		return nil, errors.NodeNotSupportedf("%s is only reachable through the bridge", network)
	}
	n, ok := registry[network]
	if !ok {
		return nil, errors.NodeNotSupportedf("unknown node %s", network)
	}
	return n, nil
}

// All returns every registered node in network list order.
func All() []*Node {
	order := map[xcm.Network]int{}
	for i, network := range xcm.NetworkList {
		order[network] = i
	}
	nodes := make([]*Node, 0, len(registry))
	for _, n := range registry {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return order[nodes[i].Network] < order[nodes[j].Network]
	})
	return nodes
}

// ByParaID finds the parachain with the given id under a relay chain.
func ByParaID(relay xcm.Network, paraID uint32) (*Node, bool) {
	for _, n := range registry {
		if !n.IsRelayChain() && n.Relay() == relay && n.ParaID == paraID {
			return n, true
		}
	}
	return nil, false
}

// Supports is a static capability query.
func Supports(network xcm.Network, capability Capability) bool {
	n, err := Get(network)
	if err != nil {
		return false
	}
	return n.Supports(capability)
}
