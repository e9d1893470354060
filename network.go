package xcm

import (
	"fmt"
	"strings"
)

// Network identifies a participating chain: a relay chain, a parachain, or the external bridge network.
type Network string

// Relay chains
const (
	Polkadot = Network("Polkadot")
	Kusama   = Network("Kusama")
)

// Parachains
const (
	AssetHubPolkadot  = Network("AssetHubPolkadot")
	AssetHubKusama    = Network("AssetHubKusama")
	BridgeHubPolkadot = Network("BridgeHubPolkadot")
	Collectives       = Network("Collectives")
	Acala             = Network("Acala")
	Karura            = Network("Karura")
	Astar             = Network("Astar")
	Hydration         = Network("Hydration")
	BifrostPolkadot   = Network("BifrostPolkadot")
	Moonbeam          = Network("Moonbeam")
	Interlay          = Network("Interlay")
	Pendulum          = Network("Pendulum")
	Unique            = Network("Unique")
)

// External, non-native networks reachable only through a bridge
const (
	Ethereum = Network("Ethereum")
)

var NetworkList = []Network{
	Polkadot,
	Kusama,
	AssetHubPolkadot,
	AssetHubKusama,
	BridgeHubPolkadot,
	Collectives,
	Acala,
	Karura,
	Astar,
	Hydration,
	BifrostPolkadot,
	Moonbeam,
	Interlay,
	Pendulum,
	Unique,
	Ethereum,
}

// Ecosystem is the relay chain a network is affiliated with.
type Ecosystem string

const (
	EcosystemPolkadot = Ecosystem("polkadot")
	EcosystemKusama   = Ecosystem("kusama")
	EcosystemEthereum = Ecosystem("ethereum")
)

var kusamaNetworks = map[Network]bool{
	Kusama:         true,
	AssetHubKusama: true,
	Karura:         true,
}

func ParseNetwork(name string) (Network, error) {
	for _, n := range NetworkList {
		if strings.EqualFold(string(n), strings.TrimSpace(name)) {
			return n, nil
		}
	}
	return "", fmt.Errorf("unknown network: %s\noptions: %v", name, NetworkList)
}

func (n Network) Valid() bool {
	for _, other := range NetworkList {
		if other == n {
			return true
		}
	}
	return false
}

func (n Network) IsRelayChain() bool {
	return n == Polkadot || n == Kusama
}

// IsExternal is true for networks outside of the relay-chain federation.
func (n Network) IsExternal() bool {
	return n == Ethereum
}

func (n Network) Ecosystem() Ecosystem {
	if n == Ethereum {
		return EcosystemEthereum
	}
	if kusamaNetworks[n] {
		return EcosystemKusama
	}
	return EcosystemPolkadot
}

// RelayChain returns the relay chain the network is affiliated with.
func (n Network) RelayChain() Network {
	if n.Ecosystem() == EcosystemKusama {
		return Kusama
	}
	return Polkadot
}

// RelaySymbol is the native asset symbol of the affiliated relay chain.
func (n Network) RelaySymbol() string {
	if n.RelayChain() == Kusama {
		return "KSM"
	}
	return "DOT"
}

func (n Network) String() string {
	return string(n)
}
