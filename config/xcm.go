package config

import (
	"fmt"

	xcm "github.com/cordialsys/xcm"
	"github.com/sirupsen/logrus"
)

// Section of the config file read by Load
const Section = "xcm"

type NetworkConfig struct {
	URL string `yaml:"url,omitempty"`
}

type EthereumConfig struct {
	URL string `yaml:"url,omitempty"`
	// Snowbridge gateway contract
	Gateway string `yaml:"gateway,omitempty"`
	ChainID uint64 `yaml:"chain_id,omitempty"`
	// Secret reference to the hex private key
	Key Secret `yaml:"key,omitempty"`
}

type Config struct {
	// Endpoint overrides, keyed by network name (case-insensitive).
	// Networks without an override use the registry's endpoint.
	Networks map[string]*NetworkConfig `yaml:"networks,omitempty"`
	LogLevel string                    `yaml:"log_level,omitempty"`
	// Parachain that receives bridged tokens
	Hub xcm.Network `yaml:"hub,omitempty"`
	// External network on the far side of the bridge
	BridgeNetwork xcm.Network    `yaml:"bridge_network,omitempty"`
	Ethereum      EthereumConfig `yaml:"ethereum,omitempty"`
	// Secret reference to the hex seed of the substrate signer
	Seed Secret `yaml:"seed,omitempty"`
}

func Default() *Config {
	return &Config{
		LogLevel:      "info",
		Hub:           xcm.AssetHubPolkadot,
		BridgeNetwork: xcm.Ethereum,
		Ethereum: EthereumConfig{
			URL:     "https://ethereum-rpc.publicnode.com",
			Gateway: "0x27ca963C279c93801941e1eB8799c23f407d68e7",
			ChainID: 1,
		},
		Seed: "env:XCM_SEED",
	}
}

// Load reads the xcm section of the config file, falling back to the defaults
func Load() (*Config, error) {
	cfg := &Config{}
	if err := RequireConfig(Section, cfg, Default()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Endpoints returns the configured endpoint overrides
func (c *Config) Endpoints() (map[xcm.Network]string, error) {
	endpoints := map[xcm.Network]string{}
	for name, network := range c.Networks {
		parsed, err := xcm.ParseNetwork(name)
		if err != nil {
			return nil, fmt.Errorf("invalid network in config: %w", err)
		}
		if network == nil || network.URL == "" {
			continue
		}
		endpoints[parsed] = network.URL
	}
	if len(endpoints) > 0 {
		logrus.WithField("networks", len(endpoints)).Debug("using configured endpoints")
	}
	return endpoints, nil
}
