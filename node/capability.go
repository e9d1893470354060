package node

import (
	"encoding/json"
	"strings"
)

// Capability is an operation a network declares support for.
type Capability uint16

const (
	// transfers through the message pallet (polkadotXcm)
	MessagePalletTransfer Capability = 1 << iota
	// transfers through the asset pallet (xTokens)
	AssetPalletTransfer
	// can receive transfers originated on its relay chain
	RelayToParaTransfer
	// transfers over the external bridge (hub networks only)
	BridgeTransfer
	OpenChannel
	CloseChannel
	AssetClaim
)

var capabilityNames = []struct {
	capability Capability
	name       string
}{
	{MessagePalletTransfer, "message-pallet-transfer"},
	{AssetPalletTransfer, "asset-pallet-transfer"},
	{RelayToParaTransfer, "relay-to-para-transfer"},
	{BridgeTransfer, "bridge-transfer"},
	{OpenChannel, "open-channel"},
	{CloseChannel, "close-channel"},
	{AssetClaim, "asset-claim"},
}

func (c Capability) Has(other Capability) bool {
	return c&other == other
}

func (c Capability) List() []string {
	names := []string{}
	for _, entry := range capabilityNames {
		if c.Has(entry.capability) {
			names = append(names, entry.name)
		}
	}
	return names
}

func (c Capability) String() string {
	return strings.Join(c.List(), ",")
}

func (c Capability) MarshalYAML() (interface{}, error) {
	return c.List(), nil
}

func (c Capability) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.List())
}
