package address

import (
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	xcm "github.com/cordialsys/xcm"
	"github.com/vedhavyas/go-subkey/v2"
)

// SS58 prefixes
const (
	PolkadotPrefix uint16 = 0
	KusamaPrefix   uint16 = 2
	GenericPrefix  uint16 = 42
)

// Prefix is the SS58 prefix addresses are rendered with on a network
func Prefix(network xcm.Network) uint16 {
	switch network.RelayChain() {
	case xcm.Polkadot:
		return PolkadotPrefix
	case xcm.Kusama:
		return KusamaPrefix
	}
	return GenericPrefix
}

// Encode returns the SS58 address of a public key
func Encode(publicKeyBytes []byte, prefix uint16) (xcm.Address, error) {
	if len(publicKeyBytes) == 33 {
		// drop address identifier
		publicKeyBytes = publicKeyBytes[1:]
	}
	if len(publicKeyBytes) != 32 {
		return xcm.Address(""), fmt.Errorf("invalid public key, expecting %d bytes but got %d", 32, len(publicKeyBytes))
	}
	return xcm.Address(subkey.SS58Encode(publicKeyBytes, prefix)), nil
}

// Reencode renders an address with the prefix of the network
func Reencode(addr xcm.Address, network xcm.Network) (xcm.Address, error) {
	id, err := Decode(addr)
	if err != nil {
		return "", err
	}
	return Encode(id.ToBytes(), Prefix(network))
}

func DecodeMulti(addr xcm.Address) (types.MultiAddress, error) {
	decodedVal := base58.Decode(string(addr))
	if len(decodedVal) < 34 {
		return types.MultiAddress{}, fmt.Errorf("address %s is too short", addr)
	}
	newAddr, err := types.NewMultiAddressFromAccountID(last32DropChecksum(decodedVal))
	if err != nil {
		return types.MultiAddress{}, fmt.Errorf("invalid address %s: %v", addr, err)
	}
	return newAddr, nil
}

// Decoding address without checking the checksum
func last32DropChecksum(decoded []byte) []byte {
	// drop the 2 checksum bytes
	decoded = decoded[:len(decoded)-2]
	// take the last 32 bytes (ignores the 1-2 byte prefix)
	return decoded[len(decoded)-32:]
}

func Decode(addr xcm.Address) (*types.AccountID, error) {
	decodedVal := base58.Decode(string(addr))
	if len(decodedVal) < 34 {
		return &types.AccountID{}, fmt.Errorf("address %s is too short", addr)
	}
	newAddr, err := types.NewAccountID(last32DropChecksum(decodedVal))
	if err != nil {
		return &types.AccountID{}, fmt.Errorf("invalid address %s: %v", addr, err)
	}
	return newAddr, nil
}
