package xcm

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/cordialsys/xcm/errors"
	"github.com/ethereum/go-ethereum/common"
)

// Address is an account address, either a native SS58 address or a 20-byte hex Ethereum-style address.
type Address string

// IsEthereumAddress reports whether the address is a 20-byte hex "Ethereum style" address.
func IsEthereumAddress(addr Address) bool {
	return common.IsHexAddress(string(addr))
}

// AccountID32 decodes an SS58 address (or 0x-prefixed 32-byte hex) into the raw 32-byte account id.
// The checksum is not verified.
func AccountID32(addr Address) ([32]byte, error) {
	var id [32]byte
	s := strings.TrimSpace(string(addr))
	if strings.HasPrefix(s, "0x") && len(s) == 66 {
		bz, err := hex.DecodeString(s[2:])
		if err != nil {
			return id, errors.InvalidAddressFormatf("invalid hex account id %s: %v", addr, err)
		}
		copy(id[:], bz)
		return id, nil
	}
	decoded := base58.Decode(s)
	if len(decoded) < 34 {
		return id, errors.InvalidAddressFormatf("address %s is too short", addr)
	}
	copy(id[:], last32DropChecksum(decoded))
	return id, nil
}

// AccountKey20 decodes a 20-byte Ethereum-style address.
func AccountKey20(addr Address) ([20]byte, error) {
	if !IsEthereumAddress(addr) {
		return [20]byte{}, errors.InvalidAddressFormatf("%s is not an ethereum address", addr)
	}
	return [20]byte(common.HexToAddress(string(addr))), nil
}

func last32DropChecksum(decoded []byte) []byte {
	// drop the 2 checksum bytes
	decoded = decoded[:len(decoded)-2]
	// take the last 32 bytes (ignores the 1-2 byte prefix)
	return decoded[len(decoded)-32:]
}
