package location

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

type JunctionType string

const (
	JunctionParachain       = JunctionType("Parachain")
	JunctionAccountId32     = JunctionType("AccountId32")
	JunctionAccountKey20    = JunctionType("AccountKey20")
	JunctionPalletInstance  = JunctionType("PalletInstance")
	JunctionGeneralIndex    = JunctionType("GeneralIndex")
	JunctionGlobalConsensus = JunctionType("GlobalConsensus")
)

// SCALE variant indices of the Junction enum (identical for V1..V4 for the kinds used here)
var junctionIndex = map[JunctionType]uint8{
	JunctionParachain:       0,
	JunctionAccountId32:     1,
	JunctionAccountKey20:    3,
	JunctionPalletInstance:  4,
	JunctionGeneralIndex:    5,
	JunctionGlobalConsensus: 9,
}

// NetworkTag is the network qualifier on account junctions.
// Only version 1 descriptors carry one ("any"); later versions leave it empty.
type NetworkTag string

const (
	NetworkAny  = NetworkTag("any")
	NetworkNone = NetworkTag("")
)

// Junction is a single hop of a location path.
type Junction struct {
	Type JunctionType

	ParaID         uint32
	Network        NetworkTag
	AccountID      [32]byte
	Key            [20]byte
	PalletInstance uint8
	GeneralIndex   uint64
	// chain id of an Ethereum global consensus
	EthereumChainID uint64
}

func Parachain(id uint32) Junction {
	return Junction{Type: JunctionParachain, ParaID: id}
}

func AccountId32(network NetworkTag, id [32]byte) Junction {
	return Junction{Type: JunctionAccountId32, Network: network, AccountID: id}
}

func AccountKey20(network NetworkTag, key [20]byte) Junction {
	return Junction{Type: JunctionAccountKey20, Network: network, Key: key}
}

func PalletInstance(instance uint8) Junction {
	return Junction{Type: JunctionPalletInstance, PalletInstance: instance}
}

func GeneralIndex(index uint64) Junction {
	return Junction{Type: JunctionGeneralIndex, GeneralIndex: index}
}

func GlobalConsensusEthereum(chainID uint64) Junction {
	return Junction{Type: JunctionGlobalConsensus, EthereumChainID: chainID}
}

// IsAccount is true for the account-bearing junction kinds.
func (j Junction) IsAccount() bool {
	return j.Type == JunctionAccountId32 || j.Type == JunctionAccountKey20
}

type accountId32JSON struct {
	Network NetworkTag `json:"network,omitempty"`
	ID      string     `json:"id"`
}

type accountKey20JSON struct {
	Network NetworkTag `json:"network,omitempty"`
	Key     string     `json:"key"`
}

type ethereumJSON struct {
	ChainID uint64 `json:"chainId"`
}

func (j Junction) MarshalJSON() ([]byte, error) {
	var value any
	switch j.Type {
	case JunctionParachain:
		value = j.ParaID
	case JunctionAccountId32:
		value = accountId32JSON{Network: j.Network, ID: "0x" + hex.EncodeToString(j.AccountID[:])}
	case JunctionAccountKey20:
		value = accountKey20JSON{Network: j.Network, Key: "0x" + hex.EncodeToString(j.Key[:])}
	case JunctionPalletInstance:
		value = j.PalletInstance
	case JunctionGeneralIndex:
		value = j.GeneralIndex
	case JunctionGlobalConsensus:
		value = map[string]ethereumJSON{"Ethereum": {ChainID: j.EthereumChainID}}
	default:
		return nil, fmt.Errorf("unknown junction type: %s", j.Type)
	}
	return json.Marshal(map[JunctionType]any{j.Type: value})
}

func (j Junction) Encode(encoder scale.Encoder) error {
	index, ok := junctionIndex[j.Type]
	if !ok {
		return fmt.Errorf("unknown junction type: %s", j.Type)
	}
	if err := encoder.PushByte(index); err != nil {
		return err
	}
	switch j.Type {
	case JunctionParachain:
		return encoder.Encode(types.NewUCompactFromUInt(uint64(j.ParaID)))
	case JunctionAccountId32:
		// NetworkId::Any (v1, v2) and Option::None (v3, v4) share the 0x00 encoding
		if err := encoder.PushByte(0); err != nil {
			return err
		}
		return encoder.Write(j.AccountID[:])
	case JunctionAccountKey20:
		if err := encoder.PushByte(0); err != nil {
			return err
		}
		return encoder.Write(j.Key[:])
	case JunctionPalletInstance:
		return encoder.PushByte(j.PalletInstance)
	case JunctionGeneralIndex:
		return encoder.Encode(types.NewUCompactFromUInt(j.GeneralIndex))
	case JunctionGlobalConsensus:
		// NetworkId::Ethereum { chain_id }
		if err := encoder.PushByte(7); err != nil {
			return err
		}
		return encoder.Encode(types.NewUCompactFromUInt(j.EthereumChainID))
	}
	return nil
}
