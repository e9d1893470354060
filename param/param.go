// Package param holds the primitive pallet-call argument values. Each value has
// a JSON shape for serialized descriptors and a SCALE encoding for signable calls.
package param

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	xcm "github.com/cordialsys/xcm"
)

// U8 encodes as a single byte
type U8 uint8

// U16 encodes as a little-endian u16
type U16 uint16

// U32 encodes as a little-endian u32
type U32 uint32

// U128 encodes as a little-endian u128, serialized as a decimal string
type U128 xcm.AmountBlockchain

func (v U8) Encode(encoder scale.Encoder) error {
	return encoder.PushByte(byte(v))
}

func (v U16) Encode(encoder scale.Encoder) error {
	return encoder.Encode(types.NewU16(uint16(v)))
}

func (v U32) Encode(encoder scale.Encoder) error {
	return encoder.Encode(types.NewU32(uint32(v)))
}

func NewU128(amount xcm.AmountBlockchain) U128 {
	return U128(amount)
}

func (v U128) Encode(encoder scale.Encoder) error {
	amount := xcm.AmountBlockchain(v)
	return encoder.Encode(types.NewU128(*amount.Int()))
}

func (v U128) MarshalJSON() ([]byte, error) {
	return xcm.AmountBlockchain(v).MarshalJSON()
}

// Enum is a variant of a SCALE enum. A nil Value is a unit variant.
type Enum struct {
	Name  string
	Index uint8
	Value any
}

func NewEnum(name string, index uint8, value any) Enum {
	return Enum{Name: name, Index: index, Value: value}
}

func (e Enum) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(e.Index); err != nil {
		return err
	}
	if e.Value == nil {
		return nil
	}
	return encoder.Encode(e.Value)
}

func (e Enum) MarshalJSON() ([]byte, error) {
	if e.Value == nil {
		return json.Marshal(e.Name)
	}
	return json.Marshal(map[string]any{e.Name: e.Value})
}

// Vec encodes as a length-prefixed sequence of encodable values
type Vec[T any] []T

func (v Vec[T]) Encode(encoder scale.Encoder) error {
	if err := encoder.EncodeUintCompact(*big.NewInt(int64(len(v)))); err != nil {
		return err
	}
	for i, item := range v {
		if err := encoder.Encode(item); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}
