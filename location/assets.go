package location

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	xcm "github.com/cordialsys/xcm"
)

// Asset is a fungible amount of the asset identified by its location.
type Asset struct {
	ID     Location
	Amount xcm.AmountBlockchain
}

func NewAsset(id Location, amount xcm.AmountBlockchain) Asset {
	return Asset{ID: id, Amount: amount}
}

type fungibleJSON struct {
	Fungible xcm.AmountBlockchain `json:"Fungible"`
}

type assetJSON struct {
	ID  any          `json:"id"`
	Fun fungibleJSON `json:"fun"`
}

func (a Asset) wire(version xcm.Version) assetJSON {
	var id any
	if version >= xcm.V4 {
		id = a.ID.wire(version)
	} else {
		id = map[string]locationJSON{"Concrete": a.ID.wire(version)}
	}
	return assetJSON{ID: id, Fun: fungibleJSON{Fungible: a.Amount}}
}

func (a Asset) encode(encoder scale.Encoder, version xcm.Version) error {
	if version < xcm.V4 {
		// AssetId::Concrete
		if err := encoder.PushByte(0); err != nil {
			return err
		}
	}
	if err := encoder.Encode(a.ID); err != nil {
		return err
	}
	// Fungibility::Fungible
	if err := encoder.PushByte(0); err != nil {
		return err
	}
	return encoder.Encode(types.NewUCompact(a.Amount.Int()))
}

// Assets is a versioned list of assets.
type Assets struct {
	Version xcm.Version
	Items   []Asset
}

func NewAssets(version xcm.Version, items ...Asset) Assets {
	return Assets{Version: version, Items: items}
}

func (a Assets) MarshalJSON() ([]byte, error) {
	items := make([]assetJSON, len(a.Items))
	for i, item := range a.Items {
		if err := item.ID.Validate(); err != nil {
			return nil, err
		}
		items[i] = item.wire(a.Version)
	}
	return json.Marshal(map[string][]assetJSON{a.Version.String(): items})
}

func (a Assets) Encode(encoder scale.Encoder) error {
	index, err := versionIndex(a.Version)
	if err != nil {
		return err
	}
	if err := encoder.PushByte(index); err != nil {
		return err
	}
	if err := encoder.EncodeUintCompact(*big.NewInt(int64(len(a.Items)))); err != nil {
		return err
	}
	for i, item := range a.Items {
		if err := item.encode(encoder, a.Version); err != nil {
			return fmt.Errorf("asset %d: %w", i, err)
		}
	}
	return nil
}

// VersionedAsset is a single asset tagged with a protocol version, used by asset-pallet multiasset transfers.
type VersionedAsset struct {
	Version xcm.Version
	Asset   Asset
}

func (a VersionedAsset) MarshalJSON() ([]byte, error) {
	if err := a.Asset.ID.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(map[string]assetJSON{a.Version.String(): a.Asset.wire(a.Version)})
}

func (a VersionedAsset) Encode(encoder scale.Encoder) error {
	index, err := versionIndex(a.Version)
	if err != nil {
		return err
	}
	if err := encoder.PushByte(index); err != nil {
		return err
	}
	return a.Asset.encode(encoder, a.Version)
}

// WeightLimit bounds the execution weight bought on the destination.
type WeightLimit struct {
	Unlimited bool
	RefTime   uint64
	ProofSize uint64
}

var Unlimited = WeightLimit{Unlimited: true}

func Limited(refTime uint64, proofSize uint64) WeightLimit {
	return WeightLimit{RefTime: refTime, ProofSize: proofSize}
}

type weightJSON struct {
	RefTime   uint64 `json:"refTime"`
	ProofSize uint64 `json:"proofSize"`
}

func (w WeightLimit) MarshalJSON() ([]byte, error) {
	if w.Unlimited {
		return json.Marshal("Unlimited")
	}
	return json.Marshal(map[string]weightJSON{"Limited": {RefTime: w.RefTime, ProofSize: w.ProofSize}})
}

func (w WeightLimit) Encode(encoder scale.Encoder) error {
	if w.Unlimited {
		return encoder.PushByte(0)
	}
	if err := encoder.PushByte(1); err != nil {
		return err
	}
	if err := encoder.Encode(types.NewUCompactFromUInt(w.RefTime)); err != nil {
		return err
	}
	return encoder.Encode(types.NewUCompactFromUInt(w.ProofSize))
}
