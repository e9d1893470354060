package tx

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/extrinsic"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/extrinsic/extensions"
	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/chain/substrate/tx_input"
	"golang.org/x/crypto/blake2b"
)

// Tx is a signed extrinsic carrying one call
type Tx struct {
	extrinsic     extrinsic.DynamicExtrinsic
	meta          tx_input.Metadata
	sender        types.MultiAddress
	signatureType xcm.SignatureType
	genesisHash   types.Hash
	rv            types.RuntimeVersion
	tip, nonce    uint64
	signature     []byte
	payload       *extrinsic.Payload
}

func NewTx(call types.Call, sender types.MultiAddress, signatureType xcm.SignatureType, txInput *tx_input.TxInput) (*Tx, error) {
	tx := &Tx{
		meta:          txInput.Meta,
		extrinsic:     extrinsic.NewDynamicExtrinsic(&call),
		sender:        sender,
		signatureType: signatureType,
		nonce:         txInput.Nonce,
		genesisHash:   txInput.GenesisHash,
		rv:            txInput.Rv,
		tip:           txInput.Tip,
	}
	err := tx.build()
	return tx, err
}

func (tx *Tx) build() error {
	if tx.extrinsic.Type() != types.ExtrinsicVersion4 {
		return fmt.Errorf("unsupported extrinsic version: %v (isSigned: %v, type: %v)", tx.extrinsic.Version, tx.extrinsic.IsSigned(), tx.extrinsic.Type())
	}
	encodedMethod, err := codec.Encode(tx.extrinsic.Method)
	if err != nil {
		return fmt.Errorf("encode method: %w", err)
	}
	fieldValues := extrinsic.SignedFieldValues{}

	opts := []extrinsic.SigningOption{
		extrinsic.WithEra(types.ExtrinsicEra{IsImmortalEra: true}, tx.genesisHash),
		extrinsic.WithNonce(types.NewUCompactFromUInt(tx.nonce)),
		extrinsic.WithTip(types.NewUCompactFromUInt(tx.tip)),
		extrinsic.WithSpecVersion(tx.rv.SpecVersion),
		extrinsic.WithTransactionVersion(tx.rv.TransactionVersion),
		extrinsic.WithGenesisHash(tx.genesisHash),
		extrinsic.WithMetadataMode(extensions.CheckMetadataModeDisabled, extensions.CheckMetadataHash{Hash: types.NewEmptyOption[types.H256]()}),
	}
	for _, opt := range opts {
		opt(fieldValues)
	}

	payload, err := tx_input.CreatePayload(&tx.meta, encodedMethod)
	if err != nil {
		return fmt.Errorf("creating payload: %w", err)
	}
	err = payload.MutateSignedFields(fieldValues)
	if err != nil {
		return fmt.Errorf("mutate signed fields: %w", err)
	}
	tx.payload = payload
	return nil
}

func HashSerialized(serialized []byte) []byte {
	hash := blake2b.Sum256(serialized)
	return hash[:]
}

// Hash is the blake2b-256 hash of the serialized extrinsic
func (tx Tx) Hash() xcm.TxHash {
	ser, err := tx.Serialize()
	if err != nil {
		return xcm.TxHash("")
	}
	hash := HashSerialized(ser)
	return xcm.TxHash(codec.HexEncodeToString(hash[:]))
}

// Sighash returns the payload to sign
func (tx Tx) Sighash() ([]byte, error) {
	b, err := codec.Encode(tx.payload)
	// if data is longer than 256 bytes, must hash it first
	if len(b) > 256 {
		h := blake2b.Sum256(b)
		b = h[:]
	}
	return b, err
}

func (tx *Tx) SetSignature(signature []byte) error {
	multi := types.MultiSignature{}
	switch tx.signatureType {
	case xcm.Sr25519:
		multi.IsSr25519 = true
		multi.AsSr25519 = types.NewSignature(signature)
	case xcm.Ed255:
		multi.IsEd25519 = true
		multi.AsEd25519 = types.NewSignature(signature)
	default:
		return fmt.Errorf("unsupported signature type for substrate: %s", tx.signatureType)
	}
	tx.extrinsic.Signature = &extrinsic.Signature{
		Signer:       tx.sender,
		Signature:    multi,
		SignedFields: tx.payload.SignedFields,
	}
	tx.extrinsic.Version |= types.ExtrinsicBitSigned
	tx.signature = signature
	return nil
}

func (tx Tx) Signature() []byte {
	return tx.signature
}

// Serialize returns the SCALE encoded extrinsic
func (tx Tx) Serialize() ([]byte, error) {
	return codec.Encode(tx.extrinsic)
}
