package substrate

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"strings"

	sr25519 "github.com/ChainSafe/go-schnorrkel"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	xcm "github.com/cordialsys/xcm"
	"github.com/gtank/merlin"
)

// Only the raw seed is accepted, not the mnemonic, so the conversion to a key is unambiguous.
func decodeSeed(seed string) ([]byte, error) {
	if strings.Contains(strings.TrimSpace(seed), " ") {
		return nil, errors.New("only raw seed is supported, not mnemonic")
	}
	seedBytes, err := codec.HexDecodeString(strings.TrimSpace(seed))
	if err != nil {
		return nil, err
	}
	if len(seedBytes) != ed25519.SeedSize {
		return nil, fmt.Errorf("expected private key seed to be %d bytes, got %d bytes", ed25519.SeedSize, len(seedBytes))
	}
	return seedBytes, nil
}

// NewSigner returns a signer for the signature type from a hex encoded seed
func NewSigner(signatureType xcm.SignatureType, seed string) (xcm.Signer, error) {
	switch signatureType {
	case xcm.Sr25519, "":
		return NewSr25519Signer(seed)
	case xcm.Ed255:
		return NewEd25519Signer(seed)
	default:
		return nil, fmt.Errorf("unsupported signature type for substrate: %s", signatureType)
	}
}

type Ed25519Signer struct {
	key ed25519.PrivateKey
}

var _ xcm.Signer = &Ed25519Signer{}

func NewEd25519Signer(seed string) (*Ed25519Signer, error) {
	seedBytes, err := decodeSeed(seed)
	if err != nil {
		return nil, err
	}
	return &Ed25519Signer{key: ed25519.NewKeyFromSeed(seedBytes)}, nil
}

func (signer *Ed25519Signer) SignatureType() xcm.SignatureType {
	return xcm.Ed255
}

func (signer *Ed25519Signer) PublicKey() []byte {
	return signer.key.Public().(ed25519.PublicKey)
}

func (signer *Ed25519Signer) Sign(payload []byte) ([]byte, error) {
	return ed25519.Sign(signer.key, payload), nil
}

type Sr25519Signer struct {
	key *sr25519.SecretKey
}

var _ xcm.Signer = &Sr25519Signer{}

func NewSr25519Signer(seed string) (*Sr25519Signer, error) {
	seedBytes, err := decodeSeed(seed)
	if err != nil {
		return nil, err
	}
	secret := [32]byte{}
	copy(secret[:], seedBytes)
	ms, err := sr25519.NewMiniSecretKeyFromRaw(secret)
	if err != nil {
		return nil, err
	}
	return &Sr25519Signer{key: ms.ExpandEd25519()}, nil
}

func signingContext(msg []byte) *merlin.Transcript {
	return sr25519.NewSigningContext([]byte("substrate"), msg)
}

func (signer *Sr25519Signer) SignatureType() xcm.SignatureType {
	return xcm.Sr25519
}

func (signer *Sr25519Signer) PublicKey() []byte {
	public, err := signer.key.Public()
	if err != nil {
		return nil
	}
	encoded := public.Encode()
	return encoded[:]
}

func (signer *Sr25519Signer) Sign(payload []byte) ([]byte, error) {
	sig, err := signer.key.Sign(signingContext(payload))
	if err != nil {
		return nil, err
	}
	encoded := sig.Encode()
	return encoded[:], nil
}
