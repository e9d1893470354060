package ethereum

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	xcm "github.com/cordialsys/xcm"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer signs 32 byte digests with a secp256k1 key
type Signer struct {
	key *ecdsa.PrivateKey
}

var _ xcm.Signer = &Signer{}

func NewSigner(privateKey string) (*Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid ethereum private key: %w", err)
	}
	return &Signer{key: key}, nil
}

func (s *Signer) SignatureType() xcm.SignatureType {
	return xcm.K256Keccak
}

// PublicKey is the 65 byte uncompressed public key
func (s *Signer) PublicKey() []byte {
	return crypto.FromECDSAPub(&s.key.PublicKey)
}

func (s *Signer) Sign(digest []byte) ([]byte, error) {
	return crypto.Sign(digest, s.key)
}

func (s *Signer) Address() xcm.Address {
	return xcm.Address(crypto.PubkeyToAddress(s.key.PublicKey).Hex())
}

// AddressOf derives the account of any signer carrying an uncompressed secp256k1 key
func AddressOf(signer xcm.Signer) (common.Address, error) {
	if signer.SignatureType() != xcm.K256Keccak {
		return common.Address{}, fmt.Errorf("unsupported signature type for ethereum: %s", signer.SignatureType())
	}
	pub, err := crypto.UnmarshalPubkey(signer.PublicKey())
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid ethereum public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
