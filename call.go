package xcm

import "context"

// SerializedCall is a transport-agnostic description of a pallet call.
type SerializedCall struct {
	Module     string `json:"module"`
	Section    string `json:"section"`
	Parameters []any  `json:"parameters"`
}

// Call is a chain-bound call that can be signed and submitted.
type Call interface {
	Network() Network
	Module() string
	Section() string
	Parameters() []any
	// The descriptor this call was built from
	Serialized() SerializedCall
	// SCALE encoded call (call index followed by arguments)
	Bytes() ([]byte, error)
}

// CallBuilder constructs chain-bound calls from descriptors; implemented by a live connection.
type CallBuilder interface {
	NewCall(ctx context.Context, call SerializedCall) (Call, error)
}

type TxHash string

type SignatureType string

const (
	Sr25519    = SignatureType("sr25519")
	Ed255      = SignatureType("ed255")
	K256Keccak = SignatureType("k256-keccak")
)

// Signer signs call payloads for an account.
type Signer interface {
	SignatureType() SignatureType
	PublicKey() []byte
	Sign(payload []byte) ([]byte, error)
}
