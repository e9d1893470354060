package tx_input

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	xcm "github.com/cordialsys/xcm"
	"github.com/shopspring/decimal"
)

// TxInput is the chain state needed to sign an extrinsic
type TxInput struct {
	Meta          Metadata             `json:"meta,omitempty"`
	GenesisHash   types.Hash           `json:"genesis_hash,omitempty"`
	CurHash       types.Hash           `json:"current_hash,omitempty"`
	Rv            types.RuntimeVersion `json:"runtime_version,omitempty"`
	CurrentHeight uint64               `json:"current_height,omitempty"`
	Tip           uint64               `json:"tip,omitempty"`
	Nonce         uint64               `json:"account_nonce,omitempty"`
}

func NewTxInput() *TxInput {
	return &TxInput{}
}

// MultiplyTip scales the tip, e.g. by 1.5 to prioritize
func (input *TxInput) MultiplyTip(multiplier decimal.Decimal) {
	multipliedTip := multiplier.Mul(decimal.NewFromInt(int64(input.Tip)))
	input.Tip = multipliedTip.BigInt().Uint64()
}

// CapTip limits the tip to at most max
func (input *TxInput) CapTip(max xcm.AmountBlockchain) {
	if max.Sign() > 0 && input.Tip > max.Uint64() {
		input.Tip = max.Uint64()
	}
}
