package xcm

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// AmountBlockchain is a big integer amount as the chain expects it in a call.
type AmountBlockchain big.Int

// AmountHumanReadable is a decimal amount as a human expects it for readability.
type AmountHumanReadable decimal.Decimal

func (amount AmountBlockchain) String() string {
	bigInt := big.Int(amount)
	return bigInt.String()
}

// Int converts an AmountBlockchain into *big.Int
func (amount AmountBlockchain) Int() *big.Int {
	bigInt := big.Int(amount)
	return &bigInt
}

func (amount AmountBlockchain) Sign() int {
	bigInt := big.Int(amount)
	return bigInt.Sign()
}

// Uint64 converts an AmountBlockchain into uint64
func (amount AmountBlockchain) Uint64() uint64 {
	bigInt := big.Int(amount)
	return bigInt.Uint64()
}

// Use the underlying big.Int.Cmp()
func (amount *AmountBlockchain) Cmp(other *AmountBlockchain) int {
	return amount.Int().Cmp(other.Int())
}

// Use the underlying big.Int.Add()
func (amount *AmountBlockchain) Add(x *AmountBlockchain) AmountBlockchain {
	sum := new(big.Int)
	sum.Set((*big.Int)(amount))
	return AmountBlockchain(*sum.Add(sum, x.Int()))
}

// Use the underlying big.Int.Sub()
func (amount *AmountBlockchain) Sub(x *AmountBlockchain) AmountBlockchain {
	diff := new(big.Int)
	diff.Set((*big.Int)(amount))
	return AmountBlockchain(*diff.Sub(diff, x.Int()))
}

var zero = big.NewInt(0)

func (amount *AmountBlockchain) IsZero() bool {
	return amount.Int().Cmp(zero) == 0
}

func (amount *AmountBlockchain) ToHuman(decimals int32) AmountHumanReadable {
	dec := decimal.NewFromBigInt(amount.Int(), -decimals)
	return AmountHumanReadable(dec)
}

// NewAmountBlockchainFromUint64 creates a new AmountBlockchain from a uint64
func NewAmountBlockchainFromUint64(u64 uint64) AmountBlockchain {
	bigInt := new(big.Int).SetUint64(u64)
	return AmountBlockchain(*bigInt)
}

// NewAmountBlockchainFromStr creates a new AmountBlockchain from a string
func NewAmountBlockchainFromStr(str string) AmountBlockchain {
	var ok bool
	var bigInt *big.Int
	bigInt, ok = new(big.Int).SetString(str, 0)
	if !ok {
		return NewAmountBlockchainFromUint64(0)
	}
	return AmountBlockchain(*bigInt)
}

// NewAmountHumanReadableFromStr creates a new AmountHumanReadable from a string
func NewAmountHumanReadableFromStr(str string) (AmountHumanReadable, error) {
	decimal, err := decimal.NewFromString(str)
	return AmountHumanReadable(decimal), err
}

func (amount AmountHumanReadable) Decimal() decimal.Decimal {
	return decimal.Decimal(amount)
}

func (amount AmountHumanReadable) ToBlockchain(decimals int32) AmountBlockchain {
	factor := decimal.NewFromInt32(10).Pow(decimal.NewFromInt32(decimals))
	raised := ((decimal.Decimal)(amount)).Mul(factor)
	return AmountBlockchain(*raised.BigInt())
}

func (amount AmountHumanReadable) String() string {
	return decimal.Decimal(amount).String()
}

// ApplySlippage reduces the amount by the given percentage, e.g. "1" for 1%.
func (amount AmountBlockchain) ApplySlippage(slippagePct string) (AmountBlockchain, error) {
	pct, err := decimal.NewFromString(slippagePct)
	if err != nil {
		return AmountBlockchain{}, fmt.Errorf("invalid slippage percentage %q: %v", slippagePct, err)
	}
	if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return AmountBlockchain{}, fmt.Errorf("slippage percentage must be between 0 and 100, got %s", slippagePct)
	}
	remaining := decimal.NewFromInt(100).Sub(pct).Div(decimal.NewFromInt(100))
	reduced := decimal.NewFromBigInt(amount.Int(), 0).Mul(remaining).Floor()
	return AmountBlockchain(*reduced.BigInt()), nil
}

var _ json.Marshaler = AmountHumanReadable{}
var _ json.Unmarshaler = &AmountHumanReadable{}
var _ yaml.Unmarshaler = &AmountHumanReadable{}
var _ yaml.Marshaler = AmountHumanReadable{}

func (b AmountHumanReadable) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

func (b *AmountHumanReadable) UnmarshalYAML(node *yaml.Node) error {
	value := node.Value
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "\"")
	value = strings.TrimSuffix(value, "\"")
	dec, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("invalid decimal amount: %v", err)
	}
	*b = AmountHumanReadable(dec)
	return nil
}

func (b AmountHumanReadable) MarshalJSON() ([]byte, error) {
	return []byte("\"" + b.String() + "\""), nil
}

func (b *AmountHumanReadable) UnmarshalJSON(p []byte) error {
	if string(p) == "null" {
		return nil
	}
	str := strings.Trim(string(p), "\"")
	decimal, err := decimal.NewFromString(str)
	if err != nil {
		return err
	}
	*b = AmountHumanReadable(decimal)
	return nil
}

var _ json.Marshaler = AmountBlockchain{}
var _ json.Unmarshaler = &AmountBlockchain{}

func (b AmountBlockchain) MarshalJSON() ([]byte, error) {
	return []byte("\"" + b.String() + "\""), nil
}

func (b *AmountBlockchain) UnmarshalJSON(p []byte) error {
	if string(p) == "null" {
		return nil
	}
	str := strings.Trim(string(p), "\"")
	var z big.Int
	_, ok := z.SetString(str, 0)
	if !ok {
		return fmt.Errorf("not a valid big integer: %s", p)
	}
	*b = AmountBlockchain(z)
	return nil
}
