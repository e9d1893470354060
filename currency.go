package xcm

import "strings"

// Currency selects the asset to transfer, either by symbol or by on-chain asset id.
type Currency struct {
	Symbol string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	ID     string `json:"id,omitempty" yaml:"id,omitempty"`
}

func CurrencySymbol(symbol string) Currency {
	return Currency{Symbol: symbol}
}

func CurrencyID(id string) Currency {
	return Currency{ID: id}
}

func (c Currency) IsEmpty() bool {
	return c.Symbol == "" && c.ID == ""
}

func (c Currency) String() string {
	if c.Symbol != "" {
		return c.Symbol
	}
	return c.ID
}

func (c Currency) Is(symbol string) bool {
	return c.Symbol != "" && strings.EqualFold(c.Symbol, symbol)
}
