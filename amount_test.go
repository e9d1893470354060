package xcm_test

import (
	"encoding/json"

	. "github.com/cordialsys/xcm"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

func (s *XcmTestSuite) TestNewAmountBlockchainFromUint64() {
	require := s.Require()
	amount := NewAmountBlockchainFromUint64(123)
	require.Equal(uint64(123), amount.Uint64())
	require.Equal("123", amount.String())
}

func (s *XcmTestSuite) TestAmountHumanReadable() {
	require := s.Require()
	amountDec, _ := decimal.NewFromString("10.3")
	amount := AmountHumanReadable(amountDec)
	require.Equal("10.3", amount.String())
}

func (s *XcmTestSuite) TestNewAmountHumanReadableFromStr() {
	require := s.Require()
	amount, err := NewAmountHumanReadableFromStr("10.3")
	require.NoError(err)
	require.Equal("10.3", amount.String())

	amount, err = NewAmountHumanReadableFromStr("0")
	require.NoError(err)
	require.Equal("0", amount.String())

	amount, err = NewAmountHumanReadableFromStr("")
	require.Error(err)
	require.Equal("0", amount.String())

	amount, err = NewAmountHumanReadableFromStr("invalid")
	require.Error(err)
	require.Equal("0", amount.String())
}

func (s *XcmTestSuite) TestNewBlockchainAmountStr() {
	require := s.Require()
	amount := NewAmountBlockchainFromStr("10")
	require.EqualValues(10, amount.Uint64())

	amount = NewAmountBlockchainFromStr("10.1")
	require.EqualValues(0, amount.Uint64())

	amount = NewAmountBlockchainFromStr("0x10")
	require.EqualValues(16, amount.Uint64())
}

func (s *XcmTestSuite) TestAmountDecimals() {
	require := s.Require()
	human, err := NewAmountHumanReadableFromStr("1.5")
	require.NoError(err)
	planck := human.ToBlockchain(10)
	require.Equal("15000000000", planck.String())
	require.Equal("1.5", planck.ToHuman(10).String())
}

func (s *XcmTestSuite) TestAmountArithmetic() {
	require := s.Require()
	a := NewAmountBlockchainFromUint64(100)
	b := NewAmountBlockchainFromUint64(30)
	sum := a.Add(&b)
	diff := a.Sub(&b)
	require.Equal("130", sum.String())
	require.Equal("70", diff.String())
	require.Equal(1, a.Cmp(&b))
	zero := NewAmountBlockchainFromUint64(0)
	require.True(zero.IsZero())
	require.Equal(0, zero.Sign())
}

func (s *XcmTestSuite) TestApplySlippage() {
	require := s.Require()
	amount := NewAmountBlockchainFromUint64(1000)

	for _, v := range []struct {
		pct    string
		result string
		err    string
	}{
		{pct: "1", result: "990"},
		{pct: "0", result: "1000"},
		{pct: "0.55", result: "994"},
		{pct: "100", result: "0"},
		{pct: "101", err: "between 0 and 100"},
		{pct: "-1", err: "between 0 and 100"},
		{pct: "abc", err: "invalid slippage"},
	} {
		reduced, err := amount.ApplySlippage(v.pct)
		if v.err != "" {
			require.ErrorContains(err, v.err, v.pct)
			continue
		}
		require.NoError(err, v.pct)
		require.Equal(v.result, reduced.String(), v.pct)
	}
}

func (s *XcmTestSuite) TestAmountEncoding() {
	require := s.Require()
	type wrapper struct {
		Amount AmountBlockchain    `json:"amount"`
		Human  AmountHumanReadable `json:"human" yaml:"human"`
	}
	var w wrapper
	err := json.Unmarshal([]byte(`{"amount":"0x20","human":"1.25"}`), &w)
	require.NoError(err)
	require.EqualValues(32, w.Amount.Uint64())
	require.Equal("1.25", w.Human.String())

	bz, err := json.Marshal(w)
	require.NoError(err)
	require.JSONEq(`{"amount":"32","human":"1.25"}`, string(bz))

	err = json.Unmarshal([]byte(`{"amount":"nope"}`), &w)
	require.Error(err)

	var y struct {
		Human AmountHumanReadable `yaml:"human"`
	}
	require.NoError(yaml.Unmarshal([]byte("human: \"2.5\"\n"), &y))
	require.Equal("2.5", y.Human.String())
	require.Error(yaml.Unmarshal([]byte("human: abc\n"), &y))
}
