package xcm_test

import (
	"encoding/json"

	. "github.com/cordialsys/xcm"
)

func (s *XcmTestSuite) TestParseNetwork() {
	require := s.Require()
	for _, n := range NetworkList {
		parsed, err := ParseNetwork(string(n))
		require.NoError(err)
		require.Equal(n, parsed)
		require.True(parsed.Valid())
	}
	parsed, err := ParseNetwork(" assethubpolkadot ")
	require.NoError(err)
	require.Equal(AssetHubPolkadot, parsed)

	_, err = ParseNetwork("Nowhere")
	require.ErrorContains(err, "unknown network")
	require.False(Network("Nowhere").Valid())
}

func (s *XcmTestSuite) TestEcosystem() {
	require := s.Require()
	require.Equal(EcosystemKusama, Karura.Ecosystem())
	require.Equal(Kusama, AssetHubKusama.RelayChain())
	require.Equal("KSM", Karura.RelaySymbol())
	require.Equal(EcosystemPolkadot, Hydration.Ecosystem())
	require.Equal(Polkadot, Acala.RelayChain())
	require.Equal("DOT", Polkadot.RelaySymbol())
	require.Equal(EcosystemEthereum, Ethereum.Ecosystem())
	require.True(Ethereum.IsExternal())
	require.False(Acala.IsExternal())
	require.True(Kusama.IsRelayChain())
	require.False(AssetHubPolkadot.IsRelayChain())
}

func (s *XcmTestSuite) TestDetermineScenario() {
	require := s.Require()
	require.Equal(RelayToPara, DetermineScenario(Polkadot, Acala))
	require.Equal(ParaToRelay, DetermineScenario(Acala, Polkadot))
	require.Equal(ParaToPara, DetermineScenario(Acala, Hydration))
	require.Equal(RelayToPara, DetermineScenario(Kusama, Karura))
}

func (s *XcmTestSuite) TestVersion() {
	require := s.Require()
	v, err := ParseVersion("v3")
	require.NoError(err)
	require.Equal(V3, v)
	require.True(v.Valid())
	require.False(Version(0).Valid())
	require.False(Version(5).Valid())

	_, err = ParseVersion("V9")
	require.ErrorContains(err, "invalid xcm version")

	bz, err := json.Marshal(V4)
	require.NoError(err)
	require.Equal(`"V4"`, string(bz))

	var decoded Version
	require.NoError(json.Unmarshal([]byte(`"V2"`), &decoded))
	require.Equal(V2, decoded)
	require.Error(json.Unmarshal([]byte(`2`), &decoded))
}

func (s *XcmTestSuite) TestCurrency() {
	require := s.Require()
	dot := CurrencySymbol("DOT")
	require.True(dot.Is("dot"))
	require.False(dot.Is("KSM"))
	require.Equal("DOT", dot.String())
	require.False(dot.IsEmpty())

	id := CurrencyID("1984")
	require.False(id.Is("1984"))
	require.Equal("1984", id.String())
	require.True(Currency{}.IsEmpty())
}

func (s *XcmTestSuite) TestPallet() {
	require := s.Require()
	require.True(XTokens.UsesAssetSemantics())
	require.False(PolkadotXcm.UsesAssetSemantics())
	require.Equal("polkadotXcm", PolkadotXcm.Module())
	require.Equal("xTokens", XTokens.Module())
	require.Equal("xcmPallet", XcmPallet.Module())
}
