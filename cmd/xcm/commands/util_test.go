package commands

import (
	"testing"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/chain/substrate/address"
	"github.com/cordialsys/xcm/config"
	"github.com/cordialsys/xcm/errors"
	"github.com/cordialsys/xcm/router"
	"github.com/cordialsys/xcm/testutil"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAddress(t *testing.T) {
	require := require.New(t)

	polkadot, err := normalizeAddress(xcm.Hydration, string(testutil.Alice))
	require.NoError(err)
	require.Equal(xcm.Address("15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5"), polkadot)

	// rendering for another network keeps the account
	kusama, err := normalizeAddress(xcm.Karura, string(polkadot))
	require.NoError(err)
	require.NotEqual(polkadot, kusama)
	back, err := normalizeAddress(xcm.Acala, string(kusama))
	require.NoError(err)
	require.Equal(polkadot, back)

	evm, err := normalizeAddress(xcm.Moonbeam, string(testutil.EvmAlice))
	require.NoError(err)
	require.Equal(testutil.EvmAlice, evm)

	_, err = normalizeAddress(xcm.Acala, "abc")
	require.True(errors.Is(err, errors.InvalidAddressFormat))
}

func TestRouteOptions(t *testing.T) {
	require := require.New(t)
	cfg := config.Default()

	opts, err := routeOptions(cfg, routeFlags{
		typ:        string(router.FromEth),
		injector:   string(testutil.EvmAlice),
		recipient:  string(testutil.Bob),
		hubAddress: string(testutil.Bob),
		ethAddress: string(testutil.EvmAlice),
	}, []string{"Ethereum", "AssetHubPolkadot", "WETH", "WETH", "1"})
	require.NoError(err)
	require.Equal(router.FromEth, opts.Type)
	require.Equal(xcm.Ethereum, opts.From)
	// priced with the decimals of the hub's bridged asset
	require.Equal("1000000000000000000", opts.Amount.String())
	require.Equal(testutil.EvmAlice, opts.EvmInjectorAddress)
	require.Empty(opts.InjectorAddress)
	hubBob, err := address.Reencode(testutil.Bob, xcm.AssetHubPolkadot)
	require.NoError(err)
	require.Equal(hubBob, opts.AssetHubAddress)

	_, err = routeOptions(cfg, routeFlags{typ: string(router.FullTransfer), ethAddress: "bob"},
		[]string{"Ethereum", "AssetHubPolkadot", "WETH", "WETH", "1"})
	require.ErrorContains(err, "invalid --eth-address")

	_, err = routeOptions(cfg, routeFlags{typ: string(router.FullTransfer), recipient: "abc"},
		[]string{"Astar", "Hydration", "DOT", "USDT", "1"})
	require.True(errors.Is(err, errors.InvalidAddressFormat))
}
