package address_test

import (
	"encoding/hex"
	"testing"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/chain/substrate/address"
	"github.com/cordialsys/xcm/testutil"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	require := require.New(t)
	bytes, _ := hex.DecodeString("192c3c7e5789b461fbf1c7f614ba5eed0b22efc507cda60a5e7fda8e046bcdce")
	addr, err := address.Encode(bytes, address.PolkadotPrefix)
	require.NoError(err)
	require.Equal(xcm.Address("1a1LcBX6hGPKg5aQ6DXZpAHCCzWjckhea4sz3P1PvL3oc4F"), addr)

	addr, err = address.Encode(testutil.FromHex(testutil.AliceHex), address.GenericPrefix)
	require.NoError(err)
	require.Equal(testutil.Alice, addr)
}

func TestEncodeErr(t *testing.T) {
	require := require.New(t)
	addr, err := address.Encode([]byte{1, 2, 3}, address.PolkadotPrefix)
	require.Equal(xcm.Address(""), addr)
	require.ErrorContains(err, "invalid public key")
}

func TestReencode(t *testing.T) {
	require := require.New(t)
	addr, err := address.Reencode(testutil.Alice, xcm.Hydration)
	require.NoError(err)
	require.Equal(xcm.Address("15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5"), addr)

	back, err := address.Reencode(addr, xcm.Unique)
	require.NoError(err)
	require.Equal(addr, back)

	_, err = address.Reencode("abc", xcm.Polkadot)
	require.ErrorContains(err, "too short")
}

func TestPrefix(t *testing.T) {
	require := require.New(t)
	require.Equal(address.PolkadotPrefix, address.Prefix(xcm.Acala))
	require.Equal(address.KusamaPrefix, address.Prefix(xcm.Karura))
	require.Equal(address.KusamaPrefix, address.Prefix(xcm.Kusama))
}

func TestDecode(t *testing.T) {
	require := require.New(t)
	id, err := address.Decode(testutil.Alice)
	require.NoError(err)
	require.Equal(testutil.FromHex(testutil.AliceHex), id.ToBytes())

	multi, err := address.DecodeMulti(testutil.Alice)
	require.NoError(err)
	require.True(multi.IsID)
	require.Equal(testutil.FromHex(testutil.AliceHex), multi.AsID.ToBytes())
}
