package xcm_test

import (
	"encoding/hex"

	. "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/errors"
	"github.com/cordialsys/xcm/testutil"
)

func (s *XcmTestSuite) TestAccountID32() {
	require := s.Require()
	id, err := AccountID32(testutil.Alice)
	require.NoError(err)
	require.Equal(testutil.AliceHex, "0x"+hex.EncodeToString(id[:]))

	id, err = AccountID32(Address(testutil.AliceHex))
	require.NoError(err)
	require.Equal(testutil.AliceHex, "0x"+hex.EncodeToString(id[:]))

	_, err = AccountID32("abc")
	require.Error(err)
	require.True(errors.Is(err, errors.InvalidAddressFormat))
}

func (s *XcmTestSuite) TestAccountKey20() {
	require := s.Require()
	require.True(IsEthereumAddress(testutil.EvmAlice))
	require.False(IsEthereumAddress(testutil.Alice))

	key, err := AccountKey20(testutil.EvmAlice)
	require.NoError(err)
	require.Equal("f24ff3a9cf04c71dbc94d0b566f7a27b94566cac", hex.EncodeToString(key[:]))

	_, err = AccountKey20(testutil.Alice)
	require.Error(err)
}
