package substrate_test

import (
	"crypto/ed25519"
	"encoding/hex"

	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/chain/substrate"
	"github.com/cordialsys/xcm/chain/substrate/address"
)

func (s *SubstrateTestSuite) TestNewSigner() {
	require := s.Require()
	signer, err := substrate.NewSigner(xcm.Sr25519, "0x0931ee5849b18ce7699982d3222b6b861e28336462659e709f93e9d903986da7")
	require.NoError(err)
	require.Equal(xcm.Sr25519, signer.SignatureType())

	signer, err = substrate.NewSigner(xcm.Ed255, "0931ee5849b18ce7699982d3222b6b861e28336462659e709f93e9d903986da7")
	require.NoError(err)
	require.Equal(xcm.Ed255, signer.SignatureType())

	_, err = substrate.NewSigner(xcm.K256Keccak, "0931ee5849b18ce7699982d3222b6b861e28336462659e709f93e9d903986da7")
	require.ErrorContains(err, "unsupported signature type")

	_, err = substrate.NewSigner(xcm.Sr25519, "bottom drive obey lake curtain smoke basket hold race lonely fit walk")
	require.ErrorContains(err, "only raw seed is supported")

	_, err = substrate.NewSigner(xcm.Sr25519, "0x0931ee")
	require.ErrorContains(err, "expected private key seed to be 32 bytes")
}

func (s *SubstrateTestSuite) TestSr25519Sign() {
	// SR25519 signatures are nondeterministic
	require := s.Require()
	vectors := []struct {
		pri string
		msg string
	}{
		{
			"0931ee5849b18ce7699982d3222b6b861e28336462659e709f93e9d903986da7",
			"d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
		},
		{
			"a4cdb9eaaac309b8cf2974001cccd3c4557f1abfb51359ccbd1d6ab87352ebac",
			"a2eb8c0501e30bae0cf842d2bde8dec7386f6b7fc3981b8c57c9792bb94cf2dd",
		},
	}
	for _, v := range vectors {
		signer, err := substrate.NewSr25519Signer(v.pri)
		require.NoError(err)
		bytesMsg, _ := hex.DecodeString(v.msg)
		sig, err := signer.Sign(bytesMsg)
		require.NoError(err)
		require.Len(sig, 64)
		ok, err := signature.Verify(bytesMsg, sig, v.pri)
		require.NoError(err)
		require.True(ok)

		ok, err = signature.Verify(bytesMsg, sig, v.msg)
		require.NoError(err)
		require.False(ok)

		require.Len(signer.PublicKey(), 32)
	}
}

func (s *SubstrateTestSuite) TestEd25519Sign() {
	require := s.Require()
	signer, err := substrate.NewEd25519Signer("a4cdb9eaaac309b8cf2974001cccd3c4557f1abfb51359ccbd1d6ab87352ebac")
	require.NoError(err)
	msg := []byte("payload")
	sig, err := signer.Sign(msg)
	require.NoError(err)
	require.True(ed25519.Verify(signer.PublicKey(), msg, sig))

	addr, err := address.Encode(signer.PublicKey(), address.PolkadotPrefix)
	require.NoError(err)
	require.NotEmpty(addr)
}
