package substrate_test

import (
	"encoding/hex"
	"encoding/json"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/chain/substrate"
	"github.com/cordialsys/xcm/chain/substrate/tx_input"
	"github.com/cordialsys/xcm/param"
)

var testMeta = tx_input.Metadata{
	Calls: []*tx_input.CallMeta{
		{Name: "Hrmp.force_clean_hrmp", SectionIndex: 60, MethodIndex: 6},
		{Name: "Sudo.sudo", SectionIndex: 7, MethodIndex: 0},
		{Name: "Utility.batch_all", SectionIndex: 26, MethodIndex: 2},
	},
}

var forceClean = xcm.SerializedCall{
	Module:     "hrmp",
	Section:    "forceCleanHrmp",
	Parameters: []any{param.U32(2000), param.U32(0), param.U32(0)},
}

func (s *SubstrateTestSuite) TestNewCall() {
	require := s.Require()
	call, err := substrate.NewCall(xcm.Polkadot, forceClean, testMeta.FindCallIndex)
	require.NoError(err)
	require.Equal(xcm.Polkadot, call.Network())
	require.Equal("hrmp.forceCleanHrmp", call.String())

	bz, err := call.Bytes()
	require.NoError(err)
	require.Equal("3c06"+"d0070000"+"00000000"+"00000000", hex.EncodeToString(bz))

	raw := call.Raw()
	require.EqualValues(60, raw.CallIndex.SectionIndex)
	require.Equal("d00700000000000000000000", hex.EncodeToString(raw.Args))
}

func (s *SubstrateTestSuite) TestNewCallNested() {
	require := s.Require()
	sudo := xcm.SerializedCall{
		Module:     "sudo",
		Section:    "sudo",
		Parameters: []any{forceClean},
	}
	call, err := substrate.NewCall(xcm.Polkadot, sudo, testMeta.FindCallIndex)
	require.NoError(err)
	bz, err := call.Bytes()
	require.NoError(err)
	require.Equal("0700"+"3c06d00700000000000000000000", hex.EncodeToString(bz))

	// the descriptor is what gets serialized
	serialized, err := json.Marshal(call)
	require.NoError(err)
	require.JSONEq(`{"module":"sudo","section":"sudo","parameters":[{"module":"hrmp","section":"forceCleanHrmp","parameters":[2000,0,0]}]}`, string(serialized))
}

func (s *SubstrateTestSuite) TestNewCallBatch() {
	require := s.Require()
	inner, err := substrate.NewCall(xcm.Polkadot, forceClean, testMeta.FindCallIndex)
	require.NoError(err)
	batch := xcm.SerializedCall{
		Module:     "utility",
		Section:    "batchAll",
		Parameters: []any{param.Vec[xcm.Call]{inner, inner}},
	}
	call, err := substrate.NewCall(xcm.Polkadot, batch, testMeta.FindCallIndex)
	require.NoError(err)
	bz, err := call.Bytes()
	require.NoError(err)
	require.Equal("1a02"+"08"+"3c06d00700000000000000000000"+"3c06d00700000000000000000000", hex.EncodeToString(bz))
}

func (s *SubstrateTestSuite) TestNewCallUnsupported() {
	require := s.Require()
	_, err := substrate.NewCall(xcm.Polkadot, xcm.SerializedCall{Module: "xTokens", Section: "transfer"}, testMeta.FindCallIndex)
	require.ErrorContains(err, "unsupported substrate method: XTokens.transfer")

	nested := xcm.SerializedCall{Module: "sudo", Section: "sudo", Parameters: []any{
		xcm.SerializedCall{Module: "xTokens", Section: "transfer"},
	}}
	_, err = substrate.NewCall(xcm.Polkadot, nested, testMeta.FindCallIndex)
	require.ErrorContains(err, "Sudo.sudo: unsupported substrate method")
}
