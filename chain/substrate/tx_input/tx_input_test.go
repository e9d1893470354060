package tx_input_test

import (
	"testing"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/chain/substrate/tx_input"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCallName(t *testing.T) {
	vectors := []struct {
		module   string
		section  string
		expected string
	}{
		{"polkadotXcm", "limitedReserveTransferAssets", "PolkadotXcm.limited_reserve_transfer_assets"},
		{"xTokens", "transferMultiasset", "XTokens.transfer_multiasset"},
		{"xcmPallet", "limitedTeleportAssets", "XcmPallet.limited_teleport_assets"},
		{"utility", "batchAll", "Utility.batch_all"},
		{"sudo", "sudo", "Sudo.sudo"},
		{"parasSudoWrapper", "sudoEstablishHrmpChannel", "ParasSudoWrapper.sudo_establish_hrmp_channel"},
		{"hrmp", "forceCleanHrmp", "Hrmp.force_clean_hrmp"},
	}
	for _, v := range vectors {
		require.Equal(t, v.expected, tx_input.CallName(v.module, v.section))
	}
}

func TestFindCallIndex(t *testing.T) {
	require := require.New(t)
	meta := tx_input.Metadata{
		Calls: []*tx_input.CallMeta{
			{Name: "XTokens.transfer", SectionIndex: 54, MethodIndex: 0},
			{Name: "Utility.batch_all", SectionIndex: 3, MethodIndex: 2},
		},
	}
	index, err := meta.FindCallIndex("Utility.batch_all")
	require.NoError(err)
	require.EqualValues(3, index.SectionIndex)
	require.EqualValues(2, index.MethodIndex)

	_, err = meta.FindCallIndex("Balances.transfer_keep_alive")
	require.ErrorContains(err, "unsupported substrate method")
}

func TestTip(t *testing.T) {
	require := require.New(t)
	input := tx_input.NewTxInput()
	input.Tip = 100
	input.MultiplyTip(decimal.NewFromFloat(1.5))
	require.EqualValues(150, input.Tip)

	input.CapTip(xcm.NewAmountBlockchainFromUint64(120))
	require.EqualValues(120, input.Tip)

	// zero is no cap
	input.CapTip(xcm.NewAmountBlockchainFromUint64(0))
	require.EqualValues(120, input.Tip)
}

func TestCreatePayload(t *testing.T) {
	require := require.New(t)
	meta := tx_input.Metadata{}
	payload, err := tx_input.CreatePayload(&meta, []byte{1, 2, 3})
	require.NoError(err)
	require.EqualValues([]byte{1, 2, 3}, payload.EncodedCall)
}
