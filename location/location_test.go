package location_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/errors"
	"github.com/cordialsys/xcm/location"
	"github.com/stretchr/testify/require"
)

const alice = xcm.Address("5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY")
const aliceHex = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
const evmAddress = xcm.Address("0x1234567890123456789012345678901234567890")

func paraID(id uint32) *uint32 {
	return &id
}

func mustJSON(t *testing.T, v any) string {
	bz, err := json.Marshal(v)
	require.NoError(t, err)
	return string(bz)
}

func TestEncodeAddress(t *testing.T) {
	vectors := []struct {
		name      string
		version   xcm.Version
		scenario  xcm.Scenario
		pallet    xcm.Pallet
		address   xcm.Address
		paraID    *uint32
		expected  string
		errStatus errors.Status
	}{
		{
			name:     "para to relay with message pallet",
			version:  xcm.V3,
			scenario: xcm.ParaToRelay,
			pallet:   xcm.PolkadotXcm,
			address:  alice,
			expected: `{"V3":{"parents":0,"interior":{"X1":{"AccountId32":{"id":"` + aliceHex + `"}}}}}`,
		},
		{
			name:     "para to relay with asset pallet",
			version:  xcm.V3,
			scenario: xcm.ParaToRelay,
			pallet:   xcm.XTokens,
			address:  alice,
			expected: `{"V3":{"parents":1,"interior":{"X1":{"AccountId32":{"id":"` + aliceHex + `"}}}}}`,
		},
		{
			name:     "para to relay v1 carries network",
			version:  xcm.V1,
			scenario: xcm.ParaToRelay,
			pallet:   xcm.XTokens,
			address:  alice,
			expected: `{"V1":{"parents":1,"interior":{"X1":{"AccountId32":{"network":"any","id":"` + aliceHex + `"}}}}}`,
		},
		{
			name:     "para to para with asset pallet",
			version:  xcm.V3,
			scenario: xcm.ParaToPara,
			pallet:   xcm.XTokens,
			address:  alice,
			paraID:   paraID(2000),
			expected: `{"V3":{"parents":1,"interior":{"X2":[{"Parachain":2000},{"AccountId32":{"id":"` + aliceHex + `"}}]}}}`,
		},
		{
			name:     "para to para with asset pallet and evm recipient",
			version:  xcm.V1,
			scenario: xcm.ParaToPara,
			pallet:   xcm.XTokens,
			address:  evmAddress,
			paraID:   paraID(2004),
			expected: `{"V1":{"parents":1,"interior":{"X2":[{"Parachain":2004},{"AccountKey20":{"network":"any","key":"0x1234567890123456789012345678901234567890"}}]}}}`,
		},
		{
			name:     "para to para with message pallet",
			version:  xcm.V3,
			scenario: xcm.ParaToPara,
			pallet:   xcm.PolkadotXcm,
			address:  alice,
			expected: `{"V3":{"parents":0,"interior":{"X1":{"AccountId32":{"id":"` + aliceHex + `"}}}}}`,
		},
		{
			name:     "relay to para v4",
			version:  xcm.V4,
			scenario: xcm.RelayToPara,
			pallet:   xcm.XcmPallet,
			address:  evmAddress,
			expected: `{"V4":{"parents":0,"interior":{"X1":[{"AccountKey20":{"key":"0x1234567890123456789012345678901234567890"}}]}}}`,
		},
		{
			name:      "relay recipient must be 32 bytes",
			version:   xcm.V3,
			scenario:  xcm.ParaToRelay,
			pallet:    xcm.PolkadotXcm,
			address:   evmAddress,
			errStatus: errors.InvalidAddressFormat,
		},
		{
			name:      "invalid address",
			version:   xcm.V3,
			scenario:  xcm.ParaToPara,
			pallet:    xcm.PolkadotXcm,
			address:   "not-an-address",
			errStatus: errors.InvalidAddressFormat,
		},
	}
	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			descriptor, err := location.EncodeAddress(v.version, v.scenario, v.pallet, location.AddressRecipient(v.address), v.paraID)
			if v.errStatus != "" {
				require.Error(t, err)
				require.True(t, errors.Is(err, v.errStatus), err.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, v.version, descriptor.Version)
			require.JSONEq(t, v.expected, mustJSON(t, descriptor))
		})
	}
}

func TestEncodeAddressIsIdempotent(t *testing.T) {
	for _, version := range xcm.VersionList {
		first, err := location.EncodeAddress(version, xcm.ParaToPara, xcm.XTokens, location.AddressRecipient(alice), paraID(2034))
		require.NoError(t, err)
		second, err := location.EncodeAddress(version, xcm.ParaToPara, xcm.XTokens, location.AddressRecipient(alice), paraID(2034))
		require.NoError(t, err)
		require.Equal(t, first, second)
		require.Equal(t, mustJSON(t, first), mustJSON(t, second))
	}
}

func TestVersionLaw(t *testing.T) {
	scenarios := []xcm.Scenario{xcm.ParaToRelay, xcm.ParaToPara, xcm.RelayToPara}
	pallets := []xcm.Pallet{xcm.PolkadotXcm, xcm.XTokens, xcm.XcmPallet}
	for _, scenario := range scenarios {
		for _, pallet := range pallets {
			byVersion := map[xcm.Version]location.Versioned{}
			for _, version := range xcm.VersionList {
				descriptor, err := location.EncodeAddress(version, scenario, pallet, location.AddressRecipient(alice), paraID(2000))
				require.NoError(t, err)
				byVersion[version] = descriptor

				for _, j := range descriptor.Location.Interior {
					if !j.IsAccount() {
						continue
					}
					if version == xcm.V1 {
						require.Equal(t, location.NetworkAny, j.Network)
					} else {
						require.Equal(t, location.NetworkNone, j.Network)
					}
				}
			}
			// v4 differs from v3 only in the wrapping of the interior
			require.Equal(t, byVersion[xcm.V3].Location, byVersion[xcm.V4].Location)
			require.Equal(t, byVersion[xcm.V2].Location, byVersion[xcm.V3].Location)
		}
	}
}

func TestEncodeAddressPassesLocationThrough(t *testing.T) {
	custom := location.New(1, location.Parachain(1000), location.GeneralIndex(1984))
	descriptor, err := location.EncodeAddress(xcm.V3, xcm.ParaToPara, xcm.PolkadotXcm, location.LocationRecipient(custom), nil)
	require.NoError(t, err)
	require.Equal(t, location.NewVersioned(xcm.V3, custom), descriptor)
	require.JSONEq(t,
		`{"V3":{"parents":1,"interior":{"X2":[{"Parachain":1000},{"GeneralIndex":1984}]}}}`,
		mustJSON(t, descriptor),
	)
}

func TestAssetPalletParaToParaRequiresParaID(t *testing.T) {
	_, err := location.EncodeAddress(xcm.V3, xcm.ParaToPara, xcm.XTokens, location.AddressRecipient(alice), nil)
	require.ErrorContains(t, err, "parachain id is required")
}

func TestDestinationHeader(t *testing.T) {
	require.JSONEq(t, `{"V3":{"parents":1,"interior":"Here"}}`,
		mustJSON(t, location.DestinationHeader(xcm.V3, xcm.ParaToRelay, 0)))
	require.JSONEq(t, `{"V3":{"parents":1,"interior":{"X1":{"Parachain":2000}}}}`,
		mustJSON(t, location.DestinationHeader(xcm.V3, xcm.ParaToPara, 2000)))
	require.JSONEq(t, `{"V4":{"parents":0,"interior":{"X1":[{"Parachain":2000}]}}}`,
		mustJSON(t, location.DestinationHeader(xcm.V4, xcm.RelayToPara, 2000)))
}

func TestAssetsJSON(t *testing.T) {
	amount := xcm.NewAmountBlockchainFromUint64(1000)
	asset := location.NewAsset(location.RelayNativeAsset(xcm.ParaToRelay), amount)

	require.JSONEq(t,
		`{"V3":[{"id":{"Concrete":{"parents":1,"interior":"Here"}},"fun":{"Fungible":"1000"}}]}`,
		mustJSON(t, location.NewAssets(xcm.V3, asset)),
	)
	require.JSONEq(t,
		`{"V4":[{"id":{"parents":1,"interior":"Here"},"fun":{"Fungible":"1000"}}]}`,
		mustJSON(t, location.NewAssets(xcm.V4, asset)),
	)
}

func TestWeightLimitJSON(t *testing.T) {
	require.Equal(t, `"Unlimited"`, mustJSON(t, location.Unlimited))
	require.JSONEq(t, `{"Limited":{"refTime":100,"proofSize":20}}`, mustJSON(t, location.Limited(100, 20)))
}

func TestInvalidLocation(t *testing.T) {
	deep := location.New(3, location.Parachain(1))
	_, err := json.Marshal(location.NewVersioned(xcm.V3, deep))
	require.Error(t, err)

	tooLong := location.New(1, location.Parachain(1), location.PalletInstance(50), location.GeneralIndex(1))
	_, err = codec.Encode(location.NewVersioned(xcm.V3, tooLong))
	require.Error(t, err)
}

func TestEncodeScale(t *testing.T) {
	descriptor, err := location.EncodeAddress(xcm.V3, xcm.ParaToPara, xcm.XTokens, location.AddressRecipient(alice), paraID(2000))
	require.NoError(t, err)
	bz, err := codec.Encode(descriptor)
	require.NoError(t, err)
	// V3, parents=1, X2, Parachain(compact 2000), AccountId32 { network: None, id }
	require.Equal(t, "030102"+"00411f"+"0100"+aliceHex[2:], hex.EncodeToString(bz))

	// V2 encodes NetworkId::Any in the same position
	v2, err := location.EncodeAddress(xcm.V2, xcm.ParaToRelay, xcm.PolkadotXcm, location.AddressRecipient(alice), nil)
	require.NoError(t, err)
	bz, err = codec.Encode(v2)
	require.NoError(t, err)
	require.Equal(t, "010001"+"0100"+aliceHex[2:], hex.EncodeToString(bz))

	assets := location.NewAssets(xcm.V3, location.NewAsset(location.Here(1), xcm.NewAmountBlockchainFromUint64(1)))
	bz, err = codec.Encode(assets)
	require.NoError(t, err)
	// V3, one asset, Concrete, parents=1, Here, Fungible(compact 1)
	require.Equal(t, "0304"+"00"+"0100"+"00"+"04", hex.EncodeToString(bz))

	bz, err = codec.Encode(location.Limited(1, 2))
	require.NoError(t, err)
	require.Equal(t, "010408", hex.EncodeToString(bz))
}
