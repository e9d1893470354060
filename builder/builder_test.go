package builder_test

import (
	"context"
	"fmt"
	"testing"

	xcm "github.com/cordialsys/xcm"
	"github.com/cordialsys/xcm/builder"
	"github.com/cordialsys/xcm/errors"
	"github.com/cordialsys/xcm/location"
	"github.com/cordialsys/xcm/param"
	"github.com/cordialsys/xcm/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func amount(u uint64) xcm.AmountBlockchain {
	return xcm.NewAmountBlockchainFromUint64(u)
}

func TestBuildSerializedCall(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	call, err := builder.New(nil).
		From(xcm.Acala).
		To(xcm.Hydration).
		Currency(xcm.CurrencySymbol("DOT")).
		Amount(amount(1000)).
		Address(testutil.Alice).
		BuildSerializedCall(ctx)
	require.NoError(err)
	require.Equal("xTokens", call.Module)
	require.Equal("transfer", call.Section)
	require.Len(call.Parameters, 4)

	call, err = builder.New(nil).
		From(xcm.AssetHubPolkadot).
		To(xcm.Astar).
		Currency(xcm.CurrencySymbol("USDT")).
		Amount(amount(5)).
		Address(testutil.Alice).
		XcmVersion(xcm.V4).
		BuildSerializedCall(ctx)
	require.NoError(err)
	require.Equal("polkadotXcm", call.Module)
	require.Equal("limitedReserveTransferAssets", call.Section)
	require.JSONEq(`{"V4":{"parents":1,"interior":{"X1":[{"Parachain":2006}]}}}`, testutil.MustJSON(call.Parameters[0]))
}

func TestBuildFromRelay(t *testing.T) {
	require := require.New(t)
	conn := testutil.NewMockedConnection(xcm.Polkadot)

	call, err := builder.New(conn).
		From(xcm.Polkadot).
		To(xcm.Hydration).
		Currency(xcm.CurrencySymbol("DOT")).
		Amount(amount(100)).
		Address(testutil.Alice).
		Build(context.Background())
	require.NoError(err)
	require.Equal(xcm.Polkadot, call.Network())
	require.Equal("xcmPallet", call.Module())
	require.Equal("limitedReserveTransferAssets", call.Section())
}

func TestBuildToDestinationParaID(t *testing.T) {
	require := require.New(t)
	call, err := builder.New(nil).
		From(xcm.Acala).
		To(xcm.Astar, 3000).
		Currency(xcm.CurrencySymbol("ACA")).
		Amount(amount(1)).
		Address(testutil.Alice).
		BuildSerializedCall(context.Background())
	require.NoError(err)
	require.Contains(testutil.MustJSON(call.Parameters[2]), `{"Parachain":3000}`)
}

func TestBuildBeneficiaryLocation(t *testing.T) {
	require := require.New(t)
	beneficiary := location.New(0, location.AccountKey20(location.NetworkNone, [20]byte{1}))
	call, err := builder.New(nil).
		From(xcm.AssetHubPolkadot).
		To(xcm.Moonbeam).
		Currency(xcm.CurrencySymbol("DOT")).
		Amount(amount(1)).
		Beneficiary(beneficiary).
		BuildSerializedCall(context.Background())
	require.NoError(err)
	require.Equal(location.NewVersioned(xcm.V3, beneficiary), call.Parameters[1])
}

func TestFeeAsset(t *testing.T) {
	require := require.New(t)
	call, err := builder.New(nil).
		From(xcm.AssetHubPolkadot).
		To(xcm.Hydration).
		FeeAsset(0).
		Amount(amount(10)).
		Address(testutil.Alice).
		BuildSerializedCall(context.Background())
	require.NoError(err)
	require.Equal(param.U32(0), call.Parameters[3])
	require.Contains(testutil.MustJSON(call.Parameters[2]), `{"parents":1,"interior":"Here"}`)

	_, err = builder.New(nil).
		From(xcm.AssetHubPolkadot).
		To(xcm.Hydration).
		Currency(xcm.CurrencySymbol("USDT")).
		FeeAsset(2).
		Amount(amount(10)).
		Address(testutil.Alice).
		BuildSerializedCall(context.Background())
	require.True(errors.Is(err, errors.InvalidCurrency), err.Error())
}

func TestBuildRequiresConnection(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	final := func(b *builder.GeneralBuilder) *builder.FinalBuilder {
		return b.From(xcm.Acala).To(xcm.Polkadot).Currency(xcm.CurrencySymbol("DOT")).Amount(amount(10)).Address(testutil.Alice)
	}

	_, err := final(builder.New(nil)).Build(ctx)
	require.True(errors.Is(err, errors.MissingConnection), err.Error())

	_, err = final(builder.New(testutil.NewMockedConnection(xcm.Hydration))).Build(ctx)
	require.True(errors.Is(err, errors.MissingConnection), err.Error())

	call, err := final(builder.New(testutil.NewMockedConnection(xcm.Acala))).Build(ctx)
	require.NoError(err)
	require.Equal(xcm.Acala, call.Network())
}

func TestBuildErrorsPropagate(t *testing.T) {
	require := require.New(t)
	_, err := builder.New(nil).
		From(xcm.Collectives).
		To(xcm.Acala).
		Currency(xcm.CurrencySymbol("DOT")).
		Amount(amount(10)).
		Address(testutil.Alice).
		BuildSerializedCall(context.Background())
	require.True(errors.Is(err, errors.ScenarioNotSupported), err.Error())
}

func TestUseKeepAlive(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	final := builder.New(nil).
		From(xcm.AssetHubPolkadot).
		To(xcm.Polkadot).
		Currency(xcm.CurrencySymbol("DOT")).
		Amount(amount(1000)).
		Address(testutil.Alice)

	_, err := final.UseKeepAlive(ctx, nil)
	require.True(errors.Is(err, errors.MissingConnection), err.Error())

	dest := testutil.NewMockedConnection(xcm.Polkadot)
	dest.On("ExistentialDeposit", mock.Anything).Return(amount(10000), nil).Once()
	_, err = final.UseKeepAlive(ctx, dest)
	require.True(errors.Is(err, errors.KeepAlive), err.Error())

	dest.On("ExistentialDeposit", mock.Anything).Return(amount(1000), nil).Once()
	kept, err := final.UseKeepAlive(ctx, dest)
	require.NoError(err)
	call, err := kept.BuildSerializedCall(ctx)
	require.NoError(err)
	require.Equal("limitedTeleportAssets", call.Section)

	dest.On("ExistentialDeposit", mock.Anything).Return(xcm.AmountBlockchain{}, fmt.Errorf("rpc down")).Once()
	_, err = final.UseKeepAlive(ctx, dest)
	require.ErrorContains(err, "rpc down")
	dest.AssertExpectations(t)
}

func TestOpenChannel(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	_, err := builder.New(nil).From(xcm.Acala).To(xcm.Hydration).OpenChannel()
	require.True(errors.Is(err, errors.MissingConnectionForChannelOp), err.Error())

	open, err := builder.New(testutil.NewMockedConnection(xcm.Polkadot)).From(xcm.Acala).To(xcm.Hydration).OpenChannel()
	require.NoError(err)
	call, err := open.MaxSize(8).MaxMessageSize(512).Build(ctx)
	require.NoError(err)
	require.Equal("sudo", call.Module())
	require.Equal("sudo", call.Section())
	inner := call.Parameters()[0].(xcm.SerializedCall)
	require.Equal("sudoEstablishHrmpChannel", inner.Section)
	require.Equal([]any{param.U32(2000), param.U32(2034), param.U32(8), param.U32(512)}, inner.Parameters)

	// the channel is opened through the relay chain
	open, err = builder.New(testutil.NewMockedConnection(xcm.Acala)).From(xcm.Acala).To(xcm.Hydration).OpenChannel()
	require.NoError(err)
	_, err = open.MaxSize(8).MaxMessageSize(512).Build(ctx)
	require.True(errors.Is(err, errors.MissingConnectionForChannelOp), err.Error())
}

func TestCloseChannel(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	_, err := builder.New(nil).From(xcm.Acala).CloseChannel()
	require.True(errors.Is(err, errors.MissingConnectionForChannelOp), err.Error())

	closer, err := builder.New(testutil.NewMockedConnection(xcm.Polkadot)).From(xcm.Acala).CloseChannel()
	require.NoError(err)
	final := closer.Inbound(1).Outbound(3)
	call, err := final.Build(ctx)
	require.NoError(err)
	inner := call.Parameters()[0].(xcm.SerializedCall)
	require.Equal("hrmp", inner.Module)
	require.Equal("forceCleanHrmp", inner.Section)
	require.Equal([]any{param.U32(2000), param.U32(1), param.U32(3)}, inner.Parameters)

	serialized, err := final.BuildSerializedCall(ctx)
	require.NoError(err)
	require.Equal(call.Serialized(), serialized)
}

func TestClaim(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	assets := []location.Asset{location.NewAsset(location.Here(1), amount(50))}

	versionStage := builder.New(nil).ClaimFrom(xcm.AssetHubPolkadot).Fungible(assets).Account(testutil.Alice)
	call, err := versionStage.BuildSerializedCall(ctx)
	require.NoError(err)
	require.Equal("polkadotXcm", call.Module)
	require.Equal("claimAssets", call.Section)
	require.Equal(xcm.V3, call.Parameters[1].(location.Versioned).Version)

	call, err = versionStage.XcmVersion(xcm.V2).BuildSerializedCall(ctx)
	require.NoError(err)
	require.Equal(xcm.V2, call.Parameters[1].(location.Versioned).Version)

	_, err = versionStage.Build(ctx)
	require.True(errors.Is(err, errors.MissingConnection), err.Error())

	signable, err := builder.New(testutil.NewMockedConnection(xcm.Polkadot)).
		ClaimFrom(xcm.Polkadot).
		Fungible(assets).
		Account(testutil.Alice).
		XcmVersion(xcm.V3).
		Build(ctx)
	require.NoError(err)
	require.Equal("xcmPallet", signable.Module())
}

func TestBatch(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	conn := testutil.NewMockedConnection(xcm.AssetHubPolkadot)

	b := builder.New(conn)
	b = b.From(xcm.AssetHubPolkadot).To(xcm.Hydration).Currency(xcm.CurrencySymbol("USDT")).Amount(amount(1)).Address(testutil.Alice).AddToBatch()
	b = b.From(xcm.AssetHubPolkadot).To(xcm.Polkadot).Currency(xcm.CurrencySymbol("DOT")).Amount(amount(2)).Address(testutil.Bob).AddToBatch()

	call, err := b.BuildBatch(ctx, builder.BatchOptions{})
	require.NoError(err)
	require.Equal("utility", call.Module())
	require.Equal("batchAll", call.Section())
	calls := call.Parameters()[0].(param.Vec[xcm.Call])
	require.Len(calls, 2)
	require.Equal("limitedReserveTransferAssets", calls[0].Section())
	require.Equal("limitedTeleportAssets", calls[1].Section())

	call, err = b.BuildBatch(ctx, builder.BatchOptions{Mode: builder.Batch})
	require.NoError(err)
	require.Equal("batch", call.Section())

	_, err = b.BuildBatch(ctx, builder.BatchOptions{Mode: "SOMETIMES"})
	require.ErrorContains(err, "invalid batch mode")
}

func TestBatchErrors(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	_, err := builder.New(testutil.NewMockedConnection(xcm.Acala)).BuildBatch(ctx, builder.BatchOptions{})
	require.True(errors.Is(err, errors.EmptyBatch), err.Error())

	_, err = builder.New(nil).BuildBatch(ctx, builder.BatchOptions{})
	require.True(errors.Is(err, errors.MissingConnection), err.Error())

	b := builder.New(testutil.NewMockedConnection(xcm.Acala))
	b = b.From(xcm.Acala).To(xcm.Hydration).Currency(xcm.CurrencySymbol("ACA")).Amount(amount(1)).Address(testutil.Alice).AddToBatch()
	b = b.From(xcm.Hydration).To(xcm.Acala).Currency(xcm.CurrencySymbol("HDX")).Amount(amount(1)).Address(testutil.Alice).AddToBatch()
	_, err = b.BuildBatch(ctx, builder.BatchOptions{})
	require.True(errors.Is(err, errors.BatchOriginMismatch), err.Error())

	b = builder.New(testutil.NewMockedConnection(xcm.Hydration))
	b = b.From(xcm.Acala).To(xcm.Hydration).Currency(xcm.CurrencySymbol("ACA")).Amount(amount(1)).Address(testutil.Alice).AddToBatch()
	_, err = b.BuildBatch(ctx, builder.BatchOptions{})
	require.True(errors.Is(err, errors.BatchOriginMismatch), err.Error())

	// a failing item fails the batch
	b = builder.New(testutil.NewMockedConnection(xcm.Acala))
	b = b.From(xcm.Acala).To(xcm.Hydration).Currency(xcm.CurrencySymbol("NOPE")).Amount(amount(1)).Address(testutil.Alice).AddToBatch()
	_, err = b.BuildBatch(ctx, builder.BatchOptions{})
	require.True(errors.Is(err, errors.InvalidCurrency), err.Error())
}
