package substrate_test

import (
	"errors"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/cordialsys/xcm/chain/substrate"
	clienterrors "github.com/cordialsys/xcm/client/errors"
)

func (s *SubstrateTestSuite) TestCheckError() {
	require := s.Require()
	vectors := []struct {
		msg    string
		status clienterrors.Status
	}{
		{"dial tcp: connection refused", clienterrors.NetworkError},
		{"unexpected EOF", clienterrors.NetworkError},
		{"1014: Priority is too low: (100 vs 100)", clienterrors.TransactionDropped},
		{"Invalid Transaction: Inability to pay some fees (e.g. account balance too low)", clienterrors.TransactionFailure},
		{"something else", clienterrors.UnknownError},
	}
	for _, v := range vectors {
		err := substrate.CheckError(errors.New(v.msg))
		require.Equal(v.status, clienterrors.StatusOf(err), v.msg)
		require.ErrorContains(err, v.msg)
	}
	require.NoError(substrate.CheckError(nil))

	// already classified errors pass through
	dropped := clienterrors.TransactionDroppedf("gone")
	require.Equal(dropped, substrate.CheckError(dropped))
}

type jsonRpcError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e jsonRpcError) Error() string { return e.Message }

func (s *SubstrateTestSuite) TestAsRpcErrorMaybe() {
	require := s.Require()
	err := substrate.AsRpcErrorMaybe(jsonRpcError{Code: 1010, Message: "Invalid Transaction", Data: "Transaction has a bad signature"})
	require.EqualError(err, "Invalid Transaction: Transaction has a bad signature (1010)")

	err = substrate.AsRpcErrorMaybe(jsonRpcError{Code: 1012, Message: "Transaction is temporarily banned"})
	require.EqualError(err, "Transaction is temporarily banned (1012)")

	plain := errors.New("plain")
	require.Equal(plain, substrate.AsRpcErrorMaybe(plain))
}

func (s *SubstrateTestSuite) TestStatusError() {
	require := s.Require()
	require.NoError(substrate.StatusError(types.ExtrinsicStatus{IsReady: true}))
	require.NoError(substrate.StatusError(types.ExtrinsicStatus{IsFinalized: true}))
	require.Equal(clienterrors.TransactionDropped, clienterrors.StatusOf(substrate.StatusError(types.ExtrinsicStatus{IsDropped: true})))
	require.Equal(clienterrors.TransactionDropped, clienterrors.StatusOf(substrate.StatusError(types.ExtrinsicStatus{IsInvalid: true})))
	require.Equal(clienterrors.TransactionFailure, clienterrors.StatusOf(substrate.StatusError(types.ExtrinsicStatus{IsFinalityTimeout: true})))
}
