package substrate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	clienterrors "github.com/cordialsys/xcm/client/errors"
)

// CheckError classifies an error returned by a substrate node.
// The rpc error strings rarely say more than "invalid transaction", so this is coarse.
func CheckError(err error) error {
	if err == nil {
		return nil
	}
	var clientErr *clienterrors.Error
	if errors.As(err, &clientErr) {
		return err
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "response body closed"),
		strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "eof"),
		strings.Contains(msg, "bad rpc url"),
		strings.Contains(msg, "i/o timeout"):
		return clienterrors.NetworkErrorf("%v", err)
	case strings.Contains(msg, "already imported"),
		strings.Contains(msg, "priority is too low"),
		strings.Contains(msg, "transaction is outdated"),
		strings.Contains(msg, "transaction is temporarily banned"):
		return clienterrors.TransactionDroppedf("%v", err)
	case strings.Contains(msg, "invalid transaction"),
		strings.Contains(msg, "inability to pay some fees"),
		strings.Contains(msg, "bad signature"):
		return clienterrors.TransactionFailuref("%v", err)
	}
	return clienterrors.Unknownf("%v", err)
}

type RpcError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// AsRpcErrorMaybe surfaces the message and data of a json-rpc error, which is where substrate puts the reason
func AsRpcErrorMaybe(inputError error) error {
	bz, err := json.Marshal(inputError)
	if err != nil {
		return inputError
	}
	var outputError RpcError
	err = json.Unmarshal(bz, &outputError)
	if err != nil {
		return inputError
	}
	if outputError.Code != 0 && len(outputError.Message) > 0 {
		if outputError.Data != nil {
			return fmt.Errorf("%s: %v (%d)", outputError.Message, outputError.Data, outputError.Code)
		} else {
			return fmt.Errorf("%s (%d)", outputError.Message, outputError.Code)
		}
	}
	return inputError
}

// StatusError maps a terminal extrinsic status onto a client error, or nil if the status is not terminal
func StatusError(status types.ExtrinsicStatus) error {
	switch {
	case status.IsDropped:
		return clienterrors.TransactionDroppedf("extrinsic was dropped from the pool")
	case status.IsInvalid:
		return clienterrors.TransactionDroppedf("extrinsic is invalid")
	case status.IsUsurped:
		return clienterrors.TransactionDroppedf("extrinsic was usurped by %s", status.AsUsurped.Hex())
	case status.IsFinalityTimeout:
		return clienterrors.TransactionFailuref("block %s timed out waiting for finality", status.AsFinalityTimeout.Hex())
	}
	return nil
}
