package errors

import (
	"errors"
	"fmt"
)

type Status string

// The network exists but the requested operation is invalid for the scenario
const ScenarioNotSupported Status = "ScenarioNotSupported"

// The operation is fundamentally unavailable for the network
const NodeNotSupported Status = "NodeNotSupported"

// The currency is unknown or not transferable from the network
const InvalidCurrency Status = "InvalidCurrency"

// A live connection is required but none was provided
const MissingConnection Status = "MissingConnection"

// A channel operation was requested without a live connection
const MissingConnectionForChannelOp Status = "MissingConnectionForChannelOp"

// An address could not be decoded, or has the wrong format for its role
const InvalidAddressFormat Status = "InvalidAddressFormat"

// No exchange could quote the requested swap
const NoExchangeAvailable Status = "NoExchangeAvailable"

// The transfer would reap the recipient below the existential deposit
const KeepAlive Status = "KeepAlive"

// The transfer options are inconsistent, e.g. a signer is missing
const InvalidTransferOptions Status = "InvalidTransferOptions"

// Batched calls do not share a common origin
const BatchOriginMismatch Status = "BatchOriginMismatch"

// There are no calls to batch
const EmptyBatch Status = "EmptyBatch"

type Error struct {
	Status  Status
	Message string
}

var _ error = &Error{}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

func Errorf(status Status, format string, args ...interface{}) error {
	return &Error{
		Status:  status,
		Message: fmt.Sprintf(format, args...),
	}
}

// StatusOf returns the status of the first *Error in the chain.
func StatusOf(err error) (Status, bool) {
	var xcmErr *Error
	if errors.As(err, &xcmErr) {
		return xcmErr.Status, true
	}
	return "", false
}

// Is reports whether any error in the chain carries the given status.
func Is(err error, status Status) bool {
	s, ok := StatusOf(err)
	return ok && s == status
}

func ScenarioNotSupportedf(format string, args ...interface{}) error {
	return Errorf(ScenarioNotSupported, format, args...)
}

func NodeNotSupportedf(format string, args ...interface{}) error {
	return Errorf(NodeNotSupported, format, args...)
}

func InvalidCurrencyf(format string, args ...interface{}) error {
	return Errorf(InvalidCurrency, format, args...)
}

func MissingConnectionf(format string, args ...interface{}) error {
	return Errorf(MissingConnection, format, args...)
}

// Used when opening or closing a channel, which needs on-chain call metadata.
func MissingConnectionForChannelOpf(format string, args ...interface{}) error {
	return Errorf(MissingConnectionForChannelOp, format, args...)
}

func InvalidAddressFormatf(format string, args ...interface{}) error {
	return Errorf(InvalidAddressFormat, format, args...)
}

func NoExchangeAvailablef(format string, args ...interface{}) error {
	return Errorf(NoExchangeAvailable, format, args...)
}

func KeepAlivef(format string, args ...interface{}) error {
	return Errorf(KeepAlive, format, args...)
}

func InvalidTransferOptionsf(format string, args ...interface{}) error {
	return Errorf(InvalidTransferOptions, format, args...)
}

func BatchOriginMismatchf(format string, args ...interface{}) error {
	return Errorf(BatchOriginMismatch, format, args...)
}

func EmptyBatchf(format string, args ...interface{}) error {
	return Errorf(EmptyBatch, format, args...)
}
