package errors

import (
	"errors"
	"fmt"
)

// Statuses of faults raised while talking to a chain
type Status string

// A transaction terminally failed on chain
const TransactionFailure Status = "TransactionFailure"

// The transaction was dropped from the pool, or replaced, before inclusion
const TransactionDropped Status = "TransactionDropped"

// A network error occured -- there may be nothing wrong with the transaction
const NetworkError Status = "NetworkError"

// No outcome for this error known
const UnknownError Status = "UnknownError"

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

func TransactionFailuref(format string, args ...interface{}) error {
	return Errorf(TransactionFailure, format, args...)
}

func TransactionDroppedf(format string, args ...interface{}) error {
	return Errorf(TransactionDropped, format, args...)
}

func NetworkErrorf(format string, args ...interface{}) error {
	return Errorf(NetworkError, format, args...)
}

func Unknownf(format string, args ...interface{}) error {
	return Errorf(UnknownError, format, args...)
}

// StatusOf returns the status of the first client error in the chain
func StatusOf(err error) Status {
	var clientErr *Error
	if errors.As(err, &clientErr) {
		return clientErr.Status
	}
	return UnknownError
}
