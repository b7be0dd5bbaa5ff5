package domain

import "errors"

// Sentinel errors for the transaction domain. Callers classify failures with
// errors.Is; the HTTP layer maps each kind to a status code.
var (
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrNegativeResult          = errors.New("negative result")
	ErrInvalidIdentifier       = errors.New("invalid identifier")
	ErrDomainValidation        = errors.New("domain validation failed")
	ErrIllegalStatusTransition = errors.New("illegal status transition")
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrHistoryNotFound         = errors.New("transaction history not found")
	ErrDuplicateHistory        = errors.New("transaction history already exists")
	ErrBalanceMismatch         = errors.New("balance calculation mismatch")
	ErrInvalidRange            = errors.New("invalid date range")
	ErrInvalidPageSize         = errors.New("invalid page size")
	ErrRemoteService           = errors.New("remote service failure")
	ErrProcessingFailed        = errors.New("transaction processing failed")
)
