package domain

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
)

// AccountID identifies an account owned by the bank-account service.
// It is an opaque value object, not a reference to an entity in this service.
type AccountID struct {
	value uuid.UUID
}

// NewAccountID generates a fresh random AccountID.
func NewAccountID() AccountID {
	return AccountID{value: uuid.Must(uuid.NewV4())}
}

// ParseAccountID validates and parses a UUID string.
func ParseAccountID(value string) (AccountID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return AccountID{}, fmt.Errorf("%w: account id %q", ErrInvalidIdentifier, value)
	}
	return AccountID{value: id}, nil
}

// AccountIDFromUUID wraps an already-validated UUID.
func AccountIDFromUUID(id uuid.UUID) AccountID {
	return AccountID{value: id}
}

func (id AccountID) UUID() uuid.UUID {
	return id.value
}

func (id AccountID) IsZero() bool {
	return id.value == uuid.Nil
}

func (id AccountID) String() string {
	return id.value.String()
}

// TransactionID identifies a single transaction record.
type TransactionID struct {
	value uuid.UUID
}

// NewTransactionID generates a fresh random TransactionID.
func NewTransactionID() TransactionID {
	return TransactionID{value: uuid.Must(uuid.NewV4())}
}

// ParseTransactionID validates and parses a UUID string.
func ParseTransactionID(value string) (TransactionID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return TransactionID{}, fmt.Errorf("%w: transaction id %q", ErrInvalidIdentifier, value)
	}
	return TransactionID{value: id}, nil
}

// TransactionIDFromUUID wraps an already-validated UUID.
func TransactionIDFromUUID(id uuid.UUID) TransactionID {
	return TransactionID{value: id}
}

func (id TransactionID) UUID() uuid.UUID {
	return id.value
}

func (id TransactionID) IsZero() bool {
	return id.value == uuid.Nil
}

func (id TransactionID) String() string {
	return id.value.String()
}
