package apierror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/capbank/transaction-server/internal/domain"
)

// Map translates domain errors into Huma errors with the right HTTP status.
// Unrecognized errors become a 500 carrying the fallback message.
func Map(err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrHistoryNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateHistory):
		return huma.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrIllegalStatusTransition),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrNegativeResult),
		errors.Is(err, domain.ErrInvalidIdentifier),
		errors.Is(err, domain.ErrDomainValidation),
		errors.Is(err, domain.ErrBalanceMismatch),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrInvalidPageSize):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrRemoteService):
		return huma.NewError(http.StatusBadGateway, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, fallback, err)
	}
}
