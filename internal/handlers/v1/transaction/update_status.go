package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/capbank/transaction-server/internal/domain"
	"github.com/capbank/transaction-server/internal/handlers/v1/apierror"
	"github.com/capbank/transaction-server/internal/service"
)

// UpdateStatusBody is the request body for updating a transaction's status.
type UpdateStatusBody struct {
	Status string `json:"status" required:"true" enum:"PENDING,SUCCESS,FAILED" doc:"New status"`
	Reason string `json:"reason,omitempty" maxLength:"255" doc:"Reason, included in the failure notification when moving to FAILED"`
}

// UpdateStatusInput is the Huma input for updating a transaction's status.
type UpdateStatusInput struct {
	ID   string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Body UpdateStatusBody
}

// UpdateStatusOutput is the Huma output for updating a transaction's status.
type UpdateStatusOutput struct {
	Body Transaction
}

// statusUpdater is the interface for moving a transaction through its status
// table.
type statusUpdater interface {
	UpdateStatus(ctx context.Context, cmd service.UpdateStatusCommand) (*domain.Transaction, error)
}

// UpdateStatusHandler handles PUT /v1/transaction/{id}/status.
type UpdateStatusHandler struct {
	TransactionService statusUpdater
}

// NewUpdateStatusHandler creates a new UpdateStatusHandler.
func NewUpdateStatusHandler(svc statusUpdater) *UpdateStatusHandler {
	return &UpdateStatusHandler{TransactionService: svc}
}

// Register registers the update status endpoint with the Huma API.
func (h *UpdateStatusHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction-status",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}/status",
		Summary:     "Update transaction status",
		Description: "Applies a status transition. A SUCCESS transaction can never change again.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateStatusHandler) handle(ctx context.Context, input *UpdateStatusInput) (*UpdateStatusOutput, error) {
	id, err := domain.ParseTransactionID(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}
	status, err := domain.ParseTransactionStatus(input.Body.Status)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid status", err)
	}

	tx, err := h.TransactionService.UpdateStatus(ctx, service.UpdateStatusCommand{
		TransactionID: id,
		Status:        status,
		Reason:        input.Body.Reason,
	})
	if err != nil {
		return nil, apierror.Map(err, "failed to update transaction status")
	}
	return &UpdateStatusOutput{Body: fromDomain(tx)}, nil
}
