package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/capbank/transaction-server/internal/domain"
	"github.com/capbank/transaction-server/internal/handlers/v1/apierror"
	"github.com/capbank/transaction-server/internal/service"
)

// CreateTransferBody is the request body for the typed transfer endpoint.
type CreateTransferBody struct {
	SourceAccountID string `json:"sourceAccountId" required:"true" doc:"Source account UUID"`
	TargetAccountID string `json:"targetAccountId" required:"true" doc:"Target account UUID"`
	Amount          string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Description     string `json:"description,omitempty" maxLength:"255" doc:"Free-form description"`
}

// CreateTransferInput is the Huma input for creating a transfer.
type CreateTransferInput struct {
	Body CreateTransferBody
}

// CreateTransferOutput is the Huma output for creating a transfer.
type CreateTransferOutput struct {
	Body CreateTransactionResponseBody
}

// CreateTransferHandler handles POST /v1/transaction/transfer.
type CreateTransferHandler struct {
	TransactionService transactionProcessor
}

// NewCreateTransferHandler creates a new CreateTransferHandler.
func NewCreateTransferHandler(svc transactionProcessor) *CreateTransferHandler {
	return &CreateTransferHandler{TransactionService: svc}
}

// Register registers the create transfer endpoint with the Huma API.
func (h *CreateTransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transfer",
		Method:        http.MethodPost,
		Path:          "/v1/transaction/transfer",
		Summary:       "Create transfer",
		Description:   "Processes a transfer between two accounts.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateTransferHandler) handle(ctx context.Context, input *CreateTransferInput) (*CreateTransferOutput, error) {
	source, err := domain.ParseAccountID(input.Body.SourceAccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid sourceAccountId", err)
	}
	target, err := domain.ParseAccountID(input.Body.TargetAccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid targetAccountId", err)
	}
	amount, err := domain.NewMoneyFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	result, err := h.TransactionService.Process(ctx, service.CreateTransactionCommand{
		SourceAccountID: &source,
		TargetAccountID: &target,
		Type:            domain.TypeTransfer,
		Amount:          amount,
		Description:     input.Body.Description,
	})
	if err != nil {
		return nil, apierror.Map(err, "failed to process transfer")
	}

	return &CreateTransferOutput{Body: processResultBody(result)}, nil
}
