package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/capbank/transaction-server/internal/domain"
	"github.com/capbank/transaction-server/internal/handlers/v1/apierror"
	"github.com/capbank/transaction-server/internal/service"
)

// CreateWithdrawalBody is the request body for the typed withdrawal endpoint.
type CreateWithdrawalBody struct {
	SourceAccountID string `json:"sourceAccountId" required:"true" doc:"Source account UUID"`
	Amount          string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Description     string `json:"description,omitempty" maxLength:"255" doc:"Free-form description"`
}

// CreateWithdrawalInput is the Huma input for creating a withdrawal.
type CreateWithdrawalInput struct {
	Body CreateWithdrawalBody
}

// CreateWithdrawalOutput is the Huma output for creating a withdrawal.
type CreateWithdrawalOutput struct {
	Body CreateTransactionResponseBody
}

// CreateWithdrawalHandler handles POST /v1/transaction/withdrawal.
type CreateWithdrawalHandler struct {
	TransactionService transactionProcessor
}

// NewCreateWithdrawalHandler creates a new CreateWithdrawalHandler.
func NewCreateWithdrawalHandler(svc transactionProcessor) *CreateWithdrawalHandler {
	return &CreateWithdrawalHandler{TransactionService: svc}
}

// Register registers the create withdrawal endpoint with the Huma API.
func (h *CreateWithdrawalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-withdrawal",
		Method:        http.MethodPost,
		Path:          "/v1/transaction/withdrawal",
		Summary:       "Create withdrawal",
		Description:   "Processes a withdrawal from the source account.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateWithdrawalHandler) handle(ctx context.Context, input *CreateWithdrawalInput) (*CreateWithdrawalOutput, error) {
	source, err := domain.ParseAccountID(input.Body.SourceAccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid sourceAccountId", err)
	}
	amount, err := domain.NewMoneyFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	result, err := h.TransactionService.Process(ctx, service.CreateTransactionCommand{
		SourceAccountID: &source,
		Type:            domain.TypeWithdrawal,
		Amount:          amount,
		Description:     input.Body.Description,
	})
	if err != nil {
		return nil, apierror.Map(err, "failed to process withdrawal")
	}

	return &CreateWithdrawalOutput{Body: processResultBody(result)}, nil
}
