package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/capbank/transaction-server/internal/domain"
	"github.com/capbank/transaction-server/internal/handlers/v1/apierror"
	"github.com/capbank/transaction-server/internal/service"
)

// CreateDepositBody is the request body for the typed deposit endpoint.
type CreateDepositBody struct {
	TargetAccountID string `json:"targetAccountId" required:"true" doc:"Target account UUID"`
	Amount          string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Description     string `json:"description,omitempty" maxLength:"255" doc:"Free-form description"`
}

// CreateDepositInput is the Huma input for creating a deposit.
type CreateDepositInput struct {
	Body CreateDepositBody
}

// CreateDepositOutput is the Huma output for creating a deposit.
type CreateDepositOutput struct {
	Body CreateTransactionResponseBody
}

// CreateDepositHandler handles POST /v1/transaction/deposit.
type CreateDepositHandler struct {
	TransactionService transactionProcessor
}

// NewCreateDepositHandler creates a new CreateDepositHandler.
func NewCreateDepositHandler(svc transactionProcessor) *CreateDepositHandler {
	return &CreateDepositHandler{TransactionService: svc}
}

// Register registers the create deposit endpoint with the Huma API.
func (h *CreateDepositHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-deposit",
		Method:        http.MethodPost,
		Path:          "/v1/transaction/deposit",
		Summary:       "Create deposit",
		Description:   "Processes a deposit into the target account.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateDepositHandler) handle(ctx context.Context, input *CreateDepositInput) (*CreateDepositOutput, error) {
	target, err := domain.ParseAccountID(input.Body.TargetAccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid targetAccountId", err)
	}
	amount, err := domain.NewMoneyFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	result, err := h.TransactionService.Process(ctx, service.CreateTransactionCommand{
		TargetAccountID: &target,
		Type:            domain.TypeDeposit,
		Amount:          amount,
		Description:     input.Body.Description,
	})
	if err != nil {
		return nil, apierror.Map(err, "failed to process deposit")
	}

	return &CreateDepositOutput{Body: processResultBody(result)}, nil
}
