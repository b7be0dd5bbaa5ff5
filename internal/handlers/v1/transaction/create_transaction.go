package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/capbank/transaction-server/internal/domain"
	"github.com/capbank/transaction-server/internal/handlers/v1/apierror"
	"github.com/capbank/transaction-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
// Which account fields are required depends on the transaction type.
type CreateTransactionBody struct {
	TransactionType string `json:"transactionType" required:"true" enum:"DEPOSIT,WITHDRAWAL,TRANSFER" doc:"Transaction type"`
	SourceAccountID string `json:"sourceAccountId,omitempty" doc:"Source account UUID, required for WITHDRAWAL and TRANSFER"`
	TargetAccountID string `json:"targetAccountId,omitempty" doc:"Target account UUID, required for DEPOSIT and TRANSFER"`
	Amount          string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Description     string `json:"description,omitempty" maxLength:"255" doc:"Free-form description"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponseBody reports the processed transaction and what
// the best-effort pipeline stages achieved.
type CreateTransactionResponseBody struct {
	Transaction      Transaction `json:"transaction" doc:"The processed transaction"`
	Message          string      `json:"message" doc:"Human-readable processing summary"`
	BalanceUpdated   bool        `json:"balanceUpdated" doc:"Whether the bank-account balance push went through"`
	NotificationSent bool        `json:"notificationSent" doc:"Whether the notification was delivered"`
}

// processResultBody maps a service result onto the shared response body.
func processResultBody(result *service.ProcessResult) CreateTransactionResponseBody {
	return CreateTransactionResponseBody{
		Transaction:      fromDomain(result.Transaction),
		Message:          result.Message,
		BalanceUpdated:   result.BalancePushed,
		NotificationSent: result.NotificationSent,
	}
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body CreateTransactionResponseBody
}

// transactionProcessor is the interface for processing transactions.
type transactionProcessor interface {
	Process(ctx context.Context, cmd service.CreateTransactionCommand) (*service.ProcessResult, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Processes a deposit, withdrawal, or transfer and records its ledger entry.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// buildCommand parses and validates the API input into a service command.
func buildCommand(body CreateTransactionBody) (service.CreateTransactionCommand, error) {
	var cmd service.CreateTransactionCommand

	transactionType, err := domain.ParseTransactionType(body.TransactionType)
	if err != nil {
		return cmd, huma.NewError(http.StatusBadRequest, "invalid transactionType", err)
	}
	amount, err := domain.NewMoneyFromString(body.Amount)
	if err != nil {
		return cmd, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	cmd.Type = transactionType
	cmd.Amount = amount
	cmd.Description = body.Description

	if body.SourceAccountID != "" {
		source, err := domain.ParseAccountID(body.SourceAccountID)
		if err != nil {
			return cmd, huma.NewError(http.StatusBadRequest, "invalid sourceAccountId", err)
		}
		cmd.SourceAccountID = &source
	}
	if body.TargetAccountID != "" {
		target, err := domain.ParseAccountID(body.TargetAccountID)
		if err != nil {
			return cmd, huma.NewError(http.StatusBadRequest, "invalid targetAccountId", err)
		}
		cmd.TargetAccountID = &target
	}
	return cmd, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	cmd, err := buildCommand(input.Body)
	if err != nil {
		return nil, err
	}

	result, err := h.TransactionService.Process(ctx, cmd)
	if err != nil {
		return nil, apierror.Map(err, "failed to process transaction")
	}

	return &CreateTransactionOutput{Body: processResultBody(result)}, nil
}
