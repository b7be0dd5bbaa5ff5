package history

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/capbank/transaction-server/internal/domain"
	"github.com/capbank/transaction-server/internal/handlers/v1/apierror"
	"github.com/capbank/transaction-server/internal/service"
)

// CreateHistoryBody is the request body for recording a ledger entry. The
// balance after the transaction is derived server-side, never accepted from
// the caller.
type CreateHistoryBody struct {
	AccountID       string `json:"accountId" required:"true" doc:"Account UUID"`
	TransactionID   string `json:"transactionId" required:"true" doc:"Transaction UUID, at most one entry per transaction"`
	BalanceBefore   string `json:"balanceBefore" required:"true" doc:"Account balance before the transaction"`
	Amount          string `json:"amount" required:"true" doc:"Positive decimal amount"`
	TransactionType string `json:"transactionType" required:"true" enum:"DEPOSIT,WITHDRAWAL,TRANSFER" doc:"Transaction type"`
	Description     string `json:"description,omitempty" maxLength:"255" doc:"Free-form description"`
}

// CreateHistoryInput is the Huma input for recording a ledger entry.
type CreateHistoryInput struct {
	Body CreateHistoryBody
}

// CreateHistoryOutput is the Huma output for recording a ledger entry.
type CreateHistoryOutput struct {
	Body HistoryEntry
}

// historyCreator is the interface for appending ledger entries.
type historyCreator interface {
	Create(ctx context.Context, cmd service.CreateHistoryCommand) (*domain.TransactionHistory, error)
}

// CreateHistoryHandler handles POST /v1/transaction-history.
type CreateHistoryHandler struct {
	HistoryService historyCreator
}

// NewCreateHistoryHandler creates a new CreateHistoryHandler.
func NewCreateHistoryHandler(svc historyCreator) *CreateHistoryHandler {
	return &CreateHistoryHandler{HistoryService: svc}
}

// Register registers the create history endpoint with the Huma API.
func (h *CreateHistoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction-history",
		Method:        http.MethodPost,
		Path:          "/v1/transaction-history",
		Summary:       "Record ledger entry",
		Description:   "Appends a ledger entry for a transaction. A second entry for the same transaction is rejected.",
		Tags:          []string{"Transaction History"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateHistoryHandler) handle(ctx context.Context, input *CreateHistoryInput) (*CreateHistoryOutput, error) {
	accountID, err := domain.ParseAccountID(input.Body.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountId", err)
	}
	transactionID, err := domain.ParseTransactionID(input.Body.TransactionID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transactionId", err)
	}
	balanceBefore, err := domain.NewMoneyFromString(input.Body.BalanceBefore)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid balanceBefore", err)
	}
	amount, err := domain.NewMoneyFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	transactionType, err := domain.ParseTransactionType(input.Body.TransactionType)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transactionType", err)
	}

	entry, err := h.HistoryService.Create(ctx, service.CreateHistoryCommand{
		AccountID:     accountID,
		TransactionID: transactionID,
		BalanceBefore: balanceBefore,
		Amount:        amount,
		Type:          transactionType,
		Description:   input.Body.Description,
	})
	if err != nil {
		return nil, apierror.Map(err, "failed to record ledger entry")
	}
	return &CreateHistoryOutput{Body: fromDomain(entry)}, nil
}
