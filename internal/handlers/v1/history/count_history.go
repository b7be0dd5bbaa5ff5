package history

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/capbank/transaction-server/internal/domain"
	"github.com/capbank/transaction-server/internal/handlers/v1/apierror"
)

// CountHistoryInput is the Huma input for counting an account's ledger
// entries.
type CountHistoryInput struct {
	AccountID string `path:"accountId" format:"uuid" doc:"Account UUID"`
}

// CountHistoryResponseBody is the response body for the ledger entry count.
type CountHistoryResponseBody struct {
	AccountID string `json:"accountId" doc:"Account UUID"`
	Count     int64  `json:"count" doc:"Number of ledger entries for the account"`
}

// CountHistoryOutput is the Huma output for counting an account's ledger
// entries.
type CountHistoryOutput struct {
	Body CountHistoryResponseBody
}

// historyCounter is the interface for counting ledger entries.
type historyCounter interface {
	CountByAccount(ctx context.Context, accountID domain.AccountID) (int64, error)
}

// CountHistoryHandler handles GET /v1/transaction-history/account/{accountId}/count.
type CountHistoryHandler struct {
	HistoryService historyCounter
}

// NewCountHistoryHandler creates a new CountHistoryHandler.
func NewCountHistoryHandler(svc historyCounter) *CountHistoryHandler {
	return &CountHistoryHandler{HistoryService: svc}
}

// Register registers the count history endpoint with the Huma API.
func (h *CountHistoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "count-account-transaction-history",
		Method:      http.MethodGet,
		Path:        "/v1/transaction-history/account/{accountId}/count",
		Summary:     "Count ledger entries",
		Description: "Returns the number of ledger entries for the account.",
		Tags:        []string{"Transaction History"},
	}, h.handle)
}

func (h *CountHistoryHandler) handle(ctx context.Context, input *CountHistoryInput) (*CountHistoryOutput, error) {
	accountID, err := domain.ParseAccountID(input.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	count, err := h.HistoryService.CountByAccount(ctx, accountID)
	if err != nil {
		return nil, apierror.Map(err, "failed to count ledger entries")
	}
	return &CountHistoryOutput{Body: CountHistoryResponseBody{
		AccountID: accountID.String(),
		Count:     count,
	}}, nil
}
