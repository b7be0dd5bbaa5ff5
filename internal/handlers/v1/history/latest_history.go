package history

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/capbank/transaction-server/internal/domain"
	"github.com/capbank/transaction-server/internal/handlers/v1/apierror"
)

// LatestHistoryInput is the Huma input for fetching an account's most recent
// ledger entry.
type LatestHistoryInput struct {
	AccountID string `path:"accountId" format:"uuid" doc:"Account UUID"`
}

// LatestHistoryOutput is the Huma output for fetching an account's most
// recent ledger entry.
type LatestHistoryOutput struct {
	Body HistoryEntry
}

// latestFinder is the interface for fetching the most recent ledger entry.
type latestFinder interface {
	FindLatestByAccount(ctx context.Context, accountID domain.AccountID) (*domain.TransactionHistory, error)
}

// LatestHistoryHandler handles GET /v1/transaction-history/account/{accountId}/latest.
type LatestHistoryHandler struct {
	HistoryService latestFinder
}

// NewLatestHistoryHandler creates a new LatestHistoryHandler.
func NewLatestHistoryHandler(svc latestFinder) *LatestHistoryHandler {
	return &LatestHistoryHandler{HistoryService: svc}
}

// Register registers the latest history endpoint with the Huma API.
func (h *LatestHistoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "latest-account-transaction-history",
		Method:      http.MethodGet,
		Path:        "/v1/transaction-history/account/{accountId}/latest",
		Summary:     "Get latest ledger entry",
		Description: "Returns the account's most recent ledger entry.",
		Tags:        []string{"Transaction History"},
	}, h.handle)
}

func (h *LatestHistoryHandler) handle(ctx context.Context, input *LatestHistoryInput) (*LatestHistoryOutput, error) {
	accountID, err := domain.ParseAccountID(input.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	entry, err := h.HistoryService.FindLatestByAccount(ctx, accountID)
	if err != nil {
		return nil, apierror.Map(err, "failed to fetch latest ledger entry")
	}
	return &LatestHistoryOutput{Body: fromDomain(entry)}, nil
}
