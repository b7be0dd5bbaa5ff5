package history

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/capbank/transaction-server/internal/domain"
	"github.com/capbank/transaction-server/internal/handlers/v1/apierror"
)

// GetHistoryInput is the Huma input for fetching a ledger entry.
type GetHistoryInput struct {
	ID string `path:"id" format:"uuid" doc:"Ledger entry UUID"`
}

// GetHistoryOutput is the Huma output for fetching a ledger entry.
type GetHistoryOutput struct {
	Body HistoryEntry
}

// historyFinder is the interface for fetching a single ledger entry.
type historyFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.TransactionHistory, error)
}

// GetHistoryHandler handles GET /v1/transaction-history/{id}.
type GetHistoryHandler struct {
	HistoryService historyFinder
}

// NewGetHistoryHandler creates a new GetHistoryHandler.
func NewGetHistoryHandler(svc historyFinder) *GetHistoryHandler {
	return &GetHistoryHandler{HistoryService: svc}
}

// Register registers the get history endpoint with the Huma API.
func (h *GetHistoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction-history",
		Method:      http.MethodGet,
		Path:        "/v1/transaction-history/{id}",
		Summary:     "Get ledger entry",
		Description: "Returns a single ledger entry by id.",
		Tags:        []string{"Transaction History"},
	}, h.handle)
}

func (h *GetHistoryHandler) handle(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid ledger entry id", err)
	}

	entry, err := h.HistoryService.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Map(err, "failed to fetch ledger entry")
	}
	return &GetHistoryOutput{Body: fromDomain(entry)}, nil
}
