package history

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/capbank/transaction-server/internal/domain"
	"github.com/capbank/transaction-server/internal/handlers/v1/apierror"
	"github.com/capbank/transaction-server/internal/logging"
	"github.com/capbank/transaction-server/internal/service"
)

// ListAccountHistoryInput is the Huma input for listing an account's ledger
// entries.
type ListAccountHistoryInput struct {
	AccountID       string `path:"accountId" format:"uuid" doc:"Account UUID"`
	TransactionType string `query:"transactionType" doc:"Filter by transaction type: DEPOSIT, WITHDRAWAL or TRANSFER"`
	Status          string `query:"status" doc:"Filter by status: PENDING, SUCCESS or FAILED"`
	StartDate       string `query:"startDate" format:"date-time" doc:"Inclusive lower bound on record date"`
	EndDate         string `query:"endDate" format:"date-time" doc:"Inclusive upper bound on record date"`
	Page            int    `query:"page" minimum:"0" default:"0" doc:"Zero-based page number"`
	Size            int    `query:"size" minimum:"1" maximum:"100" default:"20" doc:"Page size, at most 100"`
	SortBy          string `query:"sortBy" enum:"recordDate,amount,status" default:"recordDate" doc:"Sort column"`
	SortDirection   string `query:"sortDirection" enum:"ASC,DESC" default:"DESC" doc:"Sort direction"`
}

// ListAccountHistoryOutput is the Huma output for listing an account's
// ledger entries.
type ListAccountHistoryOutput struct {
	Body HistoryPage
}

// historyLister is the interface for listing an account's ledger entries.
type historyLister interface {
	FindByAccount(ctx context.Context, query service.AccountQuery) (*service.Page[*domain.TransactionHistory], error)
}

// ListAccountHistoryHandler handles GET /v1/transaction-history/account/{accountId}.
type ListAccountHistoryHandler struct {
	HistoryService historyLister
}

// NewListAccountHistoryHandler creates a new ListAccountHistoryHandler.
func NewListAccountHistoryHandler(svc historyLister) *ListAccountHistoryHandler {
	return &ListAccountHistoryHandler{HistoryService: svc}
}

// Register registers the list account history endpoint with the Huma API.
func (h *ListAccountHistoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-account-transaction-history",
		Method:      http.MethodGet,
		Path:        "/v1/transaction-history/account/{accountId}",
		Summary:     "List account ledger entries",
		Description: "Returns a page of the account's ledger entries.",
		Tags:        []string{"Transaction History"},
	}, h.handle)
}

// parseHistoryQuery parses and validates the API input into a service query.
func parseHistoryQuery(input *ListAccountHistoryInput) (service.AccountQuery, error) {
	var query service.AccountQuery

	accountID, err := domain.ParseAccountID(input.AccountID)
	if err != nil {
		return query, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}
	query.AccountID = accountID
	query.Page = input.Page
	query.Size = input.Size
	query.SortBy = input.SortBy
	query.SortDesc = input.SortDirection != "ASC"

	if input.TransactionType != "" {
		transactionType, err := domain.ParseTransactionType(input.TransactionType)
		if err != nil {
			return query, huma.NewError(http.StatusBadRequest, "invalid transactionType", err)
		}
		query.Type = &transactionType
	}
	if input.Status != "" {
		status, err := domain.ParseTransactionStatus(input.Status)
		if err != nil {
			return query, huma.NewError(http.StatusBadRequest, "invalid status", err)
		}
		query.Status = &status
	}
	if input.StartDate != "" {
		start, err := time.Parse(time.RFC3339, input.StartDate)
		if err != nil {
			return query, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
		}
		query.StartDate = &start
	}
	if input.EndDate != "" {
		end, err := time.Parse(time.RFC3339, input.EndDate)
		if err != nil {
			return query, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
		}
		query.EndDate = &end
	}
	return query, nil
}

func (h *ListAccountHistoryHandler) handle(ctx context.Context, input *ListAccountHistoryInput) (*ListAccountHistoryOutput, error) {
	logData := logging.GetLogData(ctx)

	query, err := parseHistoryQuery(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listHistoryMs")
	}
	page, err := h.HistoryService.FindByAccount(ctx, query)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to list ledger entries")
	}

	if logData != nil {
		logData.AddData("entryCount", len(page.Content))
	}

	body := HistoryPage{
		Content:       make([]HistoryEntry, len(page.Content)),
		PageNumber:    page.PageNumber,
		PageSize:      page.PageSize,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		First:         page.First,
		Last:          page.Last,
	}
	for i, entry := range page.Content {
		body.Content[i] = fromDomain(entry)
	}
	return &ListAccountHistoryOutput{Body: body}, nil
}
