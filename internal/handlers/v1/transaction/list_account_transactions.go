package transaction

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

// ListAccountTransactionsInput is the Huma input for listing an account's
// transactions. The account matches either side of a transaction.
type ListAccountTransactionsInput struct {
	AccountID       string `path:"accountId" format:"uuid" doc:"Account UUID"`
	TransactionType string `query:"transactionType" doc:"Filter by transaction type: DEPOSIT, WITHDRAWAL or TRANSFER"`
	Status          string `query:"status" doc:"Filter by status: PENDING, SUCCESS or FAILED"`
	StartDate       string `query:"startDate" format:"date-time" doc:"Inclusive lower bound on transaction date"`
	EndDate         string `query:"endDate" format:"date-time" doc:"Inclusive upper bound on transaction date"`
	Page            int    `query:"page" minimum:"0" default:"0" doc:"Zero-based page number"`
	Size            int    `query:"size" minimum:"1" maximum:"100" default:"20" doc:"Page size, at most 100"`
	SortBy          string `query:"sortBy" enum:"transactionDate,amount,status" default:"transactionDate" doc:"Sort column"`
	SortDirection   string `query:"sortDirection" enum:"ASC,DESC" default:"DESC" doc:"Sort direction"`
}

// ListAccountTransactionsOutput is the Huma output for listing an account's
// transactions.
type ListAccountTransactionsOutput struct {
	Body TransactionPage
}

// transactionLister is the interface for listing an account's transactions.
type transactionLister interface {
	FindByAccount(ctx context.Context, query service.AccountQuery) (*service.Page[*domain.Transaction], error)
}

// ListAccountTransactionsHandler handles GET /v1/transaction/account/{accountId}.
type ListAccountTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListAccountTransactionsHandler creates a new ListAccountTransactionsHandler.
func NewListAccountTransactionsHandler(svc transactionLister) *ListAccountTransactionsHandler {
	return &ListAccountTransactionsHandler{TransactionService: svc}
}

// Register registers the list account transactions endpoint with the Huma API.
func (h *ListAccountTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-account-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/account/{accountId}",
		Summary:     "List account transactions",
		Description: "Returns a page of transactions where the account is the source or the target.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseAccountQuery parses and validates the API input into a service query.
func parseAccountQuery(input *ListAccountTransactionsInput) (service.AccountQuery, error) {
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

func (h *ListAccountTransactionsHandler) handle(ctx context.Context, input *ListAccountTransactionsInput) (*ListAccountTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	query, err := parseAccountQuery(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	page, err := h.TransactionService.FindByAccount(ctx, query)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(page.Content))
	}

	body := TransactionPage{
		Content:       make([]Transaction, len(page.Content)),
		PageNumber:    page.PageNumber,
		PageSize:      page.PageSize,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		First:         page.First,
		Last:          page.Last,
	}
	for i, tx := range page.Content {
		body.Content[i] = fromDomain(tx)
	}
	return &ListAccountTransactionsOutput{Body: body}, nil
}
