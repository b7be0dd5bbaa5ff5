package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/capbank/transaction-server/internal/domain"
	"github.com/capbank/transaction-server/internal/service"
)

// mockTransactionService is a mock for the transaction service interfaces
// consumed by the handlers in this package.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) Process(ctx context.Context, cmd service.CreateTransactionCommand) (*service.ProcessResult, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProcessResult), args.Error(1)
}

func (m *mockTransactionService) FindByID(ctx context.Context, id domain.TransactionID) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *mockTransactionService) FindByAccount(ctx context.Context, query service.AccountQuery) (*service.Page[*domain.Transaction], error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[*domain.Transaction]), args.Error(1)
}

func (m *mockTransactionService) UpdateStatus(ctx context.Context, cmd service.UpdateStatusCommand) (*domain.Transaction, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// newTestAPI registers every transaction handler against a humatest API.
func newTestAPI(t *testing.T, svc *mockTransactionService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	NewCreateDepositHandler(svc).Register(api)
	NewCreateWithdrawalHandler(svc).Register(api)
	NewCreateTransferHandler(svc).Register(api)
	NewGetTransactionHandler(svc).Register(api)
	NewListAccountTransactionsHandler(svc).Register(api)
	NewUpdateStatusHandler(svc).Register(api)
	return api
}

func testDeposit(t *testing.T, target domain.AccountID, amount string) *domain.Transaction {
	t.Helper()
	money, err := domain.NewMoneyFromString(amount)
	require.NoError(t, err)
	tx, err := domain.NewDeposit(target, money, "test deposit")
	require.NoError(t, err)
	return tx
}

func TestHTTP_CreateTransaction_Deposit(t *testing.T) {
	target := domain.NewAccountID()
	tx := testDeposit(t, target, "100.00")

	mockSvc := new(mockTransactionService)
	mockSvc.On("Process", mock.Anything, mock.MatchedBy(func(cmd service.CreateTransactionCommand) bool {
		return cmd.Type == domain.TypeDeposit &&
			cmd.TargetAccountID != nil && *cmd.TargetAccountID == target &&
			cmd.Amount.String() == "100.00"
	})).Return(&service.ProcessResult{
		Transaction:      tx,
		Message:          "Transaction processed successfully. Amount: 100.00, Type: DEPOSIT",
		BalancePushed:    true,
		NotificationSent: true,
	}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		TransactionType: "DEPOSIT",
		TargetAccountID: target.String(),
		Amount:          "100.00",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, tx.ID.String(), body.Transaction.ID)
	assert.Equal(t, "SUCCESS", body.Transaction.Status)
	assert.Equal(t, "Transaction processed successfully. Amount: 100.00, Type: DEPOSIT", body.Message)
	assert.True(t, body.BalanceUpdated)
	assert.True(t, body.NotificationSent)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_ReportsDroppedNotification(t *testing.T) {
	target := domain.NewAccountID()
	tx := testDeposit(t, target, "100.00")

	mockSvc := new(mockTransactionService)
	mockSvc.On("Process", mock.Anything, mock.Anything).Return(&service.ProcessResult{
		Transaction:      tx,
		BalancePushed:    true,
		NotificationSent: false,
	}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		TransactionType: "DEPOSIT",
		TargetAccountID: target.String(),
		Amount:          "100.00",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.NotificationSent)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", map[string]any{
		"transactionType": "DEPOSIT",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		TransactionType: "DEPOSIT",
		TargetAccountID: domain.NewAccountID().String(),
		Amount:          "not-a-decimal",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_InvalidTargetAccount(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		TransactionType: "DEPOSIT",
		TargetAccountID: "not-a-uuid",
		Amount:          "10.00",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_ValidationErrorFromService(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("Process", mock.Anything, mock.Anything).
		Return(nil, domain.ErrDomainValidation)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		TransactionType: "TRANSFER",
		SourceAccountID: domain.NewAccountID().String(),
		Amount:          "10.00",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateTransaction_ProcessingFailure(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("Process", mock.Anything, mock.Anything).
		Return(nil, domain.ErrProcessingFailed)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		TransactionType: "DEPOSIT",
		TargetAccountID: domain.NewAccountID().String(),
		Amount:          "10.00",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_CreateWithdrawal_Typed(t *testing.T) {
	source := domain.NewAccountID()
	money, err := domain.NewMoneyFromString("30.00")
	require.NoError(t, err)
	tx, err := domain.NewWithdrawal(source, money, "")
	require.NoError(t, err)

	mockSvc := new(mockTransactionService)
	mockSvc.On("Process", mock.Anything, mock.MatchedBy(func(cmd service.CreateTransactionCommand) bool {
		return cmd.Type == domain.TypeWithdrawal &&
			cmd.SourceAccountID != nil && *cmd.SourceAccountID == source
	})).Return(&service.ProcessResult{
		Transaction:      tx,
		Message:          "Transaction processed successfully. Amount: 30.00, Type: WITHDRAWAL",
		BalancePushed:    true,
		NotificationSent: true,
	}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction/withdrawal", CreateWithdrawalBody{
		SourceAccountID: source.String(),
		Amount:          "30.00",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Transaction processed successfully. Amount: 30.00, Type: WITHDRAWAL", body.Message)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransfer_Typed(t *testing.T) {
	source := domain.NewAccountID()
	target := domain.NewAccountID()
	money, err := domain.NewMoneyFromString("75.00")
	require.NoError(t, err)
	tx, err := domain.NewTransfer(source, target, money, "")
	require.NoError(t, err)

	mockSvc := new(mockTransactionService)
	mockSvc.On("Process", mock.Anything, mock.MatchedBy(func(cmd service.CreateTransactionCommand) bool {
		return cmd.Type == domain.TypeTransfer &&
			cmd.SourceAccountID != nil && *cmd.SourceAccountID == source &&
			cmd.TargetAccountID != nil && *cmd.TargetAccountID == target
	})).Return(&service.ProcessResult{Transaction: tx, BalancePushed: true, NotificationSent: true}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/transaction/transfer", CreateTransferBody{
		SourceAccountID: source.String(),
		TargetAccountID: target.String(),
		Amount:          "75.00",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetTransaction(t *testing.T) {
	target := domain.NewAccountID()
	tx := testDeposit(t, target, "100.00")

	mockSvc := new(mockTransactionService)
	mockSvc.On("FindByID", mock.Anything, tx.ID).Return(tx, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/transaction/" + tx.ID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, tx.ID.String(), body.ID)
	assert.Equal(t, target.String(), body.TargetAccountID)
	assert.Empty(t, body.SourceAccountID)
}

func TestHTTP_GetTransaction_NotFound(t *testing.T) {
	id := domain.NewTransactionID()

	mockSvc := new(mockTransactionService)
	mockSvc.On("FindByID", mock.Anything, id).Return(nil, domain.ErrTransactionNotFound)

	resp := newTestAPI(t, mockSvc).Get("/v1/transaction/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_GetTransaction_InvalidID(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma's format:"uuid" schema validation rejects this before the handler runs.
	resp := newTestAPI(t, mockSvc).Get("/v1/transaction/not-a-uuid")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "FindByID")
}

func TestHTTP_ListAccountTransactions(t *testing.T) {
	account := domain.NewAccountID()
	tx := testDeposit(t, account, "100.00")

	mockSvc := new(mockTransactionService)
	mockSvc.On("FindByAccount", mock.Anything, mock.MatchedBy(func(q service.AccountQuery) bool {
		return q.AccountID == account && q.Page == 0 && q.Size == 20 &&
			q.SortBy == "transactionDate" && q.SortDesc
	})).Return(&service.Page[*domain.Transaction]{
		Content:       []*domain.Transaction{tx},
		PageNumber:    0,
		PageSize:      20,
		TotalElements: 1,
		TotalPages:    1,
		First:         true,
		Last:          true,
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/transaction/account/" + account.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body TransactionPage
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Content, 1)
	assert.Equal(t, int64(1), body.TotalElements)
	assert.True(t, body.First)
	assert.True(t, body.Last)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListAccountTransactions_Filters(t *testing.T) {
	account := domain.NewAccountID()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionService)
	mockSvc.On("FindByAccount", mock.Anything, mock.MatchedBy(func(q service.AccountQuery) bool {
		return q.Type != nil && *q.Type == domain.TypeWithdrawal &&
			q.Status != nil && *q.Status == domain.StatusSuccess &&
			q.StartDate != nil && q.StartDate.Equal(start) &&
			q.EndDate != nil && q.EndDate.Equal(end) &&
			q.Page == 2 && q.Size == 50 && !q.SortDesc
	})).Return(&service.Page[*domain.Transaction]{PageSize: 50, PageNumber: 2}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/transaction/account/" + account.String() +
		"?transactionType=WITHDRAWAL&status=SUCCESS&startDate=2026-01-01T00:00:00Z&endDate=2026-02-01T00:00:00Z&page=2&size=50&sortDirection=ASC")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListAccountTransactions_OversizedPage(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma's maximum:"100" schema validation rejects this before the handler runs.
	resp := newTestAPI(t, mockSvc).Get("/v1/transaction/account/" + domain.NewAccountID().String() + "?size=101")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "FindByAccount")
}

func TestHTTP_UpdateStatus_ToFailed(t *testing.T) {
	source := domain.NewAccountID()
	money, err := domain.NewMoneyFromString("30.00")
	require.NoError(t, err)
	tx, err := domain.NewWithdrawal(source, money, "")
	require.NoError(t, err)
	tx.Status = domain.StatusFailed

	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateStatus", mock.Anything, service.UpdateStatusCommand{
		TransactionID: tx.ID,
		Status:        domain.StatusFailed,
		Reason:        "insufficient funds",
	}).Return(tx, nil)

	resp := newTestAPI(t, mockSvc).Put("/v1/transaction/"+tx.ID.String()+"/status", UpdateStatusBody{
		Status: "FAILED",
		Reason: "insufficient funds",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "FAILED", body.Status)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateStatus_IllegalTransition(t *testing.T) {
	id := domain.NewTransactionID()

	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateStatus", mock.Anything, mock.Anything).
		Return(nil, domain.ErrIllegalStatusTransition)

	resp := newTestAPI(t, mockSvc).Put("/v1/transaction/"+id.String()+"/status", UpdateStatusBody{
		Status: "SUCCESS",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_UpdateStatus_UnknownStatus(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma enum validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Put("/v1/transaction/"+domain.NewTransactionID().String()+"/status", map[string]any{
		"status": "CANCELLED",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdateStatus")
}
