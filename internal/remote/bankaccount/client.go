package bankaccount

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/capbank/transaction-server/internal/domain"
	"github.com/capbank/transaction-server/internal/service"
)

// Client talks to the bank-account service. All calls run through a circuit
// breaker so a dead downstream fails fast instead of tying up request
// goroutines on timeouts.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "bankaccount-service",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
		logger: logger,
	}
}

// GetBalance resolves the account's number and fetches its current balance.
func (c *Client) GetBalance(ctx context.Context, accountID domain.AccountID) (domain.Money, error) {
	value, err := c.breaker.Execute(func() (interface{}, error) {
		number, err := c.fetchAccountNumber(ctx, accountID)
		if err != nil {
			return nil, err
		}
		return c.fetchBalance(ctx, number)
	})
	if err != nil {
		return domain.Money{}, fmt.Errorf("%w: resolve balance for account %v: %v", domain.ErrRemoteService, accountID, err)
	}
	return value.(domain.Money), nil
}

// ApplyDelta adds or subtracts amount on the stored balance in one remote
// call.
func (c *Client) ApplyDelta(ctx context.Context, accountID domain.AccountID, amount domain.Money, operation service.BalanceOperation) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		number, err := c.fetchAccountNumber(ctx, accountID)
		if err != nil {
			return nil, err
		}
		return nil, c.postDelta(ctx, number, amount, operation)
	})
	if err != nil {
		return fmt.Errorf("%w: apply balance delta for account %v: %v", domain.ErrRemoteService, accountID, err)
	}
	return nil
}

type accountResponse struct {
	AccountNumber string `json:"accountNumber"`
}

func (c *Client) fetchAccountNumber(ctx context.Context, accountID domain.AccountID) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/bankaccount/%v", c.baseURL, accountID), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("account lookup returned status %d", resp.StatusCode)
	}

	var account accountResponse
	if err = json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return "", err
	}
	if account.AccountNumber == "" {
		return "", errors.New("account lookup returned no account number")
	}
	return account.AccountNumber, nil
}

func (c *Client) fetchBalance(ctx context.Context, accountNumber string) (domain.Money, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/bankaccount/%s/balance", c.baseURL, accountNumber), nil)
	if err != nil {
		return domain.Money{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Money{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Money{}, fmt.Errorf("balance lookup returned status %d", resp.StatusCode)
	}

	var balance decimal.Decimal
	if err = json.NewDecoder(resp.Body).Decode(&balance); err != nil {
		return domain.Money{}, err
	}
	return domain.NewMoney(balance)
}

type deltaRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Operation string          `json:"operation"`
}

func (c *Client) postDelta(ctx context.Context, accountNumber string, amount domain.Money, operation service.BalanceOperation) error {
	body, err := json.Marshal(deltaRequest{Amount: amount.Amount(), Operation: string(operation)})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/api/bankaccount/%s/balance/delta", c.baseURL, accountNumber), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("balance delta returned status %d", resp.StatusCode)
	}
	return nil
}
