package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/capbank/transaction-server/internal/service"
)

// Client delivers transaction notifications over HTTP. Delivery is
// best-effort: every failure is logged and reported as false so callers
// never abort on an unreachable notification service.
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
			Name:    "notification-service",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
		logger: logger,
	}
}

type notificationRequest struct {
	AccountID        string          `json:"accountId"`
	TransactionID    string          `json:"transactionId"`
	NotificationType string          `json:"notificationType"`
	Channel          string          `json:"channel"`
	Title            string          `json:"title"`
	Message          string          `json:"message"`
	TransactionType  string          `json:"transactionType"`
	Amount           decimal.Decimal `json:"amount"`
}

func (c *Client) Send(ctx context.Context, n service.TransactionNotification) bool {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.post(ctx, n)
	})
	if err != nil {
		c.logger.WithError(err).
			WithField("transactionId", n.TransactionID).
			Warn("NotificationClient.Send.Failed")
		return false
	}
	return true
}

func (c *Client) post(ctx context.Context, n service.TransactionNotification) error {
	body, err := json.Marshal(notificationRequest{
		AccountID:        n.AccountID.String(),
		TransactionID:    n.TransactionID.String(),
		NotificationType: "TRANSACTION",
		Channel:          "EMAIL",
		Title:            n.Title,
		Message:          n.Message,
		TransactionType:  string(n.TransactionType),
		Amount:           n.Amount.Amount(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/notification", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notification service returned status %d", resp.StatusCode)
	}
	return nil
}
