package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"rebooks/pkg/logger"
)

// StripePaymentService - Stripe payment intents over the HTTP API
type StripePaymentService struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

func NewStripePaymentService(secretKey string) *StripePaymentService {
	return &StripePaymentService{
		secretKey: secretKey,
		baseURL:   "https://api.stripe.com/v1",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type stripeIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

type stripeErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *StripePaymentService) CreateIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntent, error) {
	logger.Debug("Creating payment intent for order %s, amount %d", req.OrderID, req.Amount)

	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid amount: %d", req.Amount)
	}

	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	// Stripe takes form-encoded bodies
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(req.Amount, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")
	if req.Email != "" {
		form.Set("receipt_email", req.Email)
	}
	if req.OrderID != "" {
		form.Set("metadata[order_id]", req.OrderID)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+s.secretKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var stripeErr stripeErrorResponse
		if err := json.Unmarshal(body, &stripeErr); err == nil && stripeErr.Error.Message != "" {
			logger.Error("Stripe API error: %s (%s)", stripeErr.Error.Message, stripeErr.Error.Code)
			return nil, fmt.Errorf("stripe API error: %s", stripeErr.Error.Message)
		}
		return nil, fmt.Errorf("stripe API error: %s", string(body))
	}

	var intentResp stripeIntentResponse
	if err := json.Unmarshal(body, &intentResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	logger.Debug("Payment intent created: %s", intentResp.ID)

	return &PaymentIntent{
		ID:           intentResp.ID,
		ClientSecret: intentResp.ClientSecret,
		Amount:       intentResp.Amount,
		Currency:     intentResp.Currency,
		Status:       intentResp.Status,
	}, nil
}

// WithBaseURL points the client at a different API host. Used by tests.
func (s *StripePaymentService) WithBaseURL(baseURL string) *StripePaymentService {
	s.baseURL = baseURL
	return s
}
