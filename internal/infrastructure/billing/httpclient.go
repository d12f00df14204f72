package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/webloom-dev/webloom/internal/shared/config"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// HTTPClient talks to the processor's REST API with bearer auth. Request
// and response shapes follow the processor's JSON conventions.
type HTTPClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  logger.Interface
}

func NewHTTPClient(cfg *config.BillingConfig, log logger.Interface) *HTTPClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		logger:  log.Named("billing"),
	}
}

// apiError is the processor's error envelope.
type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("processor request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error.Message != "" {
			c.logger.Warnw("processor rejected request",
				"method", method, "path", path,
				"status", resp.StatusCode, "code", apiErr.Error.Code)
			return fmt.Errorf("processor error %s: %s", apiErr.Error.Code, apiErr.Error.Message)
		}
		return fmt.Errorf("processor returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) CreateIntent(ctx context.Context, req CreateIntentRequest) (*Intent, error) {
	var intent Intent
	payload := map[string]interface{}{
		"order_no":    req.OrderNo,
		"customer":    req.CustomerRef,
		"amount":      req.Amount,
		"currency":    req.Currency,
		"description": req.Description,
		"metadata":    req.Metadata,
	}
	if err := c.do(ctx, http.MethodPost, "/v1/intents", payload, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

func (c *HTTPClient) ConfirmIntent(ctx context.Context, intentRef string) (*Intent, error) {
	var intent Intent
	path := "/v1/intents/" + url.PathEscape(intentRef) + "/confirm"
	if err := c.do(ctx, http.MethodPost, path, nil, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

func (c *HTTPClient) CancelIntent(ctx context.Context, intentRef string) (*Intent, error) {
	var intent Intent
	path := "/v1/intents/" + url.PathEscape(intentRef) + "/cancel"
	if err := c.do(ctx, http.MethodPost, path, nil, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

func (c *HTTPClient) Refund(ctx context.Context, req RefundRequest) (*Refund, error) {
	var refund Refund
	payload := map[string]interface{}{
		"intent": req.IntentRef,
		"amount": req.Amount,
		"reason": req.Reason,
	}
	if err := c.do(ctx, http.MethodPost, "/v1/refunds", payload, &refund); err != nil {
		return nil, err
	}
	return &refund, nil
}

func (c *HTTPClient) CreateSubscription(ctx context.Context, req SubscriptionRequest) (*Subscription, error) {
	var sub Subscription
	payload := map[string]interface{}{
		"customer": req.CustomerRef,
		"plan":     req.PlanCode,
	}
	if req.CouponCode != "" {
		payload["coupon"] = req.CouponCode
	}
	if err := c.do(ctx, http.MethodPost, "/v1/subscriptions", payload, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *HTTPClient) CancelSubscription(ctx context.Context, subscriptionRef string) (*Subscription, error) {
	var sub Subscription
	path := "/v1/subscriptions/" + url.PathEscape(subscriptionRef)
	if err := c.do(ctx, http.MethodDelete, path, nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *HTTPClient) ApplyCoupon(ctx context.Context, req CouponRequest) (*CouponResult, error) {
	var result CouponResult
	path := "/v1/subscriptions/" + url.PathEscape(req.SubscriptionRef) + "/coupon"
	payload := map[string]interface{}{"coupon": req.CouponCode}
	if err := c.do(ctx, http.MethodPost, path, payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) ListInvoices(ctx context.Context, customerRef string, limit int) ([]Invoice, error) {
	var out struct {
		Data []Invoice `json:"data"`
	}
	path := "/v1/invoices?customer=" + url.QueryEscape(customerRef) + "&limit=" + strconv.Itoa(limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *HTTPClient) ListPaymentMethods(ctx context.Context, customerRef string) ([]PaymentMethod, error) {
	var out struct {
		Data []PaymentMethod `json:"data"`
	}
	path := "/v1/customers/" + url.PathEscape(customerRef) + "/payment_methods"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *HTTPClient) AttachPaymentMethod(ctx context.Context, customerRef, methodRef string) (*PaymentMethod, error) {
	var method PaymentMethod
	path := "/v1/customers/" + url.PathEscape(customerRef) + "/payment_methods"
	payload := map[string]interface{}{"method": methodRef}
	if err := c.do(ctx, http.MethodPost, path, payload, &method); err != nil {
		return nil, err
	}
	return &method, nil
}

// EnsureCustomer creates the processor-side customer on first use and
// returns its reference. The processor deduplicates by email.
func (c *HTTPClient) EnsureCustomer(ctx context.Context, email string) (string, error) {
	var out struct {
		Ref string `json:"ref"`
	}
	payload := map[string]interface{}{"email": email}
	if err := c.do(ctx, http.MethodPost, "/v1/customers", payload, &out); err != nil {
		return "", err
	}
	return out.Ref, nil
}
