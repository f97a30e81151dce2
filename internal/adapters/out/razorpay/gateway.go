// Package razorpay implements the payment gateway port against the Razorpay
// REST API. The gateway is an optional capability: without configured
// credentials every operation reports the dependency as unavailable.
package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"farmlink/internal/core/ports"
	"farmlink/internal/pkg/errs"
)

const (
	defaultBaseURL = "https://api.razorpay.com/v1"
	defaultTimeout = 10 * time.Second

	currency = "INR"
)

var _ ports.PaymentGateway = &Gateway{}

// Gateway talks to Razorpay over HTTPS using basic auth with the key pair.
type Gateway struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

// NewGateway creates a gateway with the given credentials. Empty credentials
// are allowed and produce an unavailable gateway.
func NewGateway(keyID, keySecret string) *Gateway {
	return &Gateway{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   defaultBaseURL,
		client:    &http.Client{Timeout: defaultTimeout},
	}
}

// IsAvailable reports whether credentials are configured.
func (g *Gateway) IsAvailable() bool {
	return g.keyID != "" && g.keySecret != ""
}

// CreatePaymentOrder opens a payment order for the given amount in rupees and
// returns Razorpay's order reference. Razorpay counts amounts in paise.
func (g *Gateway) CreatePaymentOrder(ctx context.Context, amount float64, receipt string) (string, error) {
	if !g.IsAvailable() {
		return "", errs.NewDependencyUnavailableError("payment gateway")
	}
	if amount <= 0 {
		return "", errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not greater than 0", amount))
	}

	payload := map[string]any{
		"amount":   int64(amount * 100),
		"currency": currency,
		"receipt":  receipt,
	}

	var response struct {
		ID string `json:"id"`
	}
	if err := g.post(ctx, "/orders", payload, &response); err != nil {
		return "", err
	}

	return response.ID, nil
}

// VerifySignature checks the callback signature Razorpay computes as
// HMAC-SHA256 over "<order ref>|<payment ref>" with the key secret.
func (g *Gateway) VerifySignature(gatewayOrderRef, paymentRef, signature string) error {
	if !g.IsAvailable() {
		return errs.NewDependencyUnavailableError("payment gateway")
	}

	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(gatewayOrderRef + "|" + paymentRef))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return errs.NewUnauthorizedError("verify payment signature")
	}
	return nil
}

// Refund issues a refund against a captured payment.
func (g *Gateway) Refund(ctx context.Context, paymentRef string, amount float64) error {
	if !g.IsAvailable() {
		return errs.NewDependencyUnavailableError("payment gateway")
	}
	if paymentRef == "" {
		return errs.NewValueIsRequiredError("paymentRef")
	}
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not greater than 0", amount))
	}

	payload := map[string]any{
		"amount": int64(amount * 100),
	}

	path := fmt.Sprintf("/payments/%s/refund", paymentRef)
	return g.post(ctx, path, payload, &struct{}{})
}

func (g *Gateway) post(ctx context.Context, path string, payload any, response any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.SetBasicAuth(g.keyID, g.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return errs.NewDependencyUnavailableErrorWithCause("payment gateway", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.NewDependencyUnavailableErrorWithCause("payment gateway",
			fmt.Errorf("razorpay returned status %d", resp.StatusCode))
	}

	return json.NewDecoder(resp.Body).Decode(response)
}
