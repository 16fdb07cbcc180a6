package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// CheckoutSession is a hosted payment session created by the gateway.
// URL is the externally hosted page the user is redirected to.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Gateway creates hosted checkout sessions.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, customerEmail string) (*CheckoutSession, error)
}

// Client talks to the Stripe Checkout Sessions API.
type Client struct {
	http       *http.Client
	apiURL     string
	secretKey  string
	priceID    string
	successURL string
	cancelURL  string
}

// Ensure Client implements Gateway
var _ Gateway = (*Client)(nil)

// NewClient builds a gateway client. canonicalURL is the application's public
// base URL; success and cancel destinations are derived from it.
func NewClient(apiURL, secretKey, priceID, canonicalURL string) *Client {
	base := strings.TrimRight(canonicalURL, "/")
	return &Client{
		http:       &http.Client{Timeout: defaultTimeout},
		apiURL:     strings.TrimRight(apiURL, "/"),
		secretKey:  secretKey,
		priceID:    priceID,
		successURL: base + "/payment?success=true",
		cancelURL:  base + "/payment?canceled=true",
	}
}

// CreateCheckoutSession opens a hosted payment session for a single
// fixed-price item scoped to the customer's email.
func (c *Client) CreateCheckoutSession(ctx context.Context, customerEmail string) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("customer_email", customerEmail)
	form.Set("line_items[0][price]", c.priceID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("mode", "payment")
	form.Set("success_url", c.successURL)
	form.Set("cancel_url", c.cancelURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("create checkout session: status=%d", resp.StatusCode)
	}

	var session CheckoutSession
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("decode checkout session: %w", err)
	}
	if session.URL == "" {
		return nil, fmt.Errorf("checkout session has no url")
	}
	return &session, nil
}
