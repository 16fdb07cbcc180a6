package service

import (
	"context"
	"fmt"

	"petboard/internal/payment"
)

// CheckoutService opens hosted payment sessions. No local record of the
// attempt is kept; reconciliation belongs to the gateway.
type CheckoutService interface {
	CreateCheckoutSession(ctx context.Context, customerEmail string) (redirectURL string, err error)
}

type checkoutService struct {
	gateway payment.Gateway
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(gateway payment.Gateway) CheckoutService {
	return &checkoutService{gateway: gateway}
}

// CreateCheckoutSession asks the gateway for a hosted session scoped to the
// caller's email and returns the URL the caller should be redirected to.
func (s *checkoutService) CreateCheckoutSession(ctx context.Context, customerEmail string) (string, error) {
	session, err := s.gateway.CreateCheckoutSession(ctx, customerEmail)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return session.URL, nil
}
