package services

import (
	"context"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/customer"
	"github.com/stripe/stripe-go/v79/subscription"

	"pitchplan_backend/internal/email"
	"pitchplan_backend/internal/logger"
	"pitchplan_backend/internal/repositories"
	"pitchplan_backend/internal/services/dto"
	"pitchplan_backend/pkg/apperrors"
)

// BillingService creates Stripe subscriptions for plan upgrades. The client
// completes payment with the returned client secret; the plan is switched to
// pro and the limit lifted as soon as the subscription is created.
type BillingService interface {
	CreateSubscription(ctx context.Context, userID string) (*dto.SubscriptionResponse, error)
}

type BillingServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	priceID       string
}

// NewBillingService wires Stripe with the given secret key. The key is set
// on the package-level stripe client, as the SDK expects.
func NewBillingService(userRepo repositories.UserRepository, emailProvider email.Provider, secretKey, priceID string) BillingService {
	stripe.Key = secretKey
	return &BillingServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		priceID:       priceID,
	}
}

func (s *BillingServiceImpl) CreateSubscription(ctx context.Context, userID string) (*dto.SubscriptionResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewUnauthorizedError("Authentication required")
		}
		return nil, apperrors.InternalError(err)
	}

	// An existing subscription is returned as-is so the client can resume
	// an incomplete payment.
	if user.StripeSubscriptionID != "" {
		params := &stripe.SubscriptionParams{}
		params.AddExpand("latest_invoice.payment_intent")
		sub, err := subscription.Get(user.StripeSubscriptionID, params)
		if err == nil {
			return &dto.SubscriptionResponse{
				SubscriptionID: sub.ID,
				ClientSecret:   clientSecret(sub),
			}, nil
		}
		logger.CtxWithError(ctx, "failed to retrieve existing subscription", err,
			"subscription_id", user.StripeSubscriptionID)
	}

	if user.Email == "" {
		return nil, apperrors.NewBadRequestError("User email is required for subscription")
	}

	cust, err := customer.New(&stripe.CustomerParams{
		Email: stripe.String(user.Email),
		Name:  stripe.String(user.Username),
	})
	if err != nil {
		return nil, apperrors.ErrPaymentFailed(err, stripeMessage(err))
	}

	if _, err := s.userRepo.UpdateStripeInfo(user.ID, cust.ID, ""); err != nil {
		return nil, apperrors.InternalError(err)
	}

	subParams := &stripe.SubscriptionParams{
		Customer: stripe.String(cust.ID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(s.priceID)},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
	}
	subParams.AddExpand("latest_invoice.payment_intent")

	sub, err := subscription.New(subParams)
	if err != nil {
		return nil, apperrors.ErrPaymentFailed(err, stripeMessage(err))
	}

	updated, err := s.userRepo.UpdateStripeInfo(user.ID, cust.ID, sub.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "subscription created",
		"user_id", user.ID, "subscription_id", sub.ID, "plan", updated.PlanType)

	go func() {
		subject, body := email.UpgradeEmail(updated.Username)
		if err := s.emailProvider.Send(updated.Email, subject, body); err != nil {
			logger.WithError(err).Warn("failed to send upgrade email", "user_id", updated.ID)
		}
	}()

	return &dto.SubscriptionResponse{
		SubscriptionID: sub.ID,
		ClientSecret:   clientSecret(sub),
	}, nil
}

func clientSecret(sub *stripe.Subscription) string {
	if sub.LatestInvoice != nil && sub.LatestInvoice.PaymentIntent != nil {
		return sub.LatestInvoice.PaymentIntent.ClientSecret
	}
	return ""
}

// stripeMessage extracts a user-presentable message from a provider error.
func stripeMessage(err error) string {
	if stripeErr, ok := err.(*stripe.Error); ok && stripeErr.Msg != "" {
		return stripeErr.Msg
	}
	return "Payment provider error"
}
