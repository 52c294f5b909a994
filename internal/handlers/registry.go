package handlers

// AppHandlers holds all HTTP handlers.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	SessionHandler *SessionHandler
	UserHandler    *UserHandler
	BillingHandler *BillingHandler
}
