package services

import "pitchplan_backend/internal/email"

// ServiceContainer holds all application services.
type ServiceContainer struct {
	AuthService       AuthService
	QuotaService      QuotaService
	GenerationService GenerationService
	SessionService    SessionService
	UserService       UserService
	BillingService    BillingService
	EmailService      email.Provider
}
