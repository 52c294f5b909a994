package app

import "pitchplan_backend/internal/logger"

// MockEmailProvider logs instead of sending. Used when SMTP is not
// configured.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(to, subject, _ string) error {
	logger.Info("[mock email] message suppressed", "to", to, "subject", subject)
	return nil
}
