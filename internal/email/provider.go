// Package email sends transactional mail. The SMTP provider is optional;
// when no SMTP host is configured the app wires a logging mock instead.
package email

// Provider sends a single HTML email.
type Provider interface {
	Send(to, subject, htmlBody string) error
}
