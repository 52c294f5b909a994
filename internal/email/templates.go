package email

import "fmt"

// WelcomeEmail builds the message sent after registration.
func WelcomeEmail(username string) (subject, htmlBody string) {
	subject = "Welcome to pitchplan"
	htmlBody = fmt.Sprintf(`
<h2>Welcome, %s!</h2>
<p>Your account is ready. You can generate up to 5 training sessions per month
on the free plan, or upgrade to Pro for unlimited sessions.</p>
<p>Good luck on the pitch.</p>`, username)
	return subject, htmlBody
}

// UpgradeEmail builds the message sent after a plan upgrade.
func UpgradeEmail(username string) (subject, htmlBody string) {
	subject = "You're on Pro"
	htmlBody = fmt.Sprintf(`
<h2>Thanks, %s!</h2>
<p>Your Pro subscription is active. Session generation is now unlimited.</p>`, username)
	return subject, htmlBody
}
