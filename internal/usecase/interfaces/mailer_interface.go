package interfaces

import "context"

// IMailer abstracts the outbound notification channel (e.g. AWS SES).
//
// Delivery failures are logged by callers and never block or roll back
// the workflow operation that triggered the mail.
type IMailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
