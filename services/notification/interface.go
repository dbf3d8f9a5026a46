package notification

// Mailer defines the outbound email capability. Callers in the payment
// workflow treat Send as best-effort: a failed send is logged and never
// fails the surrounding operation.
type Mailer interface {
	Send(to, subject, textBody, htmlBody string) error
}
