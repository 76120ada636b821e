package services

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Notifier sends a best-effort email to the concierge team when a new
// submission lands. It never affects the HTTP response: callers fire it in
// a goroutine and failures are only logged.
type Notifier struct {
	apiKey string
	email  string
}

func NewNotifier(apiKey, email string) *Notifier {
	return &Notifier{apiKey: apiKey, email: email}
}

// Enabled reports whether both the SendGrid key and a recipient are set.
func (n *Notifier) Enabled() bool {
	return n != nil && n.apiKey != "" && n.email != ""
}

// SubmissionReceived emails a short summary of a new inquiry or service
// request. Safe to call on a disabled notifier; meant to run in its own
// goroutine.
func (n *Notifier) SubmissionReceived(kind, id, summary string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("notify panic recovered")
		}
	}()

	if !n.Enabled() {
		return
	}

	subject := fmt.Sprintf("[Concierge] New %s (%s)", kind, id)
	body := fmt.Sprintf("A new %s was submitted.\n\n%s\n\nID: %s", kind, summary, id)

	from := mail.NewEmail("Nicholas Concierge", n.email)
	to := mail.NewEmail("Concierge Team", n.email)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	resp, err := sendgrid.NewSendClient(n.apiKey).Send(message)
	if err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("notification email failed")
		return
	}
	if resp.StatusCode >= 400 {
		log.Error().Int("status", resp.StatusCode).Str("kind", kind).Msg("notification email rejected")
		return
	}
	log.Info().Str("kind", kind).Str("id", id).Msg("notification email sent")
}
