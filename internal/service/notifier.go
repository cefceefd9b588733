package service

import "github.com/rs/zerolog/log"

// Notifier sends a transactional email. Implementations must not block the
// pipeline: the engine calls Send after the mutation is committed and treats
// any failure as non-fatal.
type Notifier interface {
	Send(to, subject, htmlBody string) error
}

// notify is the single fire-and-forget path for all lifecycle notifications.
// A missing recipient or transport failure is logged and swallowed — the
// originating mutation is already committed.
func notify(n Notifier, to, subject, htmlBody string) {
	if n == nil || to == "" {
		return
	}
	if err := n.Send(to, subject, htmlBody); err != nil {
		log.Error().Err(err).Str("to", to).Str("subject", subject).
			Msg("notification non envoyée")
	}
}
