package service

import (
	"context"
)

// Mailer delivers notification emails. Implementations are best-effort: the
// request path never blocks on or fails because of a send.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
