// ABOUTME: Task queue and mailer contracts for background side effects
// ABOUTME: Email delivery is fire-and-forget, at-least-once, no result tracking

package interfaces

import "context"

// EmailJob describes one email to be delivered out-of-band.
type EmailJob struct {
	To      string
	Subject string
	Body    string
}

// TaskQueue accepts side-effecting work for out-of-band execution.
// Enqueue returns an error only when the job cannot be accepted (queue full
// or stopped); delivery failures are handled inside the queue.
type TaskQueue interface {
	Enqueue(job EmailJob) error
}

// Mailer delivers a single email synchronously.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
