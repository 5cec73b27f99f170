// ABOUTME: Email worker handles background delivery of queued emails
// ABOUTME: Provides a managed worker pool with bounded retries per job

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"inkwell-api/core/interfaces"
)

// emailJob wraps a queued email with its retry counter.
type emailJob struct {
	interfaces.EmailJob
	attempts int
}

// EmailWorker manages background email delivery. It implements
// interfaces.TaskQueue: enqueued jobs are delivered at least once, with no
// result tracking exposed to callers.
type EmailWorker struct {
	mailer     interfaces.Mailer
	logger     interfaces.Logger
	jobQueue   chan *emailJob
	maxWorkers int
	maxRetries int
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.Mutex
	running    bool
}

// WorkerConfig holds configuration for the email worker
type WorkerConfig struct {
	MaxWorkers int
	QueueSize  int
	MaxRetries int
}

// DefaultWorkerConfig returns the default worker configuration
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		MaxWorkers: 4,
		QueueSize:  100,
		MaxRetries: 3,
	}
}

// NewEmailWorker creates a new email worker
func NewEmailWorker(mailer interfaces.Mailer, logger interfaces.Logger, config WorkerConfig) *EmailWorker {
	ctx, cancel := context.WithCancel(context.Background())

	if config.MaxWorkers <= 0 {
		config.MaxWorkers = DefaultWorkerConfig().MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultWorkerConfig().QueueSize
	}
	if config.MaxRetries <= 0 {
		config.MaxRetries = DefaultWorkerConfig().MaxRetries
	}

	return &EmailWorker{
		mailer:     mailer,
		logger:     logger,
		jobQueue:   make(chan *emailJob, config.QueueSize),
		maxWorkers: config.MaxWorkers,
		maxRetries: config.MaxRetries,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start starts the worker pool
func (w *EmailWorker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	for i := 0; i < w.maxWorkers; i++ {
		w.wg.Add(1)
		go w.run()
	}

	w.running = true
	return nil
}

// Stop stops the worker pool gracefully, draining queued jobs.
func (w *EmailWorker) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.mu.Unlock()

	close(w.jobQueue)
	w.wg.Wait()
	w.cancel()
	return nil
}

// Enqueue accepts an email for out-of-band delivery. It fails only when the
// queue is full or the worker is stopped.
func (w *EmailWorker) Enqueue(job interfaces.EmailJob) error {
	w.mu.Lock()
	running := w.running
	w.mu.Unlock()
	if !running {
		return errors.New("email worker is not running")
	}

	select {
	case w.jobQueue <- &emailJob{EmailJob: job}:
		return nil
	default:
		return errors.New("email queue is full")
	}
}

// run is the worker goroutine loop.
func (w *EmailWorker) run() {
	defer w.wg.Done()

	for job := range w.jobQueue {
		w.deliver(job)
	}
}

// deliver sends one email, retrying with a short backoff up to the retry cap.
func (w *EmailWorker) deliver(job *emailJob) {
	for {
		ctx, cancel := context.WithTimeout(w.ctx, 30*time.Second)
		err := w.mailer.Send(ctx, job.To, job.Subject, job.Body)
		cancel()

		if err == nil {
			if w.logger != nil {
				w.logger.Debug("Email delivered", map[string]interface{}{
					"to":      job.To,
					"subject": job.Subject,
				})
			}
			return
		}

		job.attempts++
		if job.attempts >= w.maxRetries {
			if w.logger != nil {
				w.logger.Error("Dropping email after repeated failures", map[string]interface{}{
					"to":       job.To,
					"subject":  job.Subject,
					"attempts": job.attempts,
					"error":    err.Error(),
				})
			}
			return
		}

		if w.logger != nil {
			w.logger.Warn("Email delivery failed, retrying", map[string]interface{}{
				"to":       job.To,
				"attempts": job.attempts,
				"error":    err.Error(),
			})
		}

		select {
		case <-w.ctx.Done():
			return
		case <-time.After(time.Duration(job.attempts) * time.Second):
		}
	}
}
