package worker

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/techsummit/backend/pkg/queue"
)

// DequeueTimeout is how long one poll of the queue blocks.
const DequeueTimeout = 5 * time.Second

type jobQueue interface {
	Dequeue(ctx context.Context, timeout time.Duration) (*queue.Job, error)
	Retry(ctx context.Context, job *queue.Job) error
}

// ConfirmationProcessor delivers confirmation emails for accepted submissions.
type ConfirmationProcessor struct {
	queue   jobQueue
	mailer  Mailer
	logger  *zap.Logger
	backoff time.Duration
}

// NewConfirmationProcessor creates a confirmation email processor.
func NewConfirmationProcessor(q jobQueue, mailer Mailer, logger *zap.Logger) *ConfirmationProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfirmationProcessor{queue: q, mailer: mailer, logger: logger, backoff: queue.RetryBackoff}
}

// Process executes one confirmation job.
func (p *ConfirmationProcessor) Process(ctx context.Context, job *queue.Job) error {
	payload, err := queue.DecodeConfirmation(job)
	if err != nil {
		return err
	}
	if payload.RecipientEmail == "" {
		p.logger.Warn("confirmation without recipient dropped", zap.String("job_id", job.ID), zap.String("token", payload.Token))
		return nil
	}
	msg := Message{
		To:      payload.RecipientEmail,
		ToName:  payload.RecipientName,
		Subject: payload.Subject,
		Body:    payload.Body,
	}
	if err := p.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send confirmation %s: %w", payload.Token, err)
	}
	p.logger.Info("confirmation sent",
		zap.String("job_id", job.ID),
		zap.String("kind", payload.Kind),
		zap.String("token", payload.Token),
	)
	return nil
}

// Run starts the worker loop: dequeue, process, retry on error.
func (p *ConfirmationProcessor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("confirmation worker stopping")
			return
		default:
		}

		job, err := p.queue.Dequeue(ctx, DequeueTimeout)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			p.logger.Warn("dequeue error", zap.Error(err))
			p.sleep(ctx)
			continue
		}
		if job == nil {
			continue
		}

		p.logger.Debug("processing job", zap.String("job_id", job.ID), zap.String("type", string(job.Type)))
		if err := p.Process(ctx, job); err != nil {
			p.logger.Error("job failed", zap.String("job_id", job.ID), zap.Int("attempt", job.Attempt), zap.Error(err))
			if reErr := p.queue.Retry(ctx, job); reErr != nil {
				p.logger.Error("retry enqueue failed", zap.Error(reErr))
			}
			p.sleep(ctx)
		}
	}
}

func (p *ConfirmationProcessor) sleep(ctx context.Context) {
	t := time.NewTimer(p.backoff)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
