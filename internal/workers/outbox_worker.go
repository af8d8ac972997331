package workers

import (
	"context"
	"encoding/json"
	"time"

	"petlink_backend/internal/email"
	"petlink_backend/internal/logger"
	"petlink_backend/internal/models"
	"petlink_backend/internal/repositories"
	"petlink_backend/internal/services"
	"petlink_backend/pkg/apperrors"
)

// OutboxWorker drains queued advisory emails. Rows are written by the
// notification service in the same transaction as their notification; this
// worker is the only sender, so SMTP downtime delays emails but never loses
// notifications.
type OutboxWorker struct {
	outboxRepo  repositories.OutboxRepository
	mailer      *services.EmailService
	interval    time.Duration
	batchSize   int
	maxAttempts int
}

func NewOutboxWorker(
	outboxRepo repositories.OutboxRepository,
	mailer *services.EmailService,
	interval time.Duration,
	batchSize int,
	maxAttempts int,
) *OutboxWorker {
	return &OutboxWorker{
		outboxRepo:  outboxRepo,
		mailer:      mailer,
		interval:    interval,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
	}
}

// Start launches the drain loop. It returns immediately; the loop stops when
// ctx is cancelled.
func (w *OutboxWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *OutboxWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("outbox worker stopped")
			return
		case <-ticker.C:
			w.drainOnce(ctx)
		}
	}
}

func (w *OutboxWorker) drainOnce(ctx context.Context) {
	entries, err := w.outboxRepo.FindPending(w.batchSize)
	if err != nil {
		logger.WorkerLog("outbox", "find pending", err)
		return
	}
	if len(entries) == 0 {
		return
	}

	sent := 0
	for i := range entries {
		if ctx.Err() != nil {
			return
		}
		if w.sendOne(ctx, &entries[i]) {
			sent++
		}
	}

	logger.Info("outbox drain pass finished",
		"picked", len(entries), "sent", sent)
}

func (w *OutboxWorker) sendOne(ctx context.Context, entry *models.EmailOutbox) bool {
	data := email.TemplateData{}
	if len(entry.Data) > 0 {
		if err := json.Unmarshal(entry.Data, &data); err != nil {
			// Unparseable payload never becomes sendable; park it.
			if markErr := w.outboxRepo.MarkFailedAttempt(entry.ID, err, entry.Attempts+1); markErr != nil {
				logger.WorkerLog("outbox", "mark failed", markErr)
			}
			return false
		}
	}

	if err := w.mailer.SendTemplatedEmail(ctx, []string{entry.Recipient}, entry.Subject, entry.Template, data); err != nil {
		// Classify before recording, so last_error carries the code.
		deliveryErr := apperrors.EmailDeliveryError(err)
		logger.WithError(deliveryErr).Warn("outbox email delivery failed",
			"outbox_id", entry.ID, "attempts", entry.Attempts+1)
		if markErr := w.outboxRepo.MarkFailedAttempt(entry.ID, deliveryErr, w.maxAttempts); markErr != nil {
			logger.WorkerLog("outbox", "mark failed", markErr)
		}
		return false
	}

	if err := w.outboxRepo.MarkSent(entry.ID); err != nil {
		logger.WorkerLog("outbox", "mark sent", err)
		return false
	}
	return true
}
