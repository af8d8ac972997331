package workers

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"petlink_backend/internal/email"
	"petlink_backend/internal/models"
	"petlink_backend/internal/services"
	"petlink_backend/pkg/apperrors"
)

type fakeOutboxRepo struct {
	entries []models.EmailOutbox
}

func (r *fakeOutboxRepo) add(recipient, subject, template string, data string) *models.EmailOutbox {
	entry := models.EmailOutbox{
		Recipient: recipient,
		Subject:   subject,
		Template:  template,
		Data:      datatypes.JSON(data),
		Status:    models.OutboxStatusPending,
	}
	entry.ID = fmt.Sprintf("outbox-%d", len(r.entries)+1)
	r.entries = append(r.entries, entry)
	return &r.entries[len(r.entries)-1]
}

func (r *fakeOutboxRepo) FindPending(limit int) ([]models.EmailOutbox, error) {
	pending := []models.EmailOutbox{}
	for _, e := range r.entries {
		if e.Status != models.OutboxStatusPending {
			continue
		}
		pending = append(pending, e)
		if limit > 0 && len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (r *fakeOutboxRepo) MarkSent(id string) error {
	for i := range r.entries {
		if r.entries[i].ID == id {
			now := time.Now()
			r.entries[i].Status = models.OutboxStatusSent
			r.entries[i].SentAt = &now
			return nil
		}
	}
	return errors.New("outbox entry not found")
}

func (r *fakeOutboxRepo) MarkFailedAttempt(id string, sendErr error, maxAttempts int) error {
	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries[i].Attempts++
			r.entries[i].LastError = sendErr.Error()
			if r.entries[i].Attempts >= maxAttempts {
				r.entries[i].Status = models.OutboxStatusFailed
			}
			return nil
		}
	}
	return errors.New("outbox entry not found")
}

func (r *fakeOutboxRepo) find(id string) *models.EmailOutbox {
	for i := range r.entries {
		if r.entries[i].ID == id {
			return &r.entries[i]
		}
	}
	return nil
}

type fakeProvider struct {
	sent     []*email.Email
	failWith error
}

func (p *fakeProvider) Send(msg *email.Email) error {
	if p.failWith != nil {
		return p.failWith
	}
	p.sent = append(p.sent, msg)
	return nil
}

func (p *fakeProvider) SendWithTemplate(templateName string, data email.TemplateData, msg *email.Email) error {
	if p.failWith != nil {
		return p.failWith
	}
	p.sent = append(p.sent, msg)
	return nil
}

func (p *fakeProvider) Validate() error { return nil }

func newWorkerFixture(maxAttempts int) (*OutboxWorker, *fakeOutboxRepo, *fakeProvider) {
	repo := &fakeOutboxRepo{}
	provider := &fakeProvider{}
	mailer := services.NewEmailService(provider, "no-reply@petlink.test", "PetLink")
	worker := NewOutboxWorker(repo, mailer, time.Minute, 10, maxAttempts)
	return worker, repo, provider
}

func TestDrainOnce_SendsPendingAndMarksSent(t *testing.T) {
	worker, repo, provider := newWorkerFixture(3)
	entry := repo.add("dana@users.test", "Report update", "report_status", `{"status":"rescued"}`)

	worker.drainOnce(context.Background())

	require.Len(t, provider.sent, 1)
	assert.Equal(t, []string{"dana@users.test"}, provider.sent[0].To)
	assert.Equal(t, "Report update", provider.sent[0].Subject)

	stored := repo.find(entry.ID)
	require.NotNil(t, stored)
	assert.Equal(t, models.OutboxStatusSent, stored.Status)
	assert.NotNil(t, stored.SentAt)
}

func TestDrainOnce_SentRowsAreNotResent(t *testing.T) {
	worker, repo, provider := newWorkerFixture(3)
	repo.add("dana@users.test", "Report update", "report_status", `{"status":"rescued"}`)

	worker.drainOnce(context.Background())
	worker.drainOnce(context.Background())

	assert.Len(t, provider.sent, 1)
}

func TestDrainOnce_FailureBumpsAttemptsAndRetries(t *testing.T) {
	worker, repo, provider := newWorkerFixture(3)
	entry := repo.add("dana@users.test", "Report update", "report_status", `{"status":"rescued"}`)
	provider.failWith = errors.New("smtp unreachable")

	worker.drainOnce(context.Background())

	stored := repo.find(entry.ID)
	require.NotNil(t, stored)
	assert.Equal(t, models.OutboxStatusPending, stored.Status)
	assert.Equal(t, 1, stored.Attempts)
	assert.Contains(t, stored.LastError, string(apperrors.CodeEmailDeliveryError))
	assert.Contains(t, stored.LastError, "smtp unreachable")

	// Once the provider recovers the row goes out on the next pass.
	provider.failWith = nil
	worker.drainOnce(context.Background())
	assert.Equal(t, models.OutboxStatusSent, repo.find(entry.ID).Status)
}

func TestDrainOnce_ParksRowAtMaxAttempts(t *testing.T) {
	worker, repo, provider := newWorkerFixture(2)
	entry := repo.add("dana@users.test", "Report update", "report_status", `{"status":"rescued"}`)
	provider.failWith = errors.New("smtp unreachable")

	worker.drainOnce(context.Background())
	worker.drainOnce(context.Background())

	stored := repo.find(entry.ID)
	require.NotNil(t, stored)
	assert.Equal(t, models.OutboxStatusFailed, stored.Status)
	assert.Equal(t, 2, stored.Attempts)

	// Parked rows stay parked even after the provider recovers.
	provider.failWith = nil
	worker.drainOnce(context.Background())
	assert.Empty(t, provider.sent)
}

func TestDrainOnce_UnparseablePayloadIsParked(t *testing.T) {
	worker, repo, provider := newWorkerFixture(3)
	entry := repo.add("dana@users.test", "Report update", "report_status", `{not json`)

	worker.drainOnce(context.Background())

	assert.Empty(t, provider.sent)
	assert.Equal(t, models.OutboxStatusFailed, repo.find(entry.ID).Status)
}

func TestDrainOnce_RespectsBatchSize(t *testing.T) {
	repo := &fakeOutboxRepo{}
	provider := &fakeProvider{}
	mailer := services.NewEmailService(provider, "no-reply@petlink.test", "PetLink")
	worker := NewOutboxWorker(repo, mailer, time.Minute, 2, 3)

	for i := 0; i < 5; i++ {
		repo.add("dana@users.test", "Report update", "report_status", `{}`)
	}

	worker.drainOnce(context.Background())
	assert.Len(t, provider.sent, 2)

	worker.drainOnce(context.Background())
	worker.drainOnce(context.Background())
	assert.Len(t, provider.sent, 5)
}
