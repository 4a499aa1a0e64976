package tasks

import (
	"encoding/json"
	"time"

	"eventify/config"

	"github.com/hibiken/asynq"
)

const TypeExpireNegotiation = "negotiation:expire"

// ExpiryPayload identifies the negotiation a deferred expiry check targets.
type ExpiryPayload struct {
	NegotiationID string `json:"negotiationId"`
}

func NewExpiryTask(payload ExpiryPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeExpireNegotiation, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqExpiryScheduler enqueues expiry sweeps on the shared Redis queue. The
// sweep is best-effort; read-triggered expiry remains authoritative.
type AsynqExpiryScheduler struct {
	client *asynq.Client
}

func NewAsynqExpiryScheduler() *AsynqExpiryScheduler {
	return &AsynqExpiryScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisExpiryQDB,
		}),
	}
}

func (s *AsynqExpiryScheduler) ScheduleExpiry(negotiationID string, at time.Time) error {
	task, opts, err := NewExpiryTask(ExpiryPayload{NegotiationID: negotiationID}, at)
	if err != nil {
		return err
	}
	_, err = s.client.Enqueue(task, opts...)
	return err
}

func (s *AsynqExpiryScheduler) Close() error {
	return s.client.Close()
}
