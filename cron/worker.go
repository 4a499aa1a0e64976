package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"eventify/config"
	"eventify/models"
	"eventify/services/negotiation"
	"eventify/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitExpiryWorker runs the async worker in background. Each task re-reads the
// negotiation through the service, which flips it to EXPIRED when the deadline
// has passed.
func InitExpiryWorker(negSvc negotiation.NegotiationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisExpiryQDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeExpireNegotiation, handleExpiryTask(negSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ExpiryWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ExpiryWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ExpiryWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleExpiryTask(negSvc negotiation.NegotiationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ExpiryPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ExpiryHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		n, err := negSvc.GetStatus(ctx, p.NegotiationID)
		if err != nil {
			// A deleted record needs no sweep; anything else is retried by asynq.
			if _, ok := err.(models.NotFoundError); ok {
				return nil
			}
			log.Printf("[ExpiryHandler] ❌ Failed to sweep negotiation %s: %v", p.NegotiationID, err)
			return err
		}

		if n.Status == models.NegotiationExpired {
			log.Printf("[ExpiryHandler] ⏰ Negotiation %s expired", p.NegotiationID)
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisExpiryQDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ExpiryWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
