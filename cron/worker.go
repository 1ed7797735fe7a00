package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"seabreeze/config"
	reservationRepo "seabreeze/database/repository/reservation"
	"seabreeze/services/reservation"

	"github.com/hibiken/asynq"
)

// InitCompletionWorker runs the async worker that marks confirmed
// reservations completed once their checkout day has passed.
func InitCompletionWorker(repo reservationRepo.ReservationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
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
	mux.HandleFunc(reservation.TypeReservationComplete, handleCompletionTask(repo))

	// Start async worker with retry logic.
	go func() {
		log.Println("[CompletionWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[CompletionWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[CompletionWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleCompletionTask(repo reservationRepo.ReservationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p reservation.CompletionPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[CompletionWorker] invalid payload: %v", err)
			return err
		}

		today := time.Now().Format("2006-01-02")
		completed, err := repo.CompleteIfDeparted(ctx, p.ReservationID, today)
		if err != nil {
			log.Printf("[CompletionWorker] failed to complete reservation %s: %v", p.ReservationID, err)
			return err
		}
		if completed {
			log.Printf("[CompletionWorker] reservation %s marked completed", p.ReservationID)
		} else {
			// Cancelled in the meantime or checkout moved; nothing to do.
			log.Printf("[CompletionWorker] reservation %s not eligible for completion", p.ReservationID)
		}
		return nil
	}
}

// NewTaskClient returns an asynq client on the task queue database.
func NewTaskClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
}
