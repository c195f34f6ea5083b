package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"bookwell/config"
	"bookwell/services/tasks"

	"github.com/hibiken/asynq"
)

// ReservationExpirer is the slice of the scheduling engine the worker needs.
type ReservationExpirer interface {
	ExpireReservation(ctx context.Context, reservationID string) error
	ExpireDueReservations(ctx context.Context) (int, error)
}

// SweepQueueRedisOpt returns the asynq redis connection for the sweep queue.
func SweepQueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSweepQueueDB,
	}
}

// InitSweepWorker runs the reservation-expiry worker in the background.
// On start it reclaims anything already overdue, covering holds whose
// scheduled task was lost while the worker was down.
func InitSweepWorker(expirer ReservationExpirer) {
	srv := asynq.NewServer(
		SweepQueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReservationSweep, handleSweepTask(expirer))

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if n, err := expirer.ExpireDueReservations(ctx); err != nil {
			log.Printf("[SweepWorker] startup catch-up failed: %v", err)
		} else if n > 0 {
			log.Printf("[SweepWorker] reclaimed %d overdue reservations on start", n)
		}
	}()

	go func() {
		log.Println("[SweepWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SweepWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SweepWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleSweepTask(expirer ReservationExpirer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ReservationSweepPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[SweepHandler] invalid payload: %v", err)
			return err
		}
		return expirer.ExpireReservation(ctx, p.ReservationID)
	}
}
