package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeReservationSweep = "reservation:sweep"

// ReservationSweepPayload identifies the hold to reclaim once its TTL passes.
type ReservationSweepPayload struct {
	ReservationID string `json:"reservationId"`
}

// NewReservationSweepTask schedules an expiry check at the hold's deadline.
func NewReservationSweepTask(reservationID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ReservationSweepPayload{ReservationID: reservationID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReservationSweep, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
