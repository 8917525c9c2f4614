// Package deliveries reacts to order-created events by scheduling a pending
// delivery for each new order.
package deliveries

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	kafkax "github.com/copilot-skills-example/octocat-supply-api/internal/kafka"
	"github.com/copilot-skills-example/octocat-supply-api/internal/orders"
)

type Repo struct{ DB *pgxpool.Pool }

// ScheduleForOrder creates the pending delivery row for an order. The unique
// constraint on order_id makes redelivered events a no-op.
func (r *Repo) ScheduleForOrder(ctx context.Context, orderID int64) (bool, error) {
	ct, err := r.DB.Exec(ctx, `
		INSERT INTO deliveries (order_id, name, status)
		VALUES ($1, $2, 'pending')
		ON CONFLICT (order_id) DO NOTHING`,
		orderID, fmt.Sprintf("Delivery for order %d", orderID))
	if err != nil {
		return false, fmt.Errorf("insert delivery: %w", err)
	}
	return ct.RowsAffected() == 1, nil
}

// Scheduler is satisfied by *Repo.
type Scheduler interface {
	ScheduleForOrder(ctx context.Context, orderID int64) (bool, error)
}

type Service struct {
	Sched Scheduler
	Log   *logrus.Entry
}

// HandleOrderCreated is mounted as the consumer handler for order.created.
func (s *Service) HandleOrderCreated(ctx context.Context, m kafkago.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != orders.EventOrderCreated {
		return nil
	}

	p, err := kafkax.UnwrapPayload[orders.OrderCreatedPayload](env.Payload)
	if err != nil {
		return err
	}

	created, err := s.Sched.ScheduleForOrder(ctx, p.OrderID)
	if err != nil {
		return err
	}
	if created {
		s.Log.WithField("order_id", p.OrderID).Info("delivery scheduled")
	}
	return nil
}
