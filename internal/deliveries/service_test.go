package deliveries

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copilot-skills-example/octocat-supply-api/internal/orders"
)

type fakeScheduler struct {
	scheduled []int64
	err       error
}

func (f *fakeScheduler) ScheduleForOrder(_ context.Context, orderID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, id := range f.scheduled {
		if id == orderID {
			return false, nil
		}
	}
	f.scheduled = append(f.scheduled, orderID)
	return true, nil
}

func newService(sched *fakeScheduler) *Service {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Service{Sched: sched, Log: logrus.NewEntry(log)}
}

func orderCreatedMessage(t *testing.T, orderID int64) kafkago.Message {
	t.Helper()
	payload, err := json.Marshal(orders.OrderCreatedPayload{OrderID: orderID, BranchID: 1})
	require.NoError(t, err)
	env := orders.Envelope{
		EventID:      uuid.NewString(),
		EventType:    orders.EventOrderCreated,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     "test-api",
		Payload:      payload,
	}
	b, err := json.Marshal(env)
	require.NoError(t, err)
	return kafkago.Message{Key: []byte(orders.PartitionKey(orderID)), Value: b}
}

func TestHandleOrderCreated_Schedules(t *testing.T) {
	sched := &fakeScheduler{}
	svc := newService(sched)

	err := svc.HandleOrderCreated(context.Background(), orderCreatedMessage(t, 7))
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, sched.scheduled)
}

func TestHandleOrderCreated_RedeliveryIsIdempotent(t *testing.T) {
	sched := &fakeScheduler{}
	svc := newService(sched)

	msg := orderCreatedMessage(t, 7)
	require.NoError(t, svc.HandleOrderCreated(context.Background(), msg))
	require.NoError(t, svc.HandleOrderCreated(context.Background(), msg))
	assert.Equal(t, []int64{7}, sched.scheduled)
}

func TestHandleOrderCreated_IgnoresOtherEventTypes(t *testing.T) {
	sched := &fakeScheduler{}
	svc := newService(sched)

	env := orders.Envelope{EventType: "OrderCancelled", Payload: json.RawMessage(`{}`)}
	b, err := json.Marshal(env)
	require.NoError(t, err)

	require.NoError(t, svc.HandleOrderCreated(context.Background(), kafkago.Message{Value: b}))
	assert.Empty(t, sched.scheduled)
}

func TestHandleOrderCreated_BadEnvelope(t *testing.T) {
	svc := newService(&fakeScheduler{})
	err := svc.HandleOrderCreated(context.Background(), kafkago.Message{Value: []byte("not json")})
	assert.Error(t, err)
}
