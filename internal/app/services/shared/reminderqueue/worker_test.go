package reminderqueue

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/app/contracts"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeLockerService struct {
	denyAll bool
}

func (f *fakeLockerService) TryLock(_ context.Context, _ string, _ time.Duration) (bool, string, error) {
	if f.denyAll {
		return false, "", nil
	}
	return true, "token-1", nil
}

func (f *fakeLockerService) Unlock(_ context.Context, _, _ string) error { return nil }

func (f *fakeLockerService) Refresh(_ context.Context, _, _ string, _ time.Duration) error {
	return nil
}

type fakeQueue struct {
	pending  []contracts.QueuedReminder
	fetched  bool
	acked    []uint64
	requeued []uint64
}

func (f *fakeQueue) Enqueue(_ context.Context, _ contracts.ReminderMessage) error { return nil }

func (f *fakeQueue) FetchN(_ context.Context, max int) ([]contracts.QueuedReminder, error) {
	if f.fetched {
		return nil, nil
	}
	f.fetched = true
	if len(f.pending) > max {
		return f.pending[:max], nil
	}
	return f.pending, nil
}

func (f *fakeQueue) Ack(_ context.Context, deliveryTag uint64) error {
	f.acked = append(f.acked, deliveryTag)
	return nil
}

func (f *fakeQueue) Requeue(_ context.Context, deliveryTag uint64) error {
	f.requeued = append(f.requeued, deliveryTag)
	return nil
}

type fakeSender struct {
	sent []contracts.ReminderMessage
	fail bool
}

func (f *fakeSender) Send(_ context.Context, message contracts.ReminderMessage) error {
	if f.fail {
		return errors.New("delivery channel unavailable")
	}
	f.sent = append(f.sent, message)
	return nil
}

func newTestWorker(queue *fakeQueue, sender *fakeSender, locker *fakeLockerService) *Worker {
	cfg := &config.InternalConfig{}
	cfg.App.ReminderDrainPerSecond = 100
	cfg.App.ReminderDrainBatchSize = 10
	return NewWorker(zap.NewNop(), cfg, locker, queue, sender)
}

func TestReminderWorker_RunOnce(t *testing.T) {
	t.Run("Drains And Acks Pending Reminders", func(t *testing.T) {
		queue := &fakeQueue{pending: []contracts.QueuedReminder{
			{DeliveryTag: 1, Message: contracts.ReminderMessage{AppointmentID: "appt-1", Kind: "appointment_booked"}},
			{DeliveryTag: 2, Message: contracts.ReminderMessage{AppointmentID: "appt-2", Kind: "appointment_booked"}},
		}}
		sender := &fakeSender{}
		worker := newTestWorker(queue, sender, &fakeLockerService{})

		worker.runOnce(context.Background())

		assert.Len(t, sender.sent, 2)
		assert.Equal(t, []uint64{1, 2}, queue.acked)
		assert.Empty(t, queue.requeued)
	})

	t.Run("Send Failure Requeues Without Ack", func(t *testing.T) {
		queue := &fakeQueue{pending: []contracts.QueuedReminder{
			{DeliveryTag: 7, Message: contracts.ReminderMessage{AppointmentID: "appt-7"}},
		}}
		sender := &fakeSender{fail: true}
		worker := newTestWorker(queue, sender, &fakeLockerService{})

		worker.runOnce(context.Background())

		assert.Empty(t, queue.acked)
		assert.Equal(t, []uint64{7}, queue.requeued)
	})

	t.Run("Skips Run When Lock Held Elsewhere", func(t *testing.T) {
		queue := &fakeQueue{pending: []contracts.QueuedReminder{
			{DeliveryTag: 1, Message: contracts.ReminderMessage{AppointmentID: "appt-1"}},
		}}
		sender := &fakeSender{}
		worker := newTestWorker(queue, sender, &fakeLockerService{denyAll: true})

		worker.runOnce(context.Background())

		assert.False(t, queue.fetched)
		assert.Empty(t, sender.sent)
	})
}
