package reminderqueue

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/constvars"
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// drainLockKey ensures a single instance drains the queue at a time.
const drainLockKey = "reminders:drain:leader"

// Worker periodically drains queued reminders and hands each one to the
// sender, with at-least-once semantics: a failed send returns the message
// to the queue for the next run.
type Worker struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	locker  contracts.LockerService
	queue   contracts.ReminderQueueService
	sender  contracts.ReminderSender
	limiter *rate.Limiter
	stop    chan struct{}
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerService contracts.LockerService,
	queue contracts.ReminderQueueService,
	sender contracts.ReminderSender,
) *Worker {
	perSecond := cfg.App.ReminderDrainPerSecond
	if perSecond <= 0 {
		perSecond = 1
	}
	return &Worker{
		log:     log,
		cfg:     cfg,
		locker:  lockerService,
		queue:   queue,
		sender:  sender,
		limiter: rate.NewLimiter(rate.Limit(perSecond), perSecond),
		stop:    make(chan struct{}),
	}
}

// Start begins the drain loop on a fixed one-minute tick.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)

	go func() {
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-w.stop:
				ticker.Stop()
				return
			case <-ticker.C:
				w.runOnce(ctx)
			}
		}
	}()
}

func (w *Worker) Stop() {
	close(w.stop)
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := time.Minute
	acquired, token, err := w.locker.TryLock(ctx, drainLockKey, ttl)
	if err != nil {
		w.log.Warn("reminders.worker: drain lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("reminders.worker: drain lock held elsewhere, skipping run")
		return
	}
	defer w.locker.Unlock(ctx, drainLockKey, token)

	batch := w.cfg.App.ReminderDrainBatchSize
	if batch <= 0 {
		batch = 1
	}
	items, err := w.queue.FetchN(ctx, batch)
	if err != nil {
		w.log.Warn("reminders.worker: fetch failed", zap.Error(err))
		return
	}

	for _, item := range items {
		if err := w.limiter.Wait(ctx); err != nil {
			w.requeue(ctx, item)
			return
		}

		if err := w.sender.Send(ctx, item.Message); err != nil {
			w.log.Warn("reminders.worker: send failed, message requeued",
				zap.String(constvars.LoggingAppointmentIDKey, item.Message.AppointmentID),
				zap.Error(err),
			)
			w.requeue(ctx, item)
			continue
		}

		if err := w.queue.Ack(ctx, item.DeliveryTag); err != nil {
			w.log.Warn("reminders.worker: ack failed after send",
				zap.String(constvars.LoggingAppointmentIDKey, item.Message.AppointmentID),
				zap.Error(err),
			)
		}
	}
}

func (w *Worker) requeue(ctx context.Context, item contracts.QueuedReminder) {
	if err := w.queue.Requeue(ctx, item.DeliveryTag); err != nil {
		w.log.Warn("reminders.worker: requeue failed",
			zap.String(constvars.LoggingAppointmentIDKey, item.Message.AppointmentID),
			zap.Error(err),
		)
	}
}
