package slots

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/constvars"
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// leaderLockKey is the fixed key used to ensure a single generator leader.
const leaderLockKey = "slotgen:leader"

// Worker keeps every active doctor schedule tiled out to the rolling
// window horizon.
type Worker struct {
	log         *zap.Logger
	cfg         *config.InternalConfig
	locker      contracts.LockerService
	schedules   contracts.DoctorScheduleRepository
	slotUsecase contracts.SlotUsecase
	cron        *cron.Cron
	runCtx      context.Context
	cancel      context.CancelFunc
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerService contracts.LockerService,
	scheduleRepository contracts.DoctorScheduleRepository,
	slotUsecase contracts.SlotUsecase,
) *Worker {
	return &Worker{
		log:         log,
		cfg:         cfg,
		locker:      lockerService,
		schedules:   scheduleRepository,
		slotUsecase: slotUsecase,
	}
}

// Start schedules the periodic run on the configured cron spec, falling
// back to @daily when the spec does not parse.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.SlotWorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("slots.worker: invalid cron spec, falling back to @daily", zap.String("spec", spec), zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight runs and waits for the cron scheduler to drain.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := 2 * time.Minute
	acquired, token, err := w.locker.TryLock(ctx, leaderLockKey, ttl)
	if err != nil {
		w.log.Warn("slots.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("slots.worker: leader lock held elsewhere, skipping run")
		return
	}
	defer w.locker.Unlock(ctx, leaderLockKey, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(ctx, leaderLockKey, token, ttl); err != nil {
					w.log.Warn("slots.worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	horizon := time.Now().AddDate(0, 0, w.cfg.App.SlotWindowDays).Format(constvars.DateLayoutYYYYMMDD)

	schedules, err := w.schedules.FindActiveSchedules(ctx)
	if err != nil {
		w.log.Warn("slots.worker: active schedule lookup failed", zap.Error(err))
		return
	}

	for _, schedule := range schedules {
		if err := w.slotUsecase.GenerateForSchedule(ctx, schedule, horizon); err != nil {
			w.log.Warn("slots.worker: generation failed for schedule",
				zap.String(constvars.LoggingDoctorIDKey, schedule.DoctorID),
				zap.Error(err),
			)
		}
	}
}
