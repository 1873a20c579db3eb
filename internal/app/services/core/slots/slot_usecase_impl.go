package slots

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/timeconv"
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	slotUsecaseInstance contracts.SlotUsecase
	onceSlotUsecase     sync.Once
)

type slotUsecase struct {
	SlotRepository     contracts.SlotRepository
	ScheduleRepository contracts.DoctorScheduleRepository
	Converter          *timeconv.Converter
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewSlotUsecase(
	slotRepository contracts.SlotRepository,
	scheduleRepository contracts.DoctorScheduleRepository,
	converter *timeconv.Converter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SlotUsecase {
	onceSlotUsecase.Do(func() {
		slotUsecaseInstance = &slotUsecase{
			SlotRepository:     slotRepository,
			ScheduleRepository: scheduleRepository,
			Converter:          converter,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
	})
	return slotUsecaseInstance
}

func (uc *slotUsecase) CreateSlot(ctx context.Context, request *requests.CreateSlot) (*responses.CreatedSlot, error) {
	startMillis, err := uc.Converter.ToUTCMillis(request.Date, request.StartTime)
	if err != nil {
		return nil, err
	}
	endMillis, err := uc.Converter.ToUTCMillis(request.Date, request.EndTime)
	if err != nil {
		return nil, err
	}
	if startMillis >= endMillis {
		return nil, exceptions.ErrInvalidSlotWindow(fmt.Errorf("start %s not before end %s", request.StartTime, request.EndTime))
	}

	slotID, err := uc.SlotRepository.CreateSlot(ctx, &models.Slot{
		DoctorID:  request.DoctorID,
		StartTime: startMillis,
		EndTime:   endMillis,
		IsBooked:  false,
	})
	if err != nil {
		return nil, err
	}

	return &responses.CreatedSlot{SlotID: slotID}, nil
}

// CreateBulkSlots walks every civil date from StartDate through EndDate
// inclusive and tiles each working day with fixed-duration slots. A slot
// whose start falls inside the break window is dropped and the cursor jumps
// to the break end; a slot that merely runs into the break is kept, and
// slots after the break start on the break-end boundary rather than the
// pre-break grid. Generation is not idempotent: running the same range
// twice stores every slot twice.
func (uc *slotUsecase) CreateBulkSlots(ctx context.Context, request *requests.CreateBulkSlots) (*responses.BulkSlots, error) {
	startDay, err := time.Parse(constvars.DateLayoutYYYYMMDD, request.StartDate)
	if err != nil {
		return nil, exceptions.ErrInvalidTimeFormat(err)
	}
	endDay, err := time.Parse(constvars.DateLayoutYYYYMMDD, request.EndDate)
	if err != nil {
		return nil, exceptions.ErrInvalidTimeFormat(err)
	}
	if startDay.After(endDay) {
		return nil, exceptions.ErrInvalidSlotWindow(fmt.Errorf("start date %s after end date %s", request.StartDate, request.EndDate))
	}

	durationMillis := int64(request.SlotDurationMinutes) * int64(time.Minute/time.Millisecond)
	hasBreak := request.BreakStartTime != "" && request.BreakEndTime != ""

	slotIDs := make([]string, 0)
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		date := day.Format(constvars.DateLayoutYYYYMMDD)

		if !request.IncludeWeekends {
			weekday, err := uc.Converter.CivilWeekday(date)
			if err != nil {
				return &responses.BulkSlots{SlotIDs: slotIDs, InsertedCount: len(slotIDs)}, err
			}
			if weekday == 0 || weekday == 6 {
				continue
			}
		}

		dayStart, err := uc.Converter.ToUTCMillis(date, request.DailyStartTime)
		if err != nil {
			return &responses.BulkSlots{SlotIDs: slotIDs, InsertedCount: len(slotIDs)}, err
		}
		dayEnd, err := uc.Converter.ToUTCMillis(date, request.DailyEndTime)
		if err != nil {
			return &responses.BulkSlots{SlotIDs: slotIDs, InsertedCount: len(slotIDs)}, err
		}
		// Equal start and end is a zero-width day: it simply tiles nothing.
		if dayStart > dayEnd {
			return &responses.BulkSlots{SlotIDs: slotIDs, InsertedCount: len(slotIDs)},
				exceptions.ErrInvalidSlotWindow(fmt.Errorf("daily start %s after daily end %s", request.DailyStartTime, request.DailyEndTime))
		}

		var breakStart, breakEnd int64
		if hasBreak {
			breakStart, err = uc.Converter.ToUTCMillis(date, request.BreakStartTime)
			if err != nil {
				return &responses.BulkSlots{SlotIDs: slotIDs, InsertedCount: len(slotIDs)}, err
			}
			breakEnd, err = uc.Converter.ToUTCMillis(date, request.BreakEndTime)
			if err != nil {
				return &responses.BulkSlots{SlotIDs: slotIDs, InsertedCount: len(slotIDs)}, err
			}
			if breakStart >= breakEnd {
				return &responses.BulkSlots{SlotIDs: slotIDs, InsertedCount: len(slotIDs)},
					exceptions.ErrInvalidBreakWindow(fmt.Errorf("break start %s not before break end %s", request.BreakStartTime, request.BreakEndTime))
			}
			if breakStart < dayStart || breakEnd > dayEnd {
				return &responses.BulkSlots{SlotIDs: slotIDs, InsertedCount: len(slotIDs)},
					exceptions.ErrInvalidBreakWindow(fmt.Errorf("break %s-%s outside working window %s-%s",
						request.BreakStartTime, request.BreakEndTime, request.DailyStartTime, request.DailyEndTime))
			}
		}

		for cursor := dayStart; cursor+durationMillis <= dayEnd; {
			if hasBreak && cursor >= breakStart && cursor < breakEnd {
				cursor = breakEnd
				continue
			}

			slotID, err := uc.SlotRepository.CreateSlot(ctx, &models.Slot{
				DoctorID:  request.DoctorID,
				StartTime: cursor,
				EndTime:   cursor + durationMillis,
				IsBooked:  false,
			})
			if err != nil {
				return &responses.BulkSlots{SlotIDs: slotIDs, InsertedCount: len(slotIDs)}, err
			}
			slotIDs = append(slotIDs, slotID)
			cursor += durationMillis
		}
	}

	uc.Log.Info("bulk slot generation finished",
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.Int(constvars.LoggingInsertedCountKey, len(slotIDs)),
	)

	return &responses.BulkSlots{SlotIDs: slotIDs, InsertedCount: len(slotIDs)}, nil
}

// GetAvailableSlots bounds the requested date in the host's local timezone,
// midnight through 23:59:59.999, then renders each hit on the fixed-offset
// wall clock. The two clocks only agree when the host runs in the clinic's
// zone; deployments pin APP_TIMEZONE for that reason.
func (uc *slotUsecase) GetAvailableSlots(ctx context.Context, request *requests.GetAvailableSlots) ([]responses.AvailableSlot, error) {
	dayStart, err := time.ParseInLocation(constvars.DateLayoutYYYYMMDD, request.Date, time.Local)
	if err != nil {
		return nil, exceptions.ErrInvalidTimeFormat(err)
	}
	startMillis := dayStart.UnixMilli()
	endMillis := dayStart.AddDate(0, 0, 1).UnixMilli() - 1

	slots, err := uc.SlotRepository.FindAvailableByDoctorAndWindow(ctx, request.DoctorID, startMillis, endMillis)
	if err != nil {
		return nil, err
	}

	available := make([]responses.AvailableSlot, 0, len(slots))
	for _, slot := range slots {
		startDisplay, err := uc.Converter.ToDisplayString(slot.StartTime)
		if err != nil {
			return nil, err
		}
		endDisplay, err := uc.Converter.ToDisplayString(slot.EndTime)
		if err != nil {
			return nil, err
		}
		available = append(available, responses.AvailableSlot{
			ID:        slot.ID,
			StartTime: startDisplay,
			EndTime:   endDisplay,
		})
	}
	return available, nil
}

func (uc *slotUsecase) UpsertDoctorSchedule(ctx context.Context, request *requests.UpsertDoctorSchedule) (*responses.DoctorSchedule, error) {
	dailyStart, err := time.Parse(constvars.TimeLayoutHHMM, request.DailyStartTime)
	if err != nil {
		return nil, exceptions.ErrInvalidTimeFormat(err)
	}
	dailyEnd, err := time.Parse(constvars.TimeLayoutHHMM, request.DailyEndTime)
	if err != nil {
		return nil, exceptions.ErrInvalidTimeFormat(err)
	}
	if !dailyStart.Before(dailyEnd) {
		return nil, exceptions.ErrInvalidSlotWindow(fmt.Errorf("daily start %s not before daily end %s", request.DailyStartTime, request.DailyEndTime))
	}

	if request.BreakStartTime != "" {
		breakStart, err := time.Parse(constvars.TimeLayoutHHMM, request.BreakStartTime)
		if err != nil {
			return nil, exceptions.ErrInvalidTimeFormat(err)
		}
		breakEnd, err := time.Parse(constvars.TimeLayoutHHMM, request.BreakEndTime)
		if err != nil {
			return nil, exceptions.ErrInvalidTimeFormat(err)
		}
		if !breakStart.Before(breakEnd) || breakStart.Before(dailyStart) || breakEnd.After(dailyEnd) {
			return nil, exceptions.ErrInvalidBreakWindow(fmt.Errorf("break %s-%s outside working window %s-%s",
				request.BreakStartTime, request.BreakEndTime, request.DailyStartTime, request.DailyEndTime))
		}
	}

	scheduleID, err := uc.ScheduleRepository.UpsertSchedule(ctx, &models.DoctorSchedule{
		DoctorID:            request.DoctorID,
		DailyStartTime:      request.DailyStartTime,
		DailyEndTime:        request.DailyEndTime,
		SlotDurationMinutes: request.SlotDurationMinutes,
		BreakStartTime:      request.BreakStartTime,
		BreakEndTime:        request.BreakEndTime,
		IncludeWeekends:     request.IncludeWeekends,
		Active:              request.Active,
	})
	if err != nil {
		return nil, err
	}

	return &responses.DoctorSchedule{
		ID:                  scheduleID,
		DoctorID:            request.DoctorID,
		DailyStartTime:      request.DailyStartTime,
		DailyEndTime:        request.DailyEndTime,
		SlotDurationMinutes: request.SlotDurationMinutes,
		BreakStartTime:      request.BreakStartTime,
		BreakEndTime:        request.BreakEndTime,
		IncludeWeekends:     request.IncludeWeekends,
		Active:              request.Active,
	}, nil
}

// GenerateForSchedule extends a schedule's slots up to horizonDate. It picks
// up the day after LastGeneratedDate so the worker never re-tiles days it
// already covered, since bulk generation itself does not deduplicate.
func (uc *slotUsecase) GenerateForSchedule(ctx context.Context, schedule models.DoctorSchedule, horizonDate string) error {
	today, err := uc.Converter.ToDisplayDate(time.Now().UnixMilli())
	if err != nil {
		return err
	}

	fromDate := today
	if schedule.LastGeneratedDate != "" {
		lastDay, err := time.Parse(constvars.DateLayoutYYYYMMDD, schedule.LastGeneratedDate)
		if err != nil {
			return exceptions.ErrInvalidTimeFormat(err)
		}
		nextDate := lastDay.AddDate(0, 0, 1).Format(constvars.DateLayoutYYYYMMDD)
		if nextDate > fromDate {
			fromDate = nextDate
		}
	}
	if fromDate > horizonDate {
		return nil
	}

	_, err = uc.CreateBulkSlots(ctx, &requests.CreateBulkSlots{
		DoctorID:            schedule.DoctorID,
		StartDate:           fromDate,
		EndDate:             horizonDate,
		DailyStartTime:      schedule.DailyStartTime,
		DailyEndTime:        schedule.DailyEndTime,
		SlotDurationMinutes: schedule.SlotDurationMinutes,
		BreakStartTime:      schedule.BreakStartTime,
		BreakEndTime:        schedule.BreakEndTime,
		IncludeWeekends:     schedule.IncludeWeekends,
	})
	if err != nil {
		return err
	}

	return uc.ScheduleRepository.UpdateLastGeneratedDate(ctx, schedule.ID, horizonDate)
}
