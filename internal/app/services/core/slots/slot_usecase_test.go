package slots

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/timeconv"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSlotRepository struct {
	slots      []models.Slot
	nextID     int
	failAfter  int // fail the insert once this many slots are stored; -1 never
	queryStart int64
	queryEnd   int64
	queryDoc   string
	available  []models.Slot
}

func newFakeSlotRepository() *fakeSlotRepository {
	return &fakeSlotRepository{failAfter: -1}
}

func (f *fakeSlotRepository) CreateSlot(_ context.Context, slot *models.Slot) (string, error) {
	if f.failAfter >= 0 && len(f.slots) >= f.failAfter {
		return "", exceptions.ErrMongoDBInsertDocument(errors.New("write concern error"))
	}
	f.nextID++
	stored := *slot
	stored.ID = fmt.Sprintf("slot-%d", f.nextID)
	f.slots = append(f.slots, stored)
	return stored.ID, nil
}

func (f *fakeSlotRepository) FindByID(_ context.Context, slotID string) (*models.Slot, error) {
	for i := range f.slots {
		if f.slots[i].ID == slotID {
			return &f.slots[i], nil
		}
	}
	return nil, nil
}

func (f *fakeSlotRepository) FindAvailableByDoctorAndWindow(_ context.Context, doctorID string, startUTC, endUTC int64) ([]models.Slot, error) {
	f.queryDoc = doctorID
	f.queryStart = startUTC
	f.queryEnd = endUTC
	return f.available, nil
}

func (f *fakeSlotRepository) SetBooked(_ context.Context, slotID string, booked bool) error {
	for i := range f.slots {
		if f.slots[i].ID == slotID {
			f.slots[i].IsBooked = booked
			return nil
		}
	}
	return exceptions.ErrSlotNotFound(nil)
}

type fakeScheduleRepository struct {
	schedules         []models.DoctorSchedule
	lastGeneratedDate map[string]string
}

func newFakeScheduleRepository() *fakeScheduleRepository {
	return &fakeScheduleRepository{lastGeneratedDate: make(map[string]string)}
}

func (f *fakeScheduleRepository) UpsertSchedule(_ context.Context, schedule *models.DoctorSchedule) (string, error) {
	stored := *schedule
	stored.ID = fmt.Sprintf("schedule-%d", len(f.schedules)+1)
	f.schedules = append(f.schedules, stored)
	return stored.ID, nil
}

func (f *fakeScheduleRepository) FindActiveSchedules(_ context.Context) ([]models.DoctorSchedule, error) {
	return f.schedules, nil
}

func (f *fakeScheduleRepository) UpdateLastGeneratedDate(_ context.Context, scheduleID, date string) error {
	f.lastGeneratedDate[scheduleID] = date
	return nil
}

func newTestUsecase(slotRepo *fakeSlotRepository, scheduleRepo *fakeScheduleRepository) *slotUsecase {
	return &slotUsecase{
		SlotRepository:     slotRepo,
		ScheduleRepository: scheduleRepo,
		Converter:          timeconv.NewDefaultConverter(),
		InternalConfig:     &config.InternalConfig{},
		Log:                zap.NewNop(),
	}
}

func TestSlotUsecase_CreateSlot(t *testing.T) {
	t.Run("Stores Converted Bounds", func(t *testing.T) {
		repo := newFakeSlotRepository()
		uc := newTestUsecase(repo, newFakeScheduleRepository())

		result, err := uc.CreateSlot(context.Background(), &requests.CreateSlot{
			DoctorID:  "doc-1",
			Date:      "2024-01-15",
			StartTime: "09:00",
			EndTime:   "09:30",
		})
		require.NoError(t, err)
		require.Len(t, repo.slots, 1)
		assert.Equal(t, result.SlotID, repo.slots[0].ID)
		assert.Equal(t, int64(1705289400000), repo.slots[0].StartTime)
		assert.Equal(t, int64(1705291200000), repo.slots[0].EndTime)
		assert.False(t, repo.slots[0].IsBooked)
	})

	t.Run("Rejects Inverted Window", func(t *testing.T) {
		repo := newFakeSlotRepository()
		uc := newTestUsecase(repo, newFakeScheduleRepository())

		_, err := uc.CreateSlot(context.Background(), &requests.CreateSlot{
			DoctorID:  "doc-1",
			Date:      "2024-01-15",
			StartTime: "10:00",
			EndTime:   "10:00",
		})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Empty(t, repo.slots)
	})
}

func TestSlotUsecase_CreateBulkSlots(t *testing.T) {
	t.Run("Tiles Single Day", func(t *testing.T) {
		repo := newFakeSlotRepository()
		uc := newTestUsecase(repo, newFakeScheduleRepository())

		result, err := uc.CreateBulkSlots(context.Background(), &requests.CreateBulkSlots{
			DoctorID:            "doc-1",
			StartDate:           "2024-01-15",
			EndDate:             "2024-01-15",
			DailyStartTime:      "09:00",
			DailyEndTime:        "10:00",
			SlotDurationMinutes: 20,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, result.InsertedCount)
		require.Len(t, repo.slots, 3)

		base := int64(1705289400000) // 2024-01-15 09:00 on the clinic clock
		twentyMinutes := int64(20 * 60 * 1000)
		for i, slot := range repo.slots {
			assert.Equal(t, base+int64(i)*twentyMinutes, slot.StartTime)
			assert.Equal(t, base+int64(i+1)*twentyMinutes, slot.EndTime)
			assert.Equal(t, "doc-1", slot.DoctorID)
		}
	})

	t.Run("Break Drops Slot Starting Inside It", func(t *testing.T) {
		repo := newFakeSlotRepository()
		uc := newTestUsecase(repo, newFakeScheduleRepository())

		result, err := uc.CreateBulkSlots(context.Background(), &requests.CreateBulkSlots{
			DoctorID:            "doc-1",
			StartDate:           "2024-01-15",
			EndDate:             "2024-01-15",
			DailyStartTime:      "09:00",
			DailyEndTime:        "10:00",
			SlotDurationMinutes: 20,
			BreakStartTime:      "09:20",
			BreakEndTime:        "09:40",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, result.InsertedCount)

		startDisplay := func(slot models.Slot) string {
			display, err := uc.Converter.ToDisplayString(slot.StartTime)
			require.NoError(t, err)
			return display
		}
		assert.Equal(t, "09:00", startDisplay(repo.slots[0]))
		assert.Equal(t, "09:40", startDisplay(repo.slots[1]))
	})

	t.Run("Slot Straddling Break Is Kept", func(t *testing.T) {
		repo := newFakeSlotRepository()
		uc := newTestUsecase(repo, newFakeScheduleRepository())

		// 50-minute slots against a 10:30-11:00 break: the 09:50 slot runs
		// into the break but starts before it, so it stays. The cursor then
		// lands inside the break and jumps, resuming on the break-end
		// boundary instead of the original grid.
		result, err := uc.CreateBulkSlots(context.Background(), &requests.CreateBulkSlots{
			DoctorID:            "doc-1",
			StartDate:           "2024-01-15",
			EndDate:             "2024-01-15",
			DailyStartTime:      "09:00",
			DailyEndTime:        "12:00",
			SlotDurationMinutes: 50,
			BreakStartTime:      "10:30",
			BreakEndTime:        "11:00",
		})
		require.NoError(t, err)
		require.Equal(t, 3, result.InsertedCount)

		display := func(millis int64) string {
			value, err := uc.Converter.ToDisplayString(millis)
			require.NoError(t, err)
			return value
		}
		assert.Equal(t, "09:00", display(repo.slots[0].StartTime))
		assert.Equal(t, "09:50", display(repo.slots[1].StartTime))
		assert.Equal(t, "10:40", display(repo.slots[1].EndTime))
		assert.Equal(t, "11:00", display(repo.slots[2].StartTime))
	})

	t.Run("Weekends Skipped By Default", func(t *testing.T) {
		repo := newFakeSlotRepository()
		uc := newTestUsecase(repo, newFakeScheduleRepository())

		// 2024-01-12 is a Friday, 2024-01-15 a Monday.
		result, err := uc.CreateBulkSlots(context.Background(), &requests.CreateBulkSlots{
			DoctorID:            "doc-1",
			StartDate:           "2024-01-12",
			EndDate:             "2024-01-15",
			DailyStartTime:      "09:00",
			DailyEndTime:        "10:00",
			SlotDurationMinutes: 30,
		})
		require.NoError(t, err)
		assert.Equal(t, 4, result.InsertedCount) // two working days, two slots each
	})

	t.Run("Weekends Included On Request", func(t *testing.T) {
		repo := newFakeSlotRepository()
		uc := newTestUsecase(repo, newFakeScheduleRepository())

		result, err := uc.CreateBulkSlots(context.Background(), &requests.CreateBulkSlots{
			DoctorID:            "doc-1",
			StartDate:           "2024-01-12",
			EndDate:             "2024-01-15",
			DailyStartTime:      "09:00",
			DailyEndTime:        "10:00",
			SlotDurationMinutes: 30,
			IncludeWeekends:     true,
		})
		require.NoError(t, err)
		assert.Equal(t, 8, result.InsertedCount)
	})

	t.Run("Generation Is Not Idempotent", func(t *testing.T) {
		repo := newFakeSlotRepository()
		uc := newTestUsecase(repo, newFakeScheduleRepository())

		request := &requests.CreateBulkSlots{
			DoctorID:            "doc-1",
			StartDate:           "2024-01-15",
			EndDate:             "2024-01-15",
			DailyStartTime:      "09:00",
			DailyEndTime:        "10:00",
			SlotDurationMinutes: 20,
		}
		_, err := uc.CreateBulkSlots(context.Background(), request)
		require.NoError(t, err)
		_, err = uc.CreateBulkSlots(context.Background(), request)
		require.NoError(t, err)
		assert.Len(t, repo.slots, 6)
	})

	t.Run("Partial Failure Returns Committed IDs", func(t *testing.T) {
		repo := newFakeSlotRepository()
		repo.failAfter = 2
		uc := newTestUsecase(repo, newFakeScheduleRepository())

		result, err := uc.CreateBulkSlots(context.Background(), &requests.CreateBulkSlots{
			DoctorID:            "doc-1",
			StartDate:           "2024-01-15",
			EndDate:             "2024-01-15",
			DailyStartTime:      "09:00",
			DailyEndTime:        "10:00",
			SlotDurationMinutes: 20,
		})
		require.Error(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 2, result.InsertedCount)
		assert.Equal(t, []string{"slot-1", "slot-2"}, result.SlotIDs)
	})

	t.Run("Rejects Inverted Daily Window", func(t *testing.T) {
		uc := newTestUsecase(newFakeSlotRepository(), newFakeScheduleRepository())

		_, err := uc.CreateBulkSlots(context.Background(), &requests.CreateBulkSlots{
			DoctorID:            "doc-1",
			StartDate:           "2024-01-15",
			EndDate:             "2024-01-15",
			DailyStartTime:      "17:00",
			DailyEndTime:        "09:00",
			SlotDurationMinutes: 20,
		})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientInvalidSlotWindow, customErr.ClientMessage)
	})

	t.Run("Zero Width Day Yields No Slots", func(t *testing.T) {
		repo := newFakeSlotRepository()
		uc := newTestUsecase(repo, newFakeScheduleRepository())

		result, err := uc.CreateBulkSlots(context.Background(), &requests.CreateBulkSlots{
			DoctorID:            "doc-1",
			StartDate:           "2024-01-15",
			EndDate:             "2024-01-15",
			DailyStartTime:      "09:00",
			DailyEndTime:        "09:00",
			SlotDurationMinutes: 20,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, result.InsertedCount)
		assert.Empty(t, repo.slots)
	})

	t.Run("Rejects Break Outside Working Window", func(t *testing.T) {
		uc := newTestUsecase(newFakeSlotRepository(), newFakeScheduleRepository())

		_, err := uc.CreateBulkSlots(context.Background(), &requests.CreateBulkSlots{
			DoctorID:            "doc-1",
			StartDate:           "2024-01-15",
			EndDate:             "2024-01-15",
			DailyStartTime:      "09:00",
			DailyEndTime:        "12:00",
			SlotDurationMinutes: 20,
			BreakStartTime:      "13:00",
			BreakEndTime:        "14:00",
		})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientInvalidBreakWindow, customErr.ClientMessage)
	})

	t.Run("Rejects Start Date After End Date", func(t *testing.T) {
		uc := newTestUsecase(newFakeSlotRepository(), newFakeScheduleRepository())

		_, err := uc.CreateBulkSlots(context.Background(), &requests.CreateBulkSlots{
			DoctorID:            "doc-1",
			StartDate:           "2024-01-16",
			EndDate:             "2024-01-15",
			DailyStartTime:      "09:00",
			DailyEndTime:        "10:00",
			SlotDurationMinutes: 20,
		})
		require.Error(t, err)
	})
}

func TestSlotUsecase_GetAvailableSlots(t *testing.T) {
	t.Run("Bounds Day In Host Timezone", func(t *testing.T) {
		repo := newFakeSlotRepository()
		uc := newTestUsecase(repo, newFakeScheduleRepository())

		_, err := uc.GetAvailableSlots(context.Background(), &requests.GetAvailableSlots{
			DoctorID: "doc-1",
			Date:     "2024-01-15",
		})
		require.NoError(t, err)

		dayStart, err := time.ParseInLocation(constvars.DateLayoutYYYYMMDD, "2024-01-15", time.Local)
		require.NoError(t, err)
		assert.Equal(t, "doc-1", repo.queryDoc)
		assert.Equal(t, dayStart.UnixMilli(), repo.queryStart)
		assert.Equal(t, dayStart.AddDate(0, 0, 1).UnixMilli()-1, repo.queryEnd)
	})

	t.Run("Renders Display Strings", func(t *testing.T) {
		repo := newFakeSlotRepository()
		repo.available = []models.Slot{
			{ID: "slot-1", DoctorID: "doc-1", StartTime: 1705289400000, EndTime: 1705291200000},
		}
		uc := newTestUsecase(repo, newFakeScheduleRepository())

		result, err := uc.GetAvailableSlots(context.Background(), &requests.GetAvailableSlots{
			DoctorID: "doc-1",
			Date:     "2024-01-15",
		})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "slot-1", result[0].ID)
		assert.Equal(t, "09:00", result[0].StartTime)
		assert.Equal(t, "09:30", result[0].EndTime)
	})

	t.Run("Empty Result Is Not Nil", func(t *testing.T) {
		uc := newTestUsecase(newFakeSlotRepository(), newFakeScheduleRepository())

		result, err := uc.GetAvailableSlots(context.Background(), &requests.GetAvailableSlots{
			DoctorID: "doc-1",
			Date:     "2024-01-15",
		})
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestSlotUsecase_UpsertDoctorSchedule(t *testing.T) {
	t.Run("Stores Policy", func(t *testing.T) {
		scheduleRepo := newFakeScheduleRepository()
		uc := newTestUsecase(newFakeSlotRepository(), scheduleRepo)

		result, err := uc.UpsertDoctorSchedule(context.Background(), &requests.UpsertDoctorSchedule{
			DoctorID:            "doc-1",
			DailyStartTime:      "09:00",
			DailyEndTime:        "17:00",
			SlotDurationMinutes: 30,
			BreakStartTime:      "13:00",
			BreakEndTime:        "14:00",
			Active:              true,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.ID)
		require.Len(t, scheduleRepo.schedules, 1)
		assert.True(t, scheduleRepo.schedules[0].Active)
	})

	t.Run("Rejects Break Outside Working Window", func(t *testing.T) {
		uc := newTestUsecase(newFakeSlotRepository(), newFakeScheduleRepository())

		_, err := uc.UpsertDoctorSchedule(context.Background(), &requests.UpsertDoctorSchedule{
			DoctorID:            "doc-1",
			DailyStartTime:      "09:00",
			DailyEndTime:        "17:00",
			SlotDurationMinutes: 30,
			BreakStartTime:      "08:00",
			BreakEndTime:        "09:30",
			Active:              true,
		})
		require.Error(t, err)
	})
}

func TestSlotUsecase_GenerateForSchedule(t *testing.T) {
	t.Run("Generates Through Horizon And Records It", func(t *testing.T) {
		slotRepo := newFakeSlotRepository()
		scheduleRepo := newFakeScheduleRepository()
		uc := newTestUsecase(slotRepo, scheduleRepo)

		today, err := uc.Converter.ToDisplayDate(time.Now().UnixMilli())
		require.NoError(t, err)

		err = uc.GenerateForSchedule(context.Background(), models.DoctorSchedule{
			ID:                  "schedule-1",
			DoctorID:            "doc-1",
			DailyStartTime:      "09:00",
			DailyEndTime:        "10:00",
			SlotDurationMinutes: 30,
			IncludeWeekends:     true,
		}, today)
		require.NoError(t, err)
		assert.Len(t, slotRepo.slots, 2)
		assert.Equal(t, today, scheduleRepo.lastGeneratedDate["schedule-1"])
	})

	t.Run("Covered Horizon Is A No-Op", func(t *testing.T) {
		slotRepo := newFakeSlotRepository()
		scheduleRepo := newFakeScheduleRepository()
		uc := newTestUsecase(slotRepo, scheduleRepo)

		err := uc.GenerateForSchedule(context.Background(), models.DoctorSchedule{
			ID:                  "schedule-1",
			DoctorID:            "doc-1",
			DailyStartTime:      "09:00",
			DailyEndTime:        "10:00",
			SlotDurationMinutes: 30,
			IncludeWeekends:     true,
			LastGeneratedDate:   "2099-12-31",
		}, "2099-12-31")
		require.NoError(t, err)
		assert.Empty(t, slotRepo.slots)
		assert.Empty(t, scheduleRepo.lastGeneratedDate)
	})
}
