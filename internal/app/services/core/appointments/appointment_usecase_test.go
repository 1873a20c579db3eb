package appointments

import (
	"arogya-service/internal/app/contracts"
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

type fakeSessionService struct {
	session *models.Session
}

func (f *fakeSessionService) CreateSession(context.Context, *models.Session) error { return nil }

func (f *fakeSessionService) ParseSessionData(context.Context, string) (*models.Session, error) {
	if f.session == nil {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	return f.session, nil
}

func (f *fakeSessionService) DeleteSession(context.Context, string) error { return nil }

type fakeSlotRepository struct {
	slots map[string]*models.Slot
}

func (f *fakeSlotRepository) CreateSlot(_ context.Context, slot *models.Slot) (string, error) {
	id := fmt.Sprintf("slot-%d", len(f.slots)+1)
	stored := *slot
	stored.ID = id
	f.slots[id] = &stored
	return id, nil
}

func (f *fakeSlotRepository) FindByID(_ context.Context, slotID string) (*models.Slot, error) {
	slot, ok := f.slots[slotID]
	if !ok {
		return nil, nil
	}
	copied := *slot
	return &copied, nil
}

func (f *fakeSlotRepository) FindAvailableByDoctorAndWindow(context.Context, string, int64, int64) ([]models.Slot, error) {
	return nil, nil
}

func (f *fakeSlotRepository) SetBooked(_ context.Context, slotID string, booked bool) error {
	slot, ok := f.slots[slotID]
	if !ok {
		return exceptions.ErrSlotNotFound(nil)
	}
	slot.IsBooked = booked
	return nil
}

type fakeLockerService struct {
	held    map[string]string
	denyAll bool
}

func (f *fakeLockerService) TryLock(_ context.Context, key string, _ time.Duration) (bool, string, error) {
	if f.denyAll {
		return false, "", nil
	}
	if _, taken := f.held[key]; taken {
		return false, "", nil
	}
	f.held[key] = "token"
	return true, "token", nil
}

func (f *fakeLockerService) Unlock(_ context.Context, key, _ string) error {
	delete(f.held, key)
	return nil
}

func (f *fakeLockerService) Refresh(context.Context, string, string, time.Duration) error { return nil }

type fakeAppointmentRepository struct {
	appointments map[string]*models.Appointment
	failInsert   bool
}

func (f *fakeAppointmentRepository) CreateAppointment(_ context.Context, appointment *models.Appointment) (string, error) {
	if f.failInsert {
		return "", exceptions.ErrMongoDBInsertDocument(errors.New("write concern error"))
	}
	id := fmt.Sprintf("appt-%d", len(f.appointments)+1)
	stored := *appointment
	stored.ID = id
	f.appointments[id] = &stored
	return id, nil
}

func (f *fakeAppointmentRepository) FindByID(_ context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, ok := f.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	return &copied, nil
}

func (f *fakeAppointmentRepository) FindByPatientID(_ context.Context, patientID string) ([]models.Appointment, error) {
	var result []models.Appointment
	for _, appointment := range f.appointments {
		if appointment.PatientID == patientID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepository) UpdateStatus(_ context.Context, appointmentID, status string) error {
	appointment, ok := f.appointments[appointmentID]
	if !ok {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	appointment.Status = status
	return nil
}

type fakeReminderQueue struct {
	messages []contracts.ReminderMessage
	fail     bool
}

func (f *fakeReminderQueue) Enqueue(_ context.Context, message contracts.ReminderMessage) error {
	if f.fail {
		return exceptions.ErrRabbitMQPublishMessage(errors.New("channel closed"), "reminders")
	}
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeReminderQueue) FetchN(_ context.Context, _ int) ([]contracts.QueuedReminder, error) {
	return nil, nil
}

func (f *fakeReminderQueue) Ack(_ context.Context, _ uint64) error { return nil }

func (f *fakeReminderQueue) Requeue(_ context.Context, _ uint64) error { return nil }

type fixture struct {
	uc           *appointmentUsecase
	slots        *fakeSlotRepository
	appointments *fakeAppointmentRepository
	locker       *fakeLockerService
	reminders    *fakeReminderQueue
	session      *fakeSessionService
}

func newFixture() *fixture {
	slots := &fakeSlotRepository{slots: map[string]*models.Slot{
		"slot-1": {ID: "slot-1", DoctorID: "doc-1", StartTime: 1705289400000, EndTime: 1705291200000},
	}}
	appointments := &fakeAppointmentRepository{appointments: make(map[string]*models.Appointment)}
	locker := &fakeLockerService{held: make(map[string]string)}
	reminders := &fakeReminderQueue{}
	session := &fakeSessionService{session: &models.Session{
		SessionID: "sess-1",
		UserID:    "user-1",
		Role:      constvars.RolePatient,
		PatientID: "pat-1",
	}}

	return &fixture{
		uc: &appointmentUsecase{
			AppointmentRepository: appointments,
			SlotRepository:        slots,
			SessionService:        session,
			LockerService:         locker,
			ReminderQueueService:  reminders,
			Converter:             timeconv.NewDefaultConverter(),
			Log:                   zap.NewNop(),
		},
		slots:        slots,
		appointments: appointments,
		locker:       locker,
		reminders:    reminders,
		session:      session,
	}
}

func TestAppointmentUsecase_BookAppointment(t *testing.T) {
	t.Run("Books Free Slot", func(t *testing.T) {
		f := newFixture()

		result, err := f.uc.BookAppointment(context.Background(), &requests.BookAppointment{
			SlotID: "slot-1",
			Reason: "fever",
		})
		require.NoError(t, err)
		assert.Equal(t, models.AppointmentStatusBooked, result.Status)
		assert.Equal(t, "2024-01-15", result.Date)
		assert.Equal(t, "09:00", result.StartTime)
		assert.Equal(t, "09:30", result.EndTime)
		assert.True(t, f.slots.slots["slot-1"].IsBooked)
		require.Len(t, f.reminders.messages, 1)
		assert.Equal(t, "pat-1", f.reminders.messages[0].PatientID)
		assert.Empty(t, f.locker.held, "booking lock must be released")
	})

	t.Run("Rejects Booked Slot", func(t *testing.T) {
		f := newFixture()
		f.slots.slots["slot-1"].IsBooked = true

		_, err := f.uc.BookAppointment(context.Background(), &requests.BookAppointment{SlotID: "slot-1"})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("Rejects Unknown Slot", func(t *testing.T) {
		f := newFixture()

		_, err := f.uc.BookAppointment(context.Background(), &requests.BookAppointment{SlotID: "slot-404"})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Rejects When Lock Held", func(t *testing.T) {
		f := newFixture()
		f.locker.denyAll = true

		_, err := f.uc.BookAppointment(context.Background(), &requests.BookAppointment{SlotID: "slot-1"})
		require.Error(t, err)
		assert.False(t, f.slots.slots["slot-1"].IsBooked)
	})

	t.Run("Rejects Non-Patient Session", func(t *testing.T) {
		f := newFixture()
		f.session.session.Role = constvars.RoleDoctor
		f.session.session.PatientID = ""

		_, err := f.uc.BookAppointment(context.Background(), &requests.BookAppointment{SlotID: "slot-1"})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("Rolls Back Slot On Insert Failure", func(t *testing.T) {
		f := newFixture()
		f.appointments.failInsert = true

		_, err := f.uc.BookAppointment(context.Background(), &requests.BookAppointment{SlotID: "slot-1"})
		require.Error(t, err)
		assert.False(t, f.slots.slots["slot-1"].IsBooked)
	})

	t.Run("Reminder Failure Does Not Void Booking", func(t *testing.T) {
		f := newFixture()
		f.reminders.fail = true

		result, err := f.uc.BookAppointment(context.Background(), &requests.BookAppointment{SlotID: "slot-1"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.ID)
		assert.True(t, f.slots.slots["slot-1"].IsBooked)
	})
}

func TestAppointmentUsecase_CancelAppointment(t *testing.T) {
	t.Run("Cancels And Frees Slot", func(t *testing.T) {
		f := newFixture()
		booked, err := f.uc.BookAppointment(context.Background(), &requests.BookAppointment{SlotID: "slot-1"})
		require.NoError(t, err)

		err = f.uc.CancelAppointment(context.Background(), &requests.CancelAppointment{AppointmentID: booked.ID})
		require.NoError(t, err)
		assert.Equal(t, models.AppointmentStatusCancelled, f.appointments.appointments[booked.ID].Status)
		assert.False(t, f.slots.slots["slot-1"].IsBooked)
	})

	t.Run("Rejects Foreign Appointment", func(t *testing.T) {
		f := newFixture()
		booked, err := f.uc.BookAppointment(context.Background(), &requests.BookAppointment{SlotID: "slot-1"})
		require.NoError(t, err)

		f.session.session.PatientID = "pat-2"
		err = f.uc.CancelAppointment(context.Background(), &requests.CancelAppointment{AppointmentID: booked.ID})
		require.Error(t, err)
		assert.Equal(t, models.AppointmentStatusBooked, f.appointments.appointments[booked.ID].Status)
	})

	t.Run("Rejects Unknown Appointment", func(t *testing.T) {
		f := newFixture()

		err := f.uc.CancelAppointment(context.Background(), &requests.CancelAppointment{AppointmentID: "appt-404"})
		require.Error(t, err)
	})
}

func TestAppointmentUsecase_ListPatientAppointments(t *testing.T) {
	t.Run("Returns Own Appointments Only", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.BookAppointment(context.Background(), &requests.BookAppointment{SlotID: "slot-1"})
		require.NoError(t, err)
		f.appointments.appointments["appt-other"] = &models.Appointment{
			ID: "appt-other", PatientID: "pat-2", SlotID: "slot-9",
			StartTime: 1705289400000, EndTime: 1705291200000,
			Status: models.AppointmentStatusBooked,
		}

		result, err := f.uc.ListPatientAppointments(context.Background(), &requests.ListAppointments{})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "pat-1", result[0].PatientID)
	})
}
