package appointments

import (
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

// bookingLockTTL bounds how long a booking may hold a slot lock; crashed
// bookers release through expiry.
const bookingLockTTL = 15 * time.Second

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	SlotRepository        contracts.SlotRepository
	SessionService        contracts.SessionService
	LockerService         contracts.LockerService
	ReminderQueueService  contracts.ReminderQueueService
	Converter             *timeconv.Converter
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	slotRepository contracts.SlotRepository,
	sessionService contracts.SessionService,
	lockerService contracts.LockerService,
	reminderQueueService contracts.ReminderQueueService,
	converter *timeconv.Converter,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			SlotRepository:        slotRepository,
			SessionService:        sessionService,
			LockerService:         lockerService,
			ReminderQueueService:  reminderQueueService,
			Converter:             converter,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

// BookAppointment claims a slot under a redis lock so two patients racing
// for the same slot cannot both flip it. The reminder enqueue is best
// effort; a queue outage never voids a committed booking.
func (uc *appointmentUsecase) BookAppointment(ctx context.Context, request *requests.BookAppointment) (*responses.Appointment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if session.IsNotPatient() || session.PatientID == "" {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	slot, err := uc.SlotRepository.FindByID(ctx, request.SlotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, exceptions.ErrSlotNotFound(nil)
	}
	if slot.IsBooked {
		return nil, exceptions.ErrSlotAlreadyBooked(nil)
	}

	lockKey := constvars.RedisSlotLockKeyPrefix + request.SlotID
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, bookingLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotLockNotAcquired(nil)
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("failed to release slot booking lock",
				zap.String(constvars.LoggingSlotIDKey, request.SlotID),
				zap.Error(err),
			)
		}
	}()

	// Re-read under the lock, the first check raced without it.
	slot, err = uc.SlotRepository.FindByID(ctx, request.SlotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, exceptions.ErrSlotNotFound(nil)
	}
	if slot.IsBooked {
		return nil, exceptions.ErrSlotAlreadyBooked(nil)
	}

	if err := uc.SlotRepository.SetBooked(ctx, request.SlotID, true); err != nil {
		return nil, err
	}

	now := time.Now()
	appointment := &models.Appointment{
		SlotID:    slot.ID,
		DoctorID:  slot.DoctorID,
		PatientID: session.PatientID,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		Reason:    request.Reason,
		Status:    models.AppointmentStatusBooked,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		if rollbackErr := uc.SlotRepository.SetBooked(ctx, request.SlotID, false); rollbackErr != nil {
			uc.Log.Error("failed to roll back slot booking flag",
				zap.String(constvars.LoggingSlotIDKey, request.SlotID),
				zap.Error(rollbackErr),
			)
		}
		return nil, err
	}

	if err := uc.ReminderQueueService.Enqueue(ctx, contracts.ReminderMessage{
		AppointmentID: appointmentID,
		PatientID:     session.PatientID,
		DoctorID:      slot.DoctorID,
		StartTime:     slot.StartTime,
		Kind:          "appointment_booked",
	}); err != nil {
		uc.Log.Warn("failed to enqueue booking reminder",
			zap.String(constvars.LoggingPatientIDKey, session.PatientID),
			zap.Error(err),
		)
	}

	appointment.ID = appointmentID
	return uc.buildResponse(appointment)
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, request *requests.CancelAppointment) error {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return err
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	if session.IsNotPatient() || appointment.PatientID != session.PatientID {
		return exceptions.ErrNotMatchRoleType(nil)
	}
	if appointment.Status == models.AppointmentStatusCancelled {
		return exceptions.ErrAppointmentNotFound(fmt.Errorf("appointment %s already cancelled", appointment.ID))
	}

	if err := uc.AppointmentRepository.UpdateStatus(ctx, appointment.ID, models.AppointmentStatusCancelled); err != nil {
		return err
	}
	return uc.SlotRepository.SetBooked(ctx, appointment.SlotID, false)
}

func (uc *appointmentUsecase) ListPatientAppointments(ctx context.Context, request *requests.ListAppointments) ([]responses.Appointment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if session.IsNotPatient() || session.PatientID == "" {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	appointments, err := uc.AppointmentRepository.FindByPatientID(ctx, session.PatientID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		response, err := uc.buildResponse(&appointments[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *response)
	}
	return result, nil
}

func (uc *appointmentUsecase) buildResponse(appointment *models.Appointment) (*responses.Appointment, error) {
	date, err := uc.Converter.ToDisplayDate(appointment.StartTime)
	if err != nil {
		return nil, err
	}
	startDisplay, err := uc.Converter.ToDisplayString(appointment.StartTime)
	if err != nil {
		return nil, err
	}
	endDisplay, err := uc.Converter.ToDisplayString(appointment.EndTime)
	if err != nil {
		return nil, err
	}
	return &responses.Appointment{
		ID:        appointment.ID,
		SlotID:    appointment.SlotID,
		DoctorID:  appointment.DoctorID,
		PatientID: appointment.PatientID,
		Date:      date,
		StartTime: startDisplay,
		EndTime:   endDisplay,
		Reason:    appointment.Reason,
		Status:    appointment.Status,
	}, nil
}
