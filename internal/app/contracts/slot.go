package contracts

import (
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"context"
)

type SlotRepository interface {
	CreateSlot(ctx context.Context, slot *models.Slot) (string, error)
	FindByID(ctx context.Context, slotID string) (*models.Slot, error)
	// FindAvailableByDoctorAndWindow returns unbooked slots for the doctor
	// whose interval lies inside [startUTC, endUTC], in store order.
	FindAvailableByDoctorAndWindow(ctx context.Context, doctorID string, startUTC, endUTC int64) ([]models.Slot, error)
	SetBooked(ctx context.Context, slotID string, booked bool) error
}

type DoctorScheduleRepository interface {
	UpsertSchedule(ctx context.Context, schedule *models.DoctorSchedule) (string, error)
	FindActiveSchedules(ctx context.Context) ([]models.DoctorSchedule, error)
	UpdateLastGeneratedDate(ctx context.Context, scheduleID, date string) error
}

type SlotUsecase interface {
	CreateSlot(ctx context.Context, request *requests.CreateSlot) (*responses.CreatedSlot, error)
	// CreateBulkSlots inserts sequentially; on a store failure the IDs
	// committed before the failure come back alongside the error.
	CreateBulkSlots(ctx context.Context, request *requests.CreateBulkSlots) (*responses.BulkSlots, error)
	GetAvailableSlots(ctx context.Context, request *requests.GetAvailableSlots) ([]responses.AvailableSlot, error)
	UpsertDoctorSchedule(ctx context.Context, request *requests.UpsertDoctorSchedule) (*responses.DoctorSchedule, error)
	GenerateForSchedule(ctx context.Context, schedule models.DoctorSchedule, horizonDate string) error
}
