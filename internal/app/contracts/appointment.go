package contracts

import (
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, status string) error
}

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, request *requests.BookAppointment) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, request *requests.CancelAppointment) error
	ListPatientAppointments(ctx context.Context, request *requests.ListAppointments) ([]responses.Appointment, error)
}
