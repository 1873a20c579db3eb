package contracts

import (
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"context"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
}

type PatientUsecase interface {
	RegisterPatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	FindPatientByID(ctx context.Context, patientID string) (*responses.Patient, error)
	ListPatients(ctx context.Context) ([]responses.Patient, error)
	UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*responses.Patient, error)
}
