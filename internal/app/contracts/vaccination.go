package contracts

import (
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"context"
)

type VaccinationRepository interface {
	CreateVaccination(ctx context.Context, vaccination *models.Vaccination) (string, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Vaccination, error)
}

type VaccinationUsecase interface {
	RecordVaccination(ctx context.Context, request *requests.CreateVaccination) (*responses.Vaccination, error)
	ListPatientVaccinations(ctx context.Context, patientID string) ([]responses.Vaccination, error)
}
