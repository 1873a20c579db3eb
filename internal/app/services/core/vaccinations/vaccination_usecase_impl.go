package vaccinations

import (
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"arogya-service/internal/pkg/exceptions"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	vaccinationUsecaseInstance contracts.VaccinationUsecase
	onceVaccinationUsecase     sync.Once
)

type vaccinationUsecase struct {
	VaccinationRepository contracts.VaccinationRepository
	PatientRepository     contracts.PatientRepository
	Log                   *zap.Logger
}

func NewVaccinationUsecase(
	vaccinationRepository contracts.VaccinationRepository,
	patientRepository contracts.PatientRepository,
	logger *zap.Logger,
) contracts.VaccinationUsecase {
	onceVaccinationUsecase.Do(func() {
		vaccinationUsecaseInstance = &vaccinationUsecase{
			VaccinationRepository: vaccinationRepository,
			PatientRepository:     patientRepository,
			Log:                   logger,
		}
	})
	return vaccinationUsecaseInstance
}

func (uc *vaccinationUsecase) RecordVaccination(ctx context.Context, request *requests.CreateVaccination) (*responses.Vaccination, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	now := time.Now()
	vaccination := &models.Vaccination{
		PatientID:        request.PatientID,
		VaccineName:      request.VaccineName,
		DoseNumber:       request.DoseNumber,
		AdministeredDate: request.AdministeredDate,
		AdministeredBy:   request.AdministeredBy,
		Notes:            request.Notes,
		TimeModel:        models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	vaccinationID, err := uc.VaccinationRepository.CreateVaccination(ctx, vaccination)
	if err != nil {
		return nil, err
	}
	vaccination.ID = vaccinationID

	return buildVaccinationResponse(vaccination), nil
}

func (uc *vaccinationUsecase) ListPatientVaccinations(ctx context.Context, patientID string) ([]responses.Vaccination, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	vaccinations, err := uc.VaccinationRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Vaccination, 0, len(vaccinations))
	for i := range vaccinations {
		result = append(result, *buildVaccinationResponse(&vaccinations[i]))
	}
	return result, nil
}

func buildVaccinationResponse(vaccination *models.Vaccination) *responses.Vaccination {
	return &responses.Vaccination{
		ID:               vaccination.ID,
		PatientID:        vaccination.PatientID,
		VaccineName:      vaccination.VaccineName,
		DoseNumber:       vaccination.DoseNumber,
		AdministeredDate: vaccination.AdministeredDate,
		AdministeredBy:   vaccination.AdministeredBy,
		Notes:            vaccination.Notes,
	}
}
