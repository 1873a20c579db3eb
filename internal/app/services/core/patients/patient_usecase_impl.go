package patients

import (
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"arogya-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

func NewPatientUsecase(patientRepository contracts.PatientRepository, logger *zap.Logger) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientRepository: patientRepository,
			Log:               logger,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) RegisterPatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	existing, err := uc.PatientRepository.FindByPhoneNumber(ctx, request.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("phone number %s already registered", request.PhoneNumber))
	}

	now := time.Now()
	patient := &models.Patient{
		FullName:    request.FullName,
		Email:       request.Email,
		PhoneNumber: request.PhoneNumber,
		DateOfBirth: request.DateOfBirth,
		Gender:      request.Gender,
		BloodGroup:  request.BloodGroup,
		Address:     request.Address,
		TimeModel:   models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}
	patient.ID = patientID

	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) ListPatients(ctx context.Context) ([]responses.Patient, error) {
	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		result = append(result, *buildPatientResponse(&patients[i]))
	}
	return result, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	if request.FullName != "" {
		patient.FullName = request.FullName
	}
	if request.Email != "" {
		patient.Email = request.Email
	}
	if request.PhoneNumber != "" {
		patient.PhoneNumber = request.PhoneNumber
	}
	if request.BloodGroup != "" {
		patient.BloodGroup = request.BloodGroup
	}
	if request.Address != "" {
		patient.Address = request.Address
	}

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}
	return buildPatientResponse(patient), nil
}

func buildPatientResponse(patient *models.Patient) *responses.Patient {
	return &responses.Patient{
		ID:          patient.ID,
		FullName:    patient.FullName,
		Email:       patient.Email,
		PhoneNumber: patient.PhoneNumber,
		DateOfBirth: patient.DateOfBirth,
		Gender:      patient.Gender,
		BloodGroup:  patient.BloodGroup,
		Address:     patient.Address,
	}
}
