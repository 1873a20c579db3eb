package vaccinations

import (
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type VaccinationController struct {
	Log                *zap.Logger
	VaccinationUsecase contracts.VaccinationUsecase
}

func NewVaccinationController(logger *zap.Logger, vaccinationUsecase contracts.VaccinationUsecase) *VaccinationController {
	return &VaccinationController{
		Log:                logger,
		VaccinationUsecase: vaccinationUsecase,
	}
}

func (ctrl *VaccinationController) RecordVaccination(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateVaccination)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateVaccinationRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.VaccinationUsecase.RecordVaccination(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.VaccinationCreatedSuccess, result)
}

func (ctrl *VaccinationController) ListPatientVaccinations(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing("patientID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.VaccinationUsecase.ListPatientVaccinations(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VaccinationListSuccess, result)
}
