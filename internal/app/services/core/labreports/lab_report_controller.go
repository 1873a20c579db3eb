package labreports

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/utils"
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LabReportController struct {
	Log              *zap.Logger
	LabReportUsecase contracts.LabReportUsecase
	InternalConfig   *config.InternalConfig
}

func NewLabReportController(logger *zap.Logger, labReportUsecase contracts.LabReportUsecase, internalConfig *config.InternalConfig) *LabReportController {
	return &LabReportController{
		Log:              logger,
		LabReportUsecase: labReportUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *LabReportController) UploadLabReport(w http.ResponseWriter, r *http.Request) {
	maxBytes := ctrl.InternalConfig.Minio.LabReportMaxUploadSizeInMB * 1024 * 1024
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.UploadLabReport{
		PatientID:     strings.TrimSpace(r.FormValue("patient_id")),
		Title:         strings.TrimSpace(r.FormValue("title")),
		ReportDate:    strings.TrimSpace(r.FormValue("report_date")),
		OrderedBy:     strings.TrimSpace(r.FormValue("ordered_by")),
		FileName:      header.Filename,
		FileExtension: filepath.Ext(header.Filename),
		FileData:      fileData,
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.LabReportUsecase.UploadLabReport(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.LabReportUploadedSuccess, result)
}

func (ctrl *LabReportController) GetLabReportDownload(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "reportID")
	if reportID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing("reportID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.LabReportUsecase.GetLabReportDownload(ctx, reportID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LabReportGetSuccess, result)
}

func (ctrl *LabReportController) ListPatientLabReports(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing("patientID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.LabReportUsecase.ListPatientLabReports(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LabReportListSuccess, result)
}
