package labreports

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"arogya-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	labReportUsecaseInstance contracts.LabReportUsecase
	onceLabReportUsecase     sync.Once
)

var contentTypeByExtension = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

type labReportUsecase struct {
	LabReportRepository contracts.LabReportRepository
	PatientRepository   contracts.PatientRepository
	StorageService      contracts.StorageService
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewLabReportUsecase(
	labReportRepository contracts.LabReportRepository,
	patientRepository contracts.PatientRepository,
	storageService contracts.StorageService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.LabReportUsecase {
	onceLabReportUsecase.Do(func() {
		labReportUsecaseInstance = &labReportUsecase{
			LabReportRepository: labReportRepository,
			PatientRepository:   patientRepository,
			StorageService:      storageService,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
	})
	return labReportUsecaseInstance
}

func (uc *labReportUsecase) UploadLabReport(ctx context.Context, request *requests.UploadLabReport) (*responses.LabReport, error) {
	extension := strings.ToLower(request.FileExtension)
	contentType, allowed := contentTypeByExtension[extension]
	if !allowed || !strings.Contains(constvars.LabReportAllowedFormats, extension) {
		return nil, exceptions.ErrFileValidation(fmt.Errorf("extension %q not allowed", request.FileExtension))
	}

	maxBytes := uc.InternalConfig.Minio.LabReportMaxUploadSizeInMB * 1024 * 1024
	if int64(len(request.FileData)) > maxBytes {
		return nil, exceptions.ErrFileTooLarge(fmt.Errorf("file is %d bytes, limit %d", len(request.FileData), maxBytes))
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	objectName := fmt.Sprintf(constvars.LabReportObjectNameFormat, request.PatientID, uuid.NewString(), extension)
	if err := uc.StorageService.UploadObject(ctx, objectName, request.FileData, contentType); err != nil {
		return nil, err
	}

	now := time.Now()
	report := &models.LabReport{
		PatientID:  request.PatientID,
		Title:      request.Title,
		ReportDate: request.ReportDate,
		OrderedBy:  request.OrderedBy,
		FileName:   request.FileName,
		ObjectName: objectName,
		TimeModel:  models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	reportID, err := uc.LabReportRepository.CreateLabReport(ctx, report)
	if err != nil {
		return nil, err
	}
	report.ID = reportID

	return buildLabReportResponse(report), nil
}

func (uc *labReportUsecase) GetLabReportDownload(ctx context.Context, reportID string) (*responses.LabReportDownload, error) {
	report, err := uc.LabReportRepository.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, exceptions.ErrLabReportNotFound(nil)
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PresignedURLObjectExpiryTimeInHours) * time.Hour
	presignedURL, err := uc.StorageService.GetPresignedURL(ctx, report.ObjectName, expiry)
	if err != nil {
		return nil, err
	}

	return &responses.LabReportDownload{
		ID:           report.ID,
		Title:        report.Title,
		PresignedURL: presignedURL,
	}, nil
}

func (uc *labReportUsecase) ListPatientLabReports(ctx context.Context, patientID string) ([]responses.LabReport, error) {
	reports, err := uc.LabReportRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.LabReport, 0, len(reports))
	for i := range reports {
		result = append(result, *buildLabReportResponse(&reports[i]))
	}
	return result, nil
}

func buildLabReportResponse(report *models.LabReport) *responses.LabReport {
	return &responses.LabReport{
		ID:         report.ID,
		PatientID:  report.PatientID,
		Title:      report.Title,
		ReportDate: report.ReportDate,
		OrderedBy:  report.OrderedBy,
		FileName:   report.FileName,
	}
}
