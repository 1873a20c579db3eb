package contracts

import (
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"context"
)

type LabReportRepository interface {
	CreateLabReport(ctx context.Context, report *models.LabReport) (string, error)
	FindByID(ctx context.Context, reportID string) (*models.LabReport, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.LabReport, error)
}

type LabReportUsecase interface {
	UploadLabReport(ctx context.Context, request *requests.UploadLabReport) (*responses.LabReport, error)
	GetLabReportDownload(ctx context.Context, reportID string) (*responses.LabReportDownload, error)
	ListPatientLabReports(ctx context.Context, patientID string) ([]responses.LabReport, error)
}
