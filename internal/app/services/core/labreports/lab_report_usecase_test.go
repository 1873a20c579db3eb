package labreports

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLabReportRepository struct {
	reports map[string]*models.LabReport
}

func (f *fakeLabReportRepository) CreateLabReport(_ context.Context, report *models.LabReport) (string, error) {
	id := fmt.Sprintf("report-%d", len(f.reports)+1)
	stored := *report
	stored.ID = id
	f.reports[id] = &stored
	return id, nil
}

func (f *fakeLabReportRepository) FindByID(_ context.Context, reportID string) (*models.LabReport, error) {
	report, ok := f.reports[reportID]
	if !ok {
		return nil, nil
	}
	copied := *report
	return &copied, nil
}

func (f *fakeLabReportRepository) FindByPatientID(_ context.Context, patientID string) ([]models.LabReport, error) {
	var result []models.LabReport
	for _, report := range f.reports {
		if report.PatientID == patientID {
			result = append(result, *report)
		}
	}
	return result, nil
}

type fakePatientRepository struct {
	known map[string]bool
}

func (f *fakePatientRepository) CreatePatient(context.Context, *models.Patient) (string, error) {
	return "", nil
}

func (f *fakePatientRepository) FindByID(_ context.Context, patientID string) (*models.Patient, error) {
	if !f.known[patientID] {
		return nil, nil
	}
	return &models.Patient{ID: patientID}, nil
}

func (f *fakePatientRepository) FindByPhoneNumber(context.Context, string) (*models.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepository) FindAll(context.Context) ([]models.Patient, error) { return nil, nil }

func (f *fakePatientRepository) UpdatePatient(context.Context, *models.Patient) error { return nil }

type fakeStorageService struct {
	objects map[string][]byte
}

func (f *fakeStorageService) UploadObject(_ context.Context, objectName string, data []byte, _ string) error {
	f.objects[objectName] = data
	return nil
}

func (f *fakeStorageService) GetPresignedURL(_ context.Context, objectName string, _ time.Duration) (string, error) {
	return "https://storage.test/" + objectName + "?signed", nil
}

func newTestUsecase() (*labReportUsecase, *fakeLabReportRepository, *fakeStorageService) {
	reports := &fakeLabReportRepository{reports: make(map[string]*models.LabReport)}
	storage := &fakeStorageService{objects: make(map[string][]byte)}
	uc := &labReportUsecase{
		LabReportRepository: reports,
		PatientRepository:   &fakePatientRepository{known: map[string]bool{"pat-1": true}},
		StorageService:      storage,
		InternalConfig: &config.InternalConfig{
			Minio: config.AppMinio{
				LabReportMaxUploadSizeInMB:          1,
				PresignedURLObjectExpiryTimeInHours: 24,
			},
		},
		Log: zap.NewNop(),
	}
	return uc, reports, storage
}

func uploadRequest() *requests.UploadLabReport {
	return &requests.UploadLabReport{
		PatientID:     "pat-1",
		Title:         "CBC Panel",
		ReportDate:    "2024-01-15",
		FileName:      "cbc.pdf",
		FileExtension: ".pdf",
		FileData:      []byte("%PDF-1.4 fake"),
	}
}

func TestLabReportUsecase_UploadLabReport(t *testing.T) {
	t.Run("Stores Object And Document", func(t *testing.T) {
		uc, reports, storage := newTestUsecase()

		result, err := uc.UploadLabReport(context.Background(), uploadRequest())
		require.NoError(t, err)
		assert.Equal(t, "cbc.pdf", result.FileName)
		require.Len(t, reports.reports, 1)
		require.Len(t, storage.objects, 1)
		for objectName := range storage.objects {
			assert.True(t, strings.HasPrefix(objectName, "lab-reports/pat-1/"))
			assert.True(t, strings.HasSuffix(objectName, ".pdf"))
		}
	})

	t.Run("Rejects Disallowed Extension", func(t *testing.T) {
		uc, _, _ := newTestUsecase()
		request := uploadRequest()
		request.FileName = "report.exe"
		request.FileExtension = ".exe"

		_, err := uc.UploadLabReport(context.Background(), request)
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Rejects Oversized File", func(t *testing.T) {
		uc, _, _ := newTestUsecase()
		request := uploadRequest()
		request.FileData = make([]byte, 2*1024*1024)

		_, err := uc.UploadLabReport(context.Background(), request)
		require.Error(t, err)
	})

	t.Run("Rejects Unknown Patient", func(t *testing.T) {
		uc, _, _ := newTestUsecase()
		request := uploadRequest()
		request.PatientID = "pat-404"

		_, err := uc.UploadLabReport(context.Background(), request)
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestLabReportUsecase_GetLabReportDownload(t *testing.T) {
	t.Run("Presigns Stored Object", func(t *testing.T) {
		uc, _, _ := newTestUsecase()
		uploaded, err := uc.UploadLabReport(context.Background(), uploadRequest())
		require.NoError(t, err)

		download, err := uc.GetLabReportDownload(context.Background(), uploaded.ID)
		require.NoError(t, err)
		assert.Contains(t, download.PresignedURL, "lab-reports/pat-1/")
		assert.Contains(t, download.PresignedURL, "signed")
	})

	t.Run("Unknown Report Not Found", func(t *testing.T) {
		uc, _, _ := newTestUsecase()

		_, err := uc.GetLabReportDownload(context.Background(), "report-404")
		require.Error(t, err)
	})
}
