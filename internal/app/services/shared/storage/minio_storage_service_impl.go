package storage

import (
	"arogya-service/internal/app/config"
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

var (
	storageServiceInstance contracts.StorageService
	onceStorageService     sync.Once
)

type minioStorageService struct {
	Client     *minio.Client
	BucketName string
}

func NewMinioStorageService(client *minio.Client, driverConfig *config.DriverConfig) contracts.StorageService {
	onceStorageService.Do(func() {
		storageServiceInstance = &minioStorageService{
			Client:     client,
			BucketName: driverConfig.Minio.BucketName,
		}
	})
	return storageServiceInstance
}

func (s *minioStorageService) UploadObject(ctx context.Context, objectName string, data []byte, contentType string) error {
	reader := bytes.NewReader(data)
	_, err := s.Client.PutObject(ctx, s.BucketName, objectName, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, s.BucketName)
	}
	return nil
}

func (s *minioStorageService) GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := s.Client.PresignedGetObject(ctx, s.BucketName, objectName, expiry, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioFindObjectPresignedURL(err, s.BucketName)
	}
	return presignedURL.String(), nil
}
