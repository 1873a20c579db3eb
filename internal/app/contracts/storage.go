package contracts

import (
	"context"
	"time"
)

type StorageService interface {
	UploadObject(ctx context.Context, objectName string, data []byte, contentType string) error
	GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
