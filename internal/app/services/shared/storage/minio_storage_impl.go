package storage

import (
	"context"
	"io"
	"time"

	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	client     *minio.Client
	bucketName string
}

func NewMinioStorage(client *minio.Client, bucketName string) contracts.ObjectStorage {
	return &minioStorage{
		client:     client,
		bucketName: bucketName,
	}
}

func (m *minioStorage) Upload(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucketName, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrStorageUpload(err)
	}
	return nil
}

func (m *minioStorage) PresignedGetURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	presignedURL, err := m.client.PresignedGetObject(ctx, m.bucketName, objectKey, expiry, nil)
	if err != nil {
		return "", exceptions.ErrStoragePresignedURL(err)
	}
	return presignedURL.String(), nil
}

func (m *minioStorage) Remove(ctx context.Context, objectKey string) error {
	if err := m.client.RemoveObject(ctx, m.bucketName, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return exceptions.ErrStorageUpload(err)
	}
	return nil
}
