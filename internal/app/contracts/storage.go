package contracts

import (
	"context"
	"io"
	"time"
)

type ObjectStorage interface {
	Upload(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error
	PresignedGetURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
	Remove(ctx context.Context, objectKey string) error
}
