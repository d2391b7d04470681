package image

import (
	"context"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Resolver turns stored image object keys into presigned URLs that marker
// popups can embed directly.
type Resolver struct {
	minioClient *minio.Client
	bucket      string
	ttl         time.Duration
	logger      *zap.Logger
}

func NewResolver(minioClient *minio.Client, bucket string, ttl time.Duration, logger *zap.Logger) *Resolver {
	return &Resolver{
		minioClient: minioClient,
		bucket:      bucket,
		ttl:         ttl,
		logger:      logger,
	}
}

func (r *Resolver) Resolve(ctx context.Context, objectKey string) (string, error) {
	presigned, err := r.minioClient.PresignedGetObject(ctx, r.bucket, objectKey, r.ttl, url.Values{})
	if err != nil {
		r.logger.Error("error presigning image url",
			zap.String("bucket", r.bucket),
			zap.String("key", objectKey),
			zap.Error(err),
		)
		return "", err
	}

	return presigned.String(), nil
}
