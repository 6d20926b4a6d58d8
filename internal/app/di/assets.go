package di

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"

	"market_backend/internal/config"
	"market_backend/internal/platform/storage"
)

// NewAssetStore creates the S3-backed picture store from the storage settings.
// A custom endpoint (MinIO, R2...) switches the client to path-style addressing.
func NewAssetStore(ctx context.Context, cfg config.Config) (*storage.S3Store, error) {
	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Storage.Region),
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.AWS.Profile))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
			o.UsePathStyle = true
		}
	})
	if cfg.Storage.Bucket == "" {
		logrus.Warn("S3_BUCKET is not set, offers with a picture will be rejected")
	} else {
		logrus.WithFields(logrus.Fields{"bucket": cfg.Storage.Bucket, "region": cfg.Storage.Region}).Info("using s3 bucket")
	}
	return storage.NewS3Store(client, storage.Options{
		Bucket:        cfg.Storage.Bucket,
		KeyPrefix:     cfg.Storage.KeyPrefix,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	}), nil
}
