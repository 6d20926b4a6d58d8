package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"market_backend/internal/feature/offers/usecase"
	"market_backend/internal/shared/asset"
)

// S3Store uploads pictures to Amazon S3 (or compatible APIs).
type S3Store struct {
	uploader *manager.Uploader
	opts     Options
	now      Clock
}

var _ usecase.AssetStore = (*S3Store)(nil)

func NewS3Store(client *s3.Client, opts Options) *S3Store {
	return &S3Store{
		uploader: manager.NewUploader(client),
		opts:     opts,
		now:      time.Now,
	}
}

// UploadImage stores data under a fresh key and describes the stored object.
func (s *S3Store) UploadImage(ctx context.Context, filename, contentType string, data []byte) (*asset.Descriptor, error) {
	if s.opts.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	id := uuid.NewString()
	key := s.objectKey(id + extension(filename, contentType))

	out, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.opts.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	url := out.Location
	if base := strings.TrimRight(s.opts.PublicBaseURL, "/"); base != "" {
		url = base + "/" + key
	}

	return &asset.Descriptor{
		ID:               key,
		URL:              url,
		Bucket:           s.opts.Bucket,
		ContentType:      contentType,
		Bytes:            int64(len(data)),
		OriginalFilename: filepath.Base(filename),
		ETag:             strings.Trim(aws.ToString(out.ETag), `"`),
		CreatedAt:        s.now().UTC(),
	}, nil
}

func (s *S3Store) objectKey(name string) string {
	prefix := strings.Trim(s.opts.KeyPrefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// extension prefers the uploaded file's extension and falls back to the content type.
func extension(filename, contentType string) string {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" && len(ext) <= 6 {
		return ext
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
