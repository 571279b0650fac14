package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"eventcomposer/internal/domain"
)

const posterCacheControl = "public, max-age=31536000, immutable"

// ErrDisabled is returned by the noop blob store for every upload.
var ErrDisabled = errors.New("blob storage is disabled")

// Config holds configuration for creating a blob store.
type Config struct {
	Provider        string
	Bucket          string
	Region          string
	Endpoint        string
	PublicBaseURL   string
	AccessKeyID     string
	SecretAccessKey string
}

// s3API is the part of the S3 client the blob store uses.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewBlobStore creates a blob store from config. Provider "s3" uploads to an S3
// compatible bucket; "noop" or unknown rejects every upload.
func NewBlobStore(config Config, logger *slog.Logger) (domain.BlobStore, error) {
	switch config.Provider {
	case "s3":
		if config.Bucket == "" {
			return nil, fmt.Errorf("s3 blob store: bucket is required")
		}
		awsCfg := aws.Config{
			Region: config.Region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(
					config.AccessKeyID,
					config.SecretAccessKey,
					"",
				),
			),
		}
		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if config.Endpoint != "" {
				o.BaseEndpoint = aws.String(config.Endpoint)
				o.UsePathStyle = true
			}
		})
		return newS3Store(client, config, logger), nil
	case "noop":
		return &noopStore{}, nil
	default:
		logger.Warn("unknown blob provider, using noop", "provider", config.Provider)
		return &noopStore{}, nil
	}
}

type s3Store struct {
	client  s3API
	bucket  string
	baseURL string
	logger  *slog.Logger
}

func newS3Store(client s3API, config Config, logger *slog.Logger) *s3Store {
	base := strings.TrimSuffix(config.PublicBaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", config.Bucket, config.Region)
	}
	return &s3Store{client: client, bucket: config.Bucket, baseURL: base, logger: logger}
}

func (s *s3Store) Upload(ctx context.Context, path, contentType string, data []byte) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(path),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String(posterCacheControl),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", path, err)
	}
	s.logger.DebugContext(ctx, "object uploaded", "bucket", s.bucket, "key", path, "bytes", len(data))
	return nil
}

func (s *s3Store) PublicURL(path string) string {
	return s.baseURL + "/" + strings.TrimPrefix(path, "/")
}

type noopStore struct{}

func (noopStore) Upload(ctx context.Context, path, contentType string, data []byte) error {
	return ErrDisabled
}

func (noopStore) PublicURL(path string) string { return "" }
