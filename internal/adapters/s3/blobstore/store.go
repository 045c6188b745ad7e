// Package blobstore implements the blob-store port on S3-compatible object
// storage (AWS S3, MinIO, RustFS, ...).
package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/club41-romania/directory-api/internal/ports/out/blobstore"
)

// Config carries the deployment-provided settings for the bucket.
type Config struct {
	Bucket    string
	Region    string
	Endpoint  string // empty for AWS; set for S3-compatible services
	AccessKey string
	SecretKey string
	// PublicBaseURL is the prefix under which stored objects are reachable.
	// Empty derives the conventional AWS virtual-hosted URL.
	PublicBaseURL string
	UsePathStyle  bool
}

// Store uploads objects under collision-resistant keys and returns their
// public URLs.
type Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
	logger        *zap.Logger

	now       func() time.Time
	newSuffix func() string
}

// Option is a functional option for configuring Store.
type Option func(*Store)

// WithLogger sets a custom logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New builds a Store from configuration. Static credentials are used when
// provided; otherwise the default AWS credential chain applies.
func New(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if cfg.AccessKey != "" || cfg.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	base := strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if base == "" {
		if cfg.Endpoint != "" {
			base = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
		} else {
			base = fmt.Sprintf("https://%s.s3.amazonaws.com", cfg.Bucket)
		}
	}

	st := &Store{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: base,
		logger:        zap.NewNop(),
		now:           time.Now,
		newSuffix:     func() string { return strings.SplitN(uuid.NewString(), "-", 2)[0] },
	}
	for _, opt := range opts {
		opt(st)
	}
	return st, nil
}

func (s *Store) Put(ctx context.Context, obj blobstore.Object) (string, error) {
	key := s.objectKey(obj.Filename)
	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(obj.Data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.logger.Error("blob upload failed",
			zap.String("bucket", s.bucket),
			zap.String("key", key),
			zap.Error(err))
		return "", fmt.Errorf("upload object %s: %w", key, err)
	}

	s.logger.Info("blob uploaded",
		zap.String("bucket", s.bucket),
		zap.String("key", key),
		zap.Int("bytes", len(obj.Data)))
	return s.publicBaseURL + "/" + key, nil
}

func (s *Store) Remove(ctx context.Context, ref string) error {
	key, ok := s.keyFromRef(ref)
	if !ok {
		// Not one of ours; nothing to do.
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

// objectKey builds "<timestamp>-<random-suffix>-<sanitized-original-name>".
func (s *Store) objectKey(filename string) string {
	return fmt.Sprintf("%d-%s-%s", s.now().UnixMilli(), s.newSuffix(), sanitizeFilename(filename))
}

func (s *Store) keyFromRef(ref string) (string, bool) {
	prefix := s.publicBaseURL + "/"
	if !strings.HasPrefix(ref, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(ref, prefix)
	return key, key != ""
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9.\-_]`)

// sanitizeFilename replaces every character outside [A-Za-z0-9.-_] with "_".
func sanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}
