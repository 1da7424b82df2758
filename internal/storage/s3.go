// Package storage uploads document files to an S3 compatible bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"mskn-backend/internal/config"
	"mskn-backend/internal/logger"
)

// putObjectAPI is the part of *s3.Client the store uses.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Store struct {
	client    putObjectAPI
	bucket    string
	publicURL string
}

// NewS3Store builds a store from config. It returns nil when no bucket is
// configured; callers then keep document metadata only.
func NewS3Store(ctx context.Context, cfg *config.Config) (*S3Store, error) {
	if cfg.Storage.Bucket == "" {
		logger.For("Storage").Info("No bucket configured, uploads keep metadata only")
		return nil, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Storage.Region),
	}
	if cfg.Storage.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Storage.AccessKey,
			cfg.Storage.SecretKey,
			"",
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("configure s3 client: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := cfg.Storage.PublicURL
	if publicURL == "" && cfg.Storage.Endpoint != "" {
		publicURL = strings.TrimRight(cfg.Storage.Endpoint, "/") + "/" + cfg.Storage.Bucket
	}
	return newS3Store(client, cfg.Storage.Bucket, publicURL), nil
}

func newS3Store(client putObjectAPI, bucket, publicURL string) *S3Store {
	return &S3Store{client: client, bucket: bucket, publicURL: strings.TrimRight(publicURL, "/")}
}

// ObjectKey names an upload under documents/ with a millisecond prefix.
func ObjectKey(name string, at time.Time) string {
	return fmt.Sprintf("documents/%d-%s", at.UnixMilli(), sanitize(name))
}

// PlaceholderURL is the document url used when nothing is stored.
func PlaceholderURL(name string, at time.Time) string {
	return fmt.Sprintf("/uploads/%d-%s", at.UnixMilli(), name)
}

func sanitize(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '/' || r < 0x20 {
			return '_'
		}
		return r
	}, name)
}

// Put uploads body under key and returns the object's URL.
func (s *S3Store) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return s.URL(key), nil
}

// Delete removes the object behind a URL produced by Put. URLs from another
// origin are ignored.
func (s *S3Store) Delete(ctx context.Context, objectURL string) error {
	key, ok := s.keyFor(objectURL)
	if !ok {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *S3Store) URL(key string) string {
	if s.publicURL == "" {
		return "s3://" + s.bucket + "/" + key
	}
	return s.publicURL + "/" + (&url.URL{Path: key}).EscapedPath()
}

func (s *S3Store) keyFor(objectURL string) (string, bool) {
	prefix := s.publicURL + "/"
	if s.publicURL == "" {
		prefix = "s3://" + s.bucket + "/"
	}
	if !strings.HasPrefix(objectURL, prefix) {
		return "", false
	}
	key, err := url.PathUnescape(strings.TrimPrefix(objectURL, prefix))
	if err != nil {
		return "", false
	}
	return key, true
}
