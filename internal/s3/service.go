package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stewardly/stewardly/internal/config"
	ierr "github.com/stewardly/stewardly/internal/errors"
)

const (
	defaultPresignExpiryDuration = 30 * time.Minute
)

// Service stores and removes captured signature images. The database row
// holds only the object key; the image bytes live here.
type Service interface {
	UploadSignature(ctx context.Context, image *SignatureImage) error
	GetSignature(ctx context.Context, objectKey string) ([]byte, error)
	GetPresignedUrl(ctx context.Context, objectKey string) (string, error)
	DeleteObject(ctx context.Context, objectKey string) error
	Exists(ctx context.Context, objectKey string) (bool, error)
}

type s3ServiceImpl struct {
	client *s3.Client
	config *config.S3Config
}

func NewService(config *config.Configuration) (Service, error) {
	if !config.S3.Enabled {
		return nil, nil
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion(config.S3.Region),
	)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("failed to load aws config").
			Mark(ierr.ErrSystem)
	}

	return &s3ServiceImpl{
		config: &config.S3,
		client: s3.NewFromConfig(awsCfg),
	}, nil
}

func (s *s3ServiceImpl) fullKey(objectKey string) string {
	if s.config.KeyPrefix != "" {
		return fmt.Sprintf("%s/%s", s.config.KeyPrefix, objectKey)
	}
	return objectKey
}

func (s *s3ServiceImpl) contentType(format ImageFormat) string {
	switch format {
	case ImageFormatPng:
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

// Exists implements Service.
func (s *s3ServiceImpl) Exists(ctx context.Context, objectKey string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.config.SignatureBucket),
		Key:    aws.String(s.fullKey(objectKey)),
	})

	if err != nil {
		var nsk *types.NoSuchKey
		var nske *types.NotFound
		if errors.As(err, &nsk) || errors.As(err, &nske) {
			return false, nil
		}
		return false, ierr.WithError(err).
			WithHint("failed to check if signature object exists").
			Mark(ierr.ErrSystem)
	}

	return true, nil
}

// GetPresignedUrl implements Service.
func (s *s3ServiceImpl) GetPresignedUrl(ctx context.Context, objectKey string) (string, error) {
	presigner := s3.NewPresignClient(s.client)
	result, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.SignatureBucket),
		Key:    aws.String(s.fullKey(objectKey)),
	}, s3.WithPresignExpires(defaultPresignExpiryDuration))
	if err != nil {
		return "", ierr.WithError(err).WithHint("failed to get presigned url").
			WithMessagef("bucket:%s, key:%s", s.config.SignatureBucket, s.fullKey(objectKey)).
			Mark(ierr.ErrSystem)
	}

	return result.URL, nil
}

// UploadSignature implements Service.
func (s *s3ServiceImpl) UploadSignature(ctx context.Context, image *SignatureImage) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.SignatureBucket),
		Key:         aws.String(s.fullKey(image.ObjectKey)),
		Body:        bytes.NewReader(image.Data),
		ContentType: aws.String(s.contentType(image.Format)),
	})
	if err != nil {
		return ierr.WithError(err).WithHint("failed to upload signature image").
			WithMessagef("bucket:%s, key:%s", s.config.SignatureBucket, s.fullKey(image.ObjectKey)).
			Mark(ierr.ErrSystem)
	}

	return nil
}

// DeleteObject implements Service.
func (s *s3ServiceImpl) DeleteObject(ctx context.Context, objectKey string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.SignatureBucket),
		Key:    aws.String(s.fullKey(objectKey)),
	})
	if err != nil {
		return ierr.WithError(err).WithHint("failed to delete signature image").
			WithMessagef("bucket:%s, key:%s", s.config.SignatureBucket, s.fullKey(objectKey)).
			Mark(ierr.ErrSystem)
	}

	return nil
}

// GetSignature implements Service.
func (s *s3ServiceImpl) GetSignature(ctx context.Context, objectKey string) ([]byte, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.SignatureBucket),
		Key:    aws.String(s.fullKey(objectKey)),
	})
	if err != nil {
		return nil, ierr.WithError(err).WithHint("failed to get signature image").
			WithMessagef("bucket:%s, key:%s", s.config.SignatureBucket, s.fullKey(objectKey)).
			Mark(ierr.ErrSystem)
	}

	defer result.Body.Close()

	return io.ReadAll(result.Body)
}
