// internal/config/s3.go
package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds S3 configuration
type S3Config struct {
	Client        *s3.Client
	Bucket        string
	PublicBaseURL string
}

// NewS3Config creates a new S3 configuration. It returns nil without an
// error when no bucket is configured, which disables image uploads.
func NewS3Config(ctx context.Context, settings S3Settings) (*S3Config, error) {
	if settings.Bucket == "" {
		return nil, nil
	}

	opts := []func(*config.LoadOptions) error{}
	if settings.Region != "" {
		opts = append(opts, config.WithRegion(settings.Region))
	}
	if settings.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			settings.AccessKeyID,
			settings.SecretAccessKey,
			"",
		)))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	publicBaseURL := settings.PublicBaseURL
	if publicBaseURL == "" {
		publicBaseURL = "https://" + settings.Bucket + ".s3." + cfg.Region + ".amazonaws.com"
	}

	return &S3Config{
		Client:        s3.NewFromConfig(cfg),
		Bucket:        settings.Bucket,
		PublicBaseURL: publicBaseURL,
	}, nil
}
