package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"fyyur/internal/config"
	"fyyur/internal/interfaces"
)

type objectUploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type objectDeleter interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3ImageStore keeps venue and artist pictures in a bucket and hands back
// their public URL for image_link.
type S3ImageStore struct {
	uploader      objectUploader
	deleter       objectDeleter
	bucket        string
	publicBaseURL string
	newKey        func(ext string) string
}

var _ interfaces.ImageStore = (*S3ImageStore)(nil)

func NewS3ImageStore(cfg *config.S3Config) *S3ImageStore {
	return &S3ImageStore{
		uploader:      manager.NewUploader(cfg.Client),
		deleter:       cfg.Client,
		bucket:        cfg.Bucket,
		publicBaseURL: cfg.PublicBaseURL,
		newKey:        imageKey,
	}
}

func imageKey(ext string) string {
	return path.Join("images", uuid.NewString()+strings.ToLower(ext))
}

func (s *S3ImageStore) Upload(ctx context.Context, filename string, contentType string, body io.Reader) (string, error) {
	key := s.newKey(path.Ext(filename))

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.uploader.Upload(ctx, input); err != nil {
		return "", fmt.Errorf("upload image %s: %w", filename, err)
	}
	return strings.TrimRight(s.publicBaseURL, "/") + "/" + key, nil
}

// Delete removes an object previously returned by Upload.
func (s *S3ImageStore) Delete(ctx context.Context, url string) error {
	prefix := strings.TrimRight(s.publicBaseURL, "/") + "/"
	key, ok := strings.CutPrefix(url, prefix)
	if !ok || key == "" {
		return fmt.Errorf("delete image %s: not stored in bucket %s", url, s.bucket)
	}

	_, err := s.deleter.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete image %s: %w", key, err)
	}
	return nil
}
