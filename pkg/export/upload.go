package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/joho/godotenv"
)

// UploadTimeout bounds a single S3 upload
const UploadTimeout = 10 * time.Second

// UploadConfig holds the S3 destination for rendered images. All fields come
// from the environment; an empty bucket disables uploading.
type UploadConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
}

// getEnv returns an environment variable with a default value
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// LoadUploadConfig reads the upload configuration from the environment,
// first loading a .env file from the given path if one exists
func LoadUploadConfig(envPath string) UploadConfig {
	_ = godotenv.Load(envPath)

	return UploadConfig{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Bucket:    os.Getenv("S3_BUCKET"),
	}
}

// Enabled reports whether the configuration names a destination bucket
func (c UploadConfig) Enabled() bool {
	return c.Bucket != ""
}

// Uploader pushes rendered images to an S3-compatible object store
type Uploader struct {
	client *s3.S3
	bucket string
}

// NewUploader creates an uploader from the given configuration
func NewUploader(cfg UploadConfig) (*Uploader, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("upload not configured: S3_BUCKET is empty")
	}

	s3Config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Endpoint:         aws.String(cfg.Endpoint),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return &Uploader{
		client: s3.New(sess),
		bucket: cfg.Bucket,
	}, nil
}

// UploadPNG uploads PNG bytes under the given key
func (u *Uploader) UploadPNG(ctx context.Context, key string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
