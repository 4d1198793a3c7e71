package utils

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Uploader writes uploaded label images into the analysis bucket. One
// instance is constructed at process start and shared; the underlying client
// is safe for concurrent use.
type S3Uploader struct {
	client *s3.Client
	bucket string
}

func NewS3Uploader() (*S3Uploader, error) {
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = os.Getenv("AWS_REGION") // fallback
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config for S3: %w", err)
	}

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET not set")
	}

	return &S3Uploader{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

// UploadImage stores the raw image bytes under a key namespaced by user and
// a fresh unique id. Keys are collision-proof by construction and never
// checked for pre-existence.
func (u *S3Uploader) UploadImage(ctx context.Context, user, filename string, data []byte) (string, error) {
	key := fmt.Sprintf("uploads/%s/%s/%s", user, filename,
		strings.ReplaceAll(uuid.NewString(), "-", ""))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	log.Printf("Uploaded file %s for user %s as %s", filename, user, key)
	return key, nil
}
