package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

// OCRService reads label text off an uploaded image with Textract.
type OCRService struct {
	client *textract.Client
	bucket string
}

func NewOCRService() (*OCRService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &OCRService{
		client: textract.NewFromConfig(cfg),
		bucket: os.Getenv("S3_BUCKET"),
	}, nil
}

// ExtractText runs document-text detection against the stored object and
// joins the LINE blocks in reading order.
func (s *OCRService) ExtractText(ctx context.Context, key string) (string, error) {
	out, err := s.client.DetectDocumentText(ctx, &textract.DetectDocumentTextInput{
		Document: &types.Document{
			S3Object: &types.S3Object{
				Bucket: aws.String(s.bucket),
				Name:   aws.String(key),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("textract detect failed: %w", err)
	}

	var lines []string
	for _, b := range out.Blocks {
		if b.BlockType == types.BlockTypeLine && b.Text != nil {
			lines = append(lines, *b.Text)
		}
	}
	return strings.Join(lines, "\n"), nil
}
