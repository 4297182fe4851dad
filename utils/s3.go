package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	appConfig "github.com/socialboost/vision/config"
	"github.com/socialboost/vision/models"
)

var (
	S3Client      *s3.Client
	PresignClient *s3.PresignClient
)

// InitS3 initializes the S3 client
func InitS3(ctx context.Context) error {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(appConfig.AWSRegion),
	)
	if err != nil {
		return fmt.Errorf("unable to load SDK config, %v", err)
	}

	S3Client = s3.NewFromConfig(cfg)
	PresignClient = s3.NewPresignClient(S3Client)
	log.Println("S3 Client Initialized")
	return nil
}

// UploadFileToS3 uploads a file to S3 and returns the Object Key
func UploadFileToS3(ctx context.Context, file io.Reader, objectKey string, contentType string) (string, error) {
	if S3Client == nil {
		if err := InitS3(ctx); err != nil {
			return "", err
		}
	}

	_, err := S3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(appConfig.AWSBucketName),
		Key:         aws.String(objectKey),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %v", err)
	}

	return objectKey, nil
}

// GetPresignedURL generates a presigned URL for an object
func GetPresignedURL(ctx context.Context, objectKey string) (string, error) {
	if PresignClient == nil {
		if err := InitS3(ctx); err != nil {
			return "", err
		}
	}

	request, err := PresignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(appConfig.AWSBucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(1*time.Hour))
	if err != nil {
		return "", fmt.Errorf("failed to sign request: %v", err)
	}

	return request.URL, nil
}

// S3PreviewStore keeps uploaded images in the configured bucket and serves them by presigned URL
type S3PreviewStore struct {
	Prefix string
}

// PreviewURL uploads the image and returns a presigned link to it
func (s S3PreviewStore) PreviewURL(ctx context.Context, img *models.ImageFile) (string, error) {
	objectKey := path.Join(s.Prefix, fmt.Sprintf("%s_%s", uuid.NewString(), imageFileName(img.Name)))
	if _, err := UploadFileToS3(ctx, bytes.NewReader(img.Data), objectKey, img.ContentType); err != nil {
		return "", err
	}
	return GetPresignedURL(ctx, objectKey)
}

// DataURLPreviewStore inlines the image as a data: URL, used when no bucket is configured
type DataURLPreviewStore struct{}

// PreviewURL encodes the image as base64 data URL
func (DataURLPreviewStore) PreviewURL(_ context.Context, img *models.ImageFile) (string, error) {
	return DataURL(img), nil
}

// DataURL renders the image as a data: URL
func DataURL(img *models.ImageFile) string {
	contentType := img.ContentType
	if contentType == "" {
		contentType = defaultImageContentType
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}
