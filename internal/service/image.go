package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platefull/backend/config"
)

// imageRequest is the image-generation service request body.
type imageRequest struct {
	Prompt string `json:"prompt"`
}

// imageResponse is the image-generation service response body.
type imageResponse struct {
	ImageURL string `json:"imageUrl"`
}

// ImageService renders recipe images through the image-generation service
// and re-uploads them to S3 so the stored URL outlives the service's
// short-lived one.
type ImageService struct {
	client  *resty.Client
	storage *config.S3Client
	log     *zap.Logger
}

// NewImageService creates a new ImageService instance. storage may be nil,
// in which case the service URL is stored directly.
func NewImageService(cfg *config.Config, storage *config.S3Client, log *zap.Logger) *ImageService {
	client := resty.New().
		SetBaseURL(cfg.Image.APIURL).
		SetTimeout(cfg.Image.Timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.Image.APIKey != "" {
		client.SetAuthToken(cfg.Image.APIKey)
	}

	return &ImageService{
		client:  client,
		storage: storage,
		log:     log,
	}
}

// RenderImage generates an image for the given prompt. A vegetarian
// qualifier is appended in vegetarian mode. The pipeline performs no
// retries; a failed render is surfaced to the user as-is.
func (s *ImageService) RenderImage(ctx context.Context, prompt string, vegetarian bool) (string, error) {
	if prompt == "" {
		return "", NewImageGenerationError("empty image prompt", nil)
	}
	if vegetarian {
		prompt += vegetarianImageQualifier
	}

	var result imageResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(imageRequest{Prompt: prompt}).
		SetResult(&result).
		Post("")
	if err != nil {
		return "", NewImageGenerationError("image service unreachable", err)
	}

	if resp.IsError() {
		s.log.Error("image generation failed",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()))
		return "", NewImageGenerationError("image generation failed", fmt.Errorf("status %d", resp.StatusCode()))
	}

	if result.ImageURL == "" {
		return "", NewImageGenerationError("image generation failed", fmt.Errorf("missing imageUrl in response"))
	}

	if s.storage == nil {
		return result.ImageURL, nil
	}

	stored, err := s.uploadToStorage(ctx, result.ImageURL)
	if err != nil {
		// keep the service URL rather than failing an otherwise good render
		s.log.Warn("failed to store generated image, keeping source URL", zap.Error(err))
		return result.ImageURL, nil
	}
	return stored, nil
}

// uploadToStorage downloads the generated image and uploads it to S3.
func (s *ImageService) uploadToStorage(ctx context.Context, imageURL string) (string, error) {
	resp, err := s.client.R().SetContext(ctx).Get(imageURL)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("failed to download image, status: %d", resp.StatusCode())
	}

	key := fmt.Sprintf("recipe-images/%s.png", uuid.New().String())

	_, err = s.storage.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.storage.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(resp.Body()),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.storage.Bucket, key)
	s.log.Info("stored generated image", zap.String("url", publicURL))
	return publicURL, nil
}
