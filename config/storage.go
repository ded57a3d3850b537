package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Client holds the S3 client and target bucket for recipe images
type S3Client struct {
	Client *s3.Client
	Bucket string
}

// NewS3Client initializes the S3 client from the AWS environment
func NewS3Client(ctx context.Context, cfg *Config) (*S3Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.S3.Region),
	)
	if err != nil {
		return nil, err
	}

	return &S3Client{
		Client: s3.NewFromConfig(awsCfg),
		Bucket: cfg.S3.Bucket,
	}, nil
}
