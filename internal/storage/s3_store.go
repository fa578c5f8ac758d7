package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disparbud-kebumen/wisata-dashboard-be/configs"
	zlog "github.com/rs/zerolog/log"
)

// S3Store menyimpan gambar destinasi di bucket S3 atau MinIO.
type S3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Store membangun client dari default credential chain AWS
// (AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY atau role instance).
func NewS3Store(ctx context.Context, cfg configs.S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		switch {
		case cfg.Endpoint != "":
			publicURL = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
		default:
			publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
		}
	}

	zlog.Info().Str("bucket", cfg.Bucket).Str("region", region).Bool("path_style", cfg.PathStyle).Msg("S3 image store initialized")
	return &S3Store{client: client, bucket: cfg.Bucket, publicURL: publicURL}, nil
}

// Put mengunggah objek dan mengembalikan URL publiknya. Objek dengan key sama ditimpa.
func (s *S3Store) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		zlog.Error().Err(err).Str("key", key).Msg("S3: put object failed")
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.publicURL + "/" + key, nil
}
