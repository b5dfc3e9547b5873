package s3

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"league/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Storage содержит клиент и конфигурацию S3.
type S3Storage struct {
	Client *s3.Client
	Cfg    config.S3Config
}

// NewS3Storage инициализирует клиент, проверяет/создает бакет и применяет политику публичного чтения.
func NewS3Storage(appS3Cfg config.S3Config, log *slog.Logger) (*S3Storage, error) {
	log = log.With(slog.String("op", "s3.NewS3Storage"), slog.String("endpoint", appS3Cfg.Endpoint))

	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")
	if accessKey == "" || secretKey == "" {
		return nil, errors.New("S3_ACCESS_KEY or S3_SECRET_KEY environment variables are not set")
	}
	if appS3Cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is not configured")
	}

	sdkCfg, err := awsConfig.LoadDefaultConfig(context.TODO(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
		awsConfig.WithRegion(appS3Cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		if appS3Cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(EndpointURL(appS3Cfg.Endpoint))
			o.UsePathStyle = true
		}
	})

	storage := &S3Storage{Client: client, Cfg: appS3Cfg}
	if err := storage.ensureBucket(context.TODO(), log); err != nil {
		// Не прерываем запуск: бакет мог быть создан вручную без прав на HeadBucket.
		log.Warn("failed to ensure bucket", slog.String("bucket", appS3Cfg.Bucket), slog.String("error", err.Error()))
	}

	log.Info("s3 client initialized", slog.String("bucket", appS3Cfg.Bucket))
	return storage, nil
}

// PublicBaseURL возвращает https://endpoint/bucket для формирования ссылок на объекты.
func (s *S3Storage) PublicBaseURL() string {
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(EndpointURL(s.Cfg.Endpoint), "/"), s.Cfg.Bucket)
}

func EndpointURL(endpoint string) string {
	if endpoint != "" && !strings.HasPrefix(endpoint, "http") {
		return "https://" + endpoint
	}
	return endpoint
}

func (s *S3Storage) ensureBucket(ctx context.Context, log *slog.Logger) error {
	bucket := s.Cfg.Bucket
	_, err := s.Client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
	if err == nil {
		log.Info("bucket already exists", slog.String("bucket", bucket))
		return nil
	}

	var apiError interface{ ErrorCode() string }
	if !errors.As(err, &apiError) || (apiError.ErrorCode() != "NotFound" && apiError.ErrorCode() != "NoSuchBucket") {
		return fmt.Errorf("head bucket %q: %w", bucket, err)
	}

	var createCfg *types.CreateBucketConfiguration
	if s.Cfg.Region != "" && s.Cfg.Region != "us-east-1" {
		createCfg = &types.CreateBucketConfiguration{LocationConstraint: types.BucketLocationConstraint(s.Cfg.Region)}
	}
	_, err = s.Client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket:                    aws.String(bucket),
		CreateBucketConfiguration: createCfg,
	})
	if err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		var exists *types.BucketAlreadyExists
		if !errors.As(err, &owned) && !errors.As(err, &exists) {
			return fmt.Errorf("create bucket %q: %w", bucket, err)
		}
	}
	log.Info("bucket created", slog.String("bucket", bucket))

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [{"Effect": "Allow", "Principal": "*", "Action": ["s3:GetObject"], "Resource": "arn:aws:s3:::%s/*"}]
	}`, bucket)
	if _, err := s.Client.PutBucketPolicy(ctx, &s3.PutBucketPolicyInput{
		Bucket: aws.String(bucket),
		Policy: aws.String(policy),
	}); err != nil {
		log.Warn("failed to apply public read policy", slog.String("error", err.Error()))
	}
	return nil
}
