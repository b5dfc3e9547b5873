package s3

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	s3init "league/internal/init/s3"
	"league/internal/modules/media"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const keyPrefix = "uploads/"

// MediaS3 хранит изображения в бакете под ключами uploads/<name>.
type MediaS3 struct {
	log     *slog.Logger
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewMediaS3(log *slog.Logger, s3Client *s3init.S3Storage) *MediaS3 {
	return &MediaS3{
		log:     log,
		client:  s3Client.Client,
		bucket:  s3Client.Cfg.Bucket,
		baseURL: s3Client.PublicBaseURL(),
	}
}

func (s *MediaS3) Put(name string, data []byte, contentType string) error {
	op := "MediaS3.Put"
	log := s.log.With(slog.String("op", op), slog.String("bucket", s.bucket), slog.String("key", keyPrefix+name))

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(keyPrefix + name),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Error("failed to upload image to S3", slog.String("error", err.Error()))
		return media.ErrStorageInternal
	}
	log.Info("image uploaded to S3")
	return nil
}

func (s *MediaS3) Delete(name string) error {
	op := "MediaS3.Delete"
	log := s.log.With(slog.String("op", op), slog.String("key", keyPrefix+name))

	_, err := s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(keyPrefix + name),
	})
	if err != nil {
		log.Error("failed to delete image from S3", slog.String("error", err.Error()))
		return media.ErrStorageInternal
	}
	return nil
}

func (s *MediaS3) List() ([]media.StoredObject, error) {
	var objects []media.StoredObject

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(keyPrefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(context.TODO())
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), keyPrefix)
			if name == "" || strings.Contains(name, "/") {
				continue
			}
			objects = append(objects, media.StoredObject{
				Path:       media.UploadPrefix + name,
				ModifiedAt: aws.ToTime(obj.LastModified),
			})
		}
	}
	return objects, nil
}

func (s *MediaS3) BaseURL() string {
	return s.baseURL
}
