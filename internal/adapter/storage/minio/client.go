// internal/adapter/storage/minio/client.go
package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/goccy/go-json"

	appconfig "github.com/GoArmGo/StarWarsAPI/internal/config"
	"github.com/GoArmGo/StarWarsAPI/internal/domain"
)

// Client хранит снимки набора данных в MinIO (S3-совместимом хранилище)
// одним JSON-объектом по ключу SnapshotKey.
type Client struct {
	s3Client    *s3.Client
	uploader    *manager.Uploader
	bucketName  string
	snapshotKey string
	logger      *slog.Logger
}

// endpointURL добавляет схему к адресу MinIO, если ее нет
func endpointURL(endpoint string, useSSL bool) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}

// NewMinioClient создает клиент и при необходимости создает бакет
func NewMinioClient(ctx context.Context, cfg *appconfig.Config, logger *slog.Logger) (*Client, error) {
	m := cfg.Minio
	if m.AccessKeyID == "" || m.SecretAccessKey == "" || m.BucketName == "" || m.Endpoint == "" || m.Region == "" {
		return nil, fmt.Errorf("MinIO settings (MINIO_ENDPOINT, MINIO_ACCESS_KEY_ID, MINIO_SECRET_ACCESS_KEY, MINIO_BUCKET_NAME, MINIO_REGION) must be set")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(m.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(m.AccessKeyID, m.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load AWS config for MinIO: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpointURL(m.Endpoint, m.UseSSL))
		o.UsePathStyle = true
		// MinIO не требует контрольных сумм, которые SDK добавляет по умолчанию
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	c := &Client{
		s3Client:    s3Client,
		uploader:    manager.NewUploader(s3Client),
		bucketName:  m.BucketName,
		snapshotKey: m.SnapshotKey,
		logger:      logger,
	}

	if err := c.ensureBucket(ctx, m.Region); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) ensureBucket(ctx context.Context, region string) error {
	headCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := c.s3Client.HeadBucket(headCtx, &s3.HeadBucketInput{Bucket: aws.String(c.bucketName)})
	if err == nil {
		c.logger.Info("bucket already exists", "bucket", c.bucketName)
		return nil
	}

	c.logger.Info("bucket not found, creating", "bucket", c.bucketName)

	input := &s3.CreateBucketInput{Bucket: aws.String(c.bucketName)}
	// us-east-1 нельзя передавать как LocationConstraint
	if region != "" && region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(region),
		}
	}
	if _, err := c.s3Client.CreateBucket(ctx, input); err != nil {
		return fmt.Errorf("create bucket %q: %w", c.bucketName, err)
	}

	waiter := s3.NewBucketExistsWaiter(c.s3Client)
	if err := waiter.Wait(ctx, &s3.HeadBucketInput{Bucket: aws.String(c.bucketName)}, 30*time.Second); err != nil {
		return fmt.Errorf("wait for bucket %q: %w", c.bucketName, err)
	}

	c.logger.Info("bucket created", "bucket", c.bucketName)
	return nil
}

// SaveDataset выгружает снимок в бакет. Реализует ports.DatasetSink.
func (c *Client) SaveDataset(ctx context.Context, dataset *domain.Dataset) error {
	start := time.Now()

	body, err := json.Marshal(dataset)
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}

	out, err := c.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucketName),
		Key:         aws.String(c.snapshotKey),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("upload snapshot %s to bucket %s: %w", c.snapshotKey, c.bucketName, err)
	}

	c.logger.Info("snapshot uploaded",
		"bucket", c.bucketName,
		"key", c.snapshotKey,
		"location", out.Location,
		"bytes", len(body),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// LoadDataset читает снимок из бакета. Реализует ports.DatasetSource.
func (c *Client) LoadDataset(ctx context.Context) (*domain.Dataset, error) {
	out, err := c.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(c.snapshotKey),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("snapshot %s not found in bucket %s: %w", c.snapshotKey, c.bucketName, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get snapshot %s from bucket %s: %w", c.snapshotKey, c.bucketName, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read snapshot body: %w", err)
	}

	var ds domain.Dataset
	if err := json.Unmarshal(body, &ds); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", c.snapshotKey, err)
	}

	c.logger.Info("snapshot downloaded", "bucket", c.bucketName, "key", c.snapshotKey, "bytes", len(body))
	return &ds, nil
}
