package backupstorage

import (
	"bytes"
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"ob-forms-backend/config"
)

type Provider interface {
	UploadBackup(ctx context.Context, objectName string, data []byte) error
	EnsureBucket(ctx context.Context) error
}

var Instance Provider

type impl struct {
	s3client *minio.Client
}

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

func (i impl) EnsureBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
}

func (i impl) UploadBackup(ctx context.Context, objectName string, data []byte) error {
	if err := i.EnsureBucket(ctx); err != nil {
		return errors.Wrap(err, "backup bucket check failed")
	}
	reader := bytes.NewReader(data)
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectName, reader, int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return errors.Wrap(err, "backup upload failed")
	}
	return nil
}
