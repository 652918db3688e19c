package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"ob-forms-backend/config"
	backupstorage "ob-forms-backend/lib/backup-storage"
	s3client "ob-forms-backend/s3"
)

// InitS3 is optional, backups stay disabled when no endpoint is configured.
func InitS3() {
	if config.Conf.S3.Endpoint == "" {
		log.Info("S3 is not configured, backup uploads disabled")
		return
	}
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("failed to init S3 client")
		return
	}

	_, err = minioClient.ListBuckets(context.Background())
	if err != nil {
		log.WithError(err).Error("S3 connection check failed")
	}

	s3client.Client = minioClient
	backupstorage.NewInstance(minioClient)
	log.Info("S3 client initialized")
}
