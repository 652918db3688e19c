package s3client

import (
	"github.com/minio/minio-go/v7"
)

// Client is set by initializers.InitS3 when S3 is configured, nil otherwise.
var Client *minio.Client
