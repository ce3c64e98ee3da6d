package storage

import (
	"context"
	"io"
)

// Config holds the S3 or MinIO connection settings.
type Config struct {
	Endpoint  string // empty for AWS, set for MinIO or other S3-compatible stores
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

// ObjectReader fetches objects by key.
type ObjectReader interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}
