package storage

import (
	"context"
	"fmt"
	"io"
	"os"
)

type Object struct {
	Name string
	Size int64
}

type ObjectIterator func(yield func(obj Object, err error) bool)

// Provider is an object store that generated files can be published to.
type Provider interface {
	CreateBucket(ctx context.Context, bucket string) error

	GetObject(ctx context.Context, bucket, key string) ([]byte, error)

	PutObject(ctx context.Context, bucket, key string, data io.Reader) error

	ListObjects(ctx context.Context, bucket, prefix string) ([]Object, error)

	IterObjects(ctx context.Context, bucket, prefix string) ObjectIterator
}

// UploadFile streams the file at path to bucket/key.
func UploadFile(ctx context.Context, p Provider, bucket, key, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening %s for upload: %w", path, err)
	}
	defer file.Close()

	if err := p.PutObject(ctx, bucket, key, file); err != nil {
		return fmt.Errorf("error uploading %s: %w", path, err)
	}
	return nil
}
