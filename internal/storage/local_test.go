package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalProvider_PutAndGetObject(t *testing.T) {
	dir := t.TempDir()
	provider := NewLocalProvider(dir)

	bucket := "test-bucket"
	key := "runs/worker_E0.avro"
	content := []byte("Test content")

	require.NoError(t, provider.CreateBucket(context.Background(), bucket))
	require.NoError(t, provider.PutObject(context.Background(), bucket, key, bytes.NewReader(content)))

	data, err := os.ReadFile(filepath.Join(dir, bucket, "runs", "worker_E0.avro"))
	require.NoError(t, err)
	assert.Equal(t, content, data)

	data, err = provider.GetObject(context.Background(), bucket, key)
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestLocalProvider_ListObjects(t *testing.T) {
	provider := NewLocalProvider(t.TempDir())
	ctx := context.Background()
	bucket := "test-bucket"

	for _, key := range []string{"a/worker_T1.json", "a/worker_T0.json", "b/other.json"} {
		require.NoError(t, provider.PutObject(ctx, bucket, key, bytes.NewReader([]byte(key))))
	}

	objects, err := provider.ListObjects(ctx, bucket, "a/")
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "a/worker_T0.json", objects[0].Name)
	assert.Equal(t, int64(len("a/worker_T0.json")), objects[0].Size)
	assert.Equal(t, "a/worker_T1.json", objects[1].Name)

	all, err := provider.ListObjects(ctx, bucket, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	missing, err := provider.ListObjects(ctx, "missing-bucket", "")
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestLocalProvider_IterObjectsStopsEarly(t *testing.T) {
	provider := NewLocalProvider(t.TempDir())
	ctx := context.Background()

	for _, key := range []string{"x1", "x2", "x3"} {
		require.NoError(t, provider.PutObject(ctx, "bucket", key, bytes.NewReader(nil)))
	}

	seen := 0
	for obj, err := range provider.IterObjects(ctx, "bucket", "x") {
		require.NoError(t, err)
		assert.NotEmpty(t, obj.Name)
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestUploadFile(t *testing.T) {
	dir := t.TempDir()
	provider := NewLocalProvider(filepath.Join(dir, "store"))

	src := filepath.Join(dir, "worker_E3.avro")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))

	require.NoError(t, UploadFile(context.Background(), provider, "out", "prefix/worker_E3.avro", src))

	data, err := provider.GetObject(context.Background(), "out", "prefix/worker_E3.avro")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	assert.Error(t, UploadFile(context.Background(), provider, "out", "k", filepath.Join(dir, "missing")))
}
