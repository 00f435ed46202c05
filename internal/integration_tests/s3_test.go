//go:build integration

package integrationtests

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"synthetic-data-generator/internal/core/generate"
	"synthetic-data-generator/internal/core/serialize"
	"synthetic-data-generator/internal/core/types"
	"synthetic-data-generator/internal/storage"

	"github.com/hamba/avro/v2/ocf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bucketName = "test-bucket"

func TestS3Provider(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	provider := setupS3Provider(t, ctx)
	require.NoError(t, provider.CreateBucket(ctx, bucketName))
	require.NoError(t, provider.CreateBucket(ctx, bucketName))

	require.NoError(t, provider.PutObject(ctx, bucketName, "a/one.json", bytes.NewReader([]byte("[]\n"))))
	require.NoError(t, provider.PutObject(ctx, bucketName, "a/two.json", bytes.NewReader([]byte("[1]\n"))))
	require.NoError(t, provider.PutObject(ctx, bucketName, "b/three.json", bytes.NewReader([]byte("[]\n"))))

	data, err := provider.GetObject(ctx, bucketName, "a/two.json")
	require.NoError(t, err)
	assert.Equal(t, []byte("[1]\n"), data)

	objects, err := provider.ListObjects(ctx, bucketName, "a/")
	require.NoError(t, err)
	assert.Equal(t, []storage.Object{{Name: "a/one.json", Size: 3}, {Name: "a/two.json", Size: 4}}, objects)

	count := 0
	for _, err := range provider.IterObjects(ctx, bucketName, "") {
		require.NoError(t, err)
		count++
	}
	assert.Equal(t, 3, count)

	_, err = provider.GetObject(ctx, bucketName, "missing.json")
	assert.Error(t, err)
}

func TestGenerateWithS3Upload(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	provider := setupS3Provider(t, ctx)
	require.NoError(t, provider.CreateBucket(ctx, bucketName))

	outputDir := t.TempDir()
	dispatcher := generate.Dispatcher{}
	summary, err := dispatcher.Dispatch(ctx, generate.Request{
		TotalRecords: 5000,
		FileCount:    4,
		WorkerCount:  2,
		OutputDir:    outputDir,
		Format:       serialize.FormatAvro,
		Kind:         types.KindEmployee,
		Remainder:    generate.RemainderDistribute,
		AvroCodec:    "snappy",
		Upload:       &generate.UploadTarget{Provider: provider, Bucket: bucketName, Prefix: "nightly"},
	})
	require.NoError(t, err)
	require.True(t, summary.Success())
	assert.Equal(t, int64(5000), summary.Written)

	objects, err := provider.ListObjects(ctx, bucketName, "nightly/")
	require.NoError(t, err)
	require.Len(t, objects, 4)

	for i, obj := range objects {
		local, err := os.ReadFile(filepath.Join(outputDir, filepath.Base(obj.Name)))
		require.NoError(t, err)
		assert.Equal(t, int64(len(local)), obj.Size)
		assert.Equal(t, summary.Results[i].ObjectKey, obj.Name)

		remote, err := provider.GetObject(ctx, bucketName, obj.Name)
		require.NoError(t, err)

		dec, err := ocf.NewDecoder(bytes.NewReader(remote))
		require.NoError(t, err)
		n := 0
		for dec.HasNext() {
			var e types.Employee
			require.NoError(t, dec.Decode(&e))
			n++
		}
		require.NoError(t, dec.Error())
		assert.Equal(t, 1250, n)
	}
}
