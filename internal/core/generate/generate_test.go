package generate_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"synthetic-data-generator/internal/core/generate"
	"synthetic-data-generator/internal/core/serialize"
	"synthetic-data-generator/internal/core/types"
	"synthetic-data-generator/internal/storage"

	"github.com/hamba/avro/v2/ocf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanPartitions(t *testing.T) {
	plan := generate.PlanPartitions(1000, 10, generate.RemainderDistribute)
	assert.Equal(t, int64(1000), plan.Total())
	for _, c := range plan.Counts {
		assert.Equal(t, int64(100), c)
	}

	plan = generate.PlanPartitions(1003, 10, generate.RemainderDistribute)
	assert.Equal(t, int64(1003), plan.Total())
	assert.Equal(t, []int64{101, 101, 101, 100, 100, 100, 100, 100, 100, 100}, plan.Counts)
	assert.Zero(t, plan.Dropped)

	plan = generate.PlanPartitions(1003, 10, generate.RemainderDrop)
	assert.Equal(t, int64(1000), plan.Total())
	assert.Equal(t, int64(3), plan.Dropped)

	plan = generate.PlanPartitions(5, 10, generate.RemainderDrop)
	assert.Equal(t, int64(0), plan.Total())
	assert.Equal(t, int64(5), plan.Dropped)

	plan = generate.PlanPartitions(0, 3, generate.RemainderDistribute)
	assert.Equal(t, []int64{0, 0, 0}, plan.Counts)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "worker_E0.avro", generate.FileName(types.KindEmployee, 0, "avro"))
	assert.Equal(t, "worker_T12.json", generate.FileName(types.KindTeacher, 12, "json"))
}

func validRequest(dir string) generate.Request {
	return generate.Request{
		TotalRecords: 10,
		FileCount:    2,
		OutputDir:    dir,
		Format:       serialize.FormatJSON,
		Kind:         types.KindEmployee,
		Remainder:    generate.RemainderDistribute,
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validRequest("out").Validate())

	cases := map[string]func(*generate.Request){
		"zero files":       func(r *generate.Request) { r.FileCount = 0 },
		"negative workers": func(r *generate.Request) { r.WorkerCount = -1 },
		"negative records": func(r *generate.Request) { r.TotalRecords = -5 },
		"no output dir":    func(r *generate.Request) { r.OutputDir = " " },
		"bad format":       func(r *generate.Request) { r.Format = "csv" },
		"bad kind":         func(r *generate.Request) { r.Kind = "student" },
		"bad remainder":    func(r *generate.Request) { r.Remainder = "round" },
		"bad codec":        func(r *generate.Request) { r.AvroCodec = "lz4" },
		"upload no bucket": func(r *generate.Request) { r.Upload = &generate.UploadTarget{Provider: storage.NewLocalProvider("x")} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest("out")
			mutate(&req)

			var cfgErr *generate.ConfigurationError
			assert.ErrorAs(t, req.Validate(), &cfgErr)
		})
	}
}

func TestWorkers(t *testing.T) {
	req := validRequest("out")
	req.FileCount = 4
	assert.Equal(t, 4, req.Workers())
	req.WorkerCount = 2
	assert.Equal(t, 2, req.Workers())
	req.WorkerCount = 16
	assert.Equal(t, 4, req.Workers())
}

func TestDispatchRejectsBadRequest(t *testing.T) {
	dir := t.TempDir()
	req := validRequest(filepath.Join(dir, "out"))
	req.FileCount = 0

	_, err := (&generate.Dispatcher{}).Dispatch(context.Background(), req)
	var cfgErr *generate.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)

	_, statErr := os.Stat(filepath.Join(dir, "out"))
	assert.True(t, os.IsNotExist(statErr))
}

func readAvro(t *testing.T, path string) []*types.Employee {
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	dec, err := ocf.NewDecoder(file)
	require.NoError(t, err)

	var out []*types.Employee
	for dec.HasNext() {
		var e types.Employee
		require.NoError(t, dec.Decode(&e))
		out = append(out, &e)
	}
	require.NoError(t, dec.Error())
	return out
}

func readJSON(t *testing.T, path string) []json.RawMessage {
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var elements []json.RawMessage
	require.NoError(t, json.Unmarshal(data, &elements))
	return elements
}

func TestDispatchSingleAvroFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	summary, err := (&generate.Dispatcher{}).Dispatch(context.Background(), generate.Request{
		TotalRecords: 50,
		FileCount:    1,
		OutputDir:    dir,
		Format:       serialize.FormatAvro,
		Kind:         types.KindEmployee,
		AvroCodec:    "deflate",
	})
	require.NoError(t, err)
	require.True(t, summary.Success())
	assert.Equal(t, int64(50), summary.Written)
	require.Len(t, summary.Results, 1)

	result := summary.Results[0]
	assert.Equal(t, filepath.Join(dir, "worker_E0.avro"), result.Path)
	assert.Equal(t, int64(50), result.Records)
	assert.Positive(t, result.Bytes)

	records := readAvro(t, result.Path)
	require.Len(t, records, 50)
	assert.Equal(t, "Bob", records[0].Manager[0].Uid)
	for _, e := range records {
		assert.Len(t, e.Manager, 3)
	}
}

func TestDispatchPartitionsJSON(t *testing.T) {
	dir := t.TempDir()

	var seen []int
	d := &generate.Dispatcher{OnResult: func(r generate.FileTaskResult) { seen = append(seen, r.Index) }}

	summary, err := d.Dispatch(context.Background(), generate.Request{
		TotalRecords: 1000,
		FileCount:    10,
		WorkerCount:  3,
		OutputDir:    dir,
		Format:       serialize.FormatJSON,
		Kind:         types.KindTeacher,
	})
	require.NoError(t, err)
	require.True(t, summary.Success())
	assert.Equal(t, int64(1000), summary.Written)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, seen)

	for i, result := range summary.Results {
		assert.Equal(t, i, result.Index)
		assert.Equal(t, filepath.Join(dir, generate.FileName(types.KindTeacher, i, "json")), result.Path)

		elements := readJSON(t, result.Path)
		require.Len(t, elements, 101)
		assert.JSONEq(t, `";"`, string(elements[1]))

		var anchor types.Teacher
		require.NoError(t, json.Unmarshal(elements[0], &anchor))
		assert.Equal(t, "Peter", anchor.Manager[0].Uid)
	}
}

func TestDispatchRemainder(t *testing.T) {
	for policy, expected := range map[generate.RemainderPolicy]int64{
		generate.RemainderDistribute: 23,
		generate.RemainderDrop:       20,
	} {
		summary, err := (&generate.Dispatcher{}).Dispatch(context.Background(), generate.Request{
			TotalRecords: 23,
			FileCount:    4,
			OutputDir:    t.TempDir(),
			Format:       serialize.FormatAvro,
			Kind:         types.KindEmployee,
			Remainder:    policy,
		})
		require.NoError(t, err)
		assert.Equal(t, expected, summary.Written)
		assert.Equal(t, 23-expected, summary.Dropped)

		var total int
		for _, r := range summary.Results {
			total += len(readAvro(t, r.Path))
		}
		assert.Equal(t, int(expected), total)
	}
}

func TestDispatchIsDeterministic(t *testing.T) {
	run := func(dir string, workers int) [][]byte {
		summary, err := (&generate.Dispatcher{}).Dispatch(context.Background(), generate.Request{
			TotalRecords: 60,
			FileCount:    3,
			WorkerCount:  workers,
			OutputDir:    dir,
			Format:       serialize.FormatJSON,
			Kind:         types.KindEmployee,
		})
		require.NoError(t, err)

		var contents [][]byte
		for _, r := range summary.Results {
			data, err := os.ReadFile(r.Path)
			require.NoError(t, err)
			contents = append(contents, data)
		}
		return contents
	}

	a := run(t.TempDir(), 1)
	b := run(t.TempDir(), 3)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a[0], a[1])
}

func TestDispatchPartialFailure(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "worker_E2.json")
	require.NoError(t, os.MkdirAll(blocked, os.ModePerm))

	summary, err := (&generate.Dispatcher{}).Dispatch(context.Background(), generate.Request{
		TotalRecords: 40,
		FileCount:    4,
		OutputDir:    dir,
		Format:       serialize.FormatJSON,
		Kind:         types.KindEmployee,
	})
	require.NoError(t, err)
	assert.False(t, summary.Success())

	failed := summary.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, blocked, failed[0].Path)
	assert.ErrorIs(t, failed[0].Err, generate.ErrOpenFile)

	for _, r := range summary.Results {
		if r.Index == 2 {
			continue
		}
		assert.True(t, r.Success)
		assert.Len(t, readJSON(t, r.Path), 11)
	}
	assert.Equal(t, int64(30), summary.Written)
}

func TestFileTaskEmpty(t *testing.T) {
	dir := t.TempDir()
	ser, err := serialize.New(serialize.FormatJSON, serialize.Options{})
	require.NoError(t, err)

	gen := mustGenerator(t, types.KindEmployee)
	result := (&generate.FileTask{
		Index:      0,
		Path:       filepath.Join(dir, "worker_E0.json"),
		Records:    0,
		Generator:  gen,
		Serializer: ser,
	}).Run(context.Background())

	require.True(t, result.Success)
	assert.Zero(t, result.Records)
	data, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestFileTaskSingleRecordHasNoSeparator(t *testing.T) {
	dir := t.TempDir()
	ser, err := serialize.New(serialize.FormatJSON, serialize.Options{})
	require.NoError(t, err)

	result := (&generate.FileTask{
		Index:      0,
		Path:       filepath.Join(dir, "worker_T0.json"),
		Records:    1,
		Generator:  mustGenerator(t, types.KindTeacher),
		Serializer: ser,
	}).Run(context.Background())

	require.True(t, result.Success)
	assert.Equal(t, int64(1), result.Records)

	elements := readJSON(t, result.Path)
	require.Len(t, elements, 1)

	var anchor types.Teacher
	require.NoError(t, json.Unmarshal(elements[0], &anchor))
	assert.Equal(t, "Peter", anchor.Manager[0].Uid)
}

func TestDispatchUpload(t *testing.T) {
	provider := storage.NewLocalProvider(t.TempDir())

	summary, err := (&generate.Dispatcher{}).Dispatch(context.Background(), generate.Request{
		TotalRecords: 6,
		FileCount:    2,
		OutputDir:    t.TempDir(),
		Format:       serialize.FormatAvro,
		Kind:         types.KindTeacher,
		Upload:       &generate.UploadTarget{Provider: provider, Bucket: "datasets", Prefix: "run-1"},
	})
	require.NoError(t, err)
	require.True(t, summary.Success())

	objects, err := provider.ListObjects(context.Background(), "datasets", "run-1/")
	require.NoError(t, err)
	require.Len(t, objects, 2)

	for _, r := range summary.Results {
		assert.Equal(t, "run-1/"+filepath.Base(r.Path), r.ObjectKey)

		local, err := os.ReadFile(r.Path)
		require.NoError(t, err)
		remote, err := provider.GetObject(context.Background(), "datasets", r.ObjectKey)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(local, remote))
	}
}

type failingProvider struct {
	storage.Provider
}

func (failingProvider) PutObject(ctx context.Context, bucket, key string, data io.Reader) error {
	return errors.New("store unavailable")
}

func TestDispatchUploadFailure(t *testing.T) {
	summary, err := (&generate.Dispatcher{}).Dispatch(context.Background(), generate.Request{
		TotalRecords: 4,
		FileCount:    2,
		OutputDir:    t.TempDir(),
		Format:       serialize.FormatJSON,
		Kind:         types.KindEmployee,
		Upload:       &generate.UploadTarget{Provider: failingProvider{}, Bucket: "datasets"},
	})
	require.NoError(t, err)
	require.Len(t, summary.Failed(), 2)
	for _, r := range summary.Failed() {
		assert.ErrorIs(t, r.Err, generate.ErrUpload)
		assert.Equal(t, int64(2), r.Records)
	}
}
