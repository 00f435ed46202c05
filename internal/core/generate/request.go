package generate

import (
	"fmt"
	"path"
	"strings"

	"synthetic-data-generator/internal/core/serialize"
	"synthetic-data-generator/internal/core/types"
	"synthetic-data-generator/internal/storage"
)

// ConfigurationError reports a request that cannot be run. Nothing is written
// when one is returned.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func configErrorf(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

type RemainderPolicy string

const (
	// RemainderDistribute gives one extra record to each of the first
	// total%files files so every requested record is written.
	RemainderDistribute RemainderPolicy = "distribute"
	// RemainderDrop writes total/files records per file and discards the rest.
	RemainderDrop RemainderPolicy = "drop"
)

func ParseRemainderPolicy(s string) (RemainderPolicy, error) {
	switch RemainderPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", RemainderDistribute:
		return RemainderDistribute, nil
	case RemainderDrop:
		return RemainderDrop, nil
	}
	return "", fmt.Errorf("invalid remainder policy '%s', must be one of distribute, drop", s)
}

// UploadTarget publishes every finished file to Bucket under Prefix.
type UploadTarget struct {
	Provider storage.Provider
	Bucket   string
	Prefix   string
}

func (u *UploadTarget) Key(fileName string) string {
	if u.Prefix == "" {
		return fileName
	}
	return path.Join(u.Prefix, fileName)
}

type Request struct {
	TotalRecords int64
	FileCount    int
	// WorkerCount of 0 runs one worker per file.
	WorkerCount int
	OutputDir   string
	Format      serialize.Format
	Kind        types.Kind
	Remainder   RemainderPolicy
	AvroCodec   string
	// ProgressEvery of 0 uses the default interval, a negative value disables
	// progress logging.
	ProgressEvery int64
	Upload        *UploadTarget
}

func (r Request) Validate() error {
	if r.FileCount < 1 {
		return configErrorf("file count", "must be at least 1, got %d", r.FileCount)
	}
	if r.WorkerCount < 0 {
		return configErrorf("worker count", "must not be negative, got %d", r.WorkerCount)
	}
	if r.TotalRecords < 0 {
		return configErrorf("record count", "must not be negative, got %d", r.TotalRecords)
	}
	if strings.TrimSpace(r.OutputDir) == "" {
		return configErrorf("output directory", "must be set")
	}
	if _, err := serialize.ParseFormat(string(r.Format)); err != nil {
		return configErrorf("format", "%v", err)
	}
	if _, err := types.ParseKind(string(r.Kind)); err != nil {
		return configErrorf("kind", "%v", err)
	}
	if _, err := ParseRemainderPolicy(string(r.Remainder)); err != nil {
		return configErrorf("remainder policy", "%v", err)
	}
	if _, err := serialize.ParseCodec(r.AvroCodec); err != nil {
		return configErrorf("avro codec", "%v", err)
	}
	if r.Upload != nil && (r.Upload.Provider == nil || r.Upload.Bucket == "") {
		return configErrorf("upload target", "provider and bucket must both be set")
	}
	return nil
}

// Workers is the number of goroutines a dispatch of r will use.
func (r Request) Workers() int {
	if r.WorkerCount == 0 || r.WorkerCount > r.FileCount {
		return r.FileCount
	}
	return r.WorkerCount
}
