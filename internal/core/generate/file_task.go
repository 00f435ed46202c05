package generate

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"synthetic-data-generator/internal/core/datagen"
	"synthetic-data-generator/internal/core/random"
	"synthetic-data-generator/internal/core/serialize"
	"synthetic-data-generator/internal/storage"

	"github.com/dustin/go-humanize"
)

var (
	// ErrCreateDir is only logged; opening the file is still attempted.
	ErrCreateDir    = errors.New("unable to create output directory")
	ErrOpenFile     = errors.New("unable to open output file")
	ErrWriteRecords = errors.New("unable to write records")
	ErrCloseFile    = errors.New("unable to close output file")
	ErrUpload       = errors.New("unable to upload output file")
)

const writeBufferSize = 1 << 20

type FileTaskResult struct {
	Index     int
	Path      string
	Records   int64
	Bytes     int64
	ObjectKey string
	Success   bool
	Err       error
}

// FileTask writes one output file. Its random source is seeded with Index, so
// the file content depends only on the index, record count and format.
type FileTask struct {
	Index         int
	Path          string
	Records       int64
	Generator     datagen.Generator
	Serializer    serialize.Serializer
	ProgressEvery int64
	Upload        *UploadTarget
	Logger        *slog.Logger
}

// Run never returns an error directly: every failure is reported in the
// result so sibling tasks are unaffected.
func (t *FileTask) Run(ctx context.Context) FileTaskResult {
	logger := t.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("file", t.Path)

	result := FileTaskResult{Index: t.Index, Path: t.Path}

	dir := filepath.Dir(t.Path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		logger.Warn("output directory not created", "dir", dir, "error", fmt.Errorf("%w: %w", ErrCreateDir, err))
	}

	written, err := t.write(logger)
	result.Records = written
	if err != nil {
		logger.Error("error writing output file", "records_written", written, "error", err)
		result.Err = err
		return result
	}

	if info, err := os.Stat(t.Path); err == nil {
		result.Bytes = info.Size()
	}

	if t.Upload != nil {
		key := t.Upload.Key(filepath.Base(t.Path))
		if err := storage.UploadFile(ctx, t.Upload.Provider, t.Upload.Bucket, key, t.Path); err != nil {
			logger.Error("error uploading output file", "bucket", t.Upload.Bucket, "key", key, "error", err)
			result.Err = fmt.Errorf("%w: %w", ErrUpload, err)
			return result
		}
		result.ObjectKey = key
	}

	result.Success = true
	logger.Info("finished output file", "records", humanize.Comma(written), "size", humanize.Bytes(uint64(result.Bytes)))
	return result
}

func (t *FileTask) streamOptions() []datagen.StreamOption {
	var opts []datagen.StreamOption
	switch {
	case t.ProgressEvery < 0:
		opts = append(opts, datagen.WithProgressEvery(0))
	case t.ProgressEvery > 0:
		opts = append(opts, datagen.WithProgressEvery(t.ProgressEvery))
	}
	return opts
}

func (t *FileTask) write(logger *slog.Logger) (int64, error) {
	file, err := os.OpenFile(t.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("%w %s: %w", ErrOpenFile, t.Path, err)
	}
	closed := false
	defer func() {
		if !closed {
			file.Close()
		}
	}()

	buffered := bufio.NewWriterSize(file, writeBufferSize)

	w, err := t.Serializer.NewWriter(buffered, t.Generator.Kind())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWriteRecords, err)
	}

	stream := datagen.NewRecordStream(t.Generator, random.New(int64(t.Index)), t.Records, logger, t.streamOptions()...)

	var written int64
	if anchor := stream.Anchor(); anchor != nil {
		if err := w.Append(anchor); err != nil {
			return written, fmt.Errorf("%w: %w", ErrWriteRecords, err)
		}
		written++

		// The separator sits between the anchor and the rest, so a single
		// record file has none.
		if sep, ok := w.(serialize.SeparatorWriter); ok && t.Records > 1 {
			if err := sep.AppendSeparator(); err != nil {
				return written, fmt.Errorf("%w: %w", ErrWriteRecords, err)
			}
		}

		for e := range stream.Rest() {
			if err := w.Append(e); err != nil {
				return written, fmt.Errorf("%w: %w", ErrWriteRecords, err)
			}
			written++
		}
	}

	if err := w.Close(); err != nil {
		return written, fmt.Errorf("%w: %w", ErrWriteRecords, err)
	}
	if err := buffered.Flush(); err != nil {
		return written, fmt.Errorf("%w: %w", ErrCloseFile, err)
	}
	closed = true
	if err := file.Close(); err != nil {
		return written, fmt.Errorf("%w: %w", ErrCloseFile, err)
	}
	return written, nil
}
