package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"synthetic-data-generator/internal/config"
	"synthetic-data-generator/internal/core/generate"
	"synthetic-data-generator/internal/core/serialize"
	"synthetic-data-generator/internal/core/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "./output", cfg.OutputDir)
	assert.Equal(t, "employee", cfg.RecordKind)
	assert.Equal(t, "avro", cfg.OutputFormat)
	assert.Equal(t, int64(100000), cfg.ProgressEvery)
	assert.Equal(t, 8001, cfg.APIPort)
	assert.Equal(t, 1, cfg.RunConcurrency)
	assert.Equal(t, 10000, cfg.MaxFileCount)
	assert.Equal(t, int64(1_000_000_000), cfg.MaxTotalRecords)
	require.NoError(t, cfg.Validate())
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("RECORD_KIND=T\nOUTPUT_FORMAT=json\nWORKERS=3\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("RECORD_KIND")
		os.Unsetenv("OUTPUT_FORMAT")
		os.Unsetenv("WORKERS")
	})
	t.Setenv("REMAINDER_POLICY", "drop")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	req, err := cfg.Request(30, 4)
	require.NoError(t, err)
	assert.Equal(t, types.KindTeacher, req.Kind)
	assert.Equal(t, serialize.FormatJSON, req.Format)
	assert.Equal(t, generate.RemainderDrop, req.Remainder)
	assert.Equal(t, 3, req.WorkerCount)
	assert.Equal(t, int64(30), req.TotalRecords)
	require.NoError(t, req.Validate())
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv("OUTPUT_FORMAT", "parquet")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	_, err = cfg.Request(10, 1)
	var cfgErr *generate.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestInvalidRunConcurrency(t *testing.T) {
	t.Setenv("RUN_CONCURRENCY", "0")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())
}

func TestNegativeRunLimits(t *testing.T) {
	t.Setenv("MAX_FILE_COUNT", "-1")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())
}

func TestParseLogLevel(t *testing.T) {
	level, err := config.ParseLogLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = config.ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNewLoggerWithFile(t *testing.T) {
	cfg := config.Config{LogLevel: "info", LogFile: filepath.Join(t.TempDir(), "generator.log")}

	logger, closer, err := cfg.NewLogger()
	require.NoError(t, err)
	logger.Info("hello", "records", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "records=3")
}
