package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"synthetic-data-generator/internal/core/generate"
	"synthetic-data-generator/internal/core/serialize"
	"synthetic-data-generator/internal/core/types"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	OutputDir       string `env:"OUTPUT_DIR" envDefault:"./output"`
	RecordKind      string `env:"RECORD_KIND" envDefault:"employee"`
	OutputFormat    string `env:"OUTPUT_FORMAT" envDefault:"avro"`
	Workers         int    `env:"WORKERS" envDefault:"0"`
	RemainderPolicy string `env:"REMAINDER_POLICY" envDefault:"distribute"`
	AvroCodec       string `env:"AVRO_CODEC" envDefault:"deflate"`
	ProgressEvery   int64  `env:"PROGRESS_EVERY" envDefault:"100000"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`

	DatabaseURL string `env:"DATABASE_URL"`
	RabbitMQURL string `env:"RABBITMQ_URL"`

	S3EndpointURL     string `env:"S3_ENDPOINT_URL"`
	S3AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	S3Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	UploadBucket      string `env:"UPLOAD_BUCKET"`
	UploadPrefix      string `env:"UPLOAD_PREFIX"`

	APIPort        int `env:"API_PORT" envDefault:"8001"`
	RunConcurrency int `env:"RUN_CONCURRENCY" envDefault:"1"`

	// Upper bounds on runs submitted through the API. Zero disables a bound.
	MaxFileCount    int   `env:"MAX_FILE_COUNT" envDefault:"10000"`
	MaxTotalRecords int64 `env:"MAX_TOTAL_RECORDS" envDefault:"1000000000"`
}

// Load reads the given env files, if any, and parses the environment.
// Variables already set in the environment take precedence over file values.
func Load(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if file == "" {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return Config{}, fmt.Errorf("error loading env file '%s': %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := types.ParseKind(c.RecordKind); err != nil {
		return err
	}
	if _, err := serialize.ParseFormat(c.OutputFormat); err != nil {
		return err
	}
	if _, err := generate.ParseRemainderPolicy(c.RemainderPolicy); err != nil {
		return err
	}
	if _, err := serialize.ParseCodec(c.AvroCodec); err != nil {
		return err
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.RunConcurrency < 1 {
		return fmt.Errorf("invalid RUN_CONCURRENCY value %d, must be at least 1", c.RunConcurrency)
	}
	if c.MaxFileCount < 0 || c.MaxTotalRecords < 0 {
		return fmt.Errorf("invalid MAX_FILE_COUNT %d or MAX_TOTAL_RECORDS %d, must not be negative", c.MaxFileCount, c.MaxTotalRecords)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid WORKERS value %d, must not be negative", c.Workers)
	}
	if c.S3EndpointURL != "" && (c.S3AccessKeyID == "" || c.S3SecretAccessKey == "") {
		slog.Warn("S3_ENDPOINT_URL is set, but AWS_ACCESS_KEY_ID or AWS_SECRET_ACCESS_KEY are missing")
	}
	return nil
}

// Request builds a generation request from the configured defaults.
func (c Config) Request(totalRecords int64, files int) (generate.Request, error) {
	if err := c.Validate(); err != nil {
		return generate.Request{}, &generate.ConfigurationError{Field: "config", Reason: err.Error()}
	}

	kind, _ := types.ParseKind(c.RecordKind)
	format, _ := serialize.ParseFormat(c.OutputFormat)
	policy, _ := generate.ParseRemainderPolicy(c.RemainderPolicy)

	return generate.Request{
		TotalRecords:  totalRecords,
		FileCount:     files,
		WorkerCount:   c.Workers,
		OutputDir:     c.OutputDir,
		Format:        format,
		Kind:          kind,
		Remainder:     policy,
		AvroCodec:     c.AvroCodec,
		ProgressEvery: c.ProgressEvery,
	}, nil
}

func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level '%s', must be one of debug, info, warn, error", level)
}

// NewLogger builds the process logger. When LogFile is set, output goes to
// both stderr and the file; the returned closer releases the file.
func (c Config) NewLogger() (*slog.Logger, io.Closer, error) {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return nil, nil, fmt.Errorf("error opening log file: %w", err)
		}
		out = io.MultiWriter(f, os.Stderr)
		closer = f
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})), closer, nil
}
