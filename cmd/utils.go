package cmd

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"

	"synthetic-data-generator/internal/config"
	"synthetic-data-generator/internal/storage"

	"github.com/joho/godotenv"
)

// LoadEnvFile parses the command line and loads the file named by -env, if
// any. Commands register their own flags before calling it.
func LoadEnvFile() {
	var configPath string

	flag.StringVar(&configPath, "env", "", "path to load env from")
	flag.Parse()

	if configPath == "" {
		log.Printf("no env file specified, using os.Environ only")
		return
	}

	log.Printf("loading env from file %s", configPath)
	err := godotenv.Load(configPath)
	if err != nil {
		log.Fatalf("error loading .env file '%s': %v", configPath, err)
	}
}

// LoadConfig reads the environment and installs the configured logger as the
// default. The returned closer releases the log file, if one is used.
func LoadConfig() (config.Config, io.Closer) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error parsing config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, closer, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	slog.SetDefault(logger)

	return cfg, closer
}

// CreateStorage returns the object store uploads go to, or nil when neither an
// upload bucket nor an S3 endpoint is configured.
func CreateStorage(ctx context.Context, cfg config.Config) storage.Provider {
	if cfg.UploadBucket == "" && cfg.S3EndpointURL == "" {
		return nil
	}

	provider, err := storage.NewS3Provider(ctx, storage.S3ProviderConfig{
		S3EndpointURL:     cfg.S3EndpointURL,
		S3AccessKeyID:     cfg.S3AccessKeyID,
		S3SecretAccessKey: cfg.S3SecretAccessKey,
		S3Region:          cfg.S3Region,
	})
	if err != nil {
		log.Fatalf("failed to create S3 client: %v", err)
	}
	return provider
}
