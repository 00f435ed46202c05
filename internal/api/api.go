package api

import (
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"

	"synthetic-data-generator/internal/config"
	"synthetic-data-generator/internal/core/generate"
	"synthetic-data-generator/internal/core/serialize"
	"synthetic-data-generator/internal/core/types"
	"synthetic-data-generator/internal/database"
	"synthetic-data-generator/internal/messaging"
	"synthetic-data-generator/pkg/api"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxListLimit = 1000

type BackendService struct {
	db        *gorm.DB
	publisher messaging.Publisher
	defaults  config.Config
}

// NewBackendService builds the run API. Requests that leave a setting unset get
// the value from defaults, and every run writes below defaults.OutputDir.
func NewBackendService(db *gorm.DB, pub messaging.Publisher, defaults config.Config) *BackendService {
	return &BackendService{db: db, publisher: pub, defaults: defaults}
}

func (s *BackendService) AddRoutes(r chi.Router) {
	r.Get("/health", RestHandler(func(r *http.Request) (any, error) { return nil, nil }))
	r.Route("/runs", func(r chi.Router) {
		r.Post("/", RestHandler(s.CreateRun))
		r.Get("/", RestHandler(s.ListRuns))
		r.Get("/{run_id}", RestHandler(s.GetRun))
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (s *BackendService) buildRequest(req api.CreateRunRequest, runId uuid.UUID) (generate.Request, error) {
	kind, err := types.ParseKind(firstNonEmpty(req.Kind, s.defaults.RecordKind))
	if err != nil {
		return generate.Request{}, CodedError(http.StatusUnprocessableEntity, err)
	}
	format, err := serialize.ParseFormat(firstNonEmpty(req.Format, s.defaults.OutputFormat))
	if err != nil {
		return generate.Request{}, CodedError(http.StatusUnprocessableEntity, err)
	}
	policy, err := generate.ParseRemainderPolicy(firstNonEmpty(req.Remainder, s.defaults.RemainderPolicy))
	if err != nil {
		return generate.Request{}, CodedError(http.StatusUnprocessableEntity, err)
	}

	if limit := s.defaults.MaxFileCount; limit > 0 && req.FileCount > limit {
		return generate.Request{}, CodedErrorf(http.StatusUnprocessableEntity, "file_count %d exceeds the maximum of %d", req.FileCount, limit)
	}
	if limit := s.defaults.MaxTotalRecords; limit > 0 && req.TotalRecords > limit {
		return generate.Request{}, CodedErrorf(http.StatusUnprocessableEntity, "total_records %d exceeds the maximum of %d", req.TotalRecords, limit)
	}

	name := firstNonEmpty(req.OutputName, runId.String())
	if err := validateName(name); err != nil {
		return generate.Request{}, err
	}

	workers := req.WorkerCount
	if workers == 0 {
		workers = s.defaults.Workers
	}
	progress := req.ProgressEvery
	if progress == 0 {
		progress = s.defaults.ProgressEvery
	}

	genReq := generate.Request{
		TotalRecords:  req.TotalRecords,
		FileCount:     req.FileCount,
		WorkerCount:   workers,
		OutputDir:     filepath.Join(s.defaults.OutputDir, name),
		Format:        format,
		Kind:          kind,
		Remainder:     policy,
		AvroCodec:     firstNonEmpty(req.AvroCodec, s.defaults.AvroCodec),
		ProgressEvery: progress,
	}

	if err := genReq.Validate(); err != nil {
		var cerr *generate.ConfigurationError
		if errors.As(err, &cerr) {
			return generate.Request{}, CodedError(http.StatusUnprocessableEntity, err)
		}
		return generate.Request{}, err
	}
	return genReq, nil
}

func (s *BackendService) CreateRun(r *http.Request) (any, error) {
	req, err := ParseRequest[api.CreateRunRequest](r)
	if err != nil {
		return nil, err
	}

	runId := uuid.New()
	genReq, err := s.buildRequest(req, runId)
	if err != nil {
		return nil, err
	}

	ctx := r.Context()

	run := database.NewRun(genReq,
		firstNonEmpty(req.UploadBucket, s.defaults.UploadBucket),
		firstNonEmpty(req.UploadPrefix, s.defaults.UploadPrefix),
	)
	run.Id = runId

	if err := database.CreateRun(ctx, s.db, &run); err != nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to create run entry")
	}

	if err := s.publisher.PublishGenerateTask(ctx, messaging.GenerateTaskPayload{RunId: run.Id}); err != nil {
		slog.Error("error publishing generate task", "run_id", run.Id, "error", err)
		if err := database.FailRun(ctx, s.db, run.Id, "failed to queue generate task"); err != nil {
			slog.Error("error marking unqueued run as failed", "run_id", run.Id, "error", err)
		}
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to queue generate task")
	}

	slog.Info("submitted generation run", "run_id", run.Id, "kind", run.Kind, "records", run.TotalRecords, "files", run.FileCount)
	return api.CreateRunResponse{RunId: run.Id}, nil
}

func (s *BackendService) ListRuns(r *http.Request) (any, error) {
	params, err := ParseRequestQueryParams[api.ListRunsParams](r)
	if err != nil {
		return nil, err
	}

	if params.Limit < 0 || params.Limit > maxListLimit {
		return nil, CodedErrorf(http.StatusBadRequest, "limit must be between 0 and %d", maxListLimit)
	}

	runs, err := database.ListRuns(r.Context(), s.db, database.RunFilter{
		Status: params.Status,
		Kind:   params.Kind,
		Limit:  params.Limit,
	})
	if err != nil {
		slog.Error("error listing runs", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving run records")
	}

	return convertRuns(runs), nil
}

func (s *BackendService) GetRun(r *http.Request) (any, error) {
	runId, err := URLParamUUID(r, "run_id")
	if err != nil {
		return nil, err
	}

	run, err := database.GetRun(r.Context(), s.db, runId)
	if err != nil {
		if errors.Is(err, database.ErrRunNotFound) {
			return nil, CodedErrorf(http.StatusNotFound, "run not found")
		}
		slog.Error("error getting run", "run_id", runId, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving run record")
	}

	return convertRun(run), nil
}
