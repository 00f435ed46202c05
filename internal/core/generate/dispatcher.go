// Package generate splits a generation request into per-file tasks and runs
// them on a bounded pool of workers.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"synthetic-data-generator/internal/core/datagen"
	"synthetic-data-generator/internal/core/serialize"
	"synthetic-data-generator/internal/core/types"
	"synthetic-data-generator/internal/core/utils"
)

type Summary struct {
	Kind      types.Kind
	Format    serialize.Format
	Requested int64
	Dropped   int64
	Written   int64
	Results   []FileTaskResult
	Elapsed   time.Duration
}

func (s Summary) Failed() []FileTaskResult {
	var failed []FileTaskResult
	for _, r := range s.Results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	return failed
}

func (s Summary) Success() bool {
	return len(s.Failed()) == 0
}

type Dispatcher struct {
	Logger *slog.Logger
	// OnResult, if set, is called once per file in index order from the
	// dispatching goroutine.
	OnResult func(FileTaskResult)
}

// Dispatch writes every file of req and waits for all of them. A failing file
// does not stop the others; the returned error is only set for requests that
// could not be started.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (Summary, error) {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tasks, plan, err := d.buildTasks(req, logger)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Kind:      tasks[0].Generator.Kind(),
		Format:    tasks[0].Serializer.Format(),
		Requested: req.TotalRecords,
		Dropped:   plan.Dropped,
		Results:   make([]FileTaskResult, 0, len(tasks)),
	}
	if plan.Dropped > 0 {
		logger.Warn("record count is not divisible by file count, remainder will not be generated",
			"requested", req.TotalRecords, "files", req.FileCount, "dropped", plan.Dropped)
	}

	workers := req.Workers()
	logger.Info("starting generation", "kind", summary.Kind, "format", summary.Format,
		"records", plan.Total(), "files", len(tasks), "workers", workers, "output_dir", req.OutputDir)

	start := time.Now()

	pool := utils.NewWorkerPool[FileTaskResult](workers)
	pending := make(chan (<-chan utils.CompletedTask[FileTaskResult]), len(tasks))
	go func() {
		defer close(pending)
		for _, task := range tasks {
			pending <- pool.Submit(func() (FileTaskResult, error) {
				return task.Run(ctx), nil
			})
		}
	}()

	i := 0
	for next := range pending {
		completed := <-next
		result := completed.Result
		if completed.Error != nil {
			result = FileTaskResult{Index: tasks[i].Index, Path: tasks[i].Path, Err: completed.Error}
		}
		summary.Written += result.Records
		summary.Results = append(summary.Results, result)
		if d.OnResult != nil {
			d.OnResult(result)
		}
		i++
	}
	pool.Close()

	summary.Elapsed = time.Since(start)

	logger.Info(fmt.Sprintf("took %dms to create %d %ss", summary.Elapsed.Milliseconds(), summary.Written, summary.Kind),
		"files", len(summary.Results), "failed", len(summary.Failed()))

	return summary, nil
}

func (d *Dispatcher) buildTasks(req Request, logger *slog.Logger) ([]*FileTask, Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, Plan{}, err
	}

	kind, _ := types.ParseKind(string(req.Kind))
	format, _ := serialize.ParseFormat(string(req.Format))
	policy, _ := ParseRemainderPolicy(string(req.Remainder))

	gen, err := datagen.ForKind(kind)
	if err != nil {
		return nil, Plan{}, configErrorf("kind", "%v", err)
	}
	ser, err := serialize.New(format, serialize.Options{AvroCodec: req.AvroCodec})
	if err != nil {
		return nil, Plan{}, configErrorf("format", "%v", err)
	}

	plan := PlanPartitions(req.TotalRecords, req.FileCount, policy)

	tasks := make([]*FileTask, req.FileCount)
	for i := range tasks {
		tasks[i] = &FileTask{
			Index:         i,
			Path:          filepath.Join(req.OutputDir, FileName(kind, i, ser.Extension())),
			Records:       plan.Counts[i],
			Generator:     gen,
			Serializer:    ser,
			ProgressEvery: req.ProgressEvery,
			Upload:        req.Upload,
			Logger:        logger,
		}
	}
	return tasks, plan, nil
}
