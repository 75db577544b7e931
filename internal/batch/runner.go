package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dgallion1/pdfoutline/internal/config"
	"github.com/dgallion1/pdfoutline/internal/extractor"
)

// Runner manages the extraction worker pool and the job registry.
type Runner struct {
	jobs  *JobStore
	queue chan *Job
	log   *slog.Logger
	cfg   config.Config

	cancel    context.CancelFunc
	closeOnce sync.Once
	workerWg  sync.WaitGroup
	bgWg      sync.WaitGroup
}

func NewRunner(cfg config.Config, log *slog.Logger) *Runner {
	return &Runner{
		jobs:  NewJobStore(cfg.JobTTL),
		queue: make(chan *Job, cfg.MaxQueueSize),
		log:   log,
		cfg:   cfg,
	}
}

// Start launches worker goroutines and the job store cleanup loop.
func (r *Runner) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	opts := extractor.Options{PDFFallbackPdftotext: r.cfg.PDFFallbackPdftotext}
	for i := 0; i < r.cfg.WorkerCount; i++ {
		r.workerWg.Add(1)
		go func() {
			defer r.workerWg.Done()
			w := NewWorker(r.log, opts)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-r.queue:
					if !ok {
						return
					}
					w.Process(job)
				}
			}
		}()
	}

	r.bgWg.Add(1)
	go func() {
		defer r.bgWg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				r.jobs.Cleanup()
			}
		}
	}()
}

// Drain closes the queue, waits for queued jobs to finish, then stops
// background goroutines. Used by the batch CLI once all jobs are in.
func (r *Runner) Drain() {
	r.closeOnce.Do(func() { close(r.queue) })
	r.workerWg.Wait()
	if r.cancel != nil {
		r.cancel()
	}
	r.bgWg.Wait()
}

// Stop cancels in-flight work and shuts the pool down. Used by the
// server on shutdown.
func (r *Runner) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.closeOnce.Do(func() { close(r.queue) })
	r.workerWg.Wait()
	r.bgWg.Wait()
}

// Submit queues a job without blocking; it fails when the queue is full.
func (r *Runner) Submit(job *Job) error {
	r.jobs.Put(job)
	select {
	case r.queue <- job:
		return nil
	default:
		job.Fail("queue full")
		return fmt.Errorf("job queue is full (%d)", r.cfg.MaxQueueSize)
	}
}

// SubmitDir scans a directory for supported documents and queues one
// job per file, blocking when the queue is full. Each output record is
// written to outputDir under the input's base name with a .json
// extension. Returns the number of jobs queued.
func (r *Runner) SubmitDir(inputDir, outputDir string) (int, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return 0, fmt.Errorf("read input dir: %w", err)
	}

	submitted := 0
	for _, entry := range entries {
		if entry.IsDir() || !extractor.IsSupportedExtension(entry.Name()) {
			continue
		}
		name := entry.Name()
		base := strings.TrimSuffix(name, filepath.Ext(name))

		job := NewJob(name)
		job.Path = filepath.Join(inputDir, name)
		job.OutputPath = filepath.Join(outputDir, base+".json")

		r.jobs.Put(job)
		r.queue <- job
		submitted++
	}
	return submitted, nil
}

// GetJob returns a job by ID.
func (r *Runner) GetJob(id string) *Job {
	return r.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (r *Runner) QueueDepth() int {
	return len(r.queue)
}

// Counts reports completed and failed job totals.
func (r *Runner) Counts() (completed, failed int) {
	return r.jobs.Counts()
}
