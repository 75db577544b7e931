package batch

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dgallion1/pdfoutline/internal/extractor"
	"github.com/dgallion1/pdfoutline/internal/outline"
)

// Worker extracts the outline record for a single document. A failure
// marks only that job failed; other documents in the batch are
// unaffected.
type Worker struct {
	log  *slog.Logger
	opts extractor.Options
}

func NewWorker(log *slog.Logger, opts extractor.Options) *Worker {
	return &Worker{log: log, opts: opts}
}

// Process runs extraction for a job and, when an output path is set,
// writes the serialized record.
func (w *Worker) Process(job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	job.SetStatus(StatusExtracting)
	e, err := extractor.ForFile(job.Filename, w.opts)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.Fail(err.Error())
		return
	}

	var src io.Reader
	if job.Path != "" {
		f, err := os.Open(job.Path)
		if err != nil {
			log.Error("open document failed", "error", err)
			job.Fail(fmt.Sprintf("open: %s", err))
			return
		}
		defer f.Close()
		src = f
	} else {
		src = bytes.NewReader(job.Data())
	}

	doc, err := e.Extract(src, job.Filename)
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.Fail(fmt.Sprintf("extract: %s", err))
		return
	}
	job.SetResult(doc)

	if job.OutputPath != "" {
		job.SetStatus(StatusWriting)
		record, err := outline.EncodeDocument(*doc)
		if err != nil {
			log.Error("encode failed", "error", err)
			job.Fail(fmt.Sprintf("encode: %s", err))
			return
		}
		if err := os.WriteFile(job.OutputPath, record, 0o644); err != nil {
			log.Error("write output failed", "error", err)
			job.Fail(fmt.Sprintf("write: %s", err))
			return
		}
	}

	job.SetStatus(StatusCompleted)
	log.Info("processed document", "has_title", doc.Title != "", "outline_entries", len(doc.Outline), "output", job.OutputPath)
}
