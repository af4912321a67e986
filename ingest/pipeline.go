package ingest

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/docstore/core"
	"github.com/poiesic/docstore/storage"
)

const defaultBatchSize = 5

// Record is a raw document row to be loaded.
// A zero Created is replaced with the current time at ingestion.
type Record struct {
	Title   string
	Content string
	Author  core.Author
	Created time.Time
}

// Pipeline loads raw records into a document repository in batches on a
// worker pool. Per-document save errors are logged, not returned; the
// repository's own locking makes concurrent batch saves safe.
type Pipeline struct {
	documents storage.DocumentRepository
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
	wg        sync.WaitGroup
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent loading.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many records each submitted task saves.
// Default is 5.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new loading pipeline over the given repository.
func NewPipeline(documents storage.DocumentRepository, opts ...Option) (*Pipeline, error) {
	if documents == nil {
		return nil, ErrRepositoryRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		documents: documents,
		pool:      pool,
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest submits records for asynchronous loading in batches.
// Errors while saving individual documents are logged but do not fail
// the ingestion. Call Wait to block until submitted records are stored.
func (p *Pipeline) Ingest(ctx context.Context, records ...Record) error {
	for start := 0; start < len(records); start += p.batchSize {
		end := start + p.batchSize
		if end > len(records) {
			end = len(records)
		}

		batch := make([]*core.Document, 0, end-start)
		for _, record := range records[start:end] {
			created := record.Created
			if created.IsZero() {
				created = time.Now().UTC()
			}

			batch = append(batch, &core.Document{
				Title:   record.Title,
				Content: record.Content,
				Author:  record.Author,
				Created: created,
			})
		}

		p.wg.Add(1)
		err := p.pool.Submit(func() {
			defer p.wg.Done()
			for _, document := range batch {
				if _, err := p.documents.SaveDocument(ctx, document); err != nil {
					p.logger.Error("error saving document", "title", document.Title, "err", err)
				}
			}
		})
		if err != nil {
			p.wg.Done()
			return err
		}
	}

	return nil
}

// Wait blocks until every submitted batch has been stored.
func (p *Pipeline) Wait() {
	p.wg.Wait()
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
