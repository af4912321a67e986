// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package docstore

import (
	"context"
	"log/slog"

	"github.com/poiesic/docstore/core"
	"github.com/poiesic/docstore/ingest"
	"github.com/poiesic/docstore/search"
	"github.com/poiesic/docstore/storage"
	"github.com/poiesic/docstore/storage/memory"
)

// Manager ties an in-memory document repository to a searcher and exposes
// the document lifecycle: save (upsert), point lookup, filtered search.
type Manager struct {
	documents storage.DocumentRepository
	searcher  *search.Searcher
	logger    *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*managerOptions)

type managerOptions struct {
	logger *slog.Logger
}

// WithLogger sets a custom logger for the manager and its components.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(o *managerOptions) {
		o.logger = logger
	}
}

func NewManager(opts ...ManagerOption) (*Manager, error) {
	// Apply options
	options := &managerOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	// Create document repository
	documents, err := memory.NewStore(memory.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	// Create searcher
	searcher, err := search.NewSearcher(documents, search.WithLogger(options.logger))
	if err != nil {
		documents.Close()
		return nil, err
	}

	return &Manager{
		documents: documents,
		searcher:  searcher,
		logger:    options.logger,
	}, nil
}

// Save upserts a document, assigning a fresh unique id when the incoming
// id is blank. A nil document fails with core.ErrNilDocument.
func (m *Manager) Save(ctx context.Context, document *core.Document) (*core.Document, error) {
	return m.documents.SaveDocument(ctx, document)
}

// FindById returns the document with the given id, or nil if no document
// has that id. Absence is a normal outcome, not an error.
func (m *Manager) FindById(ctx context.Context, id string) (*core.Document, error) {
	return m.documents.GetDocument(ctx, id)
}

// Search returns the documents matching every active criterion of the
// request. A nil request fails with core.ErrNilRequest.
func (m *Manager) Search(ctx context.Context, request *core.SearchRequest) ([]*core.Document, error) {
	return m.searcher.Search(ctx, request)
}

func (m *Manager) Close() error {
	if err := m.documents.Close(); err != nil {
		m.logger.Error("error closing document repository", "err", err)
		return err
	}
	return nil
}

func (m *Manager) Documents() storage.DocumentRepository {
	return m.documents
}

func (m *Manager) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(m.documents, opts...)
}

func (m *Manager) NewIngestionPipeline(opts ...ingest.Option) (*ingest.Pipeline, error) {
	return ingest.NewPipeline(m.documents, opts...)
}
