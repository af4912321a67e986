package search

import (
	"context"
	"log/slog"

	"github.com/poiesic/docstore/core"
	"github.com/poiesic/docstore/storage"
)

// Searcher applies multi-criterion filtered search over a document
// repository. Filters are applied sequentially as a linear scan of the
// full collection; there is no index and no ranking.
type Searcher struct {
	documents storage.DocumentRepository
	logger    *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher over the given repository.
func NewSearcher(documents storage.DocumentRepository, opts ...Option) (*Searcher, error) {
	if documents == nil {
		return nil, ErrRepositoryRequired
	}

	s := &Searcher{
		documents: documents,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search returns the documents matching every active criterion of the
// request. Result order is unspecified.
func (s *Searcher) Search(ctx context.Context, request *core.SearchRequest) ([]*core.Document, error) {
	return s.SearchWithMonitor(ctx, request, nil)
}

// SearchWithMonitor runs a search with monitoring.
// The monitor receives callbacks after each stage of the filter pipeline,
// whether or not the stage was active.
//
// Inactive criteria (nil or empty fields) impose no constraint; a request
// with no active criterion returns every stored document. Active filters
// compose conjunctively. The created bounds are exclusive on both ends.
func (s *Searcher) SearchWithMonitor(ctx context.Context, request *core.SearchRequest, monitor SearchMonitor) ([]*core.Document, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if err := core.ValidateSearchRequest(request); err != nil {
		return nil, err
	}

	monitor.Start(request)

	documents, err := s.documents.ListDocuments(ctx)
	if err != nil {
		s.logger.Error("error scanning document collection", "err", err)
		return nil, err
	}
	monitor.AfterCollectionScan(len(documents))

	// 1. Title prefix: any prefix is a literal, case-sensitive prefix of Title.
	if request.HasTitleFilter() {
		documents = filterDocuments(documents, func(document *core.Document) bool {
			return anyPrefixMatch(document.Title, request.TitlePrefixes)
		})
	}
	monitor.AfterTitlePrefixFilter(documents)

	// 2. Content contains: any needle is a case-insensitive substring of Content.
	if request.HasContentFilter() {
		documents = filterDocuments(documents, func(document *core.Document) bool {
			return anyContainsFold(document.Content, request.ContainsContents)
		})
	}
	monitor.AfterContentFilter(documents)

	// 3. Author id: exact equality against any requested id.
	if request.HasAuthorFilter() {
		documents = filterDocuments(documents, func(document *core.Document) bool {
			return anyAuthorMatch(document.Author.Id, request.AuthorIds)
		})
	}
	monitor.AfterAuthorFilter(documents)

	// 4. Created lower bound, strictly exclusive.
	if request.CreatedFrom != nil {
		from := *request.CreatedFrom
		documents = filterDocuments(documents, func(document *core.Document) bool {
			return document.Created.After(from)
		})
	}
	monitor.AfterCreatedFromFilter(documents)

	// 5. Created upper bound, strictly exclusive.
	if request.CreatedTo != nil {
		to := *request.CreatedTo
		documents = filterDocuments(documents, func(document *core.Document) bool {
			return document.Created.Before(to)
		})
	}
	monitor.AfterCreatedToFilter(documents)

	monitor.Finish(documents)

	return documents, nil
}
