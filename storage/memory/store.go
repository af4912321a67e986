package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/poiesic/docstore/core"
	"github.com/poiesic/docstore/storage"
)

// Store is an in-memory document repository backed by a flat map.
// A single RWMutex guards the map for the duration of each call, so the
// store is safe for concurrent use; each call observes a consistent
// snapshot of the map.
type Store struct {
	mu        sync.RWMutex
	documents map[string]*core.Document
	logger    *slog.Logger
	closed    bool
}

var _ storage.DocumentRepository = (*Store)(nil)

// Option configures a Store.
type Option func(*Store) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewStore creates an empty in-memory document repository.
func NewStore(opts ...Option) (storage.DocumentRepository, error) {
	s := &Store{
		documents: make(map[string]*core.Document),
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

// SaveDocument upserts a document, assigning a fresh unique id when the
// incoming id is blank. Implements storage.DocumentRepository.
func (s *Store) SaveDocument(ctx context.Context, document *core.Document) (*core.Document, error) {
	if err := core.ValidateDocument(document); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, storage.ErrStorageClosed
	}

	if core.IsBlankId(document.Id) {
		document.Id = s.generateId()
		s.logger.Debug("assigned document id", "id", document.Id)
	}

	s.documents[document.Id] = document

	return document, nil
}

// generateId returns a candidate identifier absent from the store,
// retrying on collision. The caller must hold the write lock so the
// membership check and the eventual insert are atomic.
func (s *Store) generateId() string {
	for {
		id := uuid.NewString()
		if _, exists := s.documents[id]; !exists {
			return id
		}
	}
}

// GetDocument retrieves a single document by id.
// Implements storage.DocumentRepository.
func (s *Store) GetDocument(ctx context.Context, id string) (*core.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storage.ErrStorageClosed
	}

	return s.documents[id], nil
}

// GetDocuments retrieves multiple documents by their ids, skipping ids
// that do not exist. Implements storage.DocumentRepository.
func (s *Store) GetDocuments(ctx context.Context, ids ...string) ([]*core.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storage.ErrStorageClosed
	}

	documents := make([]*core.Document, 0, len(ids))
	for _, id := range ids {
		if document, exists := s.documents[id]; exists {
			documents = append(documents, document)
		}
	}

	return documents, nil
}

// ListDocuments returns every stored document in unspecified order.
// Implements storage.DocumentRepository.
func (s *Store) ListDocuments(ctx context.Context) ([]*core.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storage.ErrStorageClosed
	}

	documents := make([]*core.Document, 0, len(s.documents))
	for _, document := range s.documents {
		documents = append(documents, document)
	}

	return documents, nil
}

// CountDocuments returns the number of stored documents.
// Implements storage.DocumentRepository.
func (s *Store) CountDocuments(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, storage.ErrStorageClosed
	}

	return len(s.documents), nil
}

// Close marks the store closed. Subsequent calls fail with
// storage.ErrStorageClosed. Closing twice is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.documents = nil
	return nil
}
