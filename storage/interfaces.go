package storage

import (
	"context"

	"github.com/poiesic/docstore/core"
)

// DocumentRepository provides upsert-by-id storage and point lookup for
// documents. Implementations must be thread-safe and support concurrent
// access.
type DocumentRepository interface {
	// SaveDocument upserts a document.
	// For documents with a blank id, generates a fresh unique id.
	// A non-blank id is never rewritten; the existing entry under that id
	// is overwritten (last write wins).
	// Returns the same document with the id populated.
	SaveDocument(ctx context.Context, document *core.Document) (*core.Document, error)

	// GetDocument retrieves a single document by id.
	// Returns (nil, nil) if no document has that id; absence is a normal
	// outcome, not an error.
	GetDocument(ctx context.Context, id string) (*core.Document, error)

	// GetDocuments retrieves multiple documents by their ids.
	// Returns only the documents that exist (no error for missing ids).
	GetDocuments(ctx context.Context, ids ...string) ([]*core.Document, error)

	// ListDocuments returns every stored document.
	// Order is unspecified.
	ListDocuments(ctx context.Context) ([]*core.Document, error)

	// CountDocuments returns the number of stored documents.
	CountDocuments(ctx context.Context) (int, error)

	// Close closes the repository and releases resources.
	Close() error
}
