// Package ingest provides batched bulk loading of documents.
//
// The Pipeline type turns raw records into documents and saves them to a
// repository in batches, concurrently on a worker pool. Errors while
// saving individual documents are logged but do not fail the ingestion
// operation; Wait blocks until all submitted batches are stored.
package ingest
