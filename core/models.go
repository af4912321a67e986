package core

import (
	"time"
)

// Document is a stored document with its author and creation time.
// Identity is the Id field; the store assigns one on first save when the
// caller leaves it blank, and never rewrites an id that is already set.
type Document struct {
	Id      string
	Title   string
	Content string
	Author  Author
	Created time.Time // When the document was originally created
}

// Author identifies who wrote a document.
// It is a plain value; search compares authors by Id only.
type Author struct {
	Id   string
	Name string
}

// SearchRequest holds the optional filter criteria for a search.
// Every field is independent; a nil or empty field imposes no constraint
// on that dimension. Active filters compose conjunctively.
type SearchRequest struct {
	TitlePrefixes    []string   // any-of, case-sensitive literal prefix of Title
	ContainsContents []string   // any-of, case-insensitive substring of Content
	AuthorIds        []string   // any-of, exact match on Author.Id
	CreatedFrom      *time.Time // exclusive lower bound on Created
	CreatedTo        *time.Time // exclusive upper bound on Created
}

// HasTitleFilter reports whether the request constrains titles.
func (r *SearchRequest) HasTitleFilter() bool {
	return len(r.TitlePrefixes) > 0
}

// HasContentFilter reports whether the request constrains contents.
func (r *SearchRequest) HasContentFilter() bool {
	return len(r.ContainsContents) > 0
}

// HasAuthorFilter reports whether the request constrains authors.
func (r *SearchRequest) HasAuthorFilter() bool {
	return len(r.AuthorIds) > 0
}
