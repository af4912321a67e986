package search

import (
	"strings"

	"github.com/poiesic/docstore/core"
)

// filterDocuments keeps the documents for which the predicate holds.
func filterDocuments(documents []*core.Document, keep func(*core.Document) bool) []*core.Document {
	filtered := make([]*core.Document, 0, len(documents))
	for _, document := range documents {
		if keep(document) {
			filtered = append(filtered, document)
		}
	}
	return filtered
}

// anyPrefixMatch reports whether any prefix is a literal prefix of title.
// Case-sensitive.
func anyPrefixMatch(title string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(title, prefix) {
			return true
		}
	}
	return false
}

// anyContainsFold reports whether any needle is a substring of content,
// ignoring case. Lowercasing is Unicode-aware, so non-ASCII content folds
// correctly.
func anyContainsFold(content string, needles []string) bool {
	lowered := strings.ToLower(content)
	for _, needle := range needles {
		if strings.Contains(lowered, strings.ToLower(needle)) {
			return true
		}
	}
	return false
}

// anyAuthorMatch reports whether authorId equals any of the given ids.
func anyAuthorMatch(authorId string, ids []string) bool {
	for _, id := range ids {
		if authorId == id {
			return true
		}
	}
	return false
}
