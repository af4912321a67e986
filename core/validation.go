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


package core

import "strings"

// ValidateDocument validates a Document before it is stored.
//
// Only nil-ness is validated. Everything else, including an empty title
// or content and a blank id, is acceptable input: a blank id means the
// store assigns one on save.
func ValidateDocument(document *Document) error {
	if document == nil {
		return ErrNilDocument
	}
	return nil
}

// ValidateSearchRequest validates a SearchRequest before it is applied.
//
// Only nil-ness is validated. A request with every field nil or empty is
// valid and matches the entire collection.
func ValidateSearchRequest(request *SearchRequest) error {
	if request == nil {
		return ErrNilRequest
	}
	return nil
}

// IsBlankId reports whether an identifier is empty or whitespace only.
func IsBlankId(id string) bool {
	return strings.TrimSpace(id) == ""
}
