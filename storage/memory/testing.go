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


package memory

import (
	"context"
	"testing"

	"github.com/poiesic/docstore/core"
	"github.com/poiesic/docstore/storage"
)

// NewTestStore creates a store pre-populated with the given documents.
// The store is closed automatically when the test finishes.
func NewTestStore(t *testing.T, documents ...*core.Document) storage.DocumentRepository {
	t.Helper()

	store, err := NewStore()
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	for _, document := range documents {
		if _, err := store.SaveDocument(ctx, document); err != nil {
			t.Fatalf("seeding test store: %v", err)
		}
	}

	return store
}
