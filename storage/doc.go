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


// Package storage provides the storage abstraction layer for docstore.
//
// This package defines the repository interface that decouples storage
// implementation from search and facade logic. The shipped backend is the
// in-memory map store in the memory subpackage; alternative backends only
// need to satisfy DocumentRepository.
//
// # Constructor Return Type Pattern
//
// This package follows a strict "return interface" pattern for all public
// constructors to enforce abstraction:
//
//	repo, err := memory.NewStore()  // returns storage.DocumentRepository
//
// This design decision prioritizes:
//   - Abstraction: Prevents accidental coupling to backend specifics
//   - Swappability: Easy to add alternative backends later
//   - Testing: Consumers can use mock implementations without modification
//
// # Lookup Semantics
//
// A missing document is a normal outcome: GetDocument returns (nil, nil)
// rather than an error, and GetDocuments silently skips ids that do not
// exist. The only storage-level failure after construction is using a
// repository that has been closed.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for consistency with the
// rest of the module. The in-memory backend completes immediately and
// does not block on I/O; pass context.Background() when no specific
// scope applies.
package storage
