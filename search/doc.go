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


// Package search provides multi-criterion filtered search over documents.
//
// The Searcher type implements a sequential filter pipeline with five
// independent criteria:
//   - Title prefix matching (any-of, case-sensitive)
//   - Content substring matching (any-of, case-insensitive)
//   - Author id matching (any-of, exact)
//   - Creation time lower bound (strictly exclusive)
//   - Creation time upper bound (strictly exclusive)
//
// Active criteria compose conjunctively; inactive criteria impose no
// constraint. This is a filter, not a ranked search: results carry no
// score and their order is unspecified.
package search
