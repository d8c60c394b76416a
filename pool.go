// Copyright 2025 go-haar Authors
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

package haar

import "sync"

// scratchGrid is a pooled working grid. Its contents are stale on Get;
// callers overwrite it before reading.
type scratchGrid struct {
	g    *Grid
	w, h int
}

var scratchPool = sync.Pool{New: func() any { return new(scratchGrid) }}

func getScratch(w, h int) *scratchGrid {
	s := scratchPool.Get().(*scratchGrid)
	if s.w != w || s.h != h || s.g == nil {
		s.g = NewGrid(w, h)
		s.w = w
		s.h = h
	}
	return s
}

func putScratch(s *scratchGrid) {
	scratchPool.Put(s)
}
