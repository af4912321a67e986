package search

import (
	"github.com/poiesic/docstore/core"
)

// SearchMonitor provides hooks to observe the filter pipeline.
// Implement this interface to track intermediate sets during search.
// Each After* hook receives the surviving documents, whether or not the
// corresponding filter was active for the request.
type SearchMonitor interface {
	Start(request *core.SearchRequest)
	AfterCollectionScan(total int)
	AfterTitlePrefixFilter(remaining []*core.Document)
	AfterContentFilter(remaining []*core.Document)
	AfterAuthorFilter(remaining []*core.Document)
	AfterCreatedFromFilter(remaining []*core.Document)
	AfterCreatedToFilter(remaining []*core.Document)
	Finish(results []*core.Document)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *core.SearchRequest)                  {}
func (n *noopMonitor) AfterCollectionScan(_ int)                    {}
func (n *noopMonitor) AfterTitlePrefixFilter(_ []*core.Document)    {}
func (n *noopMonitor) AfterContentFilter(_ []*core.Document)        {}
func (n *noopMonitor) AfterAuthorFilter(_ []*core.Document)         {}
func (n *noopMonitor) AfterCreatedFromFilter(_ []*core.Document)    {}
func (n *noopMonitor) AfterCreatedToFilter(_ []*core.Document)      {}
func (n *noopMonitor) Finish(_ []*core.Document)                    {}
