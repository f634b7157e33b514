package mcp

import (
	"github.com/viant/policybin/indicator"
	"github.com/viant/policybin/reindex"
	"github.com/viant/policybin/schema"
	"github.com/viant/policybin/search"
	"github.com/viant/policybin/service"
)

type ClassifyInput struct {
	FileNames []string `json:"fileNames"`
}

type ClassifyOutput struct {
	Matches   []service.Classification `json:"matches"`
	Unmatched int                      `json:"unmatched"`
}

type BinsInput struct {
	Category string `json:"category,omitempty"`
	Query    string `json:"query,omitempty"`
	// Summary omits extracted document content.
	Summary bool `json:"summary,omitempty"`
}

type BinsOutput struct {
	Categories []indicator.Category `json:"categories"`
	Bins       []*schema.Bin        `json:"bins"`
}

type SearchInput struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

type SearchOutput struct {
	Hits []search.Hit `json:"hits"`
}

type ReindexInput struct{}

type ReindexOutput = reindex.Result
