package service

import (
	"github.com/viant/policybin/classifier"
	"github.com/viant/policybin/schema"
)

// Classification reports how a filename was classified
type Classification = classifier.Match

// Upload represents an uploaded file
type Upload struct {
	FileName string
	Data     []byte
}

// Rejection represents a file that was not stored
type Rejection struct {
	FileName string `json:"fileName"`
	Reason   string `json:"reason"`
}

// UploadReport summarizes a batch upload
type UploadReport struct {
	Documents []*schema.Document `json:"documents"`
	Unmatched []string           `json:"unmatched"`
	Rejected  []Rejection        `json:"rejected"`
	Failed    []Rejection        `json:"failed"`
}

// ManualDocument represents an admin entered document
type ManualDocument struct {
	Indicator string `json:"evidenceIndicator"`
	FileName  string `json:"fileName"`
	URL       string `json:"url,omitempty"`
	Status    string `json:"status,omitempty"`
}

// Filter selects bins by category and free text
type Filter struct {
	// Category matches a category name or id, empty or "all" selects every category.
	Category string `json:"category,omitempty"`
	// Query matches indicator, title, description or document file names, case-insensitive.
	Query string `json:"q,omitempty"`
}

// DuplicateGroup lists documents of one bin sharing a file name
type DuplicateGroup struct {
	Indicator string             `json:"evidenceIndicator"`
	Title     string             `json:"title"`
	FileName  string             `json:"fileName"`
	Documents []*schema.Document `json:"documents"`
}

// Stats summarizes the catalog
type Stats struct {
	Bins      int `json:"bins"`
	Filled    int `json:"filled"`
	Documents int `json:"documents"`
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
}
