// Package indicator holds the closed catalog of evidence indicator bins.
// The catalog is static: bins are never created or deleted at runtime.
package indicator

import (
	"strings"

	"github.com/viant/policybin/schema"
)

// Entry represents a catalog evidence indicator
type Entry struct {
	Indicator   string `json:"evidenceIndicator" yaml:"evidenceIndicator"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
}

// Category represents a bin category
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var byIndicator = func() map[string]int {
	ret := make(map[string]int, len(entries))
	for i, entry := range entries {
		ret[entry.Indicator] = i
	}
	return ret
}()

// Bins returns a fresh catalog with empty document lists
func Bins() schema.Catalog {
	ret := make(schema.Catalog, 0, len(entries))
	for _, entry := range entries {
		ret = append(ret, entry.Bin())
	}
	return ret
}

// Bin returns an empty bin for the entry
func (e Entry) Bin() *schema.Bin {
	return &schema.Bin{
		Indicator:   e.Indicator,
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		Documents:   []*schema.Document{},
	}
}

// Lookup returns an entry by exact indicator
func Lookup(indicator string) (Entry, bool) {
	idx, ok := byIndicator[indicator]
	if !ok {
		return Entry{}, false
	}
	return entries[idx], true
}

// Exists returns true if indicator is in the catalog
func Exists(indicator string) bool {
	_, ok := byIndicator[indicator]
	return ok
}

// Indicators returns indicators in catalog order
func Indicators() []string {
	ret := make([]string, 0, len(entries))
	for _, entry := range entries {
		ret = append(ret, entry.Indicator)
	}
	return ret
}

// Categories returns categories in display order
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// ResolveCategory returns category by ID or case-insensitive name
func ResolveCategory(key string) (Category, bool) {
	key = strings.TrimSpace(key)
	for _, category := range categories {
		if category.ID == key || strings.EqualFold(category.Name, key) {
			return category, true
		}
	}
	return Category{}, false
}

// Reconcile appends catalog bins missing from a loaded snapshot and returns
// indicators of snapshot bins that the catalog does not know.
func Reconcile(catalog schema.Catalog) (schema.Catalog, []string) {
	var unknown []string
	present := make(map[string]bool, len(catalog))
	for _, bin := range catalog {
		present[bin.Indicator] = true
		if !Exists(bin.Indicator) {
			unknown = append(unknown, bin.Indicator)
		}
	}
	for _, entry := range entries {
		if !present[entry.Indicator] {
			catalog = append(catalog, entry.Bin())
		}
	}
	return catalog, unknown
}
