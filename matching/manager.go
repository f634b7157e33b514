// Package matching decides which uploaded files are accepted for storage.
package matching

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/viant/afs/url"
	"github.com/viant/policybin/matching/option"
)

// Manager handles upload acceptance rules
type Manager struct {
	options *option.Options
}

// New creates a new upload rules manager with the given options
func New(opts ...option.Option) *Manager {
	return &Manager{options: option.NewOptions(opts...)}
}

// Reason returns why a file is rejected, or an empty string when it is accepted
func (m *Manager) Reason(fileName string, size int) string {
	location := fileName
	if strings.Contains(location, "://") {
		location = url.Path(location)
	}
	name := path.Base(filepath.ToSlash(location))
	if strings.TrimSpace(fileName) == "" || name == "." || name == "/" {
		return "missing file name"
	}
	if m.options.MaxFileSize > 0 && size > m.options.MaxFileSize {
		return fmt.Sprintf("file size %d exceeds limit %d", size, m.options.MaxFileSize)
	}
	if len(m.options.Extensions) > 0 && !m.isIncluded(name) {
		return fmt.Sprintf("unsupported file type %q", filepath.Ext(name))
	}
	for _, pattern := range m.options.Exclusions {
		pattern = strings.TrimSpace(pattern)
		// Skip comments or empty lines
		if pattern == "" || strings.HasPrefix(pattern, "#") {
			continue
		}
		if m.isExcluded(name, pattern) {
			return fmt.Sprintf("file name matches excluded pattern %q", pattern)
		}
	}
	return ""
}

func (m *Manager) isExcluded(name string, pattern string) bool {
	if name == pattern {
		return true
	}
	matched, _ := filepath.Match(pattern, name)
	return matched
}

func (m *Manager) isIncluded(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, candidate := range m.options.Extensions {
		if ext == candidate {
			return true
		}
	}
	return false
}
