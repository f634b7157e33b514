package option

import (
	"strings"
)

// DefaultMaxFileSize is the upload size limit in bytes
const DefaultMaxFileSize = 50 * 1024 * 1024

// Options provides upload acceptance rules
type Options struct {

	// Extensions lists accepted file extensions, empty accepts any extension
	Extensions []string

	// Exclusions contains filename patterns to reject
	Exclusions []string

	// MaxFileSize is the maximum accepted upload size in bytes, 0 means unlimited
	MaxFileSize int
}

// Options returns a slice of Option functions based on the Options fields
func (o *Options) Options() []Option {
	var result []Option
	result = append(result, WithMaxFileSize(o.MaxFileSize))
	if o.Extensions != nil {
		result = append(result, WithExtensions(o.Extensions...))
	}
	if o.Exclusions != nil {
		result = append(result, WithExclusionPatterns(o.Exclusions...))
	}
	return result
}

// NewOptions creates a new Options instance with default values
func NewOptions(opts ...Option) *Options {
	options := &Options{MaxFileSize: DefaultMaxFileSize}
	for _, opt := range opts {
		opt(options)
	}
	if options.Extensions == nil {
		options.Extensions = DefaultExtensions()
	}
	if options.Exclusions == nil {
		options.Exclusions = getDefaultPatterns()
	}
	return options
}

// Option is a function that modifies Options
type Option func(*Options)

// WithExtensions sets accepted extensions, a leading dot is optional
func WithExtensions(extensions ...string) Option {
	return func(o *Options) {
		o.Extensions = []string{}
		for _, ext := range extensions {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			o.Extensions = append(o.Extensions, ext)
		}
	}
}

// WithExclusionPatterns adds exclusion patterns
func WithExclusionPatterns(patterns ...string) Option {
	return func(o *Options) {
		o.Exclusions = append(o.Exclusions, patterns...)
	}
}

// WithMaxFileSize sets the maximum accepted size, 0 means unlimited
func WithMaxFileSize(size int) Option {
	return func(o *Options) {
		if size >= 0 {
			o.MaxFileSize = size
		}
	}
}

// DefaultExtensions returns the extensions accepted by the upload dialogs
func DefaultExtensions() []string {
	return []string{".pdf", ".doc", ".docx"}
}

// getDefaultPatterns returns editor and OS artifacts that are never policy documents
func getDefaultPatterns() []string {
	return []string{
		".DS_Store",
		"Thumbs.db",
		"~$*",
		"*.tmp",
	}
}
