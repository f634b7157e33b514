// Package extract turns stored document bytes into plain text.
//
// Extraction never fails loudly: malformed input, unsupported formats and
// parser panics all yield an empty string.
package extract

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
)

// Extractor extracts plain text from document bytes
type Extractor interface {
	Extract(name string, data []byte) string
}

// Func adapts a function to an Extractor
type Func func(name string, data []byte) string

// Extract calls f
func (f Func) Extract(name string, data []byte) string {
	return f(name, data)
}

var (
	pdfMagic = []byte("%PDF-")
	zipMagic = []byte("PK\x03\x04")
)

// Factory selects an extractor by file extension
type Factory struct {
	byExtension map[string]Extractor
	logger      *slog.Logger
}

// Extract extracts text using the extractor registered for the name extension.
// Unregistered extensions are sniffed for PDF and DOCX content.
func (f *Factory) Extract(name string, data []byte) (text string) {
	if len(data) == 0 {
		return ""
	}
	extractor := f.Extractor(name, data)
	if extractor == nil {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			f.logger.Debug("extract_panic", "name", name, "panic", r)
			text = ""
		}
	}()
	return strings.TrimSpace(extractor.Extract(name, data))
}

// Extractor returns the extractor for name, or nil when none applies
func (f *Factory) Extractor(name string, data []byte) Extractor {
	ext := strings.ToLower(filepath.Ext(extensionSource(name)))
	if extractor, ok := f.byExtension[ext]; ok {
		return extractor
	}
	switch {
	case bytes.HasPrefix(data, pdfMagic):
		return f.byExtension[".pdf"]
	case bytes.HasPrefix(data, zipMagic):
		return f.byExtension[".docx"]
	}
	return nil
}

// Register registers an extractor for a file extension
func (f *Factory) Register(ext string, extractor Extractor) {
	f.byExtension[strings.ToLower(ext)] = extractor
}

// NewFactory creates a factory with the built-in extractors
func NewFactory(opts ...Option) *Factory {
	ret := &Factory{byExtension: map[string]Extractor{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(ret)
	}
	ret.Register(".pdf", Func(extractPDF))
	ret.Register(".docx", Func(extractDOCX))
	ret.Register(".xlsx", Func(extractXLSX))
	ret.Register(".xls", Func(extractXLS))
	for _, ext := range []string{".txt", ".md", ".csv"} {
		ret.Register(ext, Func(extractText))
	}
	return ret
}

// Option configures a Factory
type Option func(*Factory)

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// ExtractContext runs extraction and returns ctx.Err() when ctx is done first
func ExtractContext(ctx context.Context, extractor Extractor, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	done := make(chan string, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- ""
			}
		}()
		done <- extractor.Extract(name, data)
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case text := <-done:
		return text, nil
	}
}

// extensionSource strips a URL query or fragment so stored URLs resolve to their file extension
func extensionSource(name string) string {
	if idx := strings.IndexAny(name, "?#"); idx != -1 {
		return name[:idx]
	}
	return name
}
