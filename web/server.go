// Package web exposes the policy bin operations as a JSON HTTP API.
package web

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/viant/policybin/indicator"
	"github.com/viant/policybin/reindex"
	"github.com/viant/policybin/schema"
	"github.com/viant/policybin/search"
	"github.com/viant/policybin/service"
)

// DefaultMaxUploadBytes bounds a multipart upload request
const DefaultMaxUploadBytes = 200 << 20

// Backend represents operations served by the API
type Backend interface {
	Classify(fileNames ...string) []service.Classification
	Categories() []indicator.Category
	Bins(ctx context.Context, filter service.Filter) []*schema.Bin
	Stats(ctx context.Context) service.Stats
	UploadBatch(ctx context.Context, uploads []service.Upload) (*service.UploadReport, error)
	UploadSingle(ctx context.Context, indicatorID string, upload service.Upload) (*schema.Document, error)
	AddDocument(ctx context.Context, input service.ManualDocument) (*schema.Document, error)
	DeleteDocument(ctx context.Context, indicatorID, id string) error
	SetStatus(ctx context.Context, id string, status string) (*schema.Document, error)
	Duplicates(ctx context.Context) []service.DuplicateGroup
	Search(ctx context.Context, query string, limit int) ([]search.Hit, error)
	Reindex(ctx context.Context) (*reindex.Result, error)
}

// Server is the policy bin web server
type Server struct {
	backend        Backend
	router         *gin.Engine
	credentials    Credentials
	staticDir      string
	maxUploadBytes int64
	logger         *slog.Logger
}

// Option configures a Server
type Option func(*Server)

// WithCredentials enables HTTP Basic auth
func WithCredentials(credentials Credentials) Option {
	return func(s *Server) { s.credentials = credentials }
}

// WithStaticDir serves static assets from dir under /static
func WithStaticDir(dir string) Option {
	return func(s *Server) { s.staticDir = dir }
}

// WithMaxUploadBytes bounds multipart request size
func WithMaxUploadBytes(size int64) Option {
	return func(s *Server) {
		if size > 0 {
			s.maxUploadBytes = size
		}
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a new web server
func NewServer(backend Backend, opts ...Option) *Server {
	s := &Server{
		backend:        backend,
		maxUploadBytes: DefaultMaxUploadBytes,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	router := gin.New()
	router.MaxMultipartMemory = 32 << 20
	router.Use(gin.Recovery(), s.accessLog(), BasicAuth(s.credentials))
	s.router = router

	if s.staticDir != "" {
		router.Static("/static", s.staticDir)
		if favicon := filepath.Join(s.staticDir, "favicon.ico"); fileExists(favicon) {
			router.StaticFile("/favicon.ico", favicon)
		}
	}
	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api")
	{
		api.GET("/categories", s.handleCategories)
		api.GET("/bins", s.handleBins)
		api.GET("/stats", s.handleStats)
		api.POST("/classify", s.handleClassify)
		api.POST("/upload", s.handleUploadBatch)
		api.POST("/bins/:indicator/upload", s.handleUploadSingle)
		api.POST("/documents", s.handleAddDocument)
		api.PATCH("/documents/:id/status", s.handleSetStatus)
		api.DELETE("/bins/:indicator/documents/:id", s.handleDeleteDocument)
		api.GET("/duplicates", s.handleDuplicates)
		api.GET("/search", s.handleSearch)
		api.POST("/reindex", s.handleReindex)
	}
	return s
}

// Handler returns the HTTP handler
func (s *Server) Handler() *gin.Engine {
	return s.router
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		s.logger.Debug("http_request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(started).String(),
		)
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
