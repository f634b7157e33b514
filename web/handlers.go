package web

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/viant/policybin/metadata"
	"github.com/viant/policybin/reindex"
	"github.com/viant/policybin/service"
)

const maxQuerySize = 1 << 10

type classifyRequest struct {
	FileNames []string `json:"fileNames"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
}

func (s *Server) handleCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": s.backend.Categories()})
}

func (s *Server) handleBins(c *gin.Context) {
	filter := service.Filter{Category: c.Query("category"), Query: c.Query("q")}
	if len(filter.Query) > maxQuerySize {
		s.fail(c, http.StatusBadRequest, errors.New("query exceeds maximum size of 1KB"))
		return
	}
	bins := s.backend.Bins(c.Request.Context(), filter)
	c.JSON(http.StatusOK, gin.H{"success": true, "bins": bins, "count": len(bins)})
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": s.backend.Stats(c.Request.Context())})
}

func (s *Server) handleClassify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "matches": s.backend.Classify(req.FileNames...)})
}

func (s *Server) handleUploadBatch(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUploadBytes)
	form, err := c.MultipartForm()
	if err != nil {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("invalid multipart form: %w", err))
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		s.fail(c, http.StatusBadRequest, errors.New("no files provided"))
		return
	}
	uploads := make([]service.Upload, 0, len(headers))
	for _, header := range headers {
		upload, err := readUpload(header)
		if err != nil {
			s.fail(c, http.StatusBadRequest, err)
			return
		}
		uploads = append(uploads, upload)
	}
	report, err := s.backend.UploadBatch(c.Request.Context(), uploads)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "report": report})
}

func (s *Server) handleUploadSingle(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUploadBytes)
	header, err := c.FormFile("file")
	if err != nil {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("file is required: %w", err))
		return
	}
	upload, err := readUpload(header)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	doc, err := s.backend.UploadSingle(c.Request.Context(), c.Param("indicator"), upload)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "document": doc})
}

func (s *Server) handleAddDocument(c *gin.Context) {
	var req service.ManualDocument
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	doc, err := s.backend.AddDocument(c.Request.Context(), req)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "document": doc})
}

func (s *Server) handleSetStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	doc, err := s.backend.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "document": doc})
}

func (s *Server) handleDeleteDocument(c *gin.Context) {
	if err := s.backend.DeleteDocument(c.Request.Context(), c.Param("indicator"), c.Param("id")); err != nil {
		s.fail(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleDuplicates(c *gin.Context) {
	groups := s.backend.Duplicates(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "groups": groups, "count": len(groups)})
}

func (s *Server) handleSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		s.fail(c, http.StatusBadRequest, errors.New("query parameter required"))
		return
	}
	if len(query) > maxQuerySize {
		s.fail(c, http.StatusBadRequest, errors.New("query exceeds maximum size of 1KB"))
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	hits, err := s.backend.Search(c.Request.Context(), query, limit)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "hits": hits, "count": len(hits)})
}

func (s *Server) handleReindex(c *gin.Context) {
	result, err := s.backend.Reindex(c.Request.Context())
	if err != nil && result == nil {
		s.fail(c, statusFor(err), err)
		return
	}
	status := http.StatusOK
	if err != nil {
		status = statusFor(err)
	}
	c.JSON(status, result)
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("http_request_failed", "path", c.Request.URL.Path, "error", err.Error())
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUnknownIndicator), errors.Is(err, service.ErrDocumentNotFound), errors.Is(err, reindex.ErrNoMetadata):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidDocument), errors.Is(err, service.ErrRejected):
		return http.StatusBadRequest
	case errors.Is(err, metadata.ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func readUpload(header *multipart.FileHeader) (service.Upload, error) {
	file, err := header.Open()
	if err != nil {
		return service.Upload{}, fmt.Errorf("failed to open %v: %w", header.Filename, err)
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return service.Upload{}, fmt.Errorf("failed to read %v: %w", header.Filename, err)
	}
	return service.Upload{FileName: header.Filename, Data: data}, nil
}
