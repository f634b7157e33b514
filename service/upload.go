package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/policybin/indicator"
	"github.com/viant/policybin/schema"
)

// Classify previews classification without storing anything
func (s *Service) Classify(fileNames ...string) []Classification {
	return s.classifier.ClassifyAll(fileNames...)
}

// UploadBatch classifies and stores files. Unmatched and rejected files are
// reported and never persisted; matched files are recorded in one snapshot update.
func (s *Service) UploadBatch(ctx context.Context, uploads []Upload) (*UploadReport, error) {
	report := &UploadReport{Documents: []*schema.Document{}, Unmatched: []string{}, Rejected: []Rejection{}, Failed: []Rejection{}}
	var docs []*schema.Document
	for _, upload := range uploads {
		if reason := s.rules.Reason(upload.FileName, len(upload.Data)); reason != "" {
			report.Rejected = append(report.Rejected, Rejection{FileName: upload.FileName, Reason: reason})
			continue
		}
		match := s.classifier.Classify(upload.FileName)
		if !match.Matched {
			s.logger.Info("upload_unmatched", "fileName", upload.FileName)
			report.Unmatched = append(report.Unmatched, upload.FileName)
			continue
		}
		object, err := s.objects.Put(ctx, upload.FileName, upload.Data)
		if err != nil {
			s.logger.Error("upload_store_failed", "fileName", upload.FileName, "error", err.Error())
			report.Failed = append(report.Failed, Rejection{FileName: upload.FileName, Reason: err.Error()})
			continue
		}
		doc := s.newDocument(upload.FileName, object.URL, schema.StatusPending)
		doc.EvidenceIndicator = match.Indicator
		s.logger.Debug("upload_classified", "fileName", upload.FileName, "evidenceIndicator", match.Indicator, "tier", string(match.Tier))
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return report, nil
	}
	if _, err := s.catalog.Update(ctx, func(catalog schema.Catalog) error {
		return appendDocuments(catalog, docs...)
	}); err != nil {
		s.logger.Error("upload_metadata_failed", "documents", len(docs), "error", err.Error())
		return nil, err
	}
	for _, doc := range docs {
		report.Documents = append(report.Documents, doc.Clone())
	}
	return report, nil
}

// UploadSingle stores a file directly into the supplied bin, bypassing classification
func (s *Service) UploadSingle(ctx context.Context, indicatorID string, upload Upload) (*schema.Document, error) {
	if !indicator.Exists(indicatorID) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownIndicator, indicatorID)
	}
	if reason := s.rules.Reason(upload.FileName, len(upload.Data)); reason != "" {
		return nil, fmt.Errorf("%w: %v", ErrRejected, reason)
	}
	object, err := s.objects.Put(ctx, upload.FileName, upload.Data)
	if err != nil {
		return nil, err
	}
	doc := s.newDocument(upload.FileName, object.URL, schema.StatusPending)
	doc.EvidenceIndicator = indicatorID
	if _, err = s.catalog.Update(ctx, func(catalog schema.Catalog) error {
		return appendDocuments(catalog, doc)
	}); err != nil {
		return nil, err
	}
	return doc.Clone(), nil
}

// AddDocument records an admin entered document, optionally referencing an existing URL
func (s *Service) AddDocument(ctx context.Context, input ManualDocument) (*schema.Document, error) {
	fileName := strings.TrimSpace(input.FileName)
	if fileName == "" {
		return nil, fmt.Errorf("%w: fileName is required", ErrInvalidDocument)
	}
	if strings.TrimSpace(input.Indicator) == "" {
		return nil, fmt.Errorf("%w: evidenceIndicator is required", ErrInvalidDocument)
	}
	if !indicator.Exists(input.Indicator) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownIndicator, input.Indicator)
	}
	status, err := schema.ParseStatus(input.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	doc := s.newDocument(fileName, strings.TrimSpace(input.URL), status)
	doc.EvidenceIndicator = input.Indicator
	if _, err = s.catalog.Update(ctx, func(catalog schema.Catalog) error {
		return appendDocuments(catalog, doc)
	}); err != nil {
		return nil, err
	}
	s.logger.Info("document_added", "id", doc.ID, "evidenceIndicator", doc.EvidenceIndicator)
	return doc.Clone(), nil
}
