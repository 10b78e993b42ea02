// Package ocr provides the simulated field extraction used by the document
// pipeline. File bytes never reach the system, so extraction is derived
// deterministically from upload metadata; the interface matches what a real
// OCR backend would implement.
package ocr

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"lerms/internal/shared/logger"
)

// SimulatedExtractor derives a stable field set from (fileName, contentType,
// sizeBytes). The same upload metadata always yields the same fields, which
// keeps the pipeline reproducible in tests.
type SimulatedExtractor struct {
	logger logger.Interface
}

// NewSimulatedExtractor creates a new simulated extractor
func NewSimulatedExtractor(logger logger.Interface) *SimulatedExtractor {
	return &SimulatedExtractor{logger: logger}
}

// Extract produces the simulated OCR fields
func (e *SimulatedExtractor) Extract(ctx context.Context, fileName, contentType string, sizeBytes int64) (map[string]string, error) {
	if fileName == "" {
		return nil, fmt.Errorf("file name is required for extraction")
	}

	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d", fileName, contentType, sizeBytes)))
	digest := hex.EncodeToString(sum[:])

	fields := map[string]string{
		"document_class":   classify(fileName, contentType),
		"reference_number": strings.ToUpper(digest[:12]),
		"page_count":       fmt.Sprintf("%d", pageCount(sizeBytes)),
		"source_file":      fileName,
	}

	e.logger.Debugw("simulated extraction completed",
		"file_name", fileName,
		"document_class", fields["document_class"],
		"reference_number", fields["reference_number"])

	return fields, nil
}

// classify guesses a document class from the file name and content type
func classify(fileName, contentType string) string {
	name := strings.ToLower(fileName)
	switch {
	case strings.Contains(name, "registration"), strings.Contains(name, "title"):
		return "vehicle_registration_form"
	case strings.Contains(name, "license"), strings.Contains(name, "dl"):
		return "driver_license_form"
	case strings.Contains(name, "suppression"):
		return "suppression_request_form"
	}

	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "scanned_image"
	case contentType == "application/pdf", strings.EqualFold(filepath.Ext(fileName), ".pdf"):
		return "pdf_document"
	}
	return "unclassified"
}

// pageCount estimates pages at roughly 64KiB per page, minimum one
func pageCount(sizeBytes int64) int64 {
	const bytesPerPage = 64 * 1024
	pages := sizeBytes / bytesPerPage
	if pages < 1 {
		return 1
	}
	return pages
}
