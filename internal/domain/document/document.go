// Package document models uploaded document metadata and the extracted
// fields the OCR pass produces.
package document

import (
	"fmt"
	"time"

	"lerms/internal/domain/record"
)

// Document is the uploaded-document aggregate. Only metadata is kept; file
// bytes never reach storage.
type Document struct {
	id             uint
	fileName       string
	contentType    string
	sizeBytes      int64
	uploaderID     uint
	linkedKind     *record.Kind
	linkedID       *uint
	approvalStatus record.Status
	ocrFields      map[string]string
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewDocument creates a pending document. A linked record is optional but
// must be complete when present.
func NewDocument(fileName, contentType string, sizeBytes int64, uploaderID uint, linkedKind *record.Kind, linkedID *uint) (*Document, error) {
	if fileName == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if sizeBytes < 0 {
		return nil, fmt.Errorf("size cannot be negative")
	}
	if uploaderID == 0 {
		return nil, fmt.Errorf("uploader is required")
	}
	if (linkedKind == nil) != (linkedID == nil) {
		return nil, fmt.Errorf("linked record requires both kind and ID")
	}

	now := time.Now()
	return &Document{
		fileName:       fileName,
		contentType:    contentType,
		sizeBytes:      sizeBytes,
		uploaderID:     uploaderID,
		linkedKind:     linkedKind,
		linkedID:       linkedID,
		approvalStatus: record.StatusPending,
		isActive:       true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructDocument rebuilds a document from persistence.
func ReconstructDocument(id uint, fileName, contentType string, sizeBytes int64, uploaderID uint, linkedKind *record.Kind, linkedID *uint, approvalStatus record.Status, ocrFields map[string]string, isActive bool, createdAt, updatedAt time.Time) (*Document, error) {
	if id == 0 {
		return nil, fmt.Errorf("document ID cannot be zero")
	}

	return &Document{
		id:             id,
		fileName:       fileName,
		contentType:    contentType,
		sizeBytes:      sizeBytes,
		uploaderID:     uploaderID,
		linkedKind:     linkedKind,
		linkedID:       linkedID,
		approvalStatus: approvalStatus,
		ocrFields:      ocrFields,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (d *Document) ID() uint                      { return d.id }
func (d *Document) FileName() string              { return d.fileName }
func (d *Document) ContentType() string           { return d.contentType }
func (d *Document) SizeBytes() int64              { return d.sizeBytes }
func (d *Document) UploaderID() uint              { return d.uploaderID }
func (d *Document) LinkedKind() *record.Kind      { return d.linkedKind }
func (d *Document) LinkedID() *uint               { return d.linkedID }
func (d *Document) ApprovalStatus() record.Status { return d.approvalStatus }
func (d *Document) OCRFields() map[string]string  { return d.ocrFields }
func (d *Document) IsActive() bool                { return d.isActive }
func (d *Document) CreatedAt() time.Time          { return d.createdAt }
func (d *Document) UpdatedAt() time.Time          { return d.updatedAt }

// SetID assigns the persistence-generated ID after the first save.
func (d *Document) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("document ID already set")
	}
	if id == 0 {
		return fmt.Errorf("document ID cannot be zero")
	}
	d.id = id
	return nil
}

// SetOCRFields attaches the fields extracted from the document.
func (d *Document) SetOCRFields(fields map[string]string) {
	d.ocrFields = fields
	d.updatedAt = time.Now()
}

// Deactivate soft-deletes the document.
func (d *Document) Deactivate() {
	d.isActive = false
	d.updatedAt = time.Now()
}
