// Package dto carries document metadata API shapes.
package dto

import (
	"time"

	"lerms/internal/domain/document"
)

// DocumentDTO is one document's metadata plus its extracted fields.
type DocumentDTO struct {
	ID             uint              `json:"id"`
	FileName       string            `json:"file_name"`
	ContentType    string            `json:"content_type,omitempty"`
	SizeBytes      int64             `json:"size_bytes"`
	UploaderID     uint              `json:"uploader_id"`
	LinkedKind     *string           `json:"linked_kind,omitempty"`
	LinkedID       *uint             `json:"linked_id,omitempty"`
	ApprovalStatus string            `json:"approval_status"`
	OCRFields      map[string]string `json:"ocr_fields,omitempty"`
	IsActive       bool              `json:"is_active"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
}

// DocumentToDTO converts a domain document.
func DocumentToDTO(d *document.Document) *DocumentDTO {
	out := &DocumentDTO{
		ID:             d.ID(),
		FileName:       d.FileName(),
		ContentType:    d.ContentType(),
		SizeBytes:      d.SizeBytes(),
		UploaderID:     d.UploaderID(),
		LinkedID:       d.LinkedID(),
		ApprovalStatus: string(d.ApprovalStatus()),
		OCRFields:      d.OCRFields(),
		IsActive:       d.IsActive(),
		CreatedAt:      d.CreatedAt().Format(time.RFC3339),
		UpdatedAt:      d.UpdatedAt().Format(time.RFC3339),
	}
	if kind := d.LinkedKind(); kind != nil {
		v := string(*kind)
		out.LinkedKind = &v
	}
	return out
}

// DocumentsToDTO converts a listing.
func DocumentsToDTO(ds []*document.Document) []*DocumentDTO {
	dtos := make([]*DocumentDTO, 0, len(ds))
	for _, d := range ds {
		dtos = append(dtos, DocumentToDTO(d))
	}
	return dtos
}
