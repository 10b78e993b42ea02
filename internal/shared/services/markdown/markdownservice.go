// Package markdown renders reviewer-entered free text (action notes,
// suppression reason descriptions) to sanitized HTML for API consumers.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Service interface {
	// RenderNotes converts markdown notes to sanitized HTML.
	RenderNotes(notes string) (string, error)
	// SanitizeText strips all markup from free text before it is persisted.
	SanitizeText(text string) string
}

type serviceImpl struct {
	md          goldmark.Markdown
	htmlPolicy  *bluemonday.Policy
	plainPolicy *bluemonday.Policy
}

func NewService() Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	return &serviceImpl{
		md:          md,
		htmlPolicy:  bluemonday.UGCPolicy(),
		plainPolicy: bluemonday.StrictPolicy(),
	}
}

func (s *serviceImpl) RenderNotes(notes string) (string, error) {
	if notes == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(notes), &buf); err != nil {
		return "", fmt.Errorf("failed to render notes: %w", err)
	}

	return s.htmlPolicy.Sanitize(buf.String()), nil
}

func (s *serviceImpl) SanitizeText(text string) string {
	return s.plainPolicy.Sanitize(text)
}
