// Package document turns uploaded job descriptions and resumes into plain
// text. Extraction is best-effort: every failure path degrades to empty or
// partial text with a logged diagnostic, never an error to the caller.
package document

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
)

// Extractor selects a decoding strategy by file extension. PDF and DOCX
// parsing go through injected capabilities; a missing parser degrades to
// empty text instead of failing the run.
type Extractor struct {
	pdf    Capability
	docx   Capability
	logger *zap.Logger
}

func New(pdf, docx Capability, logger *zap.Logger) *Extractor {
	return &Extractor{
		pdf:    pdf,
		docx:   docx,
		logger: logger,
	}
}

// Extract returns the plain-text content of the document. The dispatch is
// case-insensitive on the filename extension; anything that is not PDF or
// DOCX takes the plain-text path, so no file is ever rejected outright.
// The reader is rewound to the start before returning, regardless of outcome,
// so the same bytes can be read again by another consumer.
func (e *Extractor) Extract(r io.ReadSeeker, filename string) string {
	defer func() {
		_, _ = r.Seek(0, io.SeekStart)
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		e.logger.Error("reading uploaded document", zap.String("filename", filename), zap.Error(err))
		return ""
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return e.parse(e.pdf, "PDF", data)
	case ".docx":
		return e.parse(e.docx, "DOCX", data)
	default:
		return plainText(data)
	}
}

func (e *Extractor) parse(c Capability, format string, data []byte) string {
	if !c.Available() {
		msg := fmt.Sprintf("%s support is unavailable; cannot read the file", format)
		if u, ok := c.(interface{ Reason() string }); ok && u.Reason() != "" {
			msg = u.Reason()
		}
		e.logger.Warn(msg, zap.String("format", format))
		return ""
	}

	text, err := c.Parse(data)
	if err != nil {
		e.logger.Error("failed to read document", zap.String("format", format), zap.Error(err))
		return ""
	}

	return text
}

// plainText decodes bytes as UTF-8, falling back to ISO-8859-1 when the
// content is not valid UTF-8. The fallback cannot fail; worst case the
// output contains garbled characters.
func plainText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}

	return string(decoded)
}
