package document

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

type docxCapability struct{}

// Docx returns the capability for parsing DOCX documents.
func Docx() Capability {
	return docxCapability{}
}

func (docxCapability) Available() bool { return true }

func (docxCapability) Parse(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()

	return docxParagraphs(doc.Editable().GetContent()), nil
}

// docxParagraphs pulls paragraph text out of the word/document.xml payload.
// The docx library exposes only the raw XML, so text runs (w:t) are collected
// per paragraph (w:p) and non-blank paragraphs are joined with newlines.
func docxParagraphs(content string) string {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if text := strings.TrimSpace(current.String()); text != "" {
					paragraphs = append(paragraphs, text)
				}
				current.Reset()
			}
		}
	}

	return strings.Join(paragraphs, "\n")
}
