package document

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubCapability struct {
	text  string
	err   error
	calls int
}

func (s *stubCapability) Available() bool { return true }

func (s *stubCapability) Parse([]byte) (string, error) {
	s.calls++
	return s.text, s.err
}

func newObservedExtractor(pdf, docx Capability) (*Extractor, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return New(pdf, docx, zap.New(core)), logs
}

func TestExtractDispatchesByExtension(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		expected string
	}{
		{name: "pdf", filename: "resume.pdf", expected: "pdf text"},
		{name: "pdf uppercase", filename: "RESUME.PDF", expected: "pdf text"},
		{name: "docx", filename: "resume.docx", expected: "docx text"},
		{name: "docx mixed case", filename: "Resume.DocX", expected: "docx text"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pdf := &stubCapability{text: "pdf text"}
			docx := &stubCapability{text: "docx text"}
			e, _ := newObservedExtractor(pdf, docx)

			got := e.Extract(bytes.NewReader([]byte("raw")), tc.filename)
			if got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}

			if pdf.calls+docx.calls != 1 {
				t.Fatalf("expected exactly one capability call, got pdf=%d docx=%d", pdf.calls, docx.calls)
			}
		})
	}
}

func TestExtractUnknownExtensionTakesPlainTextPath(t *testing.T) {
	pdf := &stubCapability{text: "pdf text"}
	docx := &stubCapability{text: "docx text"}
	e, _ := newObservedExtractor(pdf, docx)

	for _, filename := range []string{"notes.txt", "resume.md", "no-extension", ""} {
		got := e.Extract(bytes.NewReader([]byte("plain content")), filename)
		if got != "plain content" {
			t.Fatalf("filename %q: expected plain content, got %q", filename, got)
		}
	}

	if pdf.calls != 0 || docx.calls != 0 {
		t.Fatalf("capabilities must not be consulted for plain text")
	}
}

func TestExtractPlainTextLatin1Fallback(t *testing.T) {
	e, _ := newObservedExtractor(&stubCapability{}, &stubCapability{})

	// "café" in ISO-8859-1 is not valid UTF-8.
	got := e.Extract(bytes.NewReader([]byte{'c', 'a', 'f', 0xE9}), "notes.txt")

	if got != "café" {
		t.Fatalf("expected latin-1 fallback to produce %q, got %q", "café", got)
	}
}

func TestExtractRestoresReadPosition(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		pdf      Capability
	}{
		{name: "plain text", filename: "notes.txt", pdf: &stubCapability{}},
		{name: "pdf success", filename: "resume.pdf", pdf: &stubCapability{text: "ok"}},
		{name: "pdf failure", filename: "resume.pdf", pdf: &stubCapability{err: errors.New("corrupt")}},
		{name: "pdf unavailable", filename: "resume.pdf", pdf: Unavailable("pdf parser missing")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, _ := newObservedExtractor(tc.pdf, &stubCapability{})
			reader := bytes.NewReader([]byte("same bytes"))

			first := e.Extract(reader, tc.filename)

			pos, err := reader.Seek(0, io.SeekCurrent)
			if err != nil {
				t.Fatal(err)
			}
			if pos != 0 {
				t.Fatalf("expected read position restored to 0, got %d", pos)
			}

			if second := e.Extract(reader, tc.filename); second != first {
				t.Fatalf("re-extraction differs: %q vs %q", first, second)
			}
		})
	}
}

func TestExtractUnavailableCapabilityWarnsOnce(t *testing.T) {
	e, logs := newObservedExtractor(Unavailable("pdf parser is not available; cannot read PDF"), &stubCapability{})

	got := e.Extract(bytes.NewReader([]byte("%PDF-1.4 pretend")), "resume.pdf")

	if got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}

	warnings := logs.FilterLevelExact(zapcore.WarnLevel)
	if warnings.Len() != 1 {
		t.Fatalf("expected exactly one warning, got %d", warnings.Len())
	}

	if msg := warnings.All()[0].Message; msg != "pdf parser is not available; cannot read PDF" {
		t.Fatalf("unexpected warning message: %q", msg)
	}
}

func TestExtractParseFailureDegradesToEmpty(t *testing.T) {
	docx := &stubCapability{err: errors.New("mangled archive")}
	e, logs := newObservedExtractor(&stubCapability{}, docx)

	got := e.Extract(bytes.NewReader([]byte("garbage")), "resume.docx")

	if got != "" {
		t.Fatalf("expected empty text on parse failure, got %q", got)
	}

	if errs := logs.FilterLevelExact(zapcore.ErrorLevel); errs.Len() != 1 {
		t.Fatalf("expected exactly one error diagnostic, got %d", errs.Len())
	}
}

func TestPDFCapabilityRejectsGarbage(t *testing.T) {
	if _, err := PDF().Parse([]byte("this is not a pdf")); err == nil {
		t.Fatal("expected error for non-pdf bytes")
	}
}

func TestDocxCapabilityRejectsGarbage(t *testing.T) {
	if _, err := Docx().Parse([]byte("this is not a zip archive")); err == nil {
		t.Fatal("expected error for non-docx bytes")
	}
}

func TestDocxParagraphs(t *testing.T) {
	content := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>
    <w:p><w:r><w:t>   </w:t></w:r></w:p>
    <w:p><w:r><w:t>Second</w:t></w:r><w:r><w:t> paragraph</w:t></w:r></w:p>
    <w:p></w:p>
  </w:body>
</w:document>`

	got := docxParagraphs(content)

	expected := "First paragraph\nSecond paragraph"
	if got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

func TestUnavailableCapability(t *testing.T) {
	c := Unavailable("docx parser missing")

	if c.Available() {
		t.Fatal("expected unavailable capability")
	}

	if _, err := c.Parse([]byte("anything")); err == nil {
		t.Fatal("expected parse to abstain with an error")
	}
}
