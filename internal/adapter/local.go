// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/MKhiriev/go-emlak-keeper/internal/config"
	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/models"
	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeEPUB = "application/epub+zip"
)

type localExtractor struct {
	logger *logger.Logger
}

// NewLocalExtractor returns a [DocumentExtractor] that reads text in-process.
// It handles digitally produced PDF, DOCX and EPUB files and never applies OCR,
// so scanned PDFs yield [ErrEmptyExtraction].
func NewLocalExtractor(logger *logger.Logger) DocumentExtractor {
	return &localExtractor{logger: logger}
}

// NewDocumentExtractor picks the remote adapter when an extraction URL is
// configured and the local extractor otherwise.
func NewDocumentExtractor(cfg config.Adapter, logger *logger.Logger) (DocumentExtractor, error) {
	if strings.TrimSpace(cfg.ExtractionURL) == "" {
		logger.Info().Str("func", "adapter.NewDocumentExtractor").Msg("no extraction url configured, using local extractor")
		return NewLocalExtractor(logger), nil
	}
	return NewHTTPExtractionAdapter(cfg, logger)
}

// Extract implements [DocumentExtractor].
func (l *localExtractor) Extract(ctx context.Context, file models.UploadedFile) (models.ExtractionResult, error) {
	if err := ctx.Err(); err != nil {
		return models.ExtractionResult{}, err
	}
	started := time.Now()

	detected := mimetype.Detect(file.Data)

	var (
		text   string
		method models.ExtractionMethod
		err    error
	)
	switch {
	case detected.Is(mimePDF):
		method = models.ExtractionLocalPDF
		text, err = pdfText(file.Data)
	case detected.Is(mimeDOCX):
		method = models.ExtractionLocalDOCX
		text, err = docxText(file.Data)
	case detected.Is(mimeEPUB):
		method = models.ExtractionDigital
		text, err = epubText(file.Data)
	default:
		return models.ExtractionResult{}, fmt.Errorf("%w: %s", ErrUnsupportedDocument, detected.String())
	}
	if err != nil {
		l.logger.Err(err).Str("func", "localExtractor.Extract").Str("file", file.Name).Msg("local extraction failed")
		return models.ExtractionResult{}, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	meta := models.ExtractionMetadata{
		Filename: file.Name,
		FileSize: int64(len(file.Data)),
		FileType: detected.String(),
	}
	return finalizeResult(file, text, nil, method, meta, started)
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	raw, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	if strings.TrimSpace(string(raw)) != "" {
		return string(raw), nil
	}

	// some generators only expose text through positioned rows
	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
				b.WriteString(" ")
			}
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

func docxText(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	for _, f := range archive.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open document.xml: %w", err)
		}
		defer rc.Close()
		return markupText(xml.NewDecoder(rc), docxBreaks, map[string]bool{"t": true})
	}
	return "", errors.New("docx: word/document.xml not found")
}

func epubText(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open epub: %w", err)
	}

	var b strings.Builder
	for _, f := range archive.File {
		switch strings.ToLower(path.Ext(f.Name)) {
		case ".xhtml", ".html", ".htm":
		default:
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open %s: %w", f.Name, err)
		}
		dec := xml.NewDecoder(rc)
		dec.Strict = false
		dec.AutoClose = xml.HTMLAutoClose
		dec.Entity = xml.HTMLEntity
		text, err := markupText(dec, htmlBreaks, nil)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read %s: %w", f.Name, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

var (
	docxBreaks = map[string]bool{"p": true, "br": true}
	htmlBreaks = map[string]bool{"p": true, "br": true, "div": true, "li": true, "tr": true, "h1": true, "h2": true, "h3": true, "h4": true}
)

// markupText collects character data from an XML stream. When textElems is
// non-nil only data inside those elements is kept. A newline is written at
// the end of every element named in breaks.
func markupText(dec *xml.Decoder, breaks, textElems map[string]bool) (string, error) {
	var (
		b      strings.Builder
		inText int
		skip   int
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch name := strings.ToLower(t.Name.Local); {
			case name == "script" || name == "style":
				skip++
			case textElems[name]:
				inText++
			}
		case xml.EndElement:
			name := strings.ToLower(t.Name.Local)
			switch {
			case name == "script" || name == "style":
				skip--
			case textElems[name]:
				inText--
			}
			if breaks[name] {
				b.WriteString("\n")
			}
		case xml.CharData:
			if skip > 0 || (textElems != nil && inText == 0) {
				continue
			}
			b.Write(t)
		}
	}
	return b.String(), nil
}
