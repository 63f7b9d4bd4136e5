package validators

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-emlak-keeper/models"
	"github.com/gabriel-vasile/mimetype"
)

// Document kinds accepted by upload validators.
var (
	DocumentPDF  = DocumentType{Extension: ".pdf", MIME: "application/pdf"}
	DocumentDOCX = DocumentType{Extension: ".docx", MIME: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"}
	DocumentEPUB = DocumentType{Extension: ".epub", MIME: "application/epub+zip"}
)

// DocumentType pairs a file extension with the MIME type sniffed from content.
type DocumentType struct {
	Extension string
	MIME      string
}

// UploadValidator checks an uploaded file against a size limit and a type
// allow-list. The type is sniffed from content; the extension is only trusted
// for container formats the sniffer reports as a plain zip archive.
type UploadValidator struct {
	maxBytes int64
	allowed  []DocumentType
}

// NewUploadValidator returns a validator for models.UploadedFile. A maxBytes
// of zero disables the size check.
func NewUploadValidator(maxBytes int64, allowed ...DocumentType) Validator {
	return &UploadValidator{maxBytes: maxBytes, allowed: allowed}
}

// NewContractUploadValidator accepts PDF and DOCX contracts.
func NewContractUploadValidator(maxBytes int64) Validator {
	return NewUploadValidator(maxBytes, DocumentPDF, DocumentDOCX)
}

// NewExtractionUploadValidator accepts everything the standalone extractor
// reads: PDF, DOCX and EPUB.
func NewExtractionUploadValidator(maxBytes int64) Validator {
	return NewUploadValidator(maxBytes, DocumentPDF, DocumentDOCX, DocumentEPUB)
}

// NewPDFUploadValidator accepts only PDF, for documents attached to contracts.
func NewPDFUploadValidator(maxBytes int64) Validator {
	return NewUploadValidator(maxBytes, DocumentPDF)
}

// Validate accepts a [models.UploadedFile] or a pointer to one.
func (v *UploadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadedFile:
		return v.validateFile(value)
	case *models.UploadedFile:
		return v.validateFile(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *UploadValidator) validateFile(file models.UploadedFile) error {
	size := int64(len(file.Data))
	if file.Size > size {
		size = file.Size
	}
	if size == 0 {
		return ErrEmptyFile
	}
	if v.maxBytes > 0 && size > v.maxBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, size, v.maxBytes)
	}

	detected := mimetype.Detect(file.Data)
	ext := strings.ToLower(filepath.Ext(file.Name))
	for _, t := range v.allowed {
		if detected.Is(t.MIME) {
			return nil
		}
		if ext == t.Extension && detected.Is("application/zip") && t != DocumentPDF {
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrUnsupportedFileType, detected.String())
}
