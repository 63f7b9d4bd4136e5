package models

// ExtractionMethod names the path the extractor took to obtain text.
type ExtractionMethod string

const (
	ExtractionDigital     ExtractionMethod = "DIGITAL_EXTRACTION"
	ExtractionOCRFallback ExtractionMethod = "OCR_FALLBACK"
	ExtractionLocalPDF    ExtractionMethod = "LOCAL_PDF"
	ExtractionLocalDOCX   ExtractionMethod = "LOCAL_DOCX"
)

// ExtractionMetadata is diagnostic information reported by the extractor.
type ExtractionMetadata struct {
	Filename       string  `json:"filename"`
	FileSize       int64   `json:"fileSize"`
	FileType       string  `json:"fileType"`
	ExtractionTime float64 `json:"extractionTime"`
	TextLength     int     `json:"textLength"`
	OCRApplied     bool    `json:"ocrApplied"`
}

// ExtractionResult is the normalized output of a text extraction.
type ExtractionResult struct {
	Text       string             `json:"text"`
	TokenCount *int               `json:"token_count,omitempty"`
	Method     ExtractionMethod   `json:"method"`
	Metadata   ExtractionMetadata `json:"metadata"`
}
