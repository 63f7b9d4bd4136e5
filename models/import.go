package models

// LowConfidenceThreshold is the minimum number of recognized fields below
// which an import is reported as low confidence.
const LowConfidenceThreshold = 3

// ImportResult is returned after a document was extracted and parsed.
type ImportResult struct {
	Parsed ParsedContractData `json:"parsed"`
	// Form is the review form pre-filled from Parsed. Unrecognized fields
	// are left empty for manual entry.
	Form          ContractForm       `json:"form"`
	FieldCount    int                `json:"field_count"`
	LowConfidence bool               `json:"low_confidence"`
	Extraction    ExtractionMetadata `json:"extraction"`
	Method        ExtractionMethod   `json:"method"`
}

// ContractSubmission is a reviewed form plus everything the submission flow
// needs around it.
type ContractSubmission struct {
	UserID    string
	SessionID string
	Form      ContractForm
	// ConfirmConflict acknowledges an active contract on the same address.
	ConfirmConflict bool
	// Document is the optional source PDF to attach after creation.
	Document *UploadedFile
}

// SubmissionResult reports a submission. Creation succeeded whenever it is
// returned without error; a failed document attach is reported in Warning.
type SubmissionResult struct {
	Creation         ContractCreationResult `json:"creation"`
	Conflict         *ActiveContractSummary `json:"conflict,omitempty"`
	DocumentAttached bool                   `json:"document_attached"`
	Document         *ContractDocument      `json:"document,omitempty"`
	Warning          string                 `json:"warning,omitempty"`
}
