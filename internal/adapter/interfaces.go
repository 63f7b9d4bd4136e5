// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the text extraction client used by the contract
// import pipeline.
//
// The primary abstraction is [DocumentExtractor]. Two implementations ship:
// a remote one that uploads the document to an extraction endpoint over HTTP
// ([NewHTTPExtractionAdapter]) and an in-process one that reads PDF and DOCX
// text directly ([NewLocalExtractor]).
//
// Error values defined in errors.go are mapped from HTTP status codes and
// error payloads by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic handling (e.g. [ErrEmptyExtraction] for documents without
// readable text, [ErrExtractionUnavailable] for network failures).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-emlak-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/document_extractor_mock.go -package=mock

// DocumentExtractor turns an uploaded document into plain text.
type DocumentExtractor interface {
	// Extract returns the text of file together with diagnostic metadata.
	// Whitespace-only output is reported as [ErrEmptyExtraction]. There is
	// no automatic retry.
	Extract(ctx context.Context, file models.UploadedFile) (models.ExtractionResult, error)
}
