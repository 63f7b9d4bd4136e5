package models

import (
	"bytes"
	"io"
	"time"
)

// UploadedFile is a file received from a client, already read into memory.
type UploadedFile struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// Reader returns a fresh reader over the file content.
func (f UploadedFile) Reader() io.Reader {
	return bytes.NewReader(f.Data)
}

// ContractDocument links a stored source document to a contract.
type ContractDocument struct {
	ID          string    `json:"id"`
	ContractID  string    `json:"contract_id"`
	UserID      string    `json:"user_id"`
	Path        string    `json:"path"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
