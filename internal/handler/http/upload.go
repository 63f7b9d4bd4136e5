package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/go-emlak-keeper/internal/validators"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

const (
	fileField = "file"
	formField = "form"

	// parts above this size are spooled to disk by ParseMultipartForm
	multipartMemory = 32 << 20
)

// readUpload reads the multipart part named field into memory.
func readUpload(r *http.Request, field string) (models.UploadedFile, error) {
	file, ok, err := readOptionalUpload(r, field)
	if err != nil {
		return models.UploadedFile{}, err
	}
	if !ok {
		return models.UploadedFile{}, ErrMissingFile
	}
	return file, nil
}

// readOptionalUpload is readUpload for parts that may be absent; ok reports
// whether the part was sent.
func readOptionalUpload(r *http.Request, field string) (models.UploadedFile, bool, error) {
	if err := parseMultipart(r); err != nil {
		return models.UploadedFile{}, false, err
	}

	part, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return models.UploadedFile{}, false, nil
	}
	if err != nil {
		return models.UploadedFile{}, false, fmt.Errorf("%w: %w", ErrMissingFile, err)
	}
	defer part.Close()

	data, err := io.ReadAll(part)
	if err != nil {
		return models.UploadedFile{}, false, err
	}

	return models.UploadedFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        int64(len(data)),
		Data:        data,
	}, true, nil
}

func parseMultipart(r *http.Request) error {
	if r.MultipartForm != nil {
		return nil
	}

	err := r.ParseMultipartForm(multipartMemory)
	if err == nil {
		return nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	if errors.Is(err, multipart.ErrMessageTooLarge) {
		return fmt.Errorf("%w: %w", validators.ErrFileTooLarge, err)
	}
	return fmt.Errorf("%w: %w", ErrMissingFile, err)
}
