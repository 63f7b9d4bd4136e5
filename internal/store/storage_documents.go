package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

// fileDocumentStorage keeps attached documents on the local filesystem under
// root/<user>/<contract>/<id><ext>.
type fileDocumentStorage struct {
	root   string
	ids    utils.IDGenerator
	logger *logger.Logger
}

// NewFileDocumentStorage stores documents under root as
// <user>/<contract>/<id><ext>, where ext is the lower-cased extension of the
// uploaded name. root is created when missing.
func NewFileDocumentStorage(root string, ids utils.IDGenerator, logger *logger.Logger) (DocumentStorage, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("error creating documents dir: %w", err)
	}
	logger.Debug().Str("root", root).Msg("creating file document storage")

	return &fileDocumentStorage{
		root:   root,
		ids:    ids,
		logger: logger,
	}, nil
}

// Save writes the file to a temporary name first and renames it into place,
// so a partially written document is never visible under its final path.
func (s *fileDocumentStorage) Save(ctx context.Context, userID, contractID string, file models.UploadedFile) (string, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	rel, err := documentPath(userID, contractID, s.ids.Generate(), file.Name)
	if err != nil {
		return "", err
	}
	full := filepath.Join(s.root, filepath.FromSlash(rel))

	if err = os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		log.Err(err).Str("func", "*fileDocumentStorage.Save").Msg("error creating document dir")
		return "", fmt.Errorf("error creating document dir: %w", err)
	}

	tmp := full + ".part"
	if err = os.WriteFile(tmp, file.Data, 0o640); err != nil {
		log.Err(err).Str("func", "*fileDocumentStorage.Save").Msg("error writing document")
		return "", fmt.Errorf("error writing document: %w", err)
	}
	if err = os.Rename(tmp, full); err != nil {
		_ = os.Remove(tmp)
		log.Err(err).Str("func", "*fileDocumentStorage.Save").Msg("error moving document into place")
		return "", fmt.Errorf("error writing document: %w", err)
	}

	return rel, nil
}

func (s *fileDocumentStorage) Delete(ctx context.Context, rel string) error {
	if !filepath.IsLocal(filepath.FromSlash(rel)) {
		return ErrInvalidDocumentPath
	}

	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(rel)))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrDocumentNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileDocumentStorage.Delete").Msg("error removing document")
		return fmt.Errorf("error removing document: %w", err)
	}

	return nil
}

// documentPath builds the slash-separated relative path of a new document.
func documentPath(userID, contractID, id, fileName string) (string, error) {
	ext := strings.ToLower(path.Ext(fileName))
	rel := path.Join(userID, contractID, id+ext)

	if userID == "" || contractID == "" || !filepath.IsLocal(filepath.FromSlash(rel)) ||
		strings.Count(rel, "/") != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDocumentPath, rel)
	}

	return rel, nil
}

// memoryDocumentStorage is used when no documents directory is configured.
type memoryDocumentStorage struct {
	mu    sync.Mutex
	ids   utils.IDGenerator
	files map[string][]byte
}

// NewMemoryDocumentStorage keeps document bodies in process.
func NewMemoryDocumentStorage(ids utils.IDGenerator) DocumentStorage {
	return &memoryDocumentStorage{
		ids:   ids,
		files: make(map[string][]byte),
	}
}

func (s *memoryDocumentStorage) Save(ctx context.Context, userID, contractID string, file models.UploadedFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rel, err := documentPath(userID, contractID, s.ids.Generate(), file.Name)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[rel] = append([]byte(nil), file.Data...)

	return rel, nil
}

func (s *memoryDocumentStorage) Delete(ctx context.Context, rel string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[rel]; !ok {
		return ErrDocumentNotFound
	}
	delete(s.files, rel)

	return nil
}
