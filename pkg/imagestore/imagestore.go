package imagestore

import (
	"encoding/base64"
	"errors"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix marks files owned by the store. Only URLs under this prefix are
// ever deleted; anything else is treated as an external reference.
const URLPrefix = "/static/uploads/"

var ErrInvalidDataURI = errors.New("image payload is not a data URI")

// Store persists inline-encoded images as files under an uploads directory.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save decodes a data-URI payload and writes it under a unique filename.
// It returns the relative URL of the stored file.
func (s *Store) Save(dataURI string) (string, error) {
	_, payload, ok := strings.Cut(dataURI, ",")
	if !ok {
		return "", ErrInvalidDataURI
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", err
	}
	name := strings.ReplaceAll(uuid.New().String(), "-", "") + ".jpg"
	if err := os.WriteFile(filepath.Join(s.dir, name), raw, 0o644); err != nil {
		return "", err
	}
	return URLPrefix + name, nil
}

// Managed reports whether url points at a file owned by this store.
func (s *Store) Managed(url string) bool {
	return strings.HasPrefix(url, URLPrefix)
}

// Delete removes a managed file. Best effort: unmanaged URLs are ignored and
// filesystem errors are logged, never returned.
func (s *Store) Delete(url string) {
	if !s.Managed(url) {
		return
	}
	name := path.Base(url)
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		log.Printf("imagestore: failed to delete %s: %v", name, err)
	}
}
