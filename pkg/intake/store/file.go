package store

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// FileStore persists the key-value map as a TOML file. Every mutation
// rewrites the file atomically (temp file + rename) so a power cut mid-write
// cannot leave a torn file behind.
type FileStore struct {
	path string

	mu   sync.Mutex
	data map[string]string
}

// Open loads the store file at path, creating parent directories as needed.
// A missing file yields an empty store; it is created on the first Set.
func Open(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("store: create dir: %w", err)
	}

	fs := &FileStore{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(raw, &fs.data); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", path, err)
	}
	return fs, nil
}

func (f *FileStore) Get(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.data[key] = value
	return f.flushLocked()
}

func (f *FileStore) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.data, key)
	return f.flushLocked()
}

func (f *FileStore) flushLocked() error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f.data); err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("store: rename: %w", err)
	}
	return nil
}

// EncodeArtifact encodes a captured media artifact for storage, using the
// same data-URL shape the browser build of this wizard produced.
func EncodeArtifact(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeArtifact reverses EncodeArtifact, returning the mime type and bytes.
func DecodeArtifact(value string) (string, []byte, error) {
	if !strings.HasPrefix(value, "data:") {
		return "", nil, fmt.Errorf("store: not an artifact value")
	}
	rest := strings.TrimPrefix(value, "data:")
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", nil, fmt.Errorf("store: malformed artifact value")
	}
	mime := rest[:sep]
	data, err := base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return "", nil, fmt.Errorf("store: decode artifact: %w", err)
	}
	return mime, data, nil
}
