package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileStore handles uploaded artifacts under a single configured root.
// All operations report failures as return values; nothing here panics
// past the caller.
type FileStore struct {
	root    string
	allowed map[string]bool
}

func NewFileStore(root string, allowedExtensions []string) *FileStore {
	allowed := make(map[string]bool, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		allowed[strings.ToLower(strings.TrimSpace(ext))] = true
	}
	return &FileStore{root: root, allowed: allowed}
}

func (s *FileStore) Root() string {
	return s.root
}

// Allowed checks the filename extension against the allow-list,
// case insensitively. Files without an extension are rejected.
func (s *FileStore) Allowed(filename string) bool {
	i := strings.LastIndex(filename, ".")
	if i < 0 || i == len(filename)-1 {
		return false
	}
	return s.allowed[strings.ToLower(filename[i+1:])]
}

// Sanitize strips path components, separators and control characters
// from an uploaded filename. Returns "" when nothing usable remains.
func (s *FileStore) Sanitize(filename string) string {
	filename = filepath.Base(filename)
	if i := strings.LastIndexByte(filename, '\\'); i >= 0 {
		filename = filename[i+1:]
	}

	var b strings.Builder
	for _, r := range filename {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}

	out := b.String()
	if out == "." || out == ".." {
		return ""
	}
	return out
}

// Save writes the artifact under the root and returns its on-disk path.
func (s *FileStore) Save(name string, src io.Reader) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(s.root, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

func (s *FileStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (s *FileStore) IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (s *FileStore) Remove(path string) error {
	return os.Remove(path)
}
