// Package signature persists captured signature images to disk.
package signature

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store saves decoded signature PNGs under a base directory.
type Store struct {
	dir string
}

// NewStore creates the signature directory if missing.
func NewStore(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("signature dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create signature dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save decodes a base64 PNG (optionally a data URL with a comma-separated
// header) and writes it with a timestamped filename. Returns the filename.
func (s *Store) Save(data string) (string, error) {
	if i := strings.IndexByte(data, ','); i >= 0 {
		data = data[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("decode signature: %w", err)
	}

	filename := fmt.Sprintf("signature_%s.png", time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(s.dir, filename), raw, 0o644); err != nil {
		return "", fmt.Errorf("write signature: %w", err)
	}
	return filename, nil
}
