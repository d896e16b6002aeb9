package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"finpulse/internal/domain/ports"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// JSONStore writes artifacts as indented UTF-8 JSON.
type JSONStore struct {
	logger ports.Logger
}

var _ ports.ArtifactStore = (*JSONStore)(nil)

// NewJSONStore creates a JSONStore.
func NewJSONStore(logger ports.Logger) *JSONStore {
	return &JSONStore{logger: logger}
}

// Write replaces the file at path with the JSON form of value, creating the parent directory if needed.
// The write is not atomic; a crash mid-write can leave a truncated file until the next run.
func (s *JSONStore) Write(ctx context.Context, path string, value any) error {
	data, err := Marshal(value)
	if err != nil {
		return fmt.Errorf("encode artifact %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create artifact directory: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}

	if s.logger != nil {
		s.logger.Info(ctx, "artifact written", "path", path, "bytes", len(data))
	}
	return nil
}

// Marshal encodes value with two-space indentation, leaving non-ASCII and HTML characters literal.
func Marshal(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Read decodes the artifact at path into dst.
func (s *JSONStore) Read(_ context.Context, path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read artifact %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode artifact %s: %w", path, err)
	}
	return nil
}
