package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/topgg-sampler/internal/core/domain"
	"github.com/custodia-labs/topgg-sampler/internal/core/ports/driven"
)

// Ensure SampleStore implements the interface.
var _ driven.SampleStore = (*SampleStore)(nil)

// DefaultPath is where samples are exported when no path is configured.
const DefaultPath = "data/servers.json"

// SampleStore writes each sample to a single JSON file.
type SampleStore struct {
	path string
}

// NewSampleStore creates a store writing to path.
// If path is empty, defaults to data/servers.json.
func NewSampleStore(path string) *SampleStore {
	if path == "" {
		path = DefaultPath
	}
	return &SampleStore{path: path}
}

// Save writes the sampled entities, replacing the previous export.
// The file is written to a temporary sibling and renamed into place.
func (s *SampleStore) Save(ctx context.Context, sample *domain.Sample) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sample == nil {
		return fmt.Errorf("%w: nil sample", domain.ErrInvalidInput)
	}

	entities := sample.Entities
	if entities == nil {
		entities = []domain.Entity{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entities); err != nil {
		return fmt.Errorf("encode sample: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".servers-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(buf.Bytes())
	closeErr := tmp.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write sample: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace export: %w", err)
	}

	return nil
}

// Load reads back an exported sample as a list of entities.
func (s *SampleStore) Load() ([]domain.Entity, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var entities []domain.Entity
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&entities); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}
	return entities, nil
}

// Location returns the export file path.
func (s *SampleStore) Location() string {
	return s.path
}
