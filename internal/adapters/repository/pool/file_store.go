// Package pool persists the candidate pool as a JSON document mapping
// address (or content hash) to ABI. Document key order is significant: role
// assignment is greedy over it, so the store round-trips insertion order
// instead of leaning on Go maps.
package pool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/protoscout-org/protoscout/internal/config"
	"github.com/protoscout-org/protoscout/internal/domain"
	"github.com/protoscout-org/protoscout/internal/usecase"
)

// FileStore reads and writes the pool document on disk.
type FileStore struct {
	path string
	log  *slog.Logger
}

// NewFileStore creates a pool store for the configured pool path.
func NewFileStore(cfg *config.RuntimeConfig, log *slog.Logger) *FileStore {
	return &FileStore{path: cfg.PoolPath, log: log}
}

// LoadPool reads the pool document. A missing file is an empty pool.
func (s *FileStore) LoadPool(ctx context.Context) (*domain.Pool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("pool file absent, starting empty", "path", s.path)
			return domain.NewPool(), nil
		}
		return nil, err
	}
	return ParsePool(data)
}

// ParsePool decodes a pool document preserving its key order.
func ParsePool(data []byte) (*domain.Pool, error) {
	pool := domain.NewPool()

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("reading pool document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("pool document must be a JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in pool document", keyTok)
		}
		var abi domain.ABI
		if err := dec.Decode(&abi); err != nil {
			return nil, fmt.Errorf("decoding ABI for %s: %w", key, err)
		}
		pool.Add(key, abi)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return pool, nil
}

// SavePool writes the pool document atomically, keys in pool order.
func (s *FileStore) SavePool(ctx context.Context, pool *domain.Pool) error {
	data, err := MarshalPool(pool)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating pool directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".pool-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// MarshalPool serializes the pool with keys in insertion order.
func MarshalPool(pool *domain.Pool) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range pool.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		abi, _ := pool.Get(key)
		abiJSON, err := json.Marshal(abi)
		if err != nil {
			return nil, fmt.Errorf("serializing ABI for %s: %w", key, err)
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(abiJSON)
	}
	buf.WriteByte('}')

	var indented bytes.Buffer
	if err := json.Indent(&indented, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	indented.WriteByte('\n')
	return indented.Bytes(), nil
}

var _ usecase.PoolRepository = (*FileStore)(nil)
