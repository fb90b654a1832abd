package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/injazapp/injaz/internal/logger"
)

type jsonDoc struct {
	Version int                        `json:"version"`
	Data    map[string]json.RawMessage `json:"data"`
}

// JSONKV is a keyed record store backed by a single JSON document on disk.
type JSONKV struct {
	path string
	doc  *jsonDoc
}

func NewJSONKV(path string) *JSONKV {
	return &JSONKV{path: path}
}

func (s *JSONKV) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &jsonDoc{
		Version: 1,
		Data:    make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *JSONKV) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'injaz init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &jsonDoc{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.doc.Data == nil {
		s.doc.Data = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONKV) Close() error {
	return nil
}

func (s *JSONKV) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONKV) Read(key string, out any) (bool, error) {
	if s.doc == nil {
		return false, fmt.Errorf("storage not loaded")
	}

	raw, ok := s.doc.Data[key]
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		logger.Warn("corrupt stored record, falling back to default", "key", key, "error", err)
		return false, nil
	}

	return true, nil
}

func (s *JSONKV) Write(key string, v any) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize record %q: %w", key, err)
	}

	s.doc.Data[key] = raw
	return s.save()
}

func (s *JSONKV) List() (map[string]json.RawMessage, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	out := make(map[string]json.RawMessage, len(s.doc.Data))
	for k, v := range s.doc.Data {
		out[k] = v
	}
	return out, nil
}

func (s *JSONKV) Replace(data map[string]json.RawMessage) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.doc.Data = make(map[string]json.RawMessage, len(data))
	for k, v := range data {
		s.doc.Data[k] = v
	}
	return s.save()
}

func (s *JSONKV) Wipe() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.doc.Data = make(map[string]json.RawMessage)
	return s.save()
}

// Path returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONKV is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple injaz processes that share the same storage path at
//     the same time is not supported; last write wins.
func (s *JSONKV) Path() string {
	return s.path
}
