// Package export serializes the entire storage namespace to a single JSON
// document and restores it. Import is whole-value replace, never a merge,
// and a document that fails to parse or validate aborts before any write.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/injazapp/injaz/internal/storage"
)

// DocumentVersion is the current backup document version.
const DocumentVersion = 1

// Document is the backup file shape. Data holds every namespace key verbatim
// so an export-wipe-import round trip reproduces byte-identical values.
type Document struct {
	Version    int                        `json:"version" validate:"required,min=1"`
	ExportedAt string                     `json:"exported_at"`
	Data       map[string]json.RawMessage `json:"data" validate:"required"`
}

var validate = validator.New()

// Export writes the full store to path.
func Export(kv storage.KV, path string) error {
	data, err := kv.List()
	if err != nil {
		return fmt.Errorf("failed to read store: %w", err)
	}

	doc := Document{
		Version:    DocumentVersion,
		ExportedAt: time.Now().Format(time.RFC3339),
		Data:       data,
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize backup: %w", err)
	}

	if err := os.WriteFile(path, out, 0600); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	return nil
}

// Import replaces the entire store with the document at path. The document
// is fully parsed and validated first; nothing is written on failure.
func Import(kv storage.KV, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	doc, err := Parse(raw)
	if err != nil {
		return err
	}

	if err := kv.Replace(doc.Data); err != nil {
		return fmt.Errorf("failed to import backup: %w", err)
	}

	return nil
}

// Parse decodes and validates a backup document.
func Parse(raw []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("malformed backup file: %w", err)
	}

	if err := validate.Struct(doc); err != nil {
		return Document{}, fmt.Errorf("invalid backup file: %w", err)
	}

	if doc.Version > DocumentVersion {
		return Document{}, fmt.Errorf("backup was created by a newer injaz version (document %d, supported %d)", doc.Version, DocumentVersion)
	}

	// Every stored value must itself be valid JSON; a single bad entry
	// aborts the whole import.
	for key, value := range doc.Data {
		if !json.Valid(value) {
			return Document{}, fmt.Errorf("invalid backup file: value for %q is not valid JSON", key)
		}
	}

	return doc, nil
}
