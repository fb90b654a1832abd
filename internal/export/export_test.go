package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/injazapp/injaz/internal/storage"
)

func setupKV(t *testing.T) storage.KV {
	t.Helper()
	kv := storage.NewJSONKV(filepath.Join(t.TempDir(), "injaz.json"))
	if err := kv.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	return kv
}

func TestExportWipeImportIsByteIdentical(t *testing.T) {
	kv := setupKV(t)

	// Seed values with deliberate formatting quirks so any re-encoding on the
	// way through would show up.
	seed := map[string]json.RawMessage{
		storage.KeyProfile: json.RawMessage(`{"name":"يا بطل","streak":5,"last_completed_date":"2026-03-10"}`),
		storage.KeyTasbeeh: json.RawMessage(`{"2026-03-10":{"date":"2026-03-10","count":33}}`),
		storage.KeyBudget:  json.RawMessage(`{"start_date":"2026-03-01","amount":500.50}`),
	}
	if err := kv.Replace(seed); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	path := filepath.Join(t.TempDir(), "export.json")
	if err := Export(kv, path); err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	if err := kv.Wipe(); err != nil {
		t.Fatalf("failed to wipe: %v", err)
	}
	if err := Import(kv, path); err != nil {
		t.Fatalf("failed to import: %v", err)
	}

	restored, err := kv.List()
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(restored) != len(seed) {
		t.Fatalf("expected %d keys, got %d", len(seed), len(restored))
	}
	for key, want := range seed {
		got, ok := restored[key]
		if !ok {
			t.Errorf("key %q missing after round trip", key)
			continue
		}
		if !bytes.Equal(got, want) {
			t.Errorf("value for %q changed:\n  want %s\n  got  %s", key, want, got)
		}
	}
}

func TestImportMalformedFileWritesNothing(t *testing.T) {
	kv := setupKV(t)
	if err := kv.Write("keep", "me"); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"version": 1, "data": {`), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if err := Import(kv, path); err == nil {
		t.Fatal("expected import to fail for a malformed document")
	}

	var s string
	if found, _ := kv.Read("keep", &s); !found || s != "me" {
		t.Errorf("existing data must survive a failed import, found=%v s=%q", found, s)
	}
}

func TestParseRejectsMissingData(t *testing.T) {
	if _, err := Parse([]byte(`{"version": 1}`)); err == nil {
		t.Fatal("expected validation to reject a document without data")
	}
}

func TestParseRejectsNewerVersion(t *testing.T) {
	if _, err := Parse([]byte(`{"version": 99, "data": {}}`)); err == nil {
		t.Fatal("expected rejection of a newer document version")
	}
}

func TestExportedDocumentCarriesVersion(t *testing.T) {
	kv := setupKV(t)
	path := filepath.Join(t.TempDir(), "export.json")
	if err := Export(kv, path); err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	doc, err := Parse(raw)
	if err != nil {
		t.Fatalf("exported document failed to parse: %v", err)
	}
	if doc.Version != DocumentVersion {
		t.Errorf("expected version %d, got %d", DocumentVersion, doc.Version)
	}
	if doc.ExportedAt == "" {
		t.Error("expected an export timestamp")
	}
}
