package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeStore(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write store file: %v", err)
	}
	return path
}

func TestCreateSnapshotsJSONStore(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir, "injaz.json", `{"version":1,"data":{}}`)

	mgr := NewManager(store)
	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	if !strings.HasPrefix(filepath.Base(path), BackupFilePrefix) {
		t.Errorf("expected backup name to start with %q, got %q", BackupFilePrefix, filepath.Base(path))
	}
	if !strings.HasSuffix(path, ".json") {
		t.Errorf("expected .json suffix for a JSON store, got %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != `{"version":1,"data":{}}` {
		t.Errorf("backup content differs from store: %q", data)
	}
}

func TestCreateFailsForMissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := mgr.Create(); err == nil {
		t.Fatal("expected create to fail when the store does not exist")
	}
}

func TestListReturnsNewestFirst(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir, "injaz.json", "{}")
	mgr := NewManager(store)

	// Seed snapshots with distinct timestamps directly.
	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	for _, name := range []string{"injaz-20260301-0900.json", "injaz-20260302-0900.json"} {
		if err := os.WriteFile(filepath.Join(mgr.BackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatalf("failed to seed backup: %v", err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected 2 backups, got %d", len(backups))
	}
	if !backups[0].Timestamp.After(backups[1].Timestamp) {
		t.Error("expected newest backup first")
	}
}

func TestListIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir, "injaz.json", "{}")
	mgr := NewManager(store)

	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	for _, name := range []string{"notes.txt", "other-20260301-0900.json", "injaz-garbage.json"} {
		if err := os.WriteFile(filepath.Join(mgr.BackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected foreign files ignored, got %d entries", len(backups))
	}
}

func TestRotateKeepsRetentionLimit(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir, "injaz.json", "{}")
	mgr := NewManager(store)

	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	// Seed a full retention window; a new Create should rotate the oldest out.
	for i := 0; i < MaxBackups; i++ {
		name := fmt.Sprintf("injaz-202602%02d-0900.json", i+1)
		if err := os.WriteFile(filepath.Join(mgr.BackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatalf("failed to seed backup: %v", err)
		}
	}

	if _, err := mgr.Create(); err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", MaxBackups, len(backups))
	}
}

func TestRestoreReplacesStoreAndKeepsSafetyCopy(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir, "injaz.json", `{"current":true}`)
	mgr := NewManager(store)

	backupPath := filepath.Join(dir, "old-backup.json")
	if err := os.WriteFile(backupPath, []byte(`{"restored":true}`), 0600); err != nil {
		t.Fatalf("failed to write backup: %v", err)
	}

	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("failed to restore: %v", err)
	}

	data, err := os.ReadFile(store)
	if err != nil {
		t.Fatalf("failed to read store: %v", err)
	}
	if string(data) != `{"restored":true}` {
		t.Errorf("expected restored content, got %q", data)
	}

	// The pre-restore store must have been snapshotted.
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 safety snapshot, got %d", len(backups))
	}
	safety, err := os.ReadFile(backups[0].Path)
	if err != nil {
		t.Fatalf("failed to read safety snapshot: %v", err)
	}
	if string(safety) != `{"current":true}` {
		t.Errorf("expected safety snapshot of the pre-restore store, got %q", safety)
	}
}

func TestRestoreRejectsCorruptBackup(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir, "injaz.json", "{}")
	mgr := NewManager(store)

	badPath := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(badPath, []byte("not json at all"), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if err := mgr.Restore(badPath); err == nil {
		t.Fatal("expected restore to reject a corrupt backup")
	}
}
