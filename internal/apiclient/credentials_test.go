package apiclient

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCredentialStoreMissingFileMeansUnauthenticated(t *testing.T) {
	store := NewCredentialStore(filepath.Join(t.TempDir(), "credentials.yaml"))

	code, err := store.AccessCode()
	if err != nil {
		t.Fatalf("AccessCode on missing file: %v", err)
	}
	if code != "" {
		t.Fatalf("code = %q, want empty", code)
	}

	// Clearing when nothing is stored must not create the file.
	if err := store.ClearAccessCode(); err != nil {
		t.Fatalf("ClearAccessCode: %v", err)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Fatal("clear on an empty store created the credentials file")
	}
}

func TestCredentialStoreRoundTrip(t *testing.T) {
	store := NewCredentialStore(filepath.Join(t.TempDir(), "nested", "credentials.yaml"))

	if err := store.SaveServerURL("https://practice.example.org"); err != nil {
		t.Fatalf("SaveServerURL: %v", err)
	}
	if err := store.SaveAccessCode("  BSTP-AAAA-BBBB-CCCC  "); err != nil {
		t.Fatalf("SaveAccessCode: %v", err)
	}

	code, err := store.AccessCode()
	if err != nil {
		t.Fatalf("AccessCode: %v", err)
	}
	if code != "BSTP-AAAA-BBBB-CCCC" {
		t.Fatalf("code = %q, want trimmed value", code)
	}

	serverURL, err := store.ServerURL()
	if err != nil {
		t.Fatalf("ServerURL: %v", err)
	}
	if serverURL != "https://practice.example.org" {
		t.Fatalf("server url = %q", serverURL)
	}
}

func TestClearAccessCodeKeepsServerURL(t *testing.T) {
	store := NewCredentialStore(filepath.Join(t.TempDir(), "credentials.yaml"))
	if err := store.SaveServerURL("https://practice.example.org"); err != nil {
		t.Fatalf("SaveServerURL: %v", err)
	}
	if err := store.SaveAccessCode("BSTP-AAAA-BBBB-CCCC"); err != nil {
		t.Fatalf("SaveAccessCode: %v", err)
	}

	if err := store.ClearAccessCode(); err != nil {
		t.Fatalf("ClearAccessCode: %v", err)
	}

	code, err := store.AccessCode()
	if err != nil {
		t.Fatalf("AccessCode: %v", err)
	}
	if code != "" {
		t.Fatalf("code = %q after clear, want empty", code)
	}

	serverURL, err := store.ServerURL()
	if err != nil {
		t.Fatalf("ServerURL: %v", err)
	}
	if serverURL != "https://practice.example.org" {
		t.Fatal("clearing the code must keep the server URL")
	}
}

func TestCredentialFilePermissions(t *testing.T) {
	store := NewCredentialStore(filepath.Join(t.TempDir(), "credentials.yaml"))
	if err := store.SaveAccessCode("BSTP-AAAA-BBBB-CCCC"); err != nil {
		t.Fatalf("SaveAccessCode: %v", err)
	}

	info, err := os.Stat(store.Path())
	if err != nil {
		t.Fatalf("stat credentials file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("file mode = %o, want 600", perm)
	}
}
