package apiclient

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CredentialFileName is the single durable slot for the staff access code,
// the file-system analog of the console's credential storage.
const CredentialFileName = "credentials.yaml"

type credentialFile struct {
	Version    string `yaml:"version"`
	ServerURL  string `yaml:"server_url"`
	AccessCode string `yaml:"access_code"`
}

// CredentialStore reads and writes the access code at a fixed path. A missing
// file or empty access_code field means unauthenticated.
type CredentialStore struct {
	path string
}

func NewCredentialStore(path string) *CredentialStore {
	return &CredentialStore{path: path}
}

// DefaultCredentialPath resolves the per-user credential location, e.g.
// ~/.config/brightsteps/credentials.yaml on Linux.
func DefaultCredentialPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config directory: %w", err)
	}
	return filepath.Join(configDir, "brightsteps", CredentialFileName), nil
}

func (store *CredentialStore) Path() string {
	return store.path
}

func (store *CredentialStore) read() (credentialFile, error) {
	raw, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return credentialFile{}, nil
		}
		return credentialFile{}, fmt.Errorf("read credentials file: %w", err)
	}

	var file credentialFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return credentialFile{}, fmt.Errorf("parse credentials file: %w", err)
	}
	return file, nil
}

func (store *CredentialStore) write(file credentialFile) error {
	if file.Version == "" {
		file.Version = "1"
	}
	raw, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode credentials file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(store.path), 0o700); err != nil {
		return fmt.Errorf("create credentials directory: %w", err)
	}
	if err := os.WriteFile(store.path, raw, 0o600); err != nil {
		return fmt.Errorf("write credentials file: %w", err)
	}
	return nil
}

// AccessCode returns the stored code, or "" when unauthenticated.
func (store *CredentialStore) AccessCode() (string, error) {
	file, err := store.read()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(file.AccessCode), nil
}

func (store *CredentialStore) ServerURL() (string, error) {
	file, err := store.read()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(file.ServerURL), nil
}

// SaveAccessCode persists the code, keeping the stored server URL intact.
func (store *CredentialStore) SaveAccessCode(code string) error {
	file, err := store.read()
	if err != nil {
		return err
	}
	file.AccessCode = strings.TrimSpace(code)
	return store.write(file)
}

func (store *CredentialStore) SaveServerURL(serverURL string) error {
	file, err := store.read()
	if err != nil {
		return err
	}
	file.ServerURL = strings.TrimSpace(serverURL)
	return store.write(file)
}

// ClearAccessCode removes the credential but leaves the server URL so a later
// login needs no reconfiguration.
func (store *CredentialStore) ClearAccessCode() error {
	file, err := store.read()
	if err != nil {
		return err
	}
	if file.AccessCode == "" {
		return nil
	}
	file.AccessCode = ""
	return store.write(file)
}
