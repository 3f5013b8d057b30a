package apiclient

import (
	"errors"
	"net/http"
	"sync"
)

// SessionManager owns the single credential-bearing Client the rest of the
// console uses. Whenever the stored credential changes the old instance is
// discarded and a fresh one built; callers that captured the old pointer keep
// a working (stale-credentialed) client until they ask again.
//
// SetCredential/ClearCredential touch storage only. Refreshing the client is
// a separate, explicit step the caller must sequence afterwards.
type SessionManager struct {
	mu      sync.Mutex
	store   *CredentialStore
	baseURL string
	client  *Client
}

func NewSessionManager(baseURL string, store *CredentialStore) *SessionManager {
	return &SessionManager{store: store, baseURL: baseURL}
}

func (m *SessionManager) Store() *CredentialStore {
	return m.store
}

// Client returns the shared instance, building one lazily from whatever
// credential is currently stored (possibly none).
func (m *SessionManager) Client() *Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.client == nil {
		m.client = m.buildClient()
	}
	return m.client
}

// RefreshClient unconditionally discards the current instance and builds a
// new one from the latest stored credential.
func (m *SessionManager) RefreshClient() *Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.client = m.buildClient()
	return m.client
}

func (m *SessionManager) buildClient() *Client {
	code, err := m.store.AccessCode()
	if err != nil {
		// Unreadable storage degrades to an unauthenticated client; the
		// first API call will answer 401 and surface the problem.
		code = ""
	}
	return NewClient(m.baseURL, code)
}

func (m *SessionManager) SetCredential(code string) error {
	return m.store.SaveAccessCode(code)
}

func (m *SessionManager) ClearCredential() error {
	return m.store.ClearAccessCode()
}

// HandleAuthFailure inspects an API error. On 401/403 it wipes the stored
// credential, refreshes the shared client and returns a normalized error
// whose message is taken from the response body, then a generic per-status
// message, then a fallback. Every other error passes through untouched.
func (m *SessionManager) HandleAuthFailure(err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) || !apiErr.IsAuthFailure() {
		return err
	}

	_ = m.ClearCredential()
	m.RefreshClient()

	message := apiErr.Message
	if message == "" {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			message = "your session is no longer valid, please log in again"
		case http.StatusForbidden:
			message = "access denied for this staff account"
		}
	}
	if message == "" {
		message = "authentication failed"
	}

	return &APIError{StatusCode: apiErr.StatusCode, Message: message, Body: apiErr.Body}
}
