// Package apiclient is the console-side client for the BrightSteps API: a
// REST client carrying the staff access code, and a session manager that
// keeps exactly one credential-bearing client instance in circulation.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

const accessCodeHeader = "X-Staff-Access-Code"

// Client makes JSON requests against a fixed base URL. The access code is
// captured at construction; rotating the credential means building a new
// Client (see SessionManager), never mutating one in place, so requests
// already in flight finish with the headers they were issued with.
type Client struct {
	baseURL    string
	accessCode string
	httpClient *http.Client
}

func NewClient(baseURL string, accessCode string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		accessCode: accessCode,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// do executes one request. Transport errors and 5xx pass through unchanged;
// any non-2xx status becomes an *APIError. There is no retry and no backoff.
func (c *Client) do(ctx context.Context, method string, requestPath string, body any, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}
	u.Path = path.Join(u.Path, requestPath)

	var bodyReader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	if c.accessCode != "" {
		request.Header.Set(accessCodeHeader, c.accessCode)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return &APIError{
			StatusCode: response.StatusCode,
			Message:    extractErrorMessage(responseBody),
			Body:       responseBody,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(responseBody, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// Login validates an access code against the server. It works on an
// unauthenticated client; the code under test travels in the body, not the
// header.
func (c *Client) Login(ctx context.Context, accessCode string) (LoginResult, error) {
	var result LoginResult
	payload := map[string]string{"access_code": accessCode}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", payload, &result); err != nil {
		return LoginResult{}, err
	}
	return result, nil
}

func (c *Client) Me(ctx context.Context) (StaffProfile, error) {
	var envelope struct {
		Staff StaffProfile `json:"staff"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &envelope); err != nil {
		return StaffProfile{}, err
	}
	return envelope.Staff, nil
}

func (c *Client) ListClients(ctx context.Context) ([]ClientRecord, error) {
	var envelope struct {
		Clients []ClientRecord `json:"clients"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/clients", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Clients, nil
}

func (c *Client) CreateClient(ctx context.Context, input CreateClientInput) (ClientRecord, error) {
	var envelope struct {
		Client ClientRecord `json:"client"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/clients", input, &envelope); err != nil {
		return ClientRecord{}, err
	}
	return envelope.Client, nil
}

func (c *Client) AssignTherapist(ctx context.Context, clientID uint, input AssignTherapistInput) error {
	requestPath := fmt.Sprintf("/api/clients/%d/therapists", clientID)
	return c.do(ctx, http.MethodPost, requestPath, input, nil)
}

func (c *Client) LinkCaregiver(ctx context.Context, clientID uint, input LinkCaregiverInput) (CaregiverRecord, error) {
	var envelope struct {
		Caregiver CaregiverRecord `json:"caregiver"`
	}
	requestPath := fmt.Sprintf("/api/clients/%d/caregivers", clientID)
	if err := c.do(ctx, http.MethodPost, requestPath, input, &envelope); err != nil {
		return CaregiverRecord{}, err
	}
	return envelope.Caregiver, nil
}

func (c *Client) ListTherapists(ctx context.Context) ([]TherapistRecord, error) {
	var envelope struct {
		Therapists []TherapistRecord `json:"therapists"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/therapists", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Therapists, nil
}

func (c *Client) ListCaregivers(ctx context.Context) ([]CaregiverRecord, error) {
	var envelope struct {
		Caregivers []CaregiverRecord `json:"caregivers"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/caregivers", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Caregivers, nil
}
