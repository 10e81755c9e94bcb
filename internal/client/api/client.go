package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/waymark-app/waymark/internal/models"
	"github.com/waymark-app/waymark/pkg/api"
)

//go:generate moq -out remote_mock.go . Remote

// Scope selects which record set a List call pulls
type Scope struct {
	// OwnerID marks the listing as owner-scoped. The server derives the
	// owner from the access token, never from this value; callers set it
	// so merge and logging code can tell whose records were pulled.
	OwnerID string

	// PublicOnly lists public records of any owner
	PublicOnly bool
}

// Remote is the authoritative record store as the client sees it.
// The wire protocol behind it is entirely the server's concern; the
// sync core depends only on this interface.
type Remote interface {
	// Login exchanges credentials for an access token
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// Create stores a record on the server and returns the server's copy
	Create(ctx context.Context, rec models.Record) (*models.Record, error)

	// Update replaces a record on the server
	Update(ctx context.Context, id string, rec models.Record) (*models.Record, error)

	// Delete removes a record on the server.
	// Returns ErrNotFound if the record is already gone.
	Delete(ctx context.Context, id string) error

	// List pulls the record set selected by scope
	List(ctx context.Context, scope Scope) ([]models.Record, error)
}

// TokenSource supplies the current access token for authenticated calls
type TokenSource func(ctx context.Context) (string, error)

// Client is the HTTP implementation of Remote
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      TokenSource
}

var _ Remote = (*Client)(nil)

// NewClient creates a new API client. token may be nil for clients that
// only perform unauthenticated calls (login).
func NewClient(baseURL string, token TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Login exchanges credentials for an access token
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", false, req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Create stores a record on the server
func (c *Client) Create(ctx context.Context, rec models.Record) (*models.Record, error) {
	var resp api.RecordResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/records", true, toWire(rec), &resp); err != nil {
		return nil, fmt.Errorf("create record request failed: %w", err)
	}
	created := fromWire(resp.Record)
	return &created, nil
}

// Update replaces a record on the server
func (c *Client) Update(ctx context.Context, id string, rec models.Record) (*models.Record, error) {
	var resp api.RecordResponse
	path := "/api/v1/records/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodPut, path, true, toWire(rec), &resp); err != nil {
		return nil, fmt.Errorf("update record request failed: %w", err)
	}
	updated := fromWire(resp.Record)
	return &updated, nil
}

// Delete removes a record on the server
func (c *Client) Delete(ctx context.Context, id string) error {
	var resp api.MessageResponse
	path := "/api/v1/records/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodDelete, path, true, nil, &resp); err != nil {
		return fmt.Errorf("delete record request failed: %w", err)
	}
	return nil
}

// List pulls the record set selected by scope
func (c *Client) List(ctx context.Context, scope Scope) ([]models.Record, error) {
	path := "/api/v1/records/user"
	if scope.PublicOnly {
		path = "/api/v1/records/public"
	}

	var resp api.RecordsResponse
	if err := c.doRequest(ctx, http.MethodGet, path, true, nil, &resp); err != nil {
		return nil, fmt.Errorf("list records request failed: %w", err)
	}

	records := make([]models.Record, 0, len(resp.Records))
	for _, wire := range resp.Records {
		records = append(records, fromWire(wire))
	}
	return records, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, authed bool, body, result any) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authed && c.token != nil {
		token, err := c.token(ctx)
		if err != nil {
			return fmt.Errorf("failed to get access token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, respBody)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func statusError(code int, body []byte) error {
	message := string(body)
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		message = errResp.Error
		if errResp.Message != "" {
			message = errResp.Message
		}
	}

	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	default:
		return &StatusError{Code: code, Message: message}
	}
}

func toWire(rec models.Record) api.Record {
	return api.Record{
		ID:          rec.ID,
		OwnerID:     rec.OwnerID,
		Title:       rec.Title,
		Description: rec.Description,
		Latitude:    rec.Latitude,
		Longitude:   rec.Longitude,
		ImageRef:    rec.ImageRef,
		Visibility:  string(rec.Visibility),
		CreatedAt:   rec.CreatedAt,
	}
}

func fromWire(wire api.Record) models.Record {
	return models.Record{
		ID:          wire.ID,
		OwnerID:     wire.OwnerID,
		Title:       wire.Title,
		Description: wire.Description,
		Latitude:    wire.Latitude,
		Longitude:   wire.Longitude,
		ImageRef:    wire.ImageRef,
		Visibility:  models.Visibility(wire.Visibility),
		CreatedAt:   wire.CreatedAt,
	}
}
