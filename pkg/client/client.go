// Package client is a typed Go client for the brand canvas API. It unwraps
// the uniform response envelope and implements the flows the single-page UI
// drives: ensure-project on startup, generate-then-persist, and per-visual
// edits.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client communicates with a brand canvas backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ProjectSummary mirrors the registry-side project record.
type ProjectSummary struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"createdAt"`
	LastActive time.Time `json:"lastActive"`
}

// FormData mirrors the generation form inputs.
type FormData struct {
	ProductName  string   `json:"productName"`
	Description  string   `json:"description"`
	TargetLocale string   `json:"targetLocale"`
	LogoURL      string   `json:"logoUrl"`
	BrandColors  []string `json:"brandColors"`
}

// Visual mirrors a single generated marketing visual.
type Visual struct {
	ID           string `json:"id"`
	ImageURL     string `json:"imageUrl"`
	Prompt       string `json:"prompt"`
	Alt          string `json:"alt"`
	Headline     string `json:"headline"`
	CTAText      string `json:"ctaText"`
	PrimaryColor string `json:"primaryColor"`
}

// Project mirrors the full project document.
type Project struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	FormData FormData `json:"formData"`
	Visuals  []Visual `json:"visuals"`
}

// ProjectPatch is a partial project update; nil fields are left untouched.
type ProjectPatch struct {
	Title    *string   `json:"title,omitempty"`
	FormData *FormData `json:"formData,omitempty"`
	Visuals  *[]Visual `json:"visuals,omitempty"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// ListProjects returns all project summaries.
func (c *Client) ListProjects(ctx context.Context) ([]ProjectSummary, error) {
	var out []ProjectSummary
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProject creates a project. An empty title lets the server pick one.
func (c *Client) CreateProject(ctx context.Context, title string) (*ProjectSummary, error) {
	body := map[string]string{}
	if title != "" {
		body["title"] = title
	}

	var out ProjectSummary
	if err := c.do(ctx, http.MethodPost, "/api/projects", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProject loads the full document for id.
func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	var out Project
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProject applies a partial update and returns the merged document.
func (c *Client) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*Project, error) {
	var out Project
	if err := c.do(ctx, http.MethodPut, "/api/projects/"+id, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProject removes a project, reporting whether it existed.
func (c *Client) DeleteProject(ctx context.Context, id string) (bool, error) {
	var out struct {
		Deleted bool `json:"deleted"`
	}
	err := c.do(ctx, http.MethodDelete, "/api/projects/"+id, nil, &out)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	return out.Deleted, nil
}

// GenerateVisuals submits the form and returns the generated visuals.
// Nothing is persisted; callers follow up with UpdateProject.
func (c *Client) GenerateVisuals(ctx context.Context, form FormData) ([]Visual, error) {
	var out []Visual
	if err := c.do(ctx, http.MethodPost, "/api/generate-visuals", form, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureProject returns the most recent project, creating one when none exist.
// This is the startup transition of the UI: an empty list goes straight to a
// fresh project in its ready state.
func (c *Client) EnsureProject(ctx context.Context) (*ProjectSummary, error) {
	summaries, err := c.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	if len(summaries) > 0 {
		return &summaries[0], nil
	}
	return c.CreateProject(ctx, "")
}

// GenerateAndSave generates visuals for the form and persists both the form
// and the visuals into the project document. On generation failure nothing
// is persisted and the stored document is untouched.
func (c *Client) GenerateAndSave(ctx context.Context, id string, form FormData) (*Project, error) {
	generated, err := c.GenerateVisuals(ctx, form)
	if err != nil {
		return nil, err
	}

	return c.UpdateProject(ctx, id, ProjectPatch{
		FormData: &form,
		Visuals:  &generated,
	})
}

// SaveVisual replaces the visual with the same id inside the document and
// persists the whole document.
func (c *Client) SaveVisual(ctx context.Context, id string, visual Visual) (*Project, error) {
	project, err := c.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range project.Visuals {
		if project.Visuals[i].ID == visual.ID {
			project.Visuals[i] = visual
			replaced = true
			break
		}
	}
	if !replaced {
		return nil, fmt.Errorf("visual %s not found in project %s", visual.ID, id)
	}

	return c.UpdateProject(ctx, id, ProjectPatch{Visuals: &project.Visuals})
}

// APIError is a failure envelope returned by the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call backend: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("backend returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Error}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}
