// Package catalog is the HTTP client for the menu-catalog API. Reads are
// public; mutations attach the bearer token from an injected session and
// send the complete editable field set as multipart form data.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/oshaad/backoffice/internal/models"
)

// TokenReader supplies the bearer token attached to mutating calls.
type TokenReader interface {
	Token() string
}

// Draft is the complete editable field set submitted on create and update.
// Price stays a string: the server owns numeric validation.
type Draft struct {
	Name        string
	Description string
	Price       string
	Category    string
	// Ingredients is the parsed token sequence, order preserved.
	Ingredients []string
	Dietary     models.DietaryInfo
	IsAvailable bool
	// ImagePath is a local file to upload as the new image; empty keeps
	// the stored image (update) or stores no image (create).
	ImagePath string
}

// Client performs catalog operations against the back-office API.
// No call is retried; failures surface to the caller as typed errors.
type Client struct {
	baseURL string
	tokens  TokenReader
	http    *http.Client
}

// New creates a Client for the API at baseURL, reading bearer tokens from
// the given session.
func New(baseURL string, tokens TokenReader) *Client {
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		http:    &http.Client{},
	}
}

// Login authenticates the admin and returns the issued bearer token. It
// does not store the token; that is the login flow's job.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(payload))
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", responseError(resp)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &NetworkError{Err: fmt.Errorf("decode login response: %w", err)}
	}
	return result.Token, nil
}

// List fetches the full catalog, unavailable items included. Any failure
// is a NetworkError: the caller keeps its previous cache rather than
// treating the catalog as empty.
func (c *Client) List(ctx context.Context) ([]models.MenuItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/menu", nil)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &NetworkError{Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var items []models.MenuItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("decode menu response: %w", err)}
	}
	return items, nil
}

// Create submits a new menu item and returns the persisted record with its
// server-assigned identifier.
func (c *Client) Create(ctx context.Context, draft Draft) (models.MenuItem, error) {
	return c.submit(ctx, http.MethodPost, c.baseURL+"/api/menu", draft)
}

// Update replaces every editable field of the item with the given
// identifier and returns the persisted record.
func (c *Client) Update(ctx context.Context, id string, draft Draft) (models.MenuItem, error) {
	return c.submit(ctx, http.MethodPut, c.baseURL+"/api/menu/"+id, draft)
}

// Delete removes the item with the given identifier.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/menu/"+id, nil)
	if err != nil {
		return &NetworkError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.tokens.Token())

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp)
	}
	return nil
}

func (c *Client) submit(ctx context.Context, method, url string, draft Draft) (models.MenuItem, error) {
	body, contentType, err := encodeDraft(draft)
	if err != nil {
		return models.MenuItem{}, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return models.MenuItem{}, &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+c.tokens.Token())

	resp, err := c.http.Do(req)
	if err != nil {
		return models.MenuItem{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.MenuItem{}, responseError(resp)
	}

	var item models.MenuItem
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return models.MenuItem{}, &NetworkError{Err: fmt.Errorf("decode menu item response: %w", err)}
	}
	return item, nil
}

// encodeDraft serializes the draft as multipart form data. Ingredients and
// dietary flags travel as JSON-encoded strings inside the form; the image,
// if any, is attached as a binary part.
func encodeDraft(draft Draft) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	ingredients := draft.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	ingredientsJSON, err := json.Marshal(ingredients)
	if err != nil {
		return nil, "", err
	}
	dietaryJSON, err := json.Marshal(draft.Dietary)
	if err != nil {
		return nil, "", err
	}

	fields := map[string]string{
		"name":        draft.Name,
		"description": draft.Description,
		"price":       draft.Price,
		"category":    draft.Category,
		"ingredients": string(ingredientsJSON),
		"dietaryInfo": string(dietaryJSON),
		"isAvailable": strconv.FormatBool(draft.IsAvailable),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	if draft.ImagePath != "" {
		f, err := os.Open(draft.ImagePath)
		if err != nil {
			return nil, "", fmt.Errorf("open image %q: %w", draft.ImagePath, err)
		}
		defer f.Close()

		part, err := w.CreateFormFile("image", filepath.Base(draft.ImagePath))
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
