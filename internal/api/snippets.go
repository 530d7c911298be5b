package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const (
	// DefaultFilePath is the file every new snippet is created with
	DefaultFilePath = "init.txt"

	// DefaultDescription is the description of every new snippet
	DefaultDescription = "Autogenerated snippet"

	// FileActionCreate is the action sent for every uploaded file
	FileActionCreate = "create"

	// timestampLayout renders the content of the initial file, without the fraction
	timestampLayout = "2006-01-02 15:04:05"
)

// ErrNotFound matches any NotFoundError
var ErrNotFound = errors.New("snippet not found")

// File is a file attached to a snippet
type File struct {
	Path string `json:"path"`
}

// Snippet represents a snippet as returned by the service
type Snippet struct {
	Title    string `json:"title"`
	ID       uint64 `json:"id"`
	FileName string `json:"file_name"`
	Files    []File `json:"files"`
	WebURL   string `json:"web_url"`
}

// NotFoundError is returned when no snippet carries the searched title
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find snippet: %s", e.Title)
}

// Is reports whether target is ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type fileAction struct {
	FilePath string `json:"file_path"`
	Content  string `json:"content"`
	Action   string `json:"action,omitempty"`
}

type createSnippetRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Visibility  string       `json:"visibility"`
	Files       []fileAction `json:"files"`
}

type updateSnippetRequest struct {
	Files []fileAction `json:"files"`
}

// ListSnippets returns every snippet the endpoint lists, in response order
func (c *Client) ListSnippets(ctx context.Context) ([]Snippet, error) {
	body, err := c.do(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	return parseResponse[[]Snippet](body)
}

// GetSnippet returns the first listed snippet whose title equals title
func (c *Client) GetSnippet(ctx context.Context, title string) (*Snippet, error) {
	snippets, err := c.ListSnippets(ctx)
	if err != nil {
		return nil, err
	}

	return FindByTitle(snippets, title)
}

// FindByTitle returns the first snippet whose title is exactly title.
// Matching is case-sensitive and does not trim whitespace.
func FindByTitle(snippets []Snippet, title string) (*Snippet, error) {
	for i := range snippets {
		if snippets[i].Title == title {
			return &snippets[i], nil
		}
	}
	return nil, &NotFoundError{Title: title}
}

// CreateSnippet creates a new snippet holding a single init.txt file stamped with the current time.
// Every call creates a new snippet.
func (c *Client) CreateSnippet(ctx context.Context, title, visibility string) (*Snippet, error) {
	req := createSnippetRequest{
		Title:       title,
		Description: DefaultDescription,
		Visibility:  visibility,
		Files: []fileAction{{
			FilePath: DefaultFilePath,
			Content:  formatTimestamp(c.now()),
		}},
	}

	body, err := c.do(ctx, http.MethodPost, c.url, req)
	if err != nil {
		return nil, err
	}

	return parseSnippet(body)
}

// UploadFile writes content to filePath in the snippet with the given id
func (c *Client) UploadFile(ctx context.Context, id uint64, filePath, content string) (*Snippet, error) {
	req := updateSnippetRequest{
		Files: []fileAction{{
			FilePath: filePath,
			Content:  content,
			Action:   FileActionCreate,
		}},
	}

	body, err := c.do(ctx, http.MethodPut, c.url+strconv.FormatUint(id, 10), req)
	if err != nil {
		return nil, err
	}

	return parseSnippet(body)
}

// parseSnippet decodes a single snippet; a null body is an error
func parseSnippet(body []byte) (*Snippet, error) {
	snippet, err := parseResponse[*Snippet](body)
	if err != nil {
		return nil, err
	}
	if snippet == nil {
		return nil, fmt.Errorf("could not parse response: expected a snippet, got null")
	}
	return snippet, nil
}

// formatTimestamp renders t with its fraction in groups of 3, 6 or 9 digits,
// omitting it for whole seconds
func formatTimestamp(t time.Time) string {
	var frac string
	switch nanos := t.Nanosecond(); {
	case nanos == 0:
	case nanos%1_000_000 == 0:
		frac = fmt.Sprintf(".%03d", nanos/1_000_000)
	case nanos%1_000 == 0:
		frac = fmt.Sprintf(".%06d", nanos/1_000)
	default:
		frac = fmt.Sprintf(".%09d", nanos)
	}
	return t.Format(timestampLayout) + frac + t.Format(" -07:00")
}
