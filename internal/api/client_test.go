package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClientRejectsInvalidToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "plain token", token: "glpat-abc123"},
		{name: "empty token", token: ""},
		{name: "newline", token: "abc\ndef", wantErr: true},
		{name: "carriage return", token: "abc\rdef", wantErr: true},
		{name: "nul byte", token: "abc\x00def", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requests := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests++
			}))
			defer server.Close()

			client, err := NewClient(server.URL, tt.token)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHeader) {
					t.Fatalf("expected ErrInvalidHeader, got %v", err)
				}
				if client != nil {
					t.Error("expected nil client")
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if requests != 0 {
				t.Errorf("expected no requests during construction, got %d", requests)
			}
		})
	}
}

func TestDefaultHeaders(t *testing.T) {
	var headers http.Header
	var methods []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		methods = append(methods, r.Method)
		if r.Method == http.MethodGet {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`{"title": "X", "id": 1}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL+"/")
	ctx := context.Background()

	checks := []func() error{
		func() error { _, err := client.ListSnippets(ctx); return err },
		func() error { _, err := client.CreateSnippet(ctx, "X", "intern"); return err },
		func() error { _, err := client.UploadFile(ctx, 1, "a.txt", "hi"); return err },
	}

	for _, check := range checks {
		if err := check(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := headers.Get("PRIVATE-TOKEN"); got != "test-token" {
			t.Errorf("%s: expected PRIVATE-TOKEN test-token, got %q", methods[len(methods)-1], got)
		}
		if got := headers.Get("Content-Type"); got != "application/json" {
			t.Errorf("%s: expected Content-Type application/json, got %q", methods[len(methods)-1], got)
		}
		if got := headers.Get("User-Agent"); got != "Snipper" {
			t.Errorf("%s: expected User-Agent Snipper, got %q", methods[len(methods)-1], got)
		}
	}
}

func TestDefaultTimeout(t *testing.T) {
	client, err := NewClient("http://localhost/", "token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.httpClient.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", client.httpClient.Timeout)
	}
	if client.URL() != "http://localhost/" {
		t.Errorf("unexpected URL %q", client.URL())
	}
}

func TestTimeoutLeavesSharedClientUntouched(t *testing.T) {
	shared := &http.Client{Timeout: 3 * time.Second}

	client, err := NewClient("http://localhost/", "token", WithHTTPClient(shared), WithTimeout(time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if shared.Timeout != 3*time.Second {
		t.Errorf("shared client timeout changed to %s", shared.Timeout)
	}
	if client.httpClient == shared {
		t.Error("expected the client to hold a copy of the shared client")
	}
	if client.httpClient.Timeout != time.Second {
		t.Errorf("expected 1s timeout, got %s", client.httpClient.Timeout)
	}
}

func TestTimeoutWithDefaultHTTPClient(t *testing.T) {
	client, err := NewClient("http://localhost/", "token", WithHTTPClient(http.DefaultClient), WithTimeout(time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if http.DefaultClient.Timeout != 0 {
		t.Errorf("http.DefaultClient timeout changed to %s", http.DefaultClient.Timeout)
	}
	if client.httpClient.Timeout != time.Second {
		t.Errorf("expected 1s timeout, got %s", client.httpClient.Timeout)
	}
}

func TestNilHTTPClientFallsBackToDefault(t *testing.T) {
	client, err := NewClient("http://localhost/", "token", WithHTTPClient(nil), WithTimeout(2*time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.httpClient == nil {
		t.Fatal("expected a default HTTP client")
	}
	if client.httpClient.Timeout != 2*time.Second {
		t.Errorf("expected 2s timeout, got %s", client.httpClient.Timeout)
	}

	client, err = NewClient("http://localhost/", "token", WithHTTPClient(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("expected %s timeout, got %s", DefaultTimeout, client.httpClient.Timeout)
	}
}

func TestTimeoutAbortsRequest(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := newTestClient(t, server.URL, WithTimeout(50*time.Millisecond))

	_, err := client.ListSnippets(context.Background())
	if err == nil {
		t.Fatal("expected timeout error but got nil")
	}
	if !strings.Contains(err.Error(), "request failed") {
		t.Errorf("expected transport error, got %q", err.Error())
	}
}

func TestAPIErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "with body",
			err:  &APIError{Method: "GET", StatusCode: 404, Body: `{"message":"404 Not Found"}` + "\n"},
			want: `HTTP GET error 404: {"message":"404 Not Found"}`,
		},
		{
			name: "empty body falls back to status text",
			err:  &APIError{Method: "POST", StatusCode: 500},
			want: "HTTP POST error 500: Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDebugTraceRedactsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	var trace bytes.Buffer
	client, err := NewClient(server.URL, "super-secret", WithDebug(&trace))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := client.ListSnippets(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := trace.String()
	if strings.Contains(out, "super-secret") {
		t.Errorf("trace leaked the token:\n%s", out)
	}
	if !strings.Contains(out, "> Private-Token: [redacted]") {
		t.Errorf("expected redacted token header in trace:\n%s", out)
	}
	if !strings.Contains(out, "> GET "+server.URL) {
		t.Errorf("expected request line in trace:\n%s", out)
	}
	if !strings.Contains(out, "< 200 OK") {
		t.Errorf("expected status line in trace:\n%s", out)
	}
}
