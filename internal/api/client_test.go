package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := New(42, "secret-token")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	client.BaseURL = baseURL
	return client
}

func TestNewDefaultBaseURL(t *testing.T) {
	client, err := New(42, "secret-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "https://iris-tg.ru/api/42_secret-token/v0.3"
	if client.BaseURL != want {
		t.Errorf("BaseURL = %q, want %q", client.BaseURL, want)
	}
	if client.HTTP == nil {
		t.Fatal("expected HTTP client to be initialized")
	}
	if client.HTTP.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", client.HTTP.Timeout, DefaultTimeout)
	}
}

func TestNewRejectsBadIdentity(t *testing.T) {
	tests := []struct {
		name  string
		botID int64
		token string
	}{
		{"zero bot id", 0, "token"},
		{"negative bot id", -1, "token"},
		{"empty token", 42, ""},
		{"blank token", 42, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.botID, tt.token); err == nil {
				t.Error("expected construction to fail")
			}
		})
	}
}

func TestMethodURLPreservesParamOrder(t *testing.T) {
	client := newTestClient(t, "https://example.com/api/42_t/v0.3")

	params := []Param{
		{Key: "b", Value: "2"},
		{Key: "a", Value: "1"},
		{Key: "c", Value: "3"},
	}
	got := client.methodURL("trade/buy", params)
	want := "https://example.com/api/42_t/v0.3/trade/buy?b=2&a=1&c=3"
	if got != want {
		t.Errorf("methodURL = %q, want %q", got, want)
	}
}

func TestMethodURLEscapesParams(t *testing.T) {
	client := newTestClient(t, "https://example.com/v0.3")

	got := client.methodURL("pocket/sweets/give", []Param{{Key: "comment", Value: "a b&c=d"}})
	want := "https://example.com/v0.3/pocket/sweets/give?comment=a+b%26c%3Dd"
	if got != want {
		t.Errorf("methodURL = %q, want %q", got, want)
	}
}

func TestRawOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pocket/balance" {
			t.Errorf("path = %q, want /pocket/balance", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("method = %q, want GET", r.Method)
		}
		_, _ = w.Write([]byte(`{"gold": 1}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	body, err := client.Raw(context.Background(), "pocket/balance", nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != `{"gold": 1}` {
		t.Errorf("body = %q", body)
	}
}

func TestRawPostSendsEmptyFormBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q", ct)
		}
		if r.ContentLength != 0 {
			t.Errorf("ContentLength = %d, want 0", r.ContentLength)
		}
		// Parameters still arrive via the query string.
		if got := r.URL.RawQuery; got != "user_id=7" {
			t.Errorf("RawQuery = %q, want user_id=7", got)
		}
		_, _ = w.Write([]byte(`{"result": 1}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	if _, err := client.Raw(context.Background(), "pocket/allow_user", []Param{{Key: "user_id", Value: "7"}}, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRawNon200(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantDetail string
	}{
		{"error field", 403, `{"error": "Invalid token"}`, "Invalid token"},
		{"description field", 400, `{"description": "bad request"}`, "bad request"},
		{"unparseable body", 500, "boom", "boom"},
		{"json without known fields", 500, `{"status": "down"}`, `{"status": "down"}`},
		{"empty body", 502, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			_, err := client.Raw(context.Background(), "pocket/balance", nil, false)

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %v", err)
			}
			if apiErr.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.statusCode)
			}
			if apiErr.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, want %q", apiErr.Detail, tt.wantDetail)
			}
		})
	}
}

func TestRawTransportFailure(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:0")

	_, err := client.Raw(context.Background(), "pocket/balance", nil, false)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %v", err)
	}
	if !IsNetworkError(err) {
		t.Error("IsNetworkError should report true")
	}
	if IsAPIError(err) {
		t.Error("IsAPIError should report false")
	}
}
