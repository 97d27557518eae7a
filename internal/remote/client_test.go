package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(srv *httptest.Server, token string) *Client {
	return &Client{
		endpoint:    srv.URL,
		accessToken: token,
		httpClient:  srv.Client(),
	}
}

func TestExecuteSendsQueryAndToken(t *testing.T) {
	var gotToken string
	var gotBody graphqlRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Shopify-Access-Token")
		json.NewDecoder(r.Body).Decode(&gotBody)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"shop": map[string]interface{}{"name": "test"}},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv, "secret-token")

	data, err := client.Execute(context.Background(), "query { shop { name } }", map[string]interface{}{
		"cursor": "abc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotToken != "secret-token" {
		t.Errorf("expected access token header, got %q", gotToken)
	}
	if gotBody.Query != "query { shop { name } }" {
		t.Errorf("unexpected query: %q", gotBody.Query)
	}
	if gotBody.Variables["cursor"] != "abc" {
		t.Errorf("expected cursor variable, got %v", gotBody.Variables)
	}

	shop, ok := data["shop"].(map[string]interface{})
	if !ok || shop["name"] != "test" {
		t.Errorf("unexpected data: %v", data)
	}
}

func TestExecuteNon200IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "throttled", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(srv, "t")

	_, err := client.Execute(context.Background(), "query {}", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsUnavailable(err) {
		t.Fatalf("expected UnavailableError, got %T: %v", err, err)
	}

	var uerr *UnavailableError
	if !errors.As(err, &uerr) || uerr.Status != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %+v", uerr)
	}
}

func TestExecuteConnectionRefusedIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := newTestClient(srv, "t")
	srv.Close()

	_, err := client.Execute(context.Background(), "query {}", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsUnavailable(err) {
		t.Fatalf("expected UnavailableError, got %T: %v", err, err)
	}
}

func TestExecuteErrorEnvelopeIsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]interface{}{
				{"message": "field 'foo' doesn't exist"},
				{"message": "access denied"},
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv, "t")

	_, err := client.Execute(context.Background(), "query {}", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsRejected(err) {
		t.Fatalf("expected RejectedError, got %T: %v", err, err)
	}

	var rerr *RejectedError
	if !errors.As(err, &rerr) || len(rerr.Messages) != 2 {
		t.Fatalf("expected both messages preserved, got %+v", rerr)
	}
}

func TestExecuteMalformedBodyIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	client := newTestClient(srv, "t")

	_, err := client.Execute(context.Background(), "query {}", nil)
	if !IsUnavailable(err) {
		t.Fatalf("expected UnavailableError, got %T: %v", err, err)
	}
}

func TestExecuteContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := newTestClient(srv, "t")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.Execute(ctx, "query {}", nil)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if !IsUnavailable(err) {
		t.Fatalf("expected UnavailableError, got %T: %v", err, err)
	}
}

func TestNewClientEndpoint(t *testing.T) {
	client := NewClient(Config{Store: "deckhaus", APIVersion: "2024-04"})
	expected := "https://deckhaus.myshopify.com/admin/api/2024-04/graphql.json"
	if client.endpoint != expected {
		t.Errorf("expected %q, got %q", expected, client.endpoint)
	}

	// A store name that already has a domain is used as-is
	client = NewClient(Config{Store: "shop.example.com", APIVersion: "2024-04"})
	expected = "https://shop.example.com/admin/api/2024-04/graphql.json"
	if client.endpoint != expected {
		t.Errorf("expected %q, got %q", expected, client.endpoint)
	}
}
