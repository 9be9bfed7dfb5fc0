package pypi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/smithellis/upgrade-insight/pkg/cache"
	"github.com/smithellis/upgrade-insight/pkg/registry"
)

func TestClient_FetchPackage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/flask/json" {
			resp := apiResponse{
				Info: apiInfo{
					Name:    "Flask",
					Version: "3.0.2",
					Summary: "A micro web framework",
				},
			}
			json.NewEncoder(w).Encode(resp)
		} else {
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := testClient(server.URL)

	info, err := c.FetchPackage(context.Background(), "Flask", true)
	if err != nil {
		t.Fatalf("FetchPackage failed: %v", err)
	}

	if info.Name != "flask" {
		t.Errorf("expected normalized name flask, got %s", info.Name)
	}
	if info.Version != "3.0.2" {
		t.Errorf("expected version 3.0.2, got %s", info.Version)
	}
	if info.Summary != "A micro web framework" {
		t.Errorf("unexpected summary: %s", info.Summary)
	}
}

func TestClient_FetchPackage_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	c := testClient(server.URL)

	_, err := c.FetchPackage(context.Background(), "missing-pkg", true)
	if err == nil {
		t.Fatal("expected error for missing package")
	}
	if !errors.Is(err, registry.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_FetchPackage_UsesCache(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(apiResponse{Info: apiInfo{Name: "requests", Version: "2.31.0"}})
	}))
	defer server.Close()

	backend, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c := &Client{
		Client:  registry.NewClient(backend, "pypi:", time.Hour),
		baseURL: server.URL,
	}

	for range 2 {
		if _, err := c.FetchPackage(context.Background(), "requests", false); err != nil {
			t.Fatalf("FetchPackage failed: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("expected 1 upstream call, got %d", calls)
	}
}

func testClient(serverURL string) *Client {
	return &Client{
		Client:  registry.NewClient(cache.NewNullCache(), "pypi:", time.Hour),
		baseURL: serverURL,
	}
}
