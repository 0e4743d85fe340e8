package blob

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureKnownVectors(t *testing.T) {
	// sha1("public_id=sample&timestamp=1315060510" + "abcd1234")
	sig := Signature(map[string]string{
		"timestamp": "1315060510",
		"public_id": "sample",
	}, "abcd1234")
	assert.Equal(t, "172ddf8d3f1bcfddb8d3e90592a4816ca27ea8cd", sig)

	// sha1("folder=docs&public_id=sample&timestamp=1315060510" + "abcd1234")
	sig = Signature(map[string]string{
		"public_id": "sample",
		"folder":    "docs",
		"timestamp": "1315060510",
	}, "abcd1234")
	assert.Equal(t, "343a108677c1742609a54c346487f9b055c62c15", sig)
}

func TestSignatureSortsByKey(t *testing.T) {
	a := Signature(map[string]string{"b": "2", "a": "1", "c": "3"}, "s")
	b := Signature(map[string]string{"c": "3", "a": "1", "b": "2"}, "s")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, Signature(map[string]string{"a": "1", "b": "2", "c": "3"}, "other"))
}

func TestClientUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1 << 20))

		assert.Equal(t, "key123", r.FormValue("api_key"))
		assert.Equal(t, "pages", r.FormValue("folder"))
		want := Signature(map[string]string{
			"timestamp": r.FormValue("timestamp"),
			"folder":    "pages",
		}, "secret123")
		assert.Equal(t, want, r.FormValue("signature"))

		_, _, err := r.FormFile("file")
		require.NoError(t, err)

		_ = json.NewEncoder(w).Encode(map[string]string{
			"public_id":  "pages/abc123",
			"secure_url": "https://cdn.example/pages/abc123.jpg",
		})
	}))
	defer srv.Close()

	src := filepath.Join(t.TempDir(), "page.jpg")
	require.NoError(t, os.WriteFile(src, []byte{0xFF, 0xD8, 0xFF, 0xE0}, 0o644))

	c := NewClient(Config{
		BaseURL:   srv.URL,
		APIKey:    "key123",
		APISecret: "secret123",
		Folder:    "pages",
	}, nil)
	c.now = func() time.Time { return time.Unix(1315060510, 0) }

	asset, err := c.Upload(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, "pages/abc123", asset.ID)
	assert.Equal(t, "https://cdn.example/pages/abc123.jpg", asset.URL)
}

func TestClientDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/destroy", r.URL.Path)
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "pages/abc123", r.FormValue("public_id"))
		want := Signature(map[string]string{
			"public_id": "pages/abc123",
			"timestamp": r.FormValue("timestamp"),
		}, "secret123")
		assert.Equal(t, want, r.FormValue("signature"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "key123", APISecret: "secret123"}, nil)
	require.NoError(t, c.Delete(context.Background(), "pages/abc123"))
}

func TestClientDeleteNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	require.Error(t, c.Delete(context.Background(), "missing"))
}

func TestClientFetch(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 1, 2, 3}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	c := NewClient(Config{}, nil)
	got, err := c.Fetch(context.Background(), srv.URL+"/img.png")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}
