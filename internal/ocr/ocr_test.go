package ocr

import (
	"context"
	"encoding/json"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientExtractText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://cdn.example/img1.jpg", req["image_url"])

		_ = json.NewEncoder(w).Encode(map[string]string{"text": "electricity bill 12345678901"})
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, APIKey: "sekrit"}, nil)
	text, err := c.ExtractText(context.Background(), "https://cdn.example/img1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "electricity bill 12345678901", text)
}

func TestClientExtractTextEmptyIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"text": ""})
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL}, nil)
	text, err := c.ExtractText(context.Background(), "ref")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestClientExtractTextNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL}, nil)
	_, err := c.ExtractText(context.Background(), "ref")
	require.Error(t, err)
}

func TestEnhanceForOCR(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "page.png")
	img := imaging.New(40, 60, color.NRGBA{R: 200, G: 200, B: 180, A: 255})
	require.NoError(t, imaging.Save(img, src))

	out, err := EnhanceForOCR(src, filepath.Join(dir, "cache"))
	require.NoError(t, err)
	assert.NotEqual(t, src, out)

	enhanced, err := imaging.Open(out)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 60), enhanced.Bounds())
}

func TestEnhanceForOCRMissingSource(t *testing.T) {
	_, err := EnhanceForOCR(filepath.Join(t.TempDir(), "nope.png"), t.TempDir())
	require.Error(t, err)
}
