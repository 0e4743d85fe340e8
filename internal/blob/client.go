// Package blob talks to the image CDN: upload a captured page, fetch it
// back for PDF assembly, delete it when its group is removed.
package blob

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Asset identifies one stored binary on the CDN.
type Asset struct {
	ID  string
	URL string
}

// Store is the blob collaborator contract consumed by the scan and
// export pipelines.
type Store interface {
	Upload(ctx context.Context, localPath string) (Asset, error)
	Delete(ctx context.Context, assetID string) error
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Config holds CDN connection settings.
type Config struct {
	BaseURL   string
	APIKey    string
	APISecret string
	Folder    string
	Timeout   time.Duration
}

// Client implements Store against the provider's HTTP API.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
	now    func() time.Time
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
		now:    time.Now,
	}
}

// Signature reproduces the provider's request signing: parameters
// serialized as key=value, sorted by key, joined with '&', the secret
// appended, and the whole string SHA-1 hashed to lowercase hex. The
// exact shape is a wire-compatibility contract with the existing blob
// provider; do not change it.
func Signature(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+params[k])
	}
	sum := sha1.Sum([]byte(strings.Join(parts, "&") + secret))
	return hex.EncodeToString(sum[:])
}

type uploadResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
}

// Upload sends a local file to the CDN and returns its asset handle.
func (c *Client) Upload(ctx context.Context, localPath string) (Asset, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return Asset{}, fmt.Errorf("open upload source: %w", err)
	}
	defer func() { _ = f.Close() }()

	ts := strconv.FormatInt(c.now().UTC().Unix(), 10)
	params := map[string]string{"timestamp": ts}
	if c.cfg.Folder != "" {
		params["folder"] = c.cfg.Folder
	}
	sig := Signature(params, c.cfg.APISecret)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range params {
		if err := mw.WriteField(k, v); err != nil {
			return Asset{}, fmt.Errorf("write field %s: %w", k, err)
		}
	}
	if err := mw.WriteField("api_key", c.cfg.APIKey); err != nil {
		return Asset{}, fmt.Errorf("write field api_key: %w", err)
	}
	if err := mw.WriteField("signature", sig); err != nil {
		return Asset{}, fmt.Errorf("write field signature: %w", err)
	}
	fw, err := mw.CreateFormFile("file", filepath.Base(localPath))
	if err != nil {
		return Asset{}, fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(fw, f); err != nil {
		return Asset{}, fmt.Errorf("copy file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return Asset{}, fmt.Errorf("finish multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/upload", &body)
	if err != nil {
		return Asset{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("blob.upload.send_error", "path", localPath, "error", err)
		return Asset{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		c.logger.Error("blob.upload.failed", "path", localPath, "status", resp.StatusCode)
		return Asset{}, fmt.Errorf("blob upload: non-2xx status: %d", resp.StatusCode)
	}

	var out uploadResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return Asset{}, fmt.Errorf("decode upload response: %w", err)
	}
	c.logger.Debug("blob.upload.ok",
		"path", localPath,
		"asset_id", out.PublicID,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Asset{ID: out.PublicID, URL: out.SecureURL}, nil
}

// Delete removes an asset by id.
func (c *Client) Delete(ctx context.Context, assetID string) error {
	ts := strconv.FormatInt(c.now().UTC().Unix(), 10)
	params := map[string]string{
		"public_id": assetID,
		"timestamp": ts,
	}
	sig := Signature(params, c.cfg.APISecret)

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	form.Set("api_key", c.cfg.APIKey)
	form.Set("signature", sig)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/destroy", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("blob.delete.send_error", "asset_id", assetID, "error", err)
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		c.logger.Error("blob.delete.failed", "asset_id", assetID, "status", resp.StatusCode)
		return fmt.Errorf("blob delete: non-2xx status: %d", resp.StatusCode)
	}
	c.logger.Debug("blob.delete.ok", "asset_id", assetID)
	return nil
}

// Fetch downloads a stored image by its URL.
func (c *Client) Fetch(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("blob fetch: non-2xx status: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
