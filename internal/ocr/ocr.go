// Package ocr consumes the external text-from-image capability. The
// engine itself is a collaborator; this package only speaks its wire
// protocol and normalizes its responses.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// TextExtractor is the text-from-image capability consumed by the scan
// pipeline. An empty string with a nil error means the engine saw no
// text; it is not a failure.
type TextExtractor interface {
	ExtractText(ctx context.Context, imageRef string) (string, error)
}

// Config holds OCR service connection settings.
type Config struct {
	Endpoint string
	APIKey   string
	Language string
	Timeout  time.Duration
}

// Client calls an HTTP OCR service with a stored image URL.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type extractRequest struct {
	ImageURL string `json:"image_url"`
	Language string `json:"language,omitempty"`
}

type extractResponse struct {
	Text string `json:"text"`
}

// ExtractText posts the image reference and returns the recognized text.
func (c *Client) ExtractText(ctx context.Context, imageRef string) (string, error) {
	reqID := uuid.New().String()
	start := time.Now()

	bs, err := json.Marshal(extractRequest{ImageURL: imageRef, Language: c.cfg.Language})
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(bs))
	if err != nil {
		c.logger.Error("ocr.http.build_request_error", "req_id", reqID, "error", err)
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("ocr.http.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Warn("ocr.http.response_body_close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	c.logger.Debug("ocr.http.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("ocr service: non-2xx status: %d", resp.StatusCode)
	}

	var out extractResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode ocr response: %w", err)
	}
	return out.Text, nil
}

// Noop is a TextExtractor that recognizes nothing. Used when no OCR
// endpoint is configured; every page then settles as Other.
type Noop struct{}

func (Noop) ExtractText(context.Context, string) (string, error) { return "", nil }
