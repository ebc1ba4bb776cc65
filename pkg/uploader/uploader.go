package uploader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Client relays product images to a Cloudinary-style media host and returns
// the public URL the host assigns. One request per upload, no retry.
type Client struct {
	uploadURL string
	preset    string
	folder    string
	http      *http.Client
}

// Config holds the media host settings for unsigned uploads.
type Config struct {
	// BaseURL overrides the Cloudinary API endpoint, used by tests.
	BaseURL   string
	CloudName string
	Preset    string
	Folder    string
}

// NewClient creates an upload client for the configured cloud.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = "https://api.cloudinary.com"
	}
	return &Client{
		uploadURL: fmt.Sprintf("%s/v1_1/%s/image/upload", base, cfg.CloudName),
		preset:    cfg.Preset,
		folder:    cfg.Folder,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends one image file to the media host and returns its public URL.
func (c *Client) Upload(filename string, file io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if err := writer.WriteField("upload_preset", c.preset); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if c.folder != "" {
		if err := writer.WriteField("folder", c.folder); err != nil {
			return "", fmt.Errorf("failed to build upload form: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if result.Error.Message != "" {
			return "", fmt.Errorf("media host rejected upload: %s", result.Error.Message)
		}
		return "", fmt.Errorf("media host returned status %d", resp.StatusCode)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("media host response missing secure_url")
	}
	return result.SecureURL, nil
}
