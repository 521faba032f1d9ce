// Package assets implements the external asset-host collaborator. Images are
// uploaded to Cloudinary before a listing is persisted; only the resulting
// secure URLs reach the listing store.
package assets

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/RexKizzy22/rex-properties/internal/core/domain"
	"github.com/RexKizzy22/rex-properties/internal/core/ports"
)

const uploadTimeout = 30 * time.Second

// Config holds the Cloudinary account settings.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// CloudinaryUploader uploads images through the Cloudinary HTTP API using
// signed requests.
type CloudinaryUploader struct {
	cfg     Config
	client  *http.Client
	baseURL string
	logger  zerolog.Logger
}

func NewCloudinaryUploader(cfg Config, logger zerolog.Logger) *CloudinaryUploader {
	return &CloudinaryUploader{
		cfg:     cfg,
		client:  &http.Client{Timeout: uploadTimeout},
		baseURL: "https://api.cloudinary.com/v1_1/" + cfg.CloudName,
		logger:  logger,
	}
}

// NewCloudinaryUploaderWithBaseURL is used by tests to point the uploader at
// a local server.
func NewCloudinaryUploaderWithBaseURL(cfg Config, baseURL string, logger zerolog.Logger) *CloudinaryUploader {
	u := NewCloudinaryUploader(cfg, logger)
	u.baseURL = strings.TrimRight(baseURL, "/")
	return u
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// Upload pushes all images and returns their public URLs in order. The first
// failure aborts the batch so the caller never persists a partial image set.
func (u *CloudinaryUploader) Upload(ctx context.Context, images []ports.ImageUpload) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		uploaded, err := u.uploadOne(ctx, img)
		if err != nil {
			return nil, err
		}
		urls = append(urls, uploaded)
	}
	return urls, nil
}

func (u *CloudinaryUploader) uploadOne(ctx context.Context, img ports.ImageUpload) (string, error) {
	params := url.Values{}
	params.Set("file", "data:image/png;base64,"+base64.StdEncoding.EncodeToString(img.Data))
	params.Set("folder", u.cfg.Folder)
	params.Set("timestamp", strconv.FormatInt(time.Now().Unix(), 10))
	params.Set("api_key", u.cfg.APIKey)
	params.Set("signature", u.sign(params))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.baseURL+"/image/upload", strings.NewReader(params.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: build upload request: %v", domain.ErrExternalService, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: upload %s: %v", domain.ErrExternalService, img.Filename, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		u.logger.Error().Int("status", resp.StatusCode).Str("filename", img.Filename).Msg("asset host rejected upload")
		return "", fmt.Errorf("%w: upload %s: status %d", domain.ErrExternalService, img.Filename, resp.StatusCode)
	}

	var body uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decode upload response: %v", domain.ErrExternalService, err)
	}
	if body.SecureURL == "" {
		return "", fmt.Errorf("%w: upload response missing secure_url", domain.ErrExternalService)
	}
	return body.SecureURL, nil
}

// sign computes the Cloudinary request signature: SHA-1 over the sorted
// parameters (excluding file, api_key, and the signature itself) plus the
// API secret.
func (u *CloudinaryUploader) sign(params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == "file" || k == "api_key" || k == "signature" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params.Get(k))
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + u.cfg.APISecret))
	return hex.EncodeToString(sum[:])
}
