package assets

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/RexKizzy22/rex-properties/internal/core/domain"
	"github.com/RexKizzy22/rex-properties/internal/core/ports"
)

var testConfig = Config{
	CloudName: "test-cloud",
	APIKey:    "key-123",
	APISecret: "secret-456",
	Folder:    "rex-properties",
}

func TestCloudinaryUploader_Upload_Success(t *testing.T) {
	var received []map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/image/upload" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		received = append(received, map[string]string{
			"file":      r.PostFormValue("file"),
			"folder":    r.PostFormValue("folder"),
			"api_key":   r.PostFormValue("api_key"),
			"signature": r.PostFormValue("signature"),
			"timestamp": r.PostFormValue("timestamp"),
		})
		fmt.Fprintf(w, `{"secure_url":"https://res.cloudinary.com/test-cloud/img_%d.png"}`, len(received))
	}))
	defer server.Close()

	u := NewCloudinaryUploaderWithBaseURL(testConfig, server.URL, zerolog.Nop())

	urls, err := u.Upload(context.Background(), []ports.ImageUpload{
		{Filename: "front.png", Data: []byte("front")},
		{Filename: "back.png", Data: []byte("back")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(urls) != 2 {
		t.Fatalf("expected 2 urls, got %d", len(urls))
	}
	if urls[0] != "https://res.cloudinary.com/test-cloud/img_1.png" {
		t.Errorf("urls must come back in upload order: %v", urls)
	}

	first := received[0]
	if !strings.HasPrefix(first["file"], "data:image/png;base64,") {
		t.Errorf("file must be a base64 data uri: %q", first["file"][:30])
	}
	if first["folder"] != "rex-properties" {
		t.Errorf("folder: %q", first["folder"])
	}
	if first["api_key"] != "key-123" {
		t.Errorf("api_key: %q", first["api_key"])
	}

	// Recompute the expected signature: SHA-1 over sorted params excluding
	// file, api_key, and signature, plus the secret.
	payload := "folder=" + first["folder"] + "&timestamp=" + first["timestamp"] + testConfig.APISecret
	sum := sha1.Sum([]byte(payload))
	if first["signature"] != hex.EncodeToString(sum[:]) {
		t.Errorf("signature mismatch: %q", first["signature"])
	}
}

func TestCloudinaryUploader_Upload_RejectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"Invalid Signature"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	u := NewCloudinaryUploaderWithBaseURL(testConfig, server.URL, zerolog.Nop())

	_, err := u.Upload(context.Background(), []ports.ImageUpload{{Filename: "front.png", Data: []byte("x")}})
	if !errors.Is(err, domain.ErrExternalService) {
		t.Fatalf("expected ErrExternalService, got %v", err)
	}
}

func TestCloudinaryUploader_Upload_FirstFailureAbortsBatch(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	u := NewCloudinaryUploaderWithBaseURL(testConfig, server.URL, zerolog.Nop())

	_, err := u.Upload(context.Background(), []ports.ImageUpload{
		{Filename: "a.png", Data: []byte("a")},
		{Filename: "b.png", Data: []byte("b")},
	})
	if !errors.Is(err, domain.ErrExternalService) {
		t.Fatalf("expected ErrExternalService, got %v", err)
	}
	if calls != 1 {
		t.Errorf("the batch must stop at the first failure, got %d calls", calls)
	}
}

func TestCloudinaryUploader_Upload_MissingSecureURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	u := NewCloudinaryUploaderWithBaseURL(testConfig, server.URL, zerolog.Nop())

	_, err := u.Upload(context.Background(), []ports.ImageUpload{{Filename: "a.png", Data: []byte("a")}})
	if !errors.Is(err, domain.ErrExternalService) {
		t.Fatalf("expected ErrExternalService for empty secure_url, got %v", err)
	}
}
