package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"github.com/carotene/sharess-go/catalog"
	"github.com/carotene/sharess-go/share"
	"github.com/carotene/sharess-go/types"
)

type stubResolver map[string]string

func (r stubResolver) TitleFor(appID string) (string, bool) {
	title, ok := r[appID]
	return title, ok
}

// setupShareEnv builds a catalog over a real temp screenshot tree and a
// session with a known endpoint, plus a router with the share endpoints.
func setupShareEnv(t *testing.T) (*gin.Engine, *share.Session) {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "userdata", "111", "760", "remote", "570", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create screenshot dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "shot.jpg"), []byte("jpeg"), 0o644); err != nil {
		t.Fatalf("Failed to write screenshot: %v", err)
	}

	cat := catalog.New(stubResolver{"570": "Dota 2"})
	pattern := filepath.Join(root, "userdata", "*", "*", "remote", "*", "screenshots", "*.jpg")
	if err := cat.Scan(pattern); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	session := share.NewSession("http")
	session.SetEndpoint("127.0.0.1", 8080)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewShareController(session, cat, nil)
	router.POST("/api/self/v1/share", ctrl.HandleShare)
	router.DELETE("/api/self/v1/stop-share", ctrl.HandleStopShare)
	router.GET("/api/self/v1/status", ctrl.HandleStatus)
	router.GET("/api/self/v1/create-qr-code", ctrl.HandleQRCode)
	return router, session
}

func postShare(t *testing.T, router *gin.Engine, body types.ShareRequest) *httptest.ResponseRecorder {
	t.Helper()
	payload, _ := sonic.Marshal(body)
	req, _ := http.NewRequest("POST", "/api/self/v1/share", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestShareStartAndStatus(t *testing.T) {
	router, session := setupShareEnv(t)

	w := postShare(t, router, types.ShareRequest{AppID: "570", FileName: "shot.jpg"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response struct {
		Data types.ShareResponse `json:"data"`
	}
	if err := sonic.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if !strings.HasPrefix(response.Data.URL, "http://127.0.0.1:8080/") {
		t.Errorf("Unexpected share URL %q", response.Data.URL)
	}
	if response.Data.FileName != "shot.jpg" {
		t.Errorf("Unexpected filename %q", response.Data.FileName)
	}
	if _, _, active := session.Current(); !active {
		t.Error("Session should be active after share")
	}

	req, _ := http.NewRequest("GET", "/api/self/v1/status", nil)
	sw := httptest.NewRecorder()
	router.ServeHTTP(sw, req)
	var statusResponse struct {
		Data types.ShareStatus `json:"data"`
	}
	if err := sonic.Unmarshal(sw.Body.Bytes(), &statusResponse); err != nil {
		t.Fatalf("Failed to parse status: %v", err)
	}
	if !statusResponse.Data.Active || statusResponse.Data.FileName != "shot.jpg" || statusResponse.Data.AppID != "570" {
		t.Errorf("Unexpected status: %+v", statusResponse.Data)
	}
}

func TestShareUnknownImage(t *testing.T) {
	router, _ := setupShareEnv(t)
	w := postShare(t, router, types.ShareRequest{AppID: "570", FileName: "missing.jpg"})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestShareInvalidBody(t *testing.T) {
	router, _ := setupShareEnv(t)

	req, _ := http.NewRequest("POST", "/api/self/v1/share", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	w = postShare(t, router, types.ShareRequest{AppID: "570"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for missing filename, got %d", w.Code)
	}
}

func TestStopShareIsIdempotent(t *testing.T) {
	router, session := setupShareEnv(t)
	postShare(t, router, types.ShareRequest{AppID: "570", FileName: "shot.jpg"})

	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest("DELETE", "/api/self/v1/stop-share", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("Stop attempt %d: expected status 200, got %d", i+1, w.Code)
		}
	}
	if _, _, active := session.Current(); active {
		t.Error("Session should be inactive after stop")
	}
}

func TestQRCodeRequiresActiveShare(t *testing.T) {
	router, _ := setupShareEnv(t)

	req, _ := http.NewRequest("GET", "/api/self/v1/create-qr-code", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 without a share, got %d", w.Code)
	}

	postShare(t, router, types.ShareRequest{AppID: "570", FileName: "shot.jpg"})
	req, _ = http.NewRequest("GET", "/api/self/v1/create-qr-code?size=128", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("Expected image/png, got %q", got)
	}
	if w.Body.Len() == 0 {
		t.Error("Expected a non-empty PNG body")
	}
}
