package share

import (
	"strings"
	"testing"

	"github.com/carotene/sharess-go/types"
)

var testImage = types.ImageRecord{
	FilePath: "/tmp/570/screenshots/shot.jpg",
	FileName: "shot.jpg",
	AppID:    "570",
}

func newTestSession() *Session {
	s := NewSession("http")
	s.SetEndpoint("192.0.2.10", 40000)
	return s
}

func TestStartRequiresEndpoint(t *testing.T) {
	s := NewSession("http")
	if _, err := s.Start(testImage); err == nil {
		t.Error("Expected error when the server endpoint is not set")
	}
}

func TestStartReturnsResolvableURL(t *testing.T) {
	s := newTestSession()
	url, err := s.Start(testImage)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	const prefix = "http://192.0.2.10:40000/"
	if !strings.HasPrefix(url, prefix) {
		t.Fatalf("Unexpected URL %q", url)
	}
	token := strings.TrimPrefix(url, prefix)
	if len(token) != 36 {
		t.Errorf("Expected a 36-char token, got %d chars", len(token))
	}

	image, ok := s.Resolve(token)
	if !ok {
		t.Fatal("Expected active token to resolve")
	}
	if image != testImage {
		t.Errorf("Resolved wrong image: %+v", image)
	}
	if !s.IsValid(token) {
		t.Error("Expected IsValid for the active token")
	}
	if s.IsValid("not-the-token") {
		t.Error("Expected IsValid false for a wrong token")
	}
}

func TestSuccessiveTokensDiffer(t *testing.T) {
	s := newTestSession()
	first, _ := s.Start(testImage)
	second, _ := s.Start(testImage)
	if first == second {
		t.Error("Two successive starts produced the same URL")
	}
}

func TestSupersessionInvalidatesOldToken(t *testing.T) {
	s := newTestSession()
	imageB := types.ImageRecord{FilePath: "/tmp/440/screenshots/other.jpg", FileName: "other.jpg", AppID: "440"}

	urlA, _ := s.Start(testImage)
	tokenA := strings.TrimPrefix(urlA, "http://192.0.2.10:40000/")
	urlB, _ := s.Start(imageB)
	tokenB := strings.TrimPrefix(urlB, "http://192.0.2.10:40000/")

	if _, ok := s.Resolve(tokenA); ok {
		t.Error("Superseded token should no longer resolve")
	}
	image, ok := s.Resolve(tokenB)
	if !ok || image != imageB {
		t.Errorf("Expected new token to resolve to the new image, got %+v (ok=%v)", image, ok)
	}
}

func TestStopClearsShare(t *testing.T) {
	s := newTestSession()
	url, _ := s.Start(testImage)
	token := strings.TrimPrefix(url, "http://192.0.2.10:40000/")

	s.Stop()
	if _, ok := s.Resolve(token); ok {
		t.Error("Token should not resolve after Stop")
	}
	if _, _, active := s.Current(); active {
		t.Error("Session should be inactive after Stop")
	}

	// Stop with nothing shared is a no-op.
	s.Stop()
}

func TestCurrentReportsActiveShare(t *testing.T) {
	s := newTestSession()
	if _, _, active := s.Current(); active {
		t.Error("Fresh session should be inactive")
	}
	if s.URL() != "" {
		t.Error("Fresh session should have no URL")
	}

	url, _ := s.Start(testImage)
	image, currentURL, active := s.Current()
	if !active || currentURL != url || image != testImage {
		t.Errorf("Current mismatch: %+v %q %v", image, currentURL, active)
	}
	if s.URL() != url {
		t.Errorf("URL mismatch: %q vs %q", s.URL(), url)
	}
}
