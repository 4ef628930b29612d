package share

import (
	"crypto/subtle"
	"fmt"
	"sync"

	"github.com/carotene/sharess-go/tool"
	"github.com/carotene/sharess-go/types"
)

// Session is the single mutable share slot: at most one (token, image) pair is
// active at any instant. Starting a new share silently supersedes the previous
// token; an in-flight download using the old token starts failing with 404.
// The HTTP layer reads it on every inbound request, so all access goes through
// the mutex.
type Session struct {
	mu     sync.RWMutex
	scheme string
	host   string
	port   int
	token  string
	image  *types.ImageRecord
}

// NewSession creates an empty session. Share URLs use scheme, "http" when empty.
func NewSession(scheme string) *Session {
	if scheme == "" {
		scheme = "http"
	}
	return &Session{scheme: scheme}
}

// SetEndpoint records the externally reachable address the server bound to.
// Start fails until this has been called.
func (s *Session) SetEndpoint(host string, port int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.host = host
	s.port = port
}

// Start mints a fresh token for image, installs it as the active share, and
// returns the externally visible share URL. Any previous share is superseded
// without a signal.
func (s *Session) Start(image types.ImageRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.host == "" || s.port == 0 {
		return "", fmt.Errorf("share server endpoint not known yet")
	}
	s.token = tool.GenerateShareToken()
	img := image
	s.image = &img
	return s.urlLocked(), nil
}

// Stop clears the active share. Calling it with nothing shared is a no-op.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.image = nil
}

// IsValid reports whether candidate names the currently shared image.
func (s *Session) IsValid(candidate string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matchesLocked(candidate)
}

// Resolve returns the shared image iff candidate matches the active token.
// Absence is the only negative signal.
func (s *Session) Resolve(candidate string) (types.ImageRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.matchesLocked(candidate) || s.image == nil {
		return types.ImageRecord{}, false
	}
	return *s.image, true
}

// Current returns the active image and its share URL, when one is shared.
func (s *Session) Current() (types.ImageRecord, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || s.image == nil {
		return types.ImageRecord{}, "", false
	}
	return *s.image, s.urlLocked(), true
}

// URL returns the share URL of the active token, empty when nothing is shared.
func (s *Session) URL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return ""
	}
	return s.urlLocked()
}

// matchesLocked compares candidate against the active token. Constant-time
// comparison is not strictly required for this threat model, but it is cheap.
func (s *Session) matchesLocked(candidate string) bool {
	if s.token == "" || candidate == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(s.token)) == 1
}

func (s *Session) urlLocked() string {
	return fmt.Sprintf("%s://%s:%d/%s", s.scheme, s.host, s.port, s.token)
}
