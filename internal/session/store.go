package session

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the persisted local client state: who is logged in and the
// bearer token every authenticated request carries.
type Session struct {
	Username    string `json:"loggedInUsername"`
	AccessToken string `json:"accessToken"`
}

func (s Session) LoggedIn() bool {
	return s.Username != "" && s.AccessToken != ""
}

// Store keeps the session in memory and mirrors it to a file so a restart
// picks up an existing login. It is handed to collaborators explicitly
// instead of being looked up ambiently.
type Store struct {
	mu   sync.RWMutex
	path string
	cur  Session
	now  func() time.Time
}

// NewStore loads the persisted session from path. A token that is already
// expired is dropped on load so no request goes out with a dead bearer.
func NewStore(path string) *Store {
	s := &Store{path: path, now: time.Now}
	s.load()
	return s
}

// Set stores the session after a successful login and persists it.
func (s *Store) Set(username, accessToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = Session{Username: username, AccessToken: accessToken}
	return s.persist()
}

// Clear wipes the session on logout or password change.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = Session{}
	return s.persist()
}

// Current returns a copy of the session state.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Token returns the access token, empty for anonymous sessions.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.AccessToken
}

func (s *Store) load() {
	if s.path == "" {
		return
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return
	}
	if sess.AccessToken != "" {
		if exp, err := TokenExpiry(sess.AccessToken); err == nil && !exp.IsZero() && exp.Before(s.now()) {
			return
		}
	}
	s.cur = sess
}

func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}
	if !s.cur.LoggedIn() {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	raw, err := json.Marshal(s.cur)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// TokenExpiry peeks at the token's exp claim without verifying the
// signature; verification is the backend's job, the client only needs to
// know when to drop a stale session.
func TokenExpiry(token string) (time.Time, error) {
	parser := jwt.NewParser()
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}
