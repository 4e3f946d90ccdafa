package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestStoreSetPersistsAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	token := signedToken(t, time.Now().Add(time.Hour))

	store := NewStore(path)
	if err := store.Set("an.nguyen", token); err != nil {
		t.Fatalf("set: %v", err)
	}

	reloaded := NewStore(path)
	sess := reloaded.Current()
	if !sess.LoggedIn() || sess.Username != "an.nguyen" || sess.AccessToken != token {
		t.Fatalf("reloaded session = %+v", sess)
	}
}

func TestStoreDropsExpiredTokenOnLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	token := signedToken(t, time.Now().Add(-time.Hour))

	store := NewStore(path)
	if err := store.Set("an.nguyen", token); err != nil {
		t.Fatalf("set: %v", err)
	}

	reloaded := NewStore(path)
	if reloaded.Current().LoggedIn() {
		t.Fatalf("expired token should not restore a session")
	}
}

func TestStoreClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)
	if err := store.Set("an.nguyen", signedToken(t, time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("set: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if store.Current().LoggedIn() {
		t.Fatalf("session should be empty after clear")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("session file should be removed, stat err = %v", err)
	}
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	got, err := TokenExpiry(signedToken(t, exp))
	if err != nil {
		t.Fatalf("expiry: %v", err)
	}
	if !got.Equal(exp) {
		t.Fatalf("expiry = %v, want %v", got, exp)
	}

	if _, err := TokenExpiry("not-a-jwt"); err == nil {
		t.Fatalf("malformed token should error")
	}
}
