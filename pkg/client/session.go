package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/ramidarshan07/wealthtrack/internal/dto"
)

// Store is the durable key-value storage behind a session. Implementations
// must tolerate missing keys (return "" without error).
type Store interface {
	Get(key string) string
	Set(key, value string)
	Delete(key string)
	Clear()
}

const (
	keyToken           = "token"
	keyRememberedEmail = "remembered_email"
)

// Session holds the authentication state of one user of the SDK. It
// implements TokenProvider for the gateway.
type Session struct {
	store Store
}

// NewSession creates a session backed by the given store.
func NewSession(store Store) *Session {
	return &Session{store: store}
}

// Token returns the current bearer token, or "" when logged out.
func (s *Session) Token() string {
	return s.store.Get(keyToken)
}

// LoggedIn reports whether a token is present.
func (s *Session) LoggedIn() bool {
	return s.Token() != ""
}

// RememberedEmail returns the email saved by a previous "remember me" login.
// Passwords are never persisted.
func (s *Session) RememberedEmail() string {
	return s.store.Get(keyRememberedEmail)
}

// Teardown clears all session state.
func (s *Session) Teardown() {
	s.store.Clear()
}

// Auth wraps the public authentication endpoints.
type Auth struct {
	client  *Client
	session *Session
}

// NewAuth creates the auth API surface.
func NewAuth(client *Client, session *Session) *Auth {
	return &Auth{client: client, session: session}
}

// Login authenticates with email/password and stores the returned token.
// With remember set, the email (and only the email) is kept for pre-filling
// the next login form.
func (a *Auth) Login(ctx context.Context, email, password string, remember bool) (*dto.AuthResponse, error) {
	var res dto.AuthResponse
	req := dto.LoginRequest{Email: email, Password: password}
	if _, err := a.client.do(ctx, http.MethodPost, "/auth/login", req, &res, false); err != nil {
		return nil, err
	}

	a.session.store.Set(keyToken, res.Token)
	if remember {
		a.session.store.Set(keyRememberedEmail, email)
	} else {
		a.session.store.Delete(keyRememberedEmail)
	}
	return &res, nil
}

// Register creates an account and stores the returned token.
func (a *Auth) Register(ctx context.Context, name, email, password string) (*dto.AuthResponse, error) {
	var res dto.AuthResponse
	req := dto.RegisterRequest{Name: name, Email: email, Password: password}
	if _, err := a.client.do(ctx, http.MethodPost, "/auth/register", req, &res, false); err != nil {
		return nil, err
	}
	a.session.store.Set(keyToken, res.Token)
	return &res, nil
}

// LoginWithGoogleCode exchanges a Google authorization code for a session.
func (a *Auth) LoginWithGoogleCode(ctx context.Context, code string) (*dto.AuthResponse, error) {
	var res dto.AuthResponse
	req := dto.ExchangeCodeRequest{Code: code}
	if _, err := a.client.do(ctx, http.MethodPost, "/auth/google/exchange-code", req, &res, false); err != nil {
		return nil, err
	}
	a.session.store.Set(keyToken, res.Token)
	return &res, nil
}

// Logout drops the token but keeps the remembered email.
func (a *Auth) Logout() {
	a.session.store.Delete(keyToken)
}

// Init probes a persisted token at startup by fetching the profile. A stale
// token is dropped silently; the caller only learns whether a valid session
// exists.
func (a *Auth) Init(ctx context.Context) (*dto.UserResponse, error) {
	if !a.session.LoggedIn() {
		return nil, nil
	}

	var user dto.UserResponse
	_, err := a.client.get(ctx, "/user/profile", &user)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			a.session.store.Delete(keyToken)
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FileStore is a Store persisted as a JSON file, for CLI and desktop
// consumers of the SDK.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFileStore loads (or lazily creates) a file-backed store at path.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, values: map[string]string{}}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, fmt.Errorf("failed to read session store: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &fs.values); err != nil {
			return nil, fmt.Errorf("failed to parse session store: %w", err)
		}
	}
	return fs, nil
}

func (fs *FileStore) Get(key string) string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.values[key]
}

func (fs *FileStore) Set(key, value string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.values[key] = value
	fs.flush()
}

func (fs *FileStore) Delete(key string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	delete(fs.values, key)
	fs.flush()
}

func (fs *FileStore) Clear() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.values = map[string]string{}
	fs.flush()
}

// flush writes the store to disk. Called with the lock held.
func (fs *FileStore) flush() {
	raw, err := json.Marshal(fs.values)
	if err != nil {
		return
	}
	_ = os.WriteFile(fs.path, raw, 0o600)
}

// MemoryStore is an in-memory Store, used in tests and short-lived tools.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (ms *MemoryStore) Get(key string) string {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.values[key]
}

func (ms *MemoryStore) Set(key, value string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.values[key] = value
}

func (ms *MemoryStore) Delete(key string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.values, key)
}

func (ms *MemoryStore) Clear() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.values = map[string]string{}
}
