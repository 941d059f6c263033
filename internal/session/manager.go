package session

import (
	"context"
	"net/http"
	"time"
)

const CookieName = "library.sid"

// Store is the persistence behind Manager.
type Store interface {
	Create(ctx context.Context, userID string) (string, error)
	Lookup(ctx context.Context, id string) (userID string, ok bool, err error)
	Destroy(ctx context.Context, id string) error
}

// Manager ties the session store to the browser cookie.
type Manager struct {
	store  Store
	codec  *Codec
	ttl    time.Duration
	secure bool
}

func NewManager(store Store, secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		store:  store,
		codec:  NewCodec(secret, ttl),
		ttl:    ttl,
		secure: secure,
	}
}

// Start creates a session for userID and writes the cookie.
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, userID string) error {
	id, err := m.store.Create(ctx, userID)
	if err != nil {
		return err
	}
	value, err := m.codec.Encode(id)
	if err != nil {
		_ = m.store.Destroy(ctx, id)
		return err
	}
	http.SetCookie(w, m.cookie(value, int(m.ttl.Seconds())))
	return nil
}

// Resolve returns the user id bound to the request's session. A missing or
// forged cookie and an expired session all yield ok == false with no error.
func (m *Manager) Resolve(r *http.Request) (userID string, ok bool, err error) {
	id, found := m.sessionID(r)
	if !found {
		return "", false, nil
	}
	return m.store.Lookup(r.Context(), id)
}

// End destroys the session, if any, and clears the cookie. It never fails for
// an absent session.
func (m *Manager) End(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, m.cookie("", -1))
	id, found := m.sessionID(r)
	if !found {
		return nil
	}
	return m.store.Destroy(ctx, id)
}

func (m *Manager) sessionID(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	id, err := m.codec.Decode(c.Value)
	if err != nil {
		return "", false
	}
	return id, true
}

func (m *Manager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
