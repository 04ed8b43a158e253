// Package session wraps the cookie store holding the authenticated identity
// and the one-shot notices shown after redirects.
package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "app-session"

// Identity is the minimal record kept for a logged-in user. Nothing else,
// in particular no password material, ever goes into the session.
type Identity struct {
	RA   string
	Name string
	Role string
}

// Notice is a flash message consumed by the next rendered page.
type Notice struct {
	Category string
	Text     string
}

var categories = []string{"warning", "error", "success", "info"}

type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// Identity returns the identity stored in the request's session, if any.
func (m *Manager) Identity(r *http.Request) (Identity, bool) {
	s, _ := m.store.Get(r, sessionName)
	ra, ok := s.Values["ra"].(string)
	if !ok || ra == "" {
		return Identity{}, false
	}
	name, _ := s.Values["name"].(string)
	role, _ := s.Values["role"].(string)
	return Identity{RA: ra, Name: name, Role: role}, true
}

func (m *Manager) SetIdentity(w http.ResponseWriter, r *http.Request, id Identity) error {
	s, _ := m.store.Get(r, sessionName)
	s.Values["ra"] = id.RA
	s.Values["name"] = id.Name
	s.Values["role"] = id.Role
	return s.Save(r, w)
}

// Clear drops every session value. The cookie itself stays alive so a flash
// written right after (logout notice) still reaches the next page.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.store.Get(r, sessionName)
	for k := range s.Values {
		delete(s.Values, k)
	}
	return s.Save(r, w)
}

func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, category, text string) {
	s, _ := m.store.Get(r, sessionName)
	s.AddFlash(text, "flash-"+category)
	s.Save(r, w)
}

// Flashes pops all pending notices, oldest categories first.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []Notice {
	s, _ := m.store.Get(r, sessionName)
	var notices []Notice
	for _, cat := range categories {
		for _, f := range s.Flashes("flash-" + cat) {
			if text, ok := f.(string); ok {
				notices = append(notices, Notice{Category: cat, Text: text})
			}
		}
	}
	s.Save(r, w)
	return notices
}
