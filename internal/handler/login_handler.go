package handler

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"academico/internal/apperror"
	"academico/internal/auth"
	"academico/internal/session"
	"academico/internal/web"
)

type LoginHandler struct {
	users UserStore
	sm    *session.Manager
	tmpl  *template.Template
}

func NewLoginHandler(users UserStore, sm *session.Manager) *LoginHandler {
	return &LoginHandler{
		users: users,
		sm:    sm,
		tmpl:  web.Template("login.html"),
	}
}

// LoginPage serves the public entry point. An already-authenticated session
// is sent straight to its dashboard.
func (h *LoginHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.sm.Identity(r); ok {
		redirectByRole(w, r, id.Role)
		return
	}

	data := map[string]interface{}{
		"Title":   "Portal Acadêmico",
		"Notices": h.sm.Flashes(w, r),
	}
	h.tmpl.Execute(w, data)
}

// Login verifies the submitted RA and senha, fills the session and redirects
// to the role-appropriate dashboard. Unknown RA and wrong senha keep their
// distinct notices.
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Erro ao processar o formulário", http.StatusBadRequest)
		return
	}

	ra := strings.TrimSpace(r.FormValue("ra"))
	senha := r.FormValue("senha")

	user, err := h.users.GetByRA(ra)
	if errors.Is(err, apperror.ErrUserNotFound) {
		h.sm.Flash(w, r, "error", "Usuário não encontrado.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("ra", ra).Msg("login lookup failed")
		http.Error(w, "Erro interno", http.StatusInternalServerError)
		return
	}

	if !auth.CheckPasswordHash(senha, user.PasswordHash) {
		h.sm.Flash(w, r, "error", "Senha inválida.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	id := session.Identity{RA: user.RA, Name: user.Name, Role: user.Role}
	if err := h.sm.SetIdentity(w, r, id); err != nil {
		log.Error().Err(err).Str("ra", user.RA).Msg("session save failed")
		http.Error(w, "Erro interno", http.StatusInternalServerError)
		return
	}

	log.Info().Str("ra", user.RA).Str("role", user.Role).Msg("login ok")
	redirectByRole(w, r, user.Role)
}

// Logout clears the whole session and returns to the login page.
func (h *LoginHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sm.Clear(w, r); err != nil {
		log.Error().Err(err).Msg("session clear failed")
	}
	h.sm.Flash(w, r, "info", "Sessão encerrada.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
