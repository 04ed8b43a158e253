package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"academico/internal/auth"
	"academico/internal/entity"
	"academico/internal/session"
)

func seededUsers(t *testing.T) *fakeUsers {
	t.Helper()
	alunoHash, err := auth.HashPassword("aluno123")
	if err != nil {
		t.Fatal(err)
	}
	profHash, err := auth.HashPassword("prof123")
	if err != nil {
		t.Fatal(err)
	}
	return newFakeUsers(
		entity.User{RA: "A123456", Name: "Aluno Exemplo", Role: entity.RoleAluno, PasswordHash: alunoHash},
		entity.User{RA: "P654321", Name: "Prof. Exemplo", Role: entity.RoleProfessor, PasswordHash: profHash},
	)
}

func sessionIdentity(t *testing.T, sm *session.Manager, rec *httptest.ResponseRecorder) (session.Identity, bool) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range lastCookies(rec) {
		req.AddCookie(c)
	}
	return sm.Identity(req)
}

func TestLoginProfessorRedirectsToProfessorDashboard(t *testing.T) {
	sm := session.NewManager("test-secret")
	h := NewLoginHandler(seededUsers(t), sm)

	rec := httptest.NewRecorder()
	h.Login(rec, formRequest("/login", url.Values{"ra": {"P654321"}, "senha": {"prof123"}}))

	requireRedirect(t, rec, "/professor")

	id, ok := sessionIdentity(t, sm, rec)
	if !ok {
		t.Fatal("no identity in session after login")
	}
	want := session.Identity{RA: "P654321", Name: "Prof. Exemplo", Role: entity.RoleProfessor}
	if id != want {
		t.Errorf("identity = %+v, want %+v", id, want)
	}
}

func TestLoginAlunoRedirectsToAlunoDashboard(t *testing.T) {
	sm := session.NewManager("test-secret")
	h := NewLoginHandler(seededUsers(t), sm)

	rec := httptest.NewRecorder()
	h.Login(rec, formRequest("/login", url.Values{"ra": {"A123456"}, "senha": {"aluno123"}}))

	requireRedirect(t, rec, "/aluno")
	if id, ok := sessionIdentity(t, sm, rec); !ok || id.Role != entity.RoleAluno {
		t.Errorf("identity = %+v (ok=%v), want aluno", id, ok)
	}
}

func TestLoginUnknownRA(t *testing.T) {
	sm := session.NewManager("test-secret")
	h := NewLoginHandler(seededUsers(t), sm)

	rec := httptest.NewRecorder()
	h.Login(rec, formRequest("/login", url.Values{"ra": {"Z000000"}, "senha": {"whatever"}}))

	requireRedirect(t, rec, "/")
	if _, ok := sessionIdentity(t, sm, rec); ok {
		t.Error("session populated after failed login")
	}

	notices := pendingNotices(t, sm, rec)
	if len(notices) != 1 || notices[0].Text != "Usuário não encontrado." {
		t.Errorf("notices = %+v, want 'Usuário não encontrado.'", notices)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	sm := session.NewManager("test-secret")
	h := NewLoginHandler(seededUsers(t), sm)

	rec := httptest.NewRecorder()
	h.Login(rec, formRequest("/login", url.Values{"ra": {"A123456"}, "senha": {"errada"}}))

	requireRedirect(t, rec, "/")
	if _, ok := sessionIdentity(t, sm, rec); ok {
		t.Error("session populated after failed login")
	}

	notices := pendingNotices(t, sm, rec)
	if len(notices) != 1 || notices[0].Text != "Senha inválida." {
		t.Errorf("notices = %+v, want 'Senha inválida.'", notices)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	sm := session.NewManager("test-secret")
	h := NewLoginHandler(seededUsers(t), sm)

	rec := httptest.NewRecorder()
	h.Login(rec, formRequest("/login", url.Values{"ra": {"A123456"}, "senha": {"aluno123"}}))

	out := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	for _, c := range lastCookies(rec) {
		req.AddCookie(c)
	}
	h.Logout(out, req)

	requireRedirect(t, out, "/")
	if _, ok := sessionIdentity(t, sm, out); ok {
		t.Error("identity survived logout")
	}

	notices := pendingNotices(t, sm, out)
	if len(notices) != 1 || notices[0].Category != "info" {
		t.Errorf("notices = %+v, want one info notice", notices)
	}
}

func TestLoginPageRedirectsAuthenticatedSession(t *testing.T) {
	sm := session.NewManager("test-secret")
	h := NewLoginHandler(seededUsers(t), sm)

	rec := httptest.NewRecorder()
	h.Login(rec, formRequest("/login", url.Values{"ra": {"P654321"}, "senha": {"prof123"}}))

	out := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range lastCookies(rec) {
		req.AddCookie(c)
	}
	h.LoginPage(out, req)

	requireRedirect(t, out, "/professor")
}

func TestLoginPageRendersForAnonymous(t *testing.T) {
	sm := session.NewManager("test-secret")
	h := NewLoginHandler(seededUsers(t), sm)

	rec := httptest.NewRecorder()
	h.LoginPage(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); !containsAll(body, "Portal Acadêmico", `name="ra"`, `name="senha"`) {
		t.Error("login form not rendered")
	}
}
