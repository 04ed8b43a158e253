package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"academico/internal/apperror"
	"academico/internal/entity"
	"academico/internal/middleware"
	"academico/internal/session"
)

type fakeUsers struct {
	users     map[string]entity.User
	seedCalls int
}

func newFakeUsers(users ...entity.User) *fakeUsers {
	f := &fakeUsers{users: map[string]entity.User{}}
	for _, u := range users {
		f.users[u.RA] = u
	}
	return f
}

func (f *fakeUsers) GetByRA(ra string) (entity.User, error) {
	u, ok := f.users[ra]
	if !ok {
		return entity.User{}, apperror.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) ListStudents() ([]entity.User, error) {
	var out []entity.User
	for _, u := range f.users {
		if u.Role == entity.RoleAluno {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsers) Seed(u entity.User) error {
	f.seedCalls++
	if _, ok := f.users[u.RA]; ok {
		return nil
	}
	f.users[u.RA] = u
	return nil
}

// fakeGrades appends with a clock that advances one second per entry, so
// insertion order maps onto distinct timestamps.
type fakeGrades struct {
	entries []entity.Grade
	now     time.Time
}

func (f *fakeGrades) Add(g entity.Grade) (entity.Grade, error) {
	if err := g.Validate(); err != nil {
		return entity.Grade{}, err
	}
	g.ID = uuid.NewString()
	f.now = f.now.Add(time.Second)
	g.CreatedAt = f.now
	f.entries = append(f.entries, g)
	return g, nil
}

func (f *fakeGrades) ListByStudent(alunoRA string) ([]entity.Grade, error) {
	var out []entity.Grade
	for _, g := range f.entries {
		if g.AlunoRA == alunoRA {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeAbsences struct {
	entries []entity.Absence
	now     time.Time
}

func (f *fakeAbsences) Add(a entity.Absence) (entity.Absence, error) {
	if err := a.Validate(); err != nil {
		return entity.Absence{}, err
	}
	a.ID = uuid.NewString()
	f.now = f.now.Add(time.Second)
	a.Date = f.now
	f.entries = append(f.entries, a)
	return a, nil
}

func (f *fakeAbsences) ListByStudent(alunoRA string) ([]entity.Absence, error) {
	var out []entity.Absence
	for _, a := range f.entries {
		if a.AlunoRA == alunoRA {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// formRequest builds a POST with an urlencoded body, the way the browser
// submits the dashboard forms.
func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// asIdentity attaches the identity snapshot the access guard would inject.
func asIdentity(req *http.Request, id session.Identity) *http.Request {
	return req.WithContext(middleware.WithIdentity(req.Context(), id))
}

func professorIdentity() session.Identity {
	return session.Identity{RA: "P654321", Name: "Prof. Exemplo", Role: entity.RoleProfessor}
}

func alunoUser() entity.User {
	return entity.User{RA: "A123456", Name: "Aluno Exemplo", Role: entity.RoleAluno}
}

// lastCookies keeps the final Set-Cookie per name, like a browser jar.
func lastCookies(rec *httptest.ResponseRecorder) []*http.Cookie {
	jar := map[string]*http.Cookie{}
	var names []string
	for _, c := range rec.Result().Cookies() {
		if _, seen := jar[c.Name]; !seen {
			names = append(names, c.Name)
		}
		jar[c.Name] = c
	}
	out := make([]*http.Cookie, 0, len(names))
	for _, name := range names {
		out = append(out, jar[name])
	}
	return out
}

// pendingNotices replays the response cookies onto a fresh request and pops
// whatever the next page would show.
func pendingNotices(t *testing.T, sm *session.Manager, rec *httptest.ResponseRecorder) []session.Notice {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range lastCookies(rec) {
		req.AddCookie(c)
	}
	return sm.Flashes(httptest.NewRecorder(), req)
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

func requireRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := rec.Header().Get("Location"); got != location {
		t.Fatalf("redirect = %q, want %q", got, location)
	}
}
