// Package handler translates form submissions into repository calls and
// redirects or rendered pages.
package handler

import (
	"net/http"

	"academico/internal/entity"
)

// Repository surfaces consumed by the handlers. The concrete implementations
// live in internal/repository; tests substitute in-memory fakes.
type UserStore interface {
	GetByRA(ra string) (entity.User, error)
	ListStudents() ([]entity.User, error)
	Seed(u entity.User) error
}

type GradeStore interface {
	Add(g entity.Grade) (entity.Grade, error)
	ListByStudent(alunoRA string) ([]entity.Grade, error)
}

type AbsenceStore interface {
	Add(a entity.Absence) (entity.Absence, error)
	ListByStudent(alunoRA string) ([]entity.Absence, error)
}

func redirectByRole(w http.ResponseWriter, r *http.Request, role string) {
	switch role {
	case entity.RoleProfessor:
		http.Redirect(w, r, "/professor", http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/aluno", http.StatusSeeOther)
	}
}
