package handler

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"academico/internal/middleware"
	"academico/internal/session"
	"academico/internal/web"
)

type AlunoHandler struct {
	grades   GradeStore
	absences AbsenceStore
	sm       *session.Manager
	tmpl     *template.Template
}

func NewAlunoHandler(grades GradeStore, absences AbsenceStore, sm *session.Manager) *AlunoHandler {
	return &AlunoHandler{
		grades:   grades,
		absences: absences,
		sm:       sm,
		tmpl:     web.Template("aluno.html"),
	}
}

// Dashboard renders the session owner's grades and absences, newest first.
func (h *AlunoHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	notas, err := h.grades.ListByStudent(id.RA)
	if err != nil {
		log.Error().Err(err).Str("ra", id.RA).Msg("list grades failed")
		http.Error(w, "Erro interno", http.StatusInternalServerError)
		return
	}

	faltas, err := h.absences.ListByStudent(id.RA)
	if err != nil {
		log.Error().Err(err).Str("ra", id.RA).Msg("list absences failed")
		http.Error(w, "Erro interno", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Title":   "Painel do Aluno",
		"User":    id,
		"Notas":   notas,
		"Faltas":  faltas,
		"Notices": h.sm.Flashes(w, r),
	}
	h.tmpl.Execute(w, data)
}
