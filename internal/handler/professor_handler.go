package handler

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"academico/internal/apperror"
	"academico/internal/entity"
	"academico/internal/middleware"
	"academico/internal/session"
	"academico/internal/web"
)

type ProfessorHandler struct {
	users    UserStore
	grades   GradeStore
	absences AbsenceStore
	sm       *session.Manager
	tmpl     *template.Template
}

func NewProfessorHandler(users UserStore, grades GradeStore, absences AbsenceStore, sm *session.Manager) *ProfessorHandler {
	return &ProfessorHandler{
		users:    users,
		grades:   grades,
		absences: absences,
		sm:       sm,
		tmpl:     web.Template("professor.html"),
	}
}

// Dashboard renders the student roster and the submission forms.
func (h *ProfessorHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	alunos, err := h.users.ListStudents()
	if err != nil {
		log.Error().Err(err).Msg("list students failed")
		http.Error(w, "Erro interno", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Title":   "Painel do Professor",
		"User":    id,
		"Alunos":  alunos,
		"Notices": h.sm.Flashes(w, r),
	}
	h.tmpl.Execute(w, data)
}

// LancarNota handles POST /professor/notas.
func (h *ProfessorHandler) LancarNota(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Erro ao processar o formulário", http.StatusBadRequest)
		return
	}

	alunoRA := strings.TrimSpace(r.FormValue("aluno_ra"))
	disciplina := strings.TrimSpace(r.FormValue("disciplina"))

	nota, err := strconv.ParseFloat(r.FormValue("nota"), 64)
	if err != nil {
		h.sm.Flash(w, r, "error", "Nota inválida.")
		http.Redirect(w, r, "/professor", http.StatusSeeOther)
		return
	}

	if alunoRA == "" || disciplina == "" {
		h.sm.Flash(w, r, "error", "Preencha os campos corretamente (nota entre 0 e 10).")
		http.Redirect(w, r, "/professor", http.StatusSeeOther)
		return
	}

	if !h.checkAluno(w, r, alunoRA) {
		return
	}

	g := entity.Grade{
		AlunoRA:     alunoRA,
		Disciplina:  disciplina,
		Nota:        nota,
		ProfessorRA: id.RA,
	}
	if _, err := h.grades.Add(g); err != nil {
		if apperror.IsValidation(err) {
			h.sm.Flash(w, r, "error", "Preencha os campos corretamente (nota entre 0 e 10).")
			http.Redirect(w, r, "/professor", http.StatusSeeOther)
			return
		}
		log.Error().Err(err).Str("aluno_ra", alunoRA).Msg("add grade failed")
		http.Error(w, "Erro interno", http.StatusInternalServerError)
		return
	}

	log.Info().Str("aluno_ra", alunoRA).Str("professor_ra", id.RA).
		Str("disciplina", disciplina).Float64("nota", nota).Msg("grade recorded")
	h.sm.Flash(w, r, "success", "Nota lançada com sucesso.")
	http.Redirect(w, r, "/professor", http.StatusSeeOther)
}

// LancarFalta handles POST /professor/faltas.
func (h *ProfessorHandler) LancarFalta(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Erro ao processar o formulário", http.StatusBadRequest)
		return
	}

	alunoRA := strings.TrimSpace(r.FormValue("aluno_ra"))
	disciplina := strings.TrimSpace(r.FormValue("disciplina"))

	faltas, err := strconv.Atoi(r.FormValue("faltas"))
	if err != nil {
		h.sm.Flash(w, r, "error", "Quantidade de faltas inválida.")
		http.Redirect(w, r, "/professor", http.StatusSeeOther)
		return
	}

	if alunoRA == "" || disciplina == "" {
		h.sm.Flash(w, r, "error", "Preencha os campos corretamente.")
		http.Redirect(w, r, "/professor", http.StatusSeeOther)
		return
	}

	if !h.checkAluno(w, r, alunoRA) {
		return
	}

	a := entity.Absence{
		AlunoRA:     alunoRA,
		Disciplina:  disciplina,
		Faltas:      faltas,
		ProfessorRA: id.RA,
	}
	if _, err := h.absences.Add(a); err != nil {
		if apperror.IsValidation(err) {
			h.sm.Flash(w, r, "error", "Preencha os campos corretamente.")
			http.Redirect(w, r, "/professor", http.StatusSeeOther)
			return
		}
		log.Error().Err(err).Str("aluno_ra", alunoRA).Msg("add absence failed")
		http.Error(w, "Erro interno", http.StatusInternalServerError)
		return
	}

	log.Info().Str("aluno_ra", alunoRA).Str("professor_ra", id.RA).
		Str("disciplina", disciplina).Int("faltas", faltas).Msg("absence recorded")
	h.sm.Flash(w, r, "success", "Faltas registradas com sucesso.")
	http.Redirect(w, r, "/professor", http.StatusSeeOther)
}

// checkAluno rejects submissions naming an RA that does not belong to an
// existing aluno. Writes the notice and the redirect itself on failure.
func (h *ProfessorHandler) checkAluno(w http.ResponseWriter, r *http.Request, alunoRA string) bool {
	u, err := h.users.GetByRA(alunoRA)
	if errors.Is(err, apperror.ErrUserNotFound) {
		h.sm.Flash(w, r, "error", "Aluno não encontrado.")
		http.Redirect(w, r, "/professor", http.StatusSeeOther)
		return false
	}
	if err != nil {
		log.Error().Err(err).Str("aluno_ra", alunoRA).Msg("aluno lookup failed")
		http.Error(w, "Erro interno", http.StatusInternalServerError)
		return false
	}
	if u.Role != entity.RoleAluno {
		h.sm.Flash(w, r, "error", "Aluno não encontrado.")
		http.Redirect(w, r, "/professor", http.StatusSeeOther)
		return false
	}
	return true
}
