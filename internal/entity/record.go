package entity

import "time"

// Grade is one nota entry for a student. Append-only: entries are never
// updated or deleted once persisted.
type Grade struct {
	ID          string    `json:"id"`
	AlunoRA     string    `json:"aluno_ra" validate:"required"`
	Disciplina  string    `json:"disciplina" validate:"required"`
	Nota        float64   `json:"nota" validate:"gte=0,lte=10"`
	ProfessorRA string    `json:"professor_ra" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
}

// Absence is one faltas entry, same lifecycle as Grade.
type Absence struct {
	ID          string    `json:"id"`
	AlunoRA     string    `json:"aluno_ra" validate:"required"`
	Disciplina  string    `json:"disciplina" validate:"required"`
	Faltas      int       `json:"faltas" validate:"gte=0"`
	ProfessorRA string    `json:"professor_ra" validate:"required"`
	Date        time.Time `json:"date"`
}
