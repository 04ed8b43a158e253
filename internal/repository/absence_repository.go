package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"academico/internal/entity"
)

type AbsenceRepository struct {
	db *sql.DB
}

func NewAbsenceRepository(db *sql.DB) *AbsenceRepository {
	return &AbsenceRepository{db: db}
}

// Add validates the entry, then appends it with a server-assigned id and
// timestamp. Nothing is persisted on a validation failure.
func (r *AbsenceRepository) Add(a entity.Absence) (entity.Absence, error) {
	if err := a.Validate(); err != nil {
		return entity.Absence{}, err
	}

	a.ID = uuid.NewString()
	a.Date = time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO attendance (id, aluno_ra, disciplina, faltas, professor_ra, date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, a.ID, a.AlunoRA, a.Disciplina, a.Faltas, a.ProfessorRA, a.Date)
	if err != nil {
		return entity.Absence{}, fmt.Errorf("insert absence: %w", err)
	}
	return a, nil
}

// ListByStudent returns all absence entries for one student, newest first.
func (r *AbsenceRepository) ListByStudent(alunoRA string) ([]entity.Absence, error) {
	rows, err := r.db.Query(`
		SELECT id, aluno_ra, disciplina, faltas, professor_ra, date
		FROM attendance
		WHERE aluno_ra = $1
		ORDER BY date DESC
	`, alunoRA)
	if err != nil {
		return nil, fmt.Errorf("list absences for %s: %w", alunoRA, err)
	}
	defer rows.Close()

	var absences []entity.Absence
	for rows.Next() {
		var a entity.Absence
		if err := rows.Scan(&a.ID, &a.AlunoRA, &a.Disciplina, &a.Faltas, &a.ProfessorRA, &a.Date); err != nil {
			return nil, fmt.Errorf("scan absence: %w", err)
		}
		absences = append(absences, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list absences for %s: %w", alunoRA, err)
	}
	return absences, nil
}
