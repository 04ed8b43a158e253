package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"academico/internal/entity"
)

type GradeRepository struct {
	db *sql.DB
}

func NewGradeRepository(db *sql.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

// Add validates the entry, then appends it with a server-assigned id and
// timestamp. Nothing is persisted on a validation failure.
func (r *GradeRepository) Add(g entity.Grade) (entity.Grade, error) {
	if err := g.Validate(); err != nil {
		return entity.Grade{}, err
	}

	g.ID = uuid.NewString()
	g.CreatedAt = time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO grades (id, aluno_ra, disciplina, nota, professor_ra, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, g.ID, g.AlunoRA, g.Disciplina, g.Nota, g.ProfessorRA, g.CreatedAt)
	if err != nil {
		return entity.Grade{}, fmt.Errorf("insert grade: %w", err)
	}
	return g, nil
}

// ListByStudent returns all grades for one student, newest first.
func (r *GradeRepository) ListByStudent(alunoRA string) ([]entity.Grade, error) {
	rows, err := r.db.Query(`
		SELECT id, aluno_ra, disciplina, nota, professor_ra, created_at
		FROM grades
		WHERE aluno_ra = $1
		ORDER BY created_at DESC
	`, alunoRA)
	if err != nil {
		return nil, fmt.Errorf("list grades for %s: %w", alunoRA, err)
	}
	defer rows.Close()

	var grades []entity.Grade
	for rows.Next() {
		var g entity.Grade
		if err := rows.Scan(&g.ID, &g.AlunoRA, &g.Disciplina, &g.Nota, &g.ProfessorRA, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan grade: %w", err)
		}
		grades = append(grades, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list grades for %s: %w", alunoRA, err)
	}
	return grades, nil
}
