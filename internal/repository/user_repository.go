package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"academico/internal/apperror"
	"academico/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByRA looks a user up by registration number.
func (r *UserRepository) GetByRA(ra string) (entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(`
		SELECT ra, name, role, password_hash, created_at
		FROM users
		WHERE ra = $1
	`, ra).Scan(&u.RA, &u.Name, &u.Role, &u.PasswordHash, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, apperror.ErrUserNotFound
	}
	if err != nil {
		return entity.User{}, fmt.Errorf("get user %s: %w", ra, err)
	}
	return u, nil
}

// ListStudents returns every user with role aluno. No ordering guarantee.
func (r *UserRepository) ListStudents() ([]entity.User, error) {
	rows, err := r.db.Query(`
		SELECT ra, name, role, password_hash, created_at
		FROM users
		WHERE role = $1
	`, entity.RoleAluno)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var students []entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.RA, &u.Name, &u.Role, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// Seed inserts the user unless an entry with the same RA already exists.
// Existing users are never overwritten.
func (r *UserRepository) Seed(u entity.User) error {
	_, err := r.db.Exec(`
		INSERT INTO users (ra, name, role, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (ra) DO NOTHING
	`, u.RA, u.Name, u.Role, u.PasswordHash)
	if err != nil {
		return fmt.Errorf("seed user %s: %w", u.RA, err)
	}
	return nil
}
