package entity

import "time"

const (
	RoleAluno     = "aluno"
	RoleProfessor = "professor"
)

// User is keyed by RA, the institutional registration number. Users are
// created only by seeding; the normal flow never updates or deletes them.
type User struct {
	RA           string    `json:"ra"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
