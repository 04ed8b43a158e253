package handler

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"academico/internal/auth"
	"academico/internal/entity"
)

type SeedHandler struct {
	users UserStore
	dev   bool
}

func NewSeedHandler(users UserStore, dev bool) *SeedHandler {
	return &SeedHandler{users: users, dev: dev}
}

// InitDev creates one example aluno and one example professor if they do not
// exist yet. Outside dev mode it is a plain 403 with no notice machinery.
func (h *SeedHandler) InitDev(w http.ResponseWriter, r *http.Request) {
	if !h.dev {
		http.Error(w, "Desabilitado", http.StatusForbidden)
		return
	}

	examples := []struct {
		ra, name, role, senha string
	}{
		{"A123456", "Aluno Exemplo", entity.RoleAluno, "aluno123"},
		{"P654321", "Prof. Exemplo", entity.RoleProfessor, "prof123"},
	}

	for _, e := range examples {
		hash, err := auth.HashPassword(e.senha)
		if err != nil {
			log.Error().Err(err).Str("ra", e.ra).Msg("hash seed password failed")
			http.Error(w, "Erro interno", http.StatusInternalServerError)
			return
		}
		u := entity.User{RA: e.ra, Name: e.name, Role: e.role, PasswordHash: hash}
		if err := h.users.Seed(u); err != nil {
			log.Error().Err(err).Str("ra", e.ra).Msg("seed user failed")
			http.Error(w, "Erro interno", http.StatusInternalServerError)
			return
		}
	}

	log.Info().Msg("example users ensured")
	fmt.Fprintln(w, "Usuários de exemplo criados (se não existiam).")
}
