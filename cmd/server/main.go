package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"academico/internal/config"
	"academico/internal/database"
	"academico/internal/entity"
	"academico/internal/handler"
	"academico/internal/logger"
	"academico/internal/middleware"
	"academico/internal/repository"
	"academico/internal/session"
	"academico/internal/web"
)

func main() {
	cfg := config.MustLoad()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Open(cfg.DB.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	sm := session.NewManager(cfg.SessionSecret)
	users := repository.NewUserRepository(db)
	grades := repository.NewGradeRepository(db)
	absences := repository.NewAbsenceRepository(db)

	login := handler.NewLoginHandler(users, sm)
	aluno := handler.NewAlunoHandler(grades, absences, sm)
	professor := handler.NewProfessorHandler(users, grades, absences, sm)
	seed := handler.NewSeedHandler(users, cfg.Dev())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", login.LoginPage)
	mux.HandleFunc("POST /login", login.Login)
	mux.HandleFunc("GET /logout", login.Logout)
	mux.HandleFunc("GET /aluno", middleware.RequireAuth(sm, "", aluno.Dashboard))
	mux.HandleFunc("GET /professor", middleware.RequireAuth(sm, entity.RoleProfessor, professor.Dashboard))
	mux.HandleFunc("POST /professor/notas", middleware.RequireAuth(sm, entity.RoleProfessor, professor.LancarNota))
	mux.HandleFunc("POST /professor/faltas", middleware.RequireAuth(sm, entity.RoleProfessor, professor.LancarFalta))
	mux.HandleFunc("GET /init-dev", seed.InitDev)
	mux.Handle("GET /static/", web.Static())

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Bool("dev", cfg.Dev()).Msg("server started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}
