// Package httpapi exposes the JSON HTTP surface of the video manager.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/vidvault/internal/logging"
	"github.com/dmitrijs2005/vidvault/internal/server/models"
	"github.com/dmitrijs2005/vidvault/internal/server/services"
)

// VideoService is what the handlers need from the video layer.
type VideoService interface {
	List(ctx context.Context) ([]*models.Video, error)
	Upload(ctx context.Context, in services.UploadInput) (*services.UploadResult, error)
	Rename(ctx context.Context, oldKey string, newName string) (string, error)
	Delete(ctx context.Context, key string) error
}

// UserService is what the handlers need from the user layer.
type UserService interface {
	Create(ctx context.Context, name string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Delete(ctx context.Context, id string) error
}

// QuotaService is what the handlers need from the quota layer.
type QuotaService interface {
	CurrentUsage(ctx context.Context) (int64, int64, error)
	History(ctx context.Context) ([]*models.MonthUsage, error)
}

type Server struct {
	address        string
	videos         VideoService
	users          UserService
	quota          QuotaService
	logger         logging.Logger
	maxUploadBytes int64
}

func NewServer(a string, l logging.Logger, vs VideoService, us UserService, qs QuotaService, maxUploadBytes int64) (*Server, error) {
	return &Server{
		address:        a,
		logger:         l.With("module", "http_server"),
		videos:         vs,
		users:          us,
		quota:          qs,
		maxUploadBytes: maxUploadBytes,
	}, nil
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/videos", s.handleListVideos)
	mux.HandleFunc("POST /api/upload", s.handleUpload)
	mux.HandleFunc("DELETE /api/videos/{key...}", s.handleDeleteVideo)
	mux.HandleFunc("PATCH /api/videos/{key...}", s.handleRenameVideo)

	mux.HandleFunc("GET /api/users", s.handleListUsers)
	mux.HandleFunc("POST /api/users", s.handleCreateUser)
	mux.HandleFunc("DELETE /api/users/{id}", s.handleDeleteUser)

	mux.HandleFunc("GET /api/storage-usage", s.handleStorageUsage)
	mux.HandleFunc("GET /api/storage-history", s.handleStorageHistory)

	return mux
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
