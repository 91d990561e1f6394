// Package httpapi exposes the authenticator and task service over HTTP.
// It owns input validation, token verification per request, and the mapping
// of service errors to transport responses.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// UserProvider is the slice of the user service the HTTP layer consumes.
type UserProvider interface {
	Register(ctx context.Context, username string, password string) (*models.User, error)
	Login(ctx context.Context, username string, password string) (string, error)
	VerifyToken(ctx context.Context, token string) (*models.User, error)
}

// TaskProvider is the slice of the task service the HTTP layer consumes.
type TaskProvider interface {
	List(ctx context.Context, filter models.TaskFilter, user *models.User) ([]*models.Task, error)
	Get(ctx context.Context, id string, user *models.User) (*models.Task, error)
	Create(ctx context.Context, title string, description string, user *models.User) (*models.Task, error)
	UpdateStatus(ctx context.Context, id string, status models.TaskStatus, user *models.User) (*models.Task, error)
	Delete(ctx context.Context, id string, user *models.User) (*models.Task, error)
}

type Server struct {
	address string
	users   UserProvider
	tasks   TaskProvider
	logger  logging.Logger
}

func NewServer(a string, l logging.Logger, us UserProvider, ts TaskProvider) (*Server, error) {
	return &Server{
		address: a,
		logger:  l.With("module", "http_server"),
		users:   us,
		tasks:   ts,
	}, nil
}

// routes registers all endpoints on e. Task routes sit behind the access
// token middleware.
func (s *Server) routes(e *echo.Echo) {
	e.POST("/auth/signup", s.registerHandler)
	e.POST("/auth/signin", s.loginHandler)

	tasks := e.Group("/tasks", s.accessTokenMiddleware)
	tasks.GET("", s.listTasksHandler)
	tasks.POST("", s.createTaskHandler)
	tasks.GET("/:id", s.getTaskHandler)
	tasks.PATCH("/:id/status", s.updateTaskStatusHandler)
	tasks.DELETE("/:id", s.deleteTaskHandler)
}

func (s *Server) newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	s.routes(e)
	return e
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// the server down gracefully.
func (s *Server) Run(ctx context.Context) error {

	e := s.newEcho()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		if err := e.Shutdown(context.Background()); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := e.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
