package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/labstack/echo/v4"
)

// serviceError maps service-layer sentinel errors to transport responses.
// Internal causes are logged server-side only and never exposed.
func serviceError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, common.ErrorConflict):
		return echo.NewHTTPError(http.StatusConflict, "already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) registerHandler(c echo.Context) error {
	var req Credentials
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := s.users.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, user)
}

func (s *Server) loginHandler(c echo.Context) error {
	var req Credentials
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := s.users.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, TokenResponse{AccessToken: token})
}

func (s *Server) listTasksHandler(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var filter models.TaskFilter

	if v := c.QueryParam("status"); v != "" {
		status, err := models.ParseTaskStatus(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		filter.Status = &status
	}
	if v := c.QueryParam("search"); v != "" {
		filter.Search = &v
	}

	tasks, err := s.tasks.List(c.Request().Context(), filter, user)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, tasks)
}

func (s *Server) getTaskHandler(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	task, err := s.tasks.Get(c.Request().Context(), c.Param("id"), user)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (s *Server) createTaskHandler(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := s.tasks.Create(c.Request().Context(), req.Title, req.Description, user)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (s *Server) updateTaskStatusHandler(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	status, err := models.ParseTaskStatus(req.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := s.tasks.UpdateStatus(c.Request().Context(), c.Param("id"), status, user)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (s *Server) deleteTaskHandler(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	task, err := s.tasks.Delete(c.Request().Context(), c.Param("id"), user)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, task)
}
