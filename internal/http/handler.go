package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"taskvault.com/taskvault/internal/constants"
	dto "taskvault.com/taskvault/internal/data_models"
	apperrors "taskvault.com/taskvault/internal/errors"
	middleware "taskvault.com/taskvault/internal/http/middlewares"
	"taskvault.com/taskvault/internal/http/validators"
	"taskvault.com/taskvault/internal/services"
)

type Handler struct {
	authService *services.AuthService
	taskService *services.TaskService
	logger      *logrus.Logger
}

func NewHandler(authService *services.AuthService, taskService *services.TaskService, logger *logrus.Logger) *Handler {
	return &Handler{
		authService: authService,
		taskService: taskService,
		logger:      logger,
	}
}

func (h *Handler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateRegister(&req); err != nil {
		return err
	}

	role := constants.RoleUser
	if req.Role != "" {
		role = constants.Role(req.Role)
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, role)
	if err != nil {
		return err
	}

	h.logger.WithFields(logrus.Fields{
		"handler": "Register",
		"user_id": user.ID,
	}).Info("user registered")

	return c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "user successfully registered",
		Data:    user,
		Token:   token,
	})
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateLogin(&req); err != nil {
		return err
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.logger.WithFields(logrus.Fields{
		"handler": "Login",
		"user_id": user.ID,
	}).Info("user logged in")

	return c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "logged in",
		Data:    user,
		Token:   token,
	})
}

func (h *Handler) CreateTask(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrAccessDenied
	}

	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateCreateTask(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), identity.UserID, req.Title, req.Description, req.Status, req.Priority)
	if err != nil {
		return err
	}

	h.logger.WithFields(logrus.Fields{
		"handler": "CreateTask",
		"task_id": task.ID,
	}).Info("task created")

	return c.JSON(http.StatusCreated, dto.TaskResponse{
		Message: "task added successfully",
		Data:    task,
	})
}

func (h *Handler) ListTasks(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrAccessDenied
	}

	var query dto.ListTasksQuery
	if err := c.Bind(&query); err != nil {
		return apperrors.ErrInvalidJSON
	}

	result, err := h.taskService.ListTasks(c.Request().Context(), identity.UserID, services.ListOptions{
		Status:   query.Status,
		Priority: query.Priority,
		Search:   query.Search,
		Page:     query.Page,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) GetTask(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrAccessDenied
	}

	task, err := h.taskService.GetTask(c.Request().Context(), identity.UserID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrAccessDenied
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateUpdateTask(&req); err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), identity.UserID, c.Param("id"), services.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	})
	if err != nil {
		return err
	}

	h.logger.WithFields(logrus.Fields{
		"handler": "UpdateTask",
		"task_id": task.ID,
	}).Info("task updated")

	return c.JSON(http.StatusOK, dto.TaskResponse{
		Message: "task updated successfully",
		Data:    task,
	})
}

func (h *Handler) DeleteTask(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return apperrors.ErrAccessDenied
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), identity.UserID, c.Param("id")); err != nil {
		return err
	}

	h.logger.WithFields(logrus.Fields{
		"handler": "DeleteTask",
		"task_id": c.Param("id"),
	}).Info("task deleted")

	return c.JSON(http.StatusOK, echo.Map{"message": "task deleted successfully"})
}

func (h *Handler) AdminListTasks(c echo.Context) error {
	var query dto.ListTasksQuery
	if err := c.Bind(&query); err != nil {
		return apperrors.ErrInvalidJSON
	}

	result, err := h.taskService.AdminListTasks(c.Request().Context(), services.ListOptions{
		Status:   query.Status,
		Priority: query.Priority,
		Search:   query.Search,
		Page:     query.Page,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) AdminDeleteTask(c echo.Context) error {
	if err := h.taskService.AdminDeleteTask(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	h.logger.WithFields(logrus.Fields{
		"handler": "AdminDeleteTask",
		"task_id": c.Param("id"),
	}).Info("task deleted by admin")

	return c.JSON(http.StatusOK, echo.Map{"message": "task deleted successfully"})
}
