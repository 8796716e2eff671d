package http

import (
	"github.com/labstack/echo/v4"

	"taskvault.com/taskvault/internal/auth"
	"taskvault.com/taskvault/internal/constants"
	middleware "taskvault.com/taskvault/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, tokens *auth.TokenManager) {
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)

	task := e.Group("/task", middleware.Authenticate(tokens))

	task.POST("", h.CreateTask, middleware.Authorize(constants.RoleUser))
	task.GET("", h.ListTasks, middleware.Authorize(constants.RoleUser))
	task.GET("/:id", h.GetTask, middleware.Authorize(constants.RoleUser))
	task.PATCH("/:id", h.UpdateTask, middleware.Authorize(constants.RoleUser))
	task.DELETE("/:id", h.DeleteTask, middleware.Authorize(constants.RoleUser))

	task.GET("/admin/tasks", h.AdminListTasks, middleware.Authorize(constants.RoleAdmin))
	task.DELETE("/admin/tasks/:id", h.AdminDeleteTask, middleware.Authorize(constants.RoleAdmin))
}
