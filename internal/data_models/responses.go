package dto

import (
	model "taskvault.com/taskvault/internal/models"
)

type AuthResponse struct {
	Message string      `json:"message"`
	Data    *model.User `json:"data"`
	Token   string      `json:"token"`
}

type TaskResponse struct {
	Message string      `json:"message"`
	Data    *model.Task `json:"data"`
}

type TaskListResponse struct {
	Tasks       []model.Task `json:"tasks"`
	TotalPages  int          `json:"totalPages"`
	CurrentPage int          `json:"currentPage"`
	TotalTasks  int64        `json:"totalTasks"`
}

// TaskOwner is the owner projection embedded in admin listings.
// A task whose owner record is gone keeps zero-valued owner fields.
type TaskOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AdminTask struct {
	model.Task
	Owner TaskOwner `json:"owner"`
}

type AdminTaskListResponse struct {
	Tasks       []AdminTask `json:"tasks"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
	TotalTasks  int64       `json:"totalTasks"`
}
