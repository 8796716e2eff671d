package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"taskvault.com/taskvault/internal/constants"
	dto "taskvault.com/taskvault/internal/data_models"
	apperrors "taskvault.com/taskvault/internal/errors"
	model "taskvault.com/taskvault/internal/models"
	repository "taskvault.com/taskvault/internal/repositories"
)

// PageSize is the fixed listing page size.
const PageSize = 6

type TaskService struct {
	tasks *repository.TaskRepository
	users *repository.UserRepository
}

func NewTaskService(tasks *repository.TaskRepository, users *repository.UserRepository) *TaskService {
	return &TaskService{
		tasks: tasks,
		users: users,
	}
}

type ListOptions struct {
	Status   string
	Priority string
	Search   string
	Page     string
}

// TaskUpdate carries the provided subset of mutable fields. Nil means
// the field was omitted; a non-nil empty description is still applied.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID, title, description, status, priority string) (*model.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.ErrTitleRequired
	}

	st := constants.TaskStatus(status)
	if status == "" {
		st = constants.StatusPending
	}
	pr := constants.TaskPriority(priority)
	if priority == "" {
		pr = constants.PriorityMedium
	}

	return s.tasks.CreateTask(ctx, title, description, st, pr, ownerID)
}

// ListTasks returns the caller's page of tasks. A page beyond the last
// one yields an empty list, not an error.
func (s *TaskService) ListTasks(ctx context.Context, ownerID string, opts ListOptions) (*dto.TaskListResponse, error) {
	page := resolvePage(opts.Page)

	tasks, total, err := s.tasks.List(ctx, repository.TaskFilter{
		OwnerID:  ownerID,
		Status:   constants.TaskStatus(opts.Status),
		Priority: constants.TaskPriority(opts.Priority),
		Search:   opts.Search,
		Offset:   (page - 1) * PageSize,
		Limit:    PageSize,
	})
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	return &dto.TaskListResponse{
		Tasks:       tasks,
		TotalPages:  totalPages(total),
		CurrentPage: page,
		TotalTasks:  total,
	}, nil
}

func (s *TaskService) GetTask(ctx context.Context, callerID, id string) (*model.Task, error) {
	return s.findOwnedTask(ctx, callerID, id)
}

func (s *TaskService) UpdateTask(ctx context.Context, callerID, id string, update TaskUpdate) (*model.Task, error) {
	if _, err := s.findOwnedTask(ctx, callerID, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if update.Title != nil && *update.Title != "" {
		updates["title"] = *update.Title
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Status != nil && *update.Status != "" {
		updates["status"] = *update.Status
	}
	if update.Priority != nil && *update.Priority != "" {
		updates["priority"] = *update.Priority
	}

	if len(updates) == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	return s.tasks.Update(ctx, id, updates)
}

func (s *TaskService) DeleteTask(ctx context.Context, callerID, id string) error {
	if _, err := s.findOwnedTask(ctx, callerID, id); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}

// AdminListTasks lists across all owners and embeds each task's owner
// record. Tasks whose owner record is missing still appear.
func (s *TaskService) AdminListTasks(ctx context.Context, opts ListOptions) (*dto.AdminTaskListResponse, error) {
	page := resolvePage(opts.Page)

	tasks, total, err := s.tasks.List(ctx, repository.TaskFilter{
		Status:   constants.TaskStatus(opts.Status),
		Priority: constants.TaskPriority(opts.Priority),
		Search:   opts.Search,
		Offset:   (page - 1) * PageSize,
		Limit:    PageSize,
	})
	if err != nil {
		return nil, err
	}

	items, err := s.embedOwners(ctx, tasks)
	if err != nil {
		return nil, err
	}

	return &dto.AdminTaskListResponse{
		Tasks:       items,
		TotalPages:  totalPages(total),
		CurrentPage: page,
		TotalTasks:  total,
	}, nil
}

func (s *TaskService) AdminDeleteTask(ctx context.Context, id string) error {
	if _, err := s.tasks.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return err
	}
	return s.tasks.Delete(ctx, id)
}

func (s *TaskService) findOwnedTask(ctx context.Context, callerID, id string) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	if task.CreatedBy != callerID {
		return nil, apperrors.ErrTaskForbidden
	}

	return task, nil
}

func (s *TaskService) embedOwners(ctx context.Context, tasks []model.Task) ([]dto.AdminTask, error) {
	items := make([]dto.AdminTask, 0, len(tasks))
	if len(tasks) == 0 {
		return items, nil
	}

	seen := map[string]struct{}{}
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		if _, ok := seen[task.CreatedBy]; ok {
			continue
		}
		seen[task.CreatedBy] = struct{}{}
		ids = append(ids, task.CreatedBy)
	}

	owners, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.User, len(owners))
	for _, owner := range owners {
		byID[owner.ID] = owner
	}

	for _, task := range tasks {
		item := dto.AdminTask{Task: task}
		if owner, ok := byID[task.CreatedBy]; ok {
			item.Owner = dto.TaskOwner{
				ID:    owner.ID,
				Name:  owner.Name,
				Email: owner.Email,
			}
		}
		items = append(items, item)
	}

	return items, nil
}

// resolvePage falls back to the first page on absent or non-numeric input.
func resolvePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func totalPages(total int64) int {
	return int((total + PageSize - 1) / PageSize)
}
