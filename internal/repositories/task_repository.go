package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskvault.com/taskvault/internal/constants"
	model "taskvault.com/taskvault/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// TaskFilter narrows a listing. A zero OwnerID means no owner scope
// (admin listing); zero Status/Priority/Search skip that predicate.
type TaskFilter struct {
	OwnerID  string
	Status   constants.TaskStatus
	Priority constants.TaskPriority
	Search   string
	Offset   int
	Limit    int
}

func (r *TaskRepository) CreateTask(
	ctx context.Context,
	title, description string,
	status constants.TaskStatus,
	priority constants.TaskPriority,
	ownerID string,
) (*model.Task, error) {
	now := time.Now().UTC()
	task := &model.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		CreatedBy:   ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns one page of matching tasks, newest first, plus the total
// matching count across all pages.
func (r *TaskRepository) List(ctx context.Context, f TaskFilter) ([]model.Task, int64, error) {
	var total int64
	if err := applyFilter(r.db.WithContext(ctx).Model(&model.Task{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []model.Task
	err := applyFilter(r.db.WithContext(ctx), f).
		Order("created_at desc").
		Offset(f.Offset).
		Limit(f.Limit).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

func applyFilter(query *gorm.DB, f TaskFilter) *gorm.DB {
	if f.OwnerID != "" {
		query = query.Where("created_by = ?", f.OwnerID)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		query = query.Where("priority = ?", f.Priority)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	return query
}

// Update applies the given column set and returns the fresh record.
// The owner column is never part of updates.
func (r *TaskRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Task, error) {
	updates["updated_at"] = time.Now().UTC()

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}

	return r.FindByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id).Error
}
