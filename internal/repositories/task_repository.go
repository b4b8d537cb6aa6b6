package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ijadele/task-management/internal/access"
	apperrors "github.com/Ijadele/task-management/internal/errors"
	model "github.com/Ijadele/task-management/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	if task.ID == "" {
		task.ID = uuid.NewString()
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
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Find returns the page of tasks matching the filter. An empty sort clause
// leaves the store order unspecified.
func (r *TaskRepository) Find(ctx context.Context, filter access.TaskFilter, sort string, offset, limit int) ([]model.Task, error) {
	query := applyFilter(r.db.WithContext(ctx).Model(&model.Task{}), filter)
	if sort != "" {
		query = query.Order(sort)
	}

	var tasks []model.Task
	err := query.Offset(offset).Limit(limit).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Count(ctx context.Context, filter access.TaskFilter) (int64, error) {
	var total int64
	err := applyFilter(r.db.WithContext(ctx).Model(&model.Task{}), filter).Count(&total).Error
	return total, err
}

func (r *TaskRepository) Save(ctx context.Context, task *model.Task) (*model.Task, error) {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Delete(task).Error
}

func applyFilter(query *gorm.DB, f access.TaskFilter) *gorm.DB {
	if f.OwnerID != "" {
		query = query.Where("owner_id = ?", f.OwnerID)
	}
	if f.Category != nil {
		query = query.Where("category = ?", *f.Category)
	}
	if f.Completed != nil {
		query = query.Where("completed = ?", *f.Completed)
	}
	if f.Priority != nil {
		query = query.Where("priority = ?", *f.Priority)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}
	if f.DueBefore != nil {
		query = query.Where("due_date IS NOT NULL AND due_date < ?", *f.DueBefore)
	}
	return query
}
