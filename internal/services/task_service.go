package services

import (
	"context"
	"time"

	"github.com/Ijadele/task-management/internal/access"
	"github.com/Ijadele/task-management/internal/auth"
	"github.com/Ijadele/task-management/internal/constants"
	dto "github.com/Ijadele/task-management/internal/data_models"
	apperrors "github.com/Ijadele/task-management/internal/errors"
	model "github.com/Ijadele/task-management/internal/models"
	repository "github.com/Ijadele/task-management/internal/repositories"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Create persists a new task owned by the caller. Input is already
// validated; dueDate carries the parsed optional due date.
func (s *TaskService) Create(ctx context.Context, caller auth.Identity, req dto.CreateTaskRequest, dueDate *time.Time) (*model.Task, error) {
	task := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		DueDate:     dueDate,
		Priority:    constants.Priority(req.Priority),
		OwnerID:     caller.ID,
	}
	if task.Priority == "" {
		task.Priority = constants.PriorityMedium
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	task.MergeExtra(req.Extra)

	return s.repo.Create(ctx, task)
}

// List returns the caller's page of tasks with pagination metadata.
// Non-admins are always scoped to their own tasks; an admin passing
// all=true sees everything.
func (s *TaskService) List(ctx context.Context, caller auth.Identity, query access.ListQuery) (*dto.TaskList, error) {
	page := access.Paginate(query.Page, query.Limit)
	filter := access.BuildTaskFilter(caller.ID, caller.Role, query, time.Now().UTC())
	sort := access.Sort(query.Sort)

	tasks, err := s.repo.Find(ctx, filter, sort, page.Offset, page.Limit)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.TaskList{
		Data: tasks,
		Pagination: dto.Pagination{
			Page:  page.Page,
			Limit: page.Limit,
			Total: total,
			Pages: access.Pages(total, page.Limit),
		},
	}, nil
}

// Get loads a single task and reports whether the caller owns it.
// Admins may read any task; other callers only their own.
func (s *TaskService) Get(ctx context.Context, caller auth.Identity, id string) (*model.Task, bool, error) {
	task, err := s.loadAuthorized(ctx, caller, id)
	if err != nil {
		return nil, false, err
	}
	return task, task.OwnerID == caller.ID, nil
}

// Update applies the fields present in the request. The owner never
// changes: it is not an updatable field and the extras merge drops it.
func (s *TaskService) Update(ctx context.Context, caller auth.Identity, id string, req dto.UpdateTaskRequest, dueDate *time.Time) (*model.Task, error) {
	task, err := s.loadAuthorized(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Category != nil {
		task.Category = *req.Category
	}
	if req.DueDate != nil {
		task.DueDate = dueDate
	}
	if req.Priority != nil {
		task.Priority = constants.Priority(*req.Priority)
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	task.MergeExtra(req.Extra)

	return s.repo.Save(ctx, task)
}

func (s *TaskService) Delete(ctx context.Context, caller auth.Identity, id string) error {
	task, err := s.loadAuthorized(ctx, caller, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, task)
}

// Toggle flips the completed flag.
func (s *TaskService) Toggle(ctx context.Context, caller auth.Identity, id string) (*model.Task, error) {
	task, err := s.loadAuthorized(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	task.Completed = !task.Completed
	return s.repo.Save(ctx, task)
}

// loadAuthorized is the single ownership gate shared by every by-id
// operation: load, then check, before any mutation.
func (s *TaskService) loadAuthorized(ctx context.Context, caller auth.Identity, id string) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !access.CanAccess(caller.ID, caller.Role, task.OwnerID) {
		return nil, apperrors.ErrForbidden
	}

	return task, nil
}
