package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Ijadele/task-management/internal/access"
	"github.com/Ijadele/task-management/internal/auth"
	"github.com/Ijadele/task-management/internal/constants"
	dto "github.com/Ijadele/task-management/internal/data_models"
	apperrors "github.com/Ijadele/task-management/internal/errors"
	middleware "github.com/Ijadele/task-management/internal/http/middlewares"
	"github.com/Ijadele/task-management/internal/http/validators"
	"github.com/Ijadele/task-management/internal/services"
)

type Handler struct {
	userService *services.UserService
	taskService *services.TaskService
	denylist    auth.Denylist
}

func NewHandler(userService *services.UserService, taskService *services.TaskService, denylist auth.Denylist) *Handler {
	return &Handler{
		userService: userService,
		taskService: taskService,
		denylist:    denylist,
	}
}

func (h *Handler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateRegisterRequest(&req); err != nil {
		return err
	}

	user, err := h.userService.Register(c.Request().Context(), req.Email, req.Password, constants.Role(req.Role))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered",
		"user":    user,
	})
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return err
	}

	token, _, err := h.userService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		MaxAge:   int((24 * time.Hour).Seconds()),
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   token,
	})
}

// Logout clears the session cookie and revokes the presented token for the
// remainder of its lifetime.
func (h *Handler) Logout(c echo.Context) error {
	claims := middleware.Claims(c)
	if claims != nil && claims.ExpiresAt != nil {
		remaining := time.Until(claims.ExpiresAt.Time)
		if err := h.denylist.Revoke(c.Request().Context(), claims.ID, remaining); err != nil {
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "Logout successful"})
}

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context(), middleware.Identity(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

func (h *Handler) GetUser(c echo.Context) error {
	user, err := h.userService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}

	dueDate, err := validators.ValidateCreateTaskRequest(&req)
	if err != nil {
		return err
	}

	task, err := h.taskService.Create(c.Request().Context(), middleware.Identity(c), req, dueDate)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Task created",
		"task":    task,
	})
}

func (h *Handler) ListTasks(c echo.Context) error {
	query := access.ListQuery{
		Page:      c.QueryParam("page"),
		Limit:     c.QueryParam("limit"),
		Category:  c.QueryParam("category"),
		Completed: c.QueryParam("completed"),
		Priority:  c.QueryParam("priority"),
		Q:         c.QueryParam("q"),
		Overdue:   c.QueryParam("overdue"),
		All:       c.QueryParam("all"),
		Sort:      c.QueryParam("sort"),
	}

	list, err := h.taskService.List(c.Request().Context(), middleware.Identity(c), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetTask(c echo.Context) error {
	task, isOwner, err := h.taskService.Get(c.Request().Context(), middleware.Identity(c), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"task":    task,
		"isOwner": isOwner,
	})
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}

	dueDate, err := validators.ValidateUpdateTaskRequest(&req)
	if err != nil {
		return err
	}

	task, err := h.taskService.Update(c.Request().Context(), middleware.Identity(c), c.Param("id"), req, dueDate)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Task updated",
		"task":    task,
	})
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if err := h.taskService.Delete(c.Request().Context(), middleware.Identity(c), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Task deleted"})
}

func (h *Handler) ToggleTask(c echo.Context) error {
	task, err := h.taskService.Toggle(c.Request().Context(), middleware.Identity(c), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Task updated",
		"task":    task,
	})
}
