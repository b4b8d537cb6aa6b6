package http

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Ijadele/task-management/internal/auth"
	middleware "github.com/Ijadele/task-management/internal/http/middlewares"
)

// RegisterRoutes wires the full HTTP surface. Registration and login are
// public; everything else sits behind the session token.
func RegisterRoutes(e *echo.Echo, h *Handler, tokens *auth.TokenManager, denylist auth.Denylist, rateLimitPerMinute int) {
	e.HTTPErrorHandler = ErrorHandler

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	authenticated := middleware.Authenticate(tokens, denylist)

	users := e.Group("/users")
	users.POST("", h.Register)
	users.POST("/login", h.Login)
	users.POST("/logout", h.Logout, authenticated)
	users.GET("", h.ListUsers, authenticated)
	users.GET("/:id", h.GetUser, authenticated)

	tasks := e.Group("/tasks", authenticated)
	tasks.POST("", h.CreateTask)
	tasks.GET("", h.ListTasks)
	tasks.GET("/:id", h.GetTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.DELETE("/:id", h.DeleteTask)
	tasks.PATCH("/toggle/:id", h.ToggleTask)
}
