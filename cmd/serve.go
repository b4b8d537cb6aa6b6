package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/Ijadele/task-management/internal/auth"
	config "github.com/Ijadele/task-management/internal/configs"
	httpapi "github.com/Ijadele/task-management/internal/http"
	repository "github.com/Ijadele/task-management/internal/repositories"
	"github.com/Ijadele/task-management/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task management HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.New(cfg.DatabaseDSN)

		var denylist auth.Denylist
		if cfg.RedisAddr != "" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			denylist = auth.NewRedisDenylist(redisClient, cfg.RedisDenylistPrefix)
		} else {
			denylist = auth.NewMemoryDenylist()
		}

		tokens := auth.NewTokenManager(auth.DefaultConfig(cfg.JWTSecret))

		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)

		userService := services.NewUserService(userRepo, tokens)
		taskService := services.NewTaskService(taskRepo)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		handler := httpapi.NewHandler(userService, taskService, denylist)
		httpapi.RegisterRoutes(e, handler, tokens, denylist, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		echoCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(echoCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
