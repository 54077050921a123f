package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	config "todo-lists.com/todo-lists/internal/configs"
	httpapi "todo-lists.com/todo-lists/internal/http"
	repository "todo-lists.com/todo-lists/internal/repositories"
	"todo-lists.com/todo-lists/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Migrates the schema and serves the lists and tasks pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger := config.NewLogger(cfg.LogLevel, cfg.LogEncoding)
		defer func() { _ = logger.Sync() }()

		res, err := openResources(cfg)
		if err != nil {
			return err
		}
		database := res.database

		listRepo := repository.NewListRepository(database)
		userService := services.NewUserService(repository.NewUserRepository(database), logger)
		listService := services.NewListService(listRepo, logger)
		taskService := services.NewTaskService(repository.NewTaskRepository(database), listRepo, logger)

		handler := httpapi.NewHandler(listService, taskService, res.flashes, func(ctx context.Context) error {
			return config.PingDatabase(ctx, database)
		}, logger)

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		httpapi.Register(e, handler, httpapi.RouteConfig{
			IdentityHeader:     cfg.IdentityHeader,
			SessionCookie:      cfg.SessionCookie,
			RateLimitPerMinute: cfg.RateLimit,
			Users:              userService,
			Logger:             logger,
		})

		go func() {
			logger.Info("HTTP server listening",
				zap.String("addr", cfg.AppURL()),
				zap.String("db_driver", cfg.DBDriver),
				zap.String("flash_driver", cfg.FlashDriver),
			)
			if err := e.Start(cfg.AppURL()); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server stopped", zap.Error(err))
			}
		}()

		operations := map[string]gfshutdown.Operation{
			"http": func(ctx context.Context) error {
				return e.Shutdown(ctx)
			},
			"database": func(ctx context.Context) error {
				return res.closeDatabase()
			},
		}
		if res.redisClient != nil {
			operations["redis"] = func(ctx context.Context) error {
				res.closeRedis()
				return nil
			}
		}

		wait := gfshutdown.GracefulShutdown(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
			operations,
		)

		exitCode := <-wait
		logger.Info("shut down", zap.Int("exit_code", exitCode))
		if exitCode != 0 {
			return fmt.Errorf("shutdown finished with exit code %d", exitCode)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
