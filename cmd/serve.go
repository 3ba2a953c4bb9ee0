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

	config "itask.com/itask/internal/configs"
	httpapi "itask.com/itask/internal/http"
	repository "itask.com/itask/internal/repositories"
	"itask.com/itask/internal/services"
	"itask.com/itask/internal/sessions"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the iTask HTTP API server",
	Long:  "Starts the iTask kanban REST API backed by the relational store and the Redis session store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.New(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
		sessionStore := sessions.NewRedisStore(redisClient, cfg.SessionKeyPrefix, sessionTTL)

		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)
		tipoRepo := repository.NewTipoTarefaRepository(database)

		handler := httpapi.NewHandler(
			services.NewAuthService(userRepo, sessionStore),
			services.NewTaskService(database),
			services.NewLifecycleService(database, cfg.WipLimit, cfg.TransitionRestricted),
			services.NewTeamService(userRepo),
			services.NewReportService(taskRepo),
			services.NewTipoTarefaService(tipoRepo),
			cfg.SessionCookie,
			sessionTTL,
		)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		httpapi.Register(e, handler, sessionStore, httpapi.RouteConfig{
			SessionCookie:      cfg.SessionCookie,
			CORSOrigin:         cfg.CORSOrigin,
			RateLimitPerMinute: cfg.RateLimit,
		})

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
