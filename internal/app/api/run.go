package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	userdemoserver "github.com/qa-sandbox/go-demo-user-api/server"

	_ "github.com/qa-sandbox/go-demo-user-api/docs"
	authobs "github.com/qa-sandbox/go-demo-user-api/internal/domains/auth/adapters/observability"
	authapp "github.com/qa-sandbox/go-demo-user-api/internal/domains/auth/application"
	usermemory "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/adapters/memory"
	userobs "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/adapters/observability"
	userapp "github.com/qa-sandbox/go-demo-user-api/internal/domains/users/application"
	platformobservability "github.com/qa-sandbox/go-demo-user-api/internal/platform/observability"
)

// Run boots the demo user HTTP API with observability, the seeded in-memory
// store, and middleware wired.
func Run(ctx context.Context) error {
	const serviceName = "demo-user-api"

	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	userRepo := usermemory.NewRepository()
	userService := userobs.New(
		userapp.NewService(userRepo),
		userobs.WithLogger(logger),
		userobs.WithTracer(instruments.Tracer("internal.users.application")),
		userobs.WithMeter(instruments.Meter("internal.users.application")),
	)
	authService := authobs.New(
		authapp.NewService(),
		authobs.WithLogger(logger),
		authobs.WithTracer(instruments.Tracer("internal.auth.application")),
		authobs.WithMeter(instruments.Meter("internal.auth.application")),
	)

	handlers := userdemoserver.ApiHandleFunctions{
		HealthAPI: userdemoserver.NewHealthAPI(),
		UsersAPI:  userdemoserver.NewUsersAPI(userService),
		AuthAPI:   userdemoserver.NewAuthAPI(authService),
	}

	router := gin.New()
	router.Use(userdemoserver.RequestID())
	router.Use(userdemoserver.RequestLogger(logger))
	router.Use(userdemoserver.Recovery(logger))
	router.Use(cors.Default())
	router.Use(otelgin.Middleware(serviceName))
	router = userdemoserver.NewRouterWithGinEngine(router, handlers)
	if cfg.SwaggerOn {
		router.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))
	}

	addr := ":" + cfg.Port
	logger.Info("demo user API listening",
		slog.String("addr", addr),
		slog.String("environment", cfg.Environment),
	)
	if err := router.Run(addr); err != nil {
		logger.Error("demo user API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}
