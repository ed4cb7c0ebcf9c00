package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	calendarHTTP "llm-personal-assistant/internal/calendar/delivery/http"
	"llm-personal-assistant/internal/model"
	promptHTTP "llm-personal-assistant/internal/prompt/delivery/http"
	taskHTTP "llm-personal-assistant/internal/task/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, srv.taskUC))
	srv.l.Infof(ctx, "Task domain registered")

	promptHTTP.RegisterRoutes(api, promptHTTP.New(srv.l, srv.promptUC, srv.pipelineTimeout))
	srv.l.Infof(ctx, "Prompt domain registered")

	if srv.calendarUC != nil {
		calendarHTTP.RegisterRoutes(api, calendarHTTP.New(srv.l, srv.calendarUC))
		srv.l.Infof(ctx, "Calendar domain registered")
	} else {
		srv.l.Infof(ctx, "Calendar not configured, skipping calendar routes")
	}

	return nil
}
