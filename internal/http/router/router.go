// Package router assembles the Gin engine from the application's modules.
package router

import (
	"net/http"
	"time"

	apphttp "gadget_haven_backend/internal/http"
	"gadget_haven_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

const (
	apiName    = "Gadget Haven API"
	apiVersion = "1.0.0"
)

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// New builds the HTTP engine with shared middleware and all module routes.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(httpkit.CORS(app.Config))

	api := engine.Group("/api")
	api.GET("/", root)
	api.GET("/health", health(app))

	rc := &apphttp.RouterContext{
		Engine:        engine,
		API:           api,
		FormRateLimit: httpkit.RateLimit(app.FormLimiter, app.Logger),
	}
	for _, m := range app.Modules {
		m.RegisterRoutes(rc)
		app.Logger.Debug("module routes registered", "module", m.Name())
	}

	return engine
}

func root(c *gin.Context) {
	httpkit.OK(c, rootResponse{Message: "Welcome to " + apiName, Version: apiVersion})
}

func health(app *apphttp.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now().UTC()
		if app.Health != nil {
			if err := app.Health.Ping(c.Request.Context()); err != nil {
				app.Logger.WithContext(c.Request.Context()).DatabaseError("ping", err)
				httpkit.JSON(c, http.StatusServiceUnavailable, healthResponse{Status: "unhealthy", Timestamp: now})
				return
			}
		}
		httpkit.OK(c, healthResponse{Status: "healthy", Timestamp: now})
	}
}
