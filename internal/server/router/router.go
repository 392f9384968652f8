package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arsathrahman00-arsath/fpda/internal/server/handlers"
	"github.com/arsathrahman00-arsath/fpda/internal/service/auth"
)

// Handlers groups the adapters the router wires up.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Masters  *handlers.MastersHandler
	Workflow *handlers.WorkflowHandler
	Planning *handlers.PlanningHandler
	Media    *handlers.MediaHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, manager *auth.Manager, cookieName string, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/logout", h.Auth.Logout)

	authed := api.Group("", handlers.RequireSession(manager, cookieName))

	authed.GET("/masjids", h.Masters.ListMasjids)
	authed.POST("/masjids", h.Masters.CreateMasjid)
	authed.GET("/categories", h.Masters.ListItemCategories)
	authed.POST("/categories", h.Masters.CreateItemCategory)
	authed.GET("/units", h.Masters.ListUnits)
	authed.POST("/units", h.Masters.CreateUnit)
	authed.GET("/items", h.Masters.ListItems)
	authed.POST("/items", h.Masters.CreateItem)
	authed.POST("/items/batch", h.Masters.CreateItemBatch)
	authed.GET("/suppliers", h.Masters.ListSuppliers)
	authed.POST("/suppliers", h.Masters.CreateSupplier)
	authed.GET("/recipe-types", h.Masters.ListRecipeTypes)
	authed.POST("/recipe-types", h.Masters.CreateRecipeType)
	authed.GET("/recipes/:type", h.Masters.RecipeLinesByType)
	authed.POST("/recipes", h.Masters.CreateRecipeLine)

	authed.GET("/schedules", h.Workflow.SchedulesByDate)
	authed.POST("/schedules", h.Workflow.CreateSchedule)
	authed.GET("/requirements", h.Workflow.RequirementsByDate)
	authed.POST("/requirements", h.Workflow.CreateRequirement)
	authed.GET("/day-requirements", h.Planning.DayRequirementByDate)
	authed.GET("/day-requirements/preview", h.Planning.PreviewDayRequirement)
	authed.POST("/day-requirements", h.Planning.ComputeDayRequirement)
	authed.GET("/material-receipts/options", h.Workflow.MaterialReceiptOptions)
	authed.POST("/material-receipts", h.Workflow.CreateMaterialReceipt)
	authed.GET("/packings", h.Workflow.PackingsByDate)
	authed.POST("/packings", h.Workflow.CreatePacking)
	authed.GET("/allocations", h.Workflow.AllocationsByDate)
	authed.POST("/allocations", h.Workflow.CreateAllocation)
	authed.GET("/deliveries", h.Workflow.DeliveriesByDate)
	authed.POST("/deliveries", h.Workflow.CreateDelivery)

	authed.POST("/media/cooking", h.Media.UploadCooking)
	authed.POST("/media/cleaning", h.Media.UploadCleaning)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
