package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/finrecords/financial-records-api/internal/audit"
	"github.com/finrecords/financial-records-api/internal/config"
	"github.com/finrecords/financial-records-api/internal/handlers"
	infraRepo "github.com/finrecords/financial-records-api/internal/infra/repository"
	"github.com/finrecords/financial-records-api/internal/middleware"
	"github.com/finrecords/financial-records-api/internal/reports"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger, dispatcher *audit.Dispatcher) {
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())

	clientRepo := infraRepo.NewClientGormRepository(db)
	reportSvc := reports.NewService(db)

	healthHandler := handlers.NewHealthHandler(db)
	clientHandler := handlers.NewClientHandler(clientRepo, dispatcher)
	reportHandler := handlers.NewReportHandler(reportSvc)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Check)

		api.GET("/clients", clientHandler.List)
		api.GET("/clients/:id", clientHandler.Get)
		api.POST("/clients", clientHandler.Create)
		api.PUT("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)

		reportsAPI := api.Group("/reports")
		{
			reportsAPI.GET("/total-payments", reportHandler.TotalPayments)
			reportsAPI.GET("/pending-invoices", reportHandler.PendingInvoices)
			reportsAPI.GET("/transactions-by-platform", reportHandler.TransactionsByPlatform)
		}
	}

	// Static frontend
	r.StaticFile("/", "./web/index.html")
	r.Static("/js", "./web/js")
}
