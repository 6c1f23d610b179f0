package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ayushbridge/ayushbridge/internal/config"
	"github.com/ayushbridge/ayushbridge/internal/service"
	"github.com/ayushbridge/ayushbridge/pkg/metrics"
)

type RouterDeps struct {
	Config    *config.Config
	AuthSvc   *service.AuthService
	UserSvc   *service.UserService
	RecordSvc *service.RecordService
	TermSvc   *service.TerminologyService
	AuditSvc  *service.AuditService
	Collector *metrics.Collector
}

// NewRouter wires every route of the service. The route set mirrors the
// public API: health and autocomplete are open, login issues tokens, and
// everything else sits behind the bearer-token middleware.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CORS(deps.Config.CORS))
	router.Use(Tracing(deps.Config.App.Name))
	router.Use(Metrics(deps.Collector))

	authHandler := NewAuthHandler(deps.AuthSvc, deps.UserSvc, deps.Collector)
	recordHandler := NewRecordHandler(deps.RecordSvc, deps.UserSvc, deps.Collector)
	termHandler := NewTerminologyHandler(deps.TermSvc, deps.Collector)
	adminHandler := NewAdminHandler(deps.AuditSvc)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "now": time.Now().UTC().Format(time.RFC3339)})
	})
	router.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	router.GET("/autocomplete", termHandler.Autocomplete)
	router.POST("/login", authHandler.Login)

	authed := router.Group("/", RequireAuth(deps.AuthSvc))
	{
		authed.GET("/profile", authHandler.Profile)
		authed.GET("/patients", recordHandler.ListPatients)
		authed.GET("/doctors", recordHandler.ListDoctors)
		authed.GET("/patients/:id/records", recordHandler.ListRecords)
		authed.PUT("/patients/:id/records", recordHandler.AddRecord)
		authed.GET("/patients/:id/doctor", recordHandler.AssignedDoctor)
		authed.GET("/patients/:id/insurance", recordHandler.Insurance)
		authed.GET("/admin/login-transactions", adminHandler.LoginTransactions)
		authed.GET("/admin/login-transactions/csv", adminHandler.LoginTransactionsCSV)
	}

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "endpoint not found")
	})

	return router
}
