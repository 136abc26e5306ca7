package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/professional-agenda/internal/audit"
	domain "github.com/BruksfildServices01/professional-agenda/internal/domain/availability"
	"github.com/BruksfildServices01/professional-agenda/internal/handlers"
	"github.com/BruksfildServices01/professional-agenda/internal/middleware"
	ucAvailability "github.com/BruksfildServices01/professional-agenda/internal/usecase/availability"
	ucSession "github.com/BruksfildServices01/professional-agenda/internal/usecase/session"
)

// Deps are the singletons the router is built from. DB is optional; the
// audit log listing is only mounted when it is set.
type Deps struct {
	Repo        domain.Repository
	Audit       *audit.Dispatcher
	Log         *zap.Logger
	Limiter     middleware.Limiter
	CORSOrigins []string
	Checks      map[string]handlers.Check
	DB          *gorm.DB
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(deps.Log))
	r.Use(middleware.CORSMiddleware(deps.CORSOrigins))
	if deps.Limiter != nil {
		r.Use(middleware.RateLimit(deps.Limiter, deps.Log))
	}

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAvailability.NewRegisterAvailability(deps.Repo, deps.Audit)
	updateUC := ucAvailability.NewUpdateAvailability(deps.Repo, deps.Audit)
	getUC := ucAvailability.NewGetAvailability(deps.Repo)
	inRangeUC := ucAvailability.NewGetAvailabilityInRange(deps.Repo)
	deleteUC := ucAvailability.NewDeleteAvailability(deps.Repo, deps.Audit)

	bookUC := ucSession.NewBookSession(deps.Repo, deps.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(deps.Checks)

	availabilityHandler := handlers.NewAvailabilityHandler(
		registerUC,
		updateUC,
		getUC,
		inRangeUC,
		deleteUC,
		deps.Log,
	)

	sessionHandler := handlers.NewSessionHandler(bookUC, deps.Log)

	// ======================================================
	// ROTAS
	// ======================================================
	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)

	// ------------------------------
	// PROFISSIONAIS
	// ------------------------------
	r.POST("/availabilities", availabilityHandler.Register)
	r.GET("/availabilities", availabilityHandler.Get)
	r.PUT("/availabilities", availabilityHandler.Update)
	r.DELETE("/availabilities", availabilityHandler.Delete)
	r.GET("/availabilitiesByInterval", availabilityHandler.GetByInterval)

	// ------------------------------
	// CLIENTES
	// ------------------------------
	r.POST("/sessions", sessionHandler.Book)

	if deps.DB != nil {
		r.GET("/audit-logs", handlers.NewAuditLogsHandler(deps.DB).List)
	}
}
