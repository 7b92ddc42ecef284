package handlers

import (
	"fmt"

	"github.com/SscSPs/greenhouse_ledger/cmd/docs"
	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/SscSPs/greenhouse_ledger/internal/middleware"
	"github.com/SscSPs/greenhouse_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := registerBindingValidators(); err != nil {
		return err
	}

	r.GET("/health", getHealth)

	// Public authentication routes
	registerAuthRoutes(r, services.Auth)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// registerBindingValidators adds the decimal validation tags to gin's validator engine.
func registerBindingValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return dto.RegisterValidators(v)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerGreenhouseRoutes(v1, service.Greenhouse)
	registerCropCycleRoutes(v1, service.CropCycle, service.Transaction, service.Ledger)
	registerTransactionRoutes(v1, service.Transaction)
	registerFarmerRoutes(v1, service.Farmer, service.Withdrawal, service.Ledger)
	registerSupplierRoutes(v1, service.Supplier, service.SupplierPayment, service.Ledger)
	registerPersonRoutes(v1, service.Person, service.Advance)
	registerProgramRoutes(v1, service.Program, service.Ledger)
	registerSettingsRoutes(v1, service.Settings)
	registerLedgerRoutes(v1, service.Ledger)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
