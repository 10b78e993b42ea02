// Package http wires the application into a Gin engine: repositories,
// use cases, middleware, and routes.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	actionUC "lerms/internal/application/actionengine/usecases"
	agencyUC "lerms/internal/application/agency/usecases"
	authUC "lerms/internal/application/auth/usecases"
	documentUC "lerms/internal/application/document/usecases"
	identitySvc "lerms/internal/application/identity/services"
	identityUC "lerms/internal/application/identity/usecases"
	licenseUC "lerms/internal/application/license/usecases"
	suppressionUC "lerms/internal/application/suppressionengine/usecases"
	vehicleUC "lerms/internal/application/vehicle/usecases"
	"lerms/internal/domain/license"
	"lerms/internal/domain/record"
	"lerms/internal/domain/vehicle"
	"lerms/internal/infrastructure/auth"
	"lerms/internal/infrastructure/config"
	"lerms/internal/infrastructure/email"
	"lerms/internal/infrastructure/ocr"
	"lerms/internal/infrastructure/permission"
	"lerms/internal/infrastructure/ratelimit"
	"lerms/internal/infrastructure/repository"
	"lerms/internal/interfaces/http/handlers"
	"lerms/internal/interfaces/http/middleware"
	"lerms/internal/shared/constants"
	"lerms/internal/shared/db"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/services/markdown"

	_ "lerms/docs"
)

const version = "1.0.0"

// Router holds the engine plus everything route setup needs.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	identityMW   *middleware.IdentityMiddleware
	permissionMW *middleware.PermissionMiddleware
	rateLimitMW  gin.HandlerFunc

	healthHandler      *handlers.HealthHandler
	authHandler        *handlers.AuthHandler
	vehicleHandler     *handlers.VehicleHandler
	licenseHandler     *handlers.LicenseHandler
	documentHandler    *handlers.DocumentHandler
	actionHandler      *handlers.ActionHandler
	suppressionHandler *handlers.SuppressionHandler
	agencyHandler      *handlers.AgencyHandler
	adminHandler       *handlers.AdminHandler
}

// NewRouter builds the full dependency graph over the given database and
// redis connections.
func NewRouter(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	txManager := db.NewTransactionManager(gormDB)
	markdownSvc := markdown.NewService()

	// Repositories
	vehicleRepo := repository.NewVehicleRepository(gormDB, log)
	licenseRepo := repository.NewLicenseRepository(gormDB, log)
	documentRepo := repository.NewDocumentRepository(gormDB, log)
	agencyRepo := repository.NewAgencyRepository(gormDB, log)
	actionTypeRepo := repository.NewActionTypeRepository(gormDB, log)
	actionLogRepo := repository.NewActionLogRepository(gormDB, log)
	suppressionRepo := repository.NewSuppressionRepository(gormDB, log)
	userRepo := repository.NewUserRepository(gormDB, log)
	roleRepo := repository.NewRoleRepository(gormDB, log)
	permRepo := repository.NewPermissionRepository(gormDB, log)
	mappingRepo := repository.NewEmailRoleMappingRepository(gormDB, log)

	// Every record kind the workflow can act on registers its store here.
	registry := record.NewRegistry()
	registry.Register(record.KindVehicleMaster, repository.NewVehicleStore(gormDB, vehicle.VariantMaster, log))
	registry.Register(record.KindVehicleUndercover, repository.NewVehicleStore(gormDB, vehicle.VariantUndercover, log))
	registry.Register(record.KindVehicleFictitious, repository.NewVehicleStore(gormDB, vehicle.VariantFictitious, log))
	registry.Register(record.KindDLOriginal, repository.NewLicenseStore(gormDB, license.VariantOriginal, log))
	registry.Register(record.KindDLFictitious, repository.NewLicenseStore(gormDB, license.VariantFictitious, log))
	registry.Register(record.KindDocument, repository.NewDocumentStore(gormDB, log))

	// Infrastructure services
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	notifier := email.NewSMTPNotifier(&cfg.Email, log)
	extractor := ocr.NewSimulatedExtractor(log)

	enforcer, err := permission.NewEnforcer(gormDB, log)
	if err != nil {
		return nil, err
	}
	if err := permission.NewPermissionSync(gormDB, enforcer, log).SyncToCasbin(); err != nil {
		// A failed sync falls back to the in-memory role check.
		log.Warnw("policy sync failed", "error", err)
	}

	// Identity
	resolver := identitySvc.NewResolverService(userRepo, roleRepo, mappingRepo, constants.RoleSlugDefault, log)
	permService := identitySvc.NewPermissionService()

	// Use cases
	applyActionUC := actionUC.NewApplyActionUseCase(actionTypeRepo, actionLogRepo, registry, txManager, cfg.Actions.EnableReprocess, log)
	historyUC := actionUC.NewGetActionHistoryUseCase(actionLogRepo, registry, markdownSvc, log)
	listTypesUC := actionUC.NewListActionTypesUseCase(actionTypeRepo, log)

	createSuppressionUC := suppressionUC.NewCreateSuppressionUseCase(suppressionRepo, registry, markdownSvc, notifier, log)
	getSuppressionUC := suppressionUC.NewGetSuppressionUseCase(suppressionRepo, markdownSvc, log)
	updateSuppressionUC := suppressionUC.NewUpdateSuppressionUseCase(suppressionRepo, markdownSvc, log)
	revokeSuppressionUC := suppressionUC.NewRevokeSuppressionUseCase(suppressionRepo, notifier, log)
	listSuppressionsUC := suppressionUC.NewListSuppressionsUseCase(suppressionRepo, log)
	checkSuppressionUC := suppressionUC.NewCheckSuppressionUseCase(suppressionRepo, log)
	suppressionDetailsUC := suppressionUC.NewSuppressionDetailsUseCase(suppressionRepo, log)

	loginUC := authUC.NewLoginUseCase(userRepo, jwtService, log)
	adminUC := identityUC.NewAdminUseCase(userRepo, roleRepo, permRepo, mappingRepo, log)

	// Middleware
	identityMW := middleware.NewIdentityMiddleware(jwtService, resolver, log)
	permissionMW := middleware.NewPermissionMiddleware(permService, enforcer, log)
	rateLimitMW := middleware.RateLimit(ratelimit.NewRedisRateLimiter(redisClient), &cfg.RateLimit, log)

	return &Router{
		engine: engine,
		cfg:    cfg,
		logger: log,

		identityMW:   identityMW,
		permissionMW: permissionMW,
		rateLimitMW:  rateLimitMW,

		healthHandler: handlers.NewHealthHandler(version),
		authHandler:   handlers.NewAuthHandler(loginUC),
		vehicleHandler: handlers.NewVehicleHandler(
			vehicleUC.NewCreateVehicleUseCase(vehicleRepo, agencyRepo, log),
			vehicleUC.NewGetVehicleUseCase(vehicleRepo, suppressionRepo, log),
			vehicleUC.NewUpdateVehicleUseCase(vehicleRepo, log),
			vehicleUC.NewDeleteVehicleUseCase(vehicleRepo, log),
			vehicleUC.NewListVehiclesUseCase(vehicleRepo, log),
			permService,
		),
		licenseHandler: handlers.NewLicenseHandler(
			licenseUC.NewCreateLicenseUseCase(licenseRepo, agencyRepo, log),
			licenseUC.NewGetLicenseUseCase(licenseRepo, suppressionRepo, log),
			licenseUC.NewUpdateLicenseUseCase(licenseRepo, log),
			licenseUC.NewDeleteLicenseUseCase(licenseRepo, log),
			licenseUC.NewListLicensesUseCase(licenseRepo, log),
			licenseUC.NewLicenseContactsUseCase(licenseRepo, log),
			permService,
		),
		documentHandler: handlers.NewDocumentHandler(
			documentUC.NewUploadDocumentUseCase(documentRepo, registry, extractor, log),
			documentUC.NewListDocumentsUseCase(documentRepo, log),
			documentUC.NewGetDocumentUseCase(documentRepo, log),
			permService,
		),
		actionHandler:      handlers.NewActionHandler(applyActionUC, historyUC, listTypesUC),
		suppressionHandler: handlers.NewSuppressionHandler(createSuppressionUC, getSuppressionUC, updateSuppressionUC, revokeSuppressionUC, listSuppressionsUC, checkSuppressionUC, suppressionDetailsUC),
		agencyHandler:      handlers.NewAgencyHandler(agencyUC.NewAgencyUseCase(agencyRepo, log)),
		adminHandler:       handlers.NewAdminHandler(adminUC),
	}, nil
}

// GetEngine returns the underlying Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.healthHandler.Health)
	r.engine.GET("/version", r.healthHandler.Version)
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.POST("/auth/login", r.rateLimitMW, r.authHandler.Login)

	r.setupVehicleRoutes()
	r.setupLicenseRoutes()
	r.setupDocumentRoutes()
	r.setupActionRoutes()
	r.setupSuppressionRoutes()
	r.setupAgencyRoutes()
	r.setupAdminRoutes()
}

func (r *Router) setupVehicleRoutes() {
	vehicles := r.engine.Group("/vehicles")
	vehicles.Use(r.rateLimitMW, r.identityMW.Resolve())
	{
		vehicles.POST("", r.permissionMW.RequirePermission(constants.PermissionVehicleWrite), r.vehicleHandler.Create)
		vehicles.GET("", r.permissionMW.RequirePermission(constants.PermissionVehicleRead), r.vehicleHandler.List)
		vehicles.GET("/:id", r.permissionMW.RequirePermission(constants.PermissionVehicleRead), r.vehicleHandler.Get)
		vehicles.PATCH("/:id", r.permissionMW.RequirePermission(constants.PermissionVehicleWrite), r.vehicleHandler.Update)
		vehicles.DELETE("/:id", r.permissionMW.RequirePermission(constants.PermissionVehicleWrite), r.vehicleHandler.Delete)
	}
}

func (r *Router) setupLicenseRoutes() {
	licenses := r.engine.Group("/licenses")
	licenses.Use(r.rateLimitMW, r.identityMW.Resolve())
	{
		licenses.POST("", r.permissionMW.RequirePermission(constants.PermissionLicenseWrite), r.licenseHandler.Create)
		licenses.GET("", r.permissionMW.RequirePermission(constants.PermissionLicenseRead), r.licenseHandler.List)
		licenses.GET("/:id", r.permissionMW.RequirePermission(constants.PermissionLicenseRead), r.licenseHandler.Get)
		licenses.PATCH("/:id", r.permissionMW.RequirePermission(constants.PermissionLicenseWrite), r.licenseHandler.Update)
		licenses.DELETE("/:id", r.permissionMW.RequirePermission(constants.PermissionLicenseWrite), r.licenseHandler.Delete)
		licenses.POST("/:id/contacts", r.permissionMW.RequirePermission(constants.PermissionLicenseWrite), r.licenseHandler.AddContact)
		licenses.GET("/:id/contacts", r.permissionMW.RequirePermission(constants.PermissionLicenseRead), r.licenseHandler.ListContacts)
	}
}

func (r *Router) setupDocumentRoutes() {
	documents := r.engine.Group("/documents")
	documents.Use(r.rateLimitMW, r.identityMW.Resolve())
	{
		documents.POST("", r.permissionMW.RequirePermission(constants.PermissionDocumentWrite), r.documentHandler.Upload)
		documents.GET("", r.permissionMW.RequirePermission(constants.PermissionDocumentRead), r.documentHandler.List)
		documents.GET("/:id", r.permissionMW.RequirePermission(constants.PermissionDocumentRead), r.documentHandler.Get)
	}
}

func (r *Router) setupActionRoutes() {
	records := r.engine.Group("/records")
	records.Use(r.rateLimitMW, r.identityMW.Resolve())
	{
		records.POST("/:kind/:id/actions", r.permissionMW.RequirePermission(constants.PermissionActionApply), r.actionHandler.Apply)
		// History is readable by anyone who may read the record itself.
		records.GET("/:kind/:id/actions", r.permissionMW.RequireKindRead("kind"), r.actionHandler.History)
	}

	actions := r.engine.Group("/actions")
	actions.Use(r.rateLimitMW, r.identityMW.Resolve())
	{
		actions.GET("/types", r.actionHandler.ListTypes)
	}
}

func (r *Router) setupSuppressionRoutes() {
	suppressions := r.engine.Group("/suppressions")
	suppressions.Use(r.rateLimitMW, r.identityMW.Resolve())
	{
		suppressions.POST("", r.permissionMW.RequirePermission(constants.PermissionSuppressionWrite), r.suppressionHandler.Create)
		suppressions.GET("", r.permissionMW.RequirePermission(constants.PermissionSuppressionRead), r.suppressionHandler.List)
		suppressions.GET("/check", r.permissionMW.RequirePermission(constants.PermissionSuppressionRead), r.suppressionHandler.Check)
		suppressions.GET("/:id", r.permissionMW.RequirePermission(constants.PermissionSuppressionRead), r.suppressionHandler.Get)
		suppressions.PATCH("/:id", r.permissionMW.RequirePermission(constants.PermissionSuppressionWrite), r.suppressionHandler.Update)
		suppressions.POST("/:id/revoke", r.permissionMW.RequirePermission(constants.PermissionSuppressionWrite), r.suppressionHandler.Revoke)
		suppressions.POST("/:id/access-requests", r.permissionMW.RequirePermission(constants.PermissionSuppressionWrite), r.suppressionHandler.AddAccessRequest)
		suppressions.GET("/:id/access-requests", r.permissionMW.RequirePermission(constants.PermissionSuppressionRead), r.suppressionHandler.ListAccessRequests)
		suppressions.POST("/:id/identity-aliases", r.permissionMW.RequirePermission(constants.PermissionSuppressionWrite), r.suppressionHandler.AddIdentityAlias)
		suppressions.GET("/:id/identity-aliases", r.permissionMW.RequirePermission(constants.PermissionSuppressionRead), r.suppressionHandler.ListIdentityAliases)
	}
}

func (r *Router) setupAgencyRoutes() {
	agencies := r.engine.Group("/agencies")
	agencies.Use(r.rateLimitMW, r.identityMW.Resolve())
	{
		agencies.POST("", r.permissionMW.RequirePermission(constants.PermissionAdminManage), r.agencyHandler.Create)
		agencies.GET("", r.agencyHandler.List)
		agencies.GET("/:id", r.agencyHandler.Get)
	}
}

func (r *Router) setupAdminRoutes() {
	admin := r.engine.Group("/admin")
	admin.Use(r.rateLimitMW, r.identityMW.Resolve(), r.permissionMW.RequirePermission(constants.PermissionAdminManage))
	{
		admin.POST("/roles", r.adminHandler.CreateRole)
		admin.GET("/roles", r.adminHandler.ListRoles)
		admin.POST("/roles/:id/permissions", r.adminHandler.GrantPermission)
		admin.GET("/permissions", r.adminHandler.ListPermissions)
		admin.POST("/mappings", r.adminHandler.CreateMapping)
		admin.GET("/mappings", r.adminHandler.ListMappings)
		admin.DELETE("/mappings/:id", r.adminHandler.DeleteMapping)
		admin.GET("/users", r.adminHandler.ListUsers)
		admin.POST("/users/:id/deactivate", r.adminHandler.DeactivateUser)
	}
}
