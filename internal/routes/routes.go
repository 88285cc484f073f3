package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/academia-accounts/internal/audit"
	"github.com/BruksfildServices01/academia-accounts/internal/config"
	"github.com/BruksfildServices01/academia-accounts/internal/handlers"
	infraRepo "github.com/BruksfildServices01/academia-accounts/internal/infra/repository"
	"github.com/BruksfildServices01/academia-accounts/internal/middleware"
	"github.com/BruksfildServices01/academia-accounts/internal/ratelimit"
	"github.com/BruksfildServices01/academia-accounts/internal/token"
	ucAccount "github.com/BruksfildServices01/academia-accounts/internal/usecase/account"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	accountRepo := infraRepo.NewAccountGormRepository(db)
	tokenService := token.NewService(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var throttle *ratelimit.LoginThrottle
	if cfg.RedisURL != "" {
		t, err := ratelimit.NewLoginThrottle(cfg.RedisURL)
		if err != nil {
			log.Println("login throttle disabled:", err)
		} else {
			throttle = t
		}
	}

	// ======================================================
	// 🧠 USE CASES — ACCOUNTS
	// ======================================================
	registerUC := ucAccount.NewRegisterAccount(accountRepo, auditDispatcher)

	authenticateUC := ucAccount.NewAuthenticate(
		accountRepo,
		tokenService,
		throttle,
		auditDispatcher,
	)

	updateUC := ucAccount.NewUpdateAccount(accountRepo, auditDispatcher)
	deleteUC := ucAccount.NewDeleteAccount(accountRepo, auditDispatcher)
	listUC := ucAccount.NewListAccounts(accountRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	userHandler := handlers.NewUserHandler(registerUC, updateUC, deleteUC, listUC)
	authHandler := handlers.NewAuthHandler(authenticateUC)
	meHandler := handlers.NewMeHandler(accountRepo)

	// ======================================================
	// 🌐 ROTAS
	// ======================================================
	r.POST("/users", userHandler.Create)
	r.GET("/users", userHandler.List)
	r.PUT("/users/:id", userHandler.Update)
	r.DELETE("/users/:id", userHandler.Delete)

	r.POST("/login", authHandler.Login)

	// ------------------------------
	// 🔐 ROTAS AUTENTICADAS
	// ------------------------------
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(tokenService))
	{
		secured.GET("/me", meHandler.GetMe)
	}
}
