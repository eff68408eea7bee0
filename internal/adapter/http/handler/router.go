package handler

import (
	"sync"

	"custody-ledger/internal/adapter/http/middleware"
	redisStore "custody-ledger/internal/adapter/storage/redis"
	"custody-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LedgerSvc      ports.LedgerService
	Catalog        ports.PluginCatalog
	NoticeSvc      ports.NoticeService
	AuthSvc        ports.AuthService
	CallerKeySvc   ports.CallerKeyService
	CallerKeyRepo  ports.CallerKeyRepository
	EncSvc         ports.EncryptionService
	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
// A single mutex serializes every call into the ledger core; the core is
// strictly sequential and reentrant only from its own plugin hooks.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	ledgerMu := &sync.Mutex{}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- HMAC-authenticated routes (custody API) ---
	hmacAuth := middleware.HMACAuth(deps.CallerKeyRepo, deps.EncSvc, deps.SigSvc, deps.NonceStore, deps.Logger)
	ledgerHandler := NewLedgerHandler(deps.LedgerSvc, ledgerMu)
	ledger := v1.Group("/ledger", hmacAuth)
	{
		ledger.POST("/deposit", rl("ledger"), ledgerHandler.Deposit)
		ledger.POST("/withdraw", rl("ledger"), ledgerHandler.Withdraw)
	}

	// --- Owner administration (HMAC-authenticated; the ledger core
	// rejects non-owner callers) ---
	adminHandler := NewAdminHandler(deps.LedgerSvc, deps.Catalog, deps.CallerKeySvc, ledgerMu)
	admin := v1.Group("/admin", hmacAuth)
	{
		admin.POST("/users", rl("admin"), adminHandler.AddUser)
		admin.DELETE("/users", rl("admin"), adminHandler.RemoveUser)
		admin.PUT("/plugin", rl("admin"), adminHandler.SetPlugin)
		admin.POST("/force-withdraw", rl("admin"), adminHandler.ForceWithdraw)
		admin.PUT("/deposited", rl("admin"), adminHandler.SetDeposited)
		admin.POST("/caller-keys", rl("admin"), adminHandler.IssueCallerKey)
	}

	// --- JWT-authenticated routes (read-only console) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	consoleHandler := NewConsoleHandler(deps.LedgerSvc, deps.Catalog, deps.NoticeSvc, ledgerMu)
	console := v1.Group("/console", jwtAuth)
	{
		console.GET("/deposited/:asset", rl("console"), consoleHandler.GetDeposited)
		console.GET("/plugin/:asset", rl("console"), consoleHandler.GetPlugin)
		console.GET("/plugins", rl("console"), consoleHandler.ListPlugins)
		console.GET("/users/:address", rl("console"), consoleHandler.GetUserStatus)
		console.GET("/notices", rl("console"), consoleHandler.ListNotices)
	}

	return r
}
