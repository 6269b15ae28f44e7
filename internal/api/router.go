package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/safespend/safespend-api/internal/api/handler"
	"github.com/safespend/safespend-api/internal/api/middleware"
	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
	"github.com/safespend/safespend-api/internal/core/service"
)

// Deps carries everything the router needs to assemble services and
// handlers. Mongo and Redis are nil when the memory backend runs alone.
type Deps struct {
	Users      ports.UserRepository
	Allergies  ports.AllergyRepository
	Expenses   ports.ExpenseRepository
	Accounts   ports.AccountRepository
	Roommates  ports.RoommateRepository
	BillSplits ports.BillSplitRepository
	Activities ports.ActivityRepository
	Budgets    ports.BudgetRepository

	BillingProvider ports.BillingProvider
	WebhookDeduper  service.WebhookDeduper

	JWTSecret          string
	StrictCustomSplits bool

	Mongo  *mongo.Database
	Redis  *redis.Client
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("safespend"))

	// --- Services ---
	authService := service.NewAuthService(deps.Users, deps.JWTSecret, 24*time.Hour)
	allergyService := service.NewAllergyService(deps.Allergies, deps.Activities, deps.Logger)
	expenseService := service.NewExpenseService(deps.Expenses, deps.Activities, deps.Logger)
	accountService := service.NewAccountService(deps.Accounts)
	roommateService := service.NewRoommateService(deps.Roommates)
	billSplitService := service.NewBillSplitService(deps.BillSplits, deps.Activities, deps.StrictCustomSplits, deps.Logger)
	budgetService := service.NewBudgetService(deps.Budgets)
	dashboardService := service.NewDashboardService(deps.Allergies, deps.Expenses, deps.Accounts, deps.Activities, billSplitService, deps.Logger)
	billingService := service.NewBillingService(deps.Users, deps.BillingProvider, deps.WebhookDeduper, deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	allergyHandler := handler.NewAllergyHandler(allergyService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	accountHandler := handler.NewAccountHandler(accountService)
	roommateHandler := handler.NewRoommateHandler(roommateService)
	billSplitHandler := handler.NewBillSplitHandler(billSplitService)
	budgetHandler := handler.NewBudgetHandler(budgetService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	billingHandler := handler.NewBillingHandler(billingService)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Public API routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/billing/webhook", billingHandler.Webhook)

	// --- Authenticated API routes ---
	authMW := middleware.Auth(deps.JWTSecret)
	g := e.Group("/api", authMW)

	g.GET("/auth/me", authHandler.Me)

	g.GET("/allergies", allergyHandler.List)
	g.POST("/allergies", allergyHandler.Create)
	g.PUT("/allergies/:id", allergyHandler.Update)
	g.DELETE("/allergies/:id", allergyHandler.Delete)

	g.GET("/expenses", expenseHandler.List)
	g.POST("/expenses", expenseHandler.Create)
	g.PUT("/expenses/:id", expenseHandler.Update)
	g.DELETE("/expenses/:id", expenseHandler.Delete)

	g.GET("/accounts", accountHandler.List)
	g.POST("/accounts", accountHandler.Create)
	g.PUT("/accounts/:id", accountHandler.Update)
	g.DELETE("/accounts/:id", accountHandler.Delete)

	g.GET("/roommates", roommateHandler.List)
	g.POST("/roommates", roommateHandler.Create)
	g.PUT("/roommates/:id", roommateHandler.Update)
	g.DELETE("/roommates/:id", roommateHandler.Delete)

	g.GET("/bill-splits", billSplitHandler.List)
	g.POST("/bill-splits", billSplitHandler.Create)
	g.PUT("/bill-splits/:id/settle", billSplitHandler.Settle)

	g.GET("/dashboard", dashboardHandler.Summary)
	g.GET("/achievements", dashboardHandler.Achievements)

	g.POST("/billing/checkout-session", billingHandler.Checkout)
	g.POST("/billing/portal-session", billingHandler.Portal)

	// Budgets are a paid feature.
	pro := g.Group("/budgets", middleware.RequirePlan(domain.PlanPro))
	pro.GET("", budgetHandler.List)
	pro.POST("", budgetHandler.Create)

	return e
}
