package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/koleso24/cabinet-api/internal/api/handler"
	"github.com/koleso24/cabinet-api/internal/api/middleware"
	"github.com/koleso24/cabinet-api/internal/core/ports"
)

// Deps carries everything the router needs. Mongo and Redis are nil when the
// respective backend is not configured; the readiness probe skips them.
type Deps struct {
	Cabinet    ports.CabinetService
	Visibility ports.VisibilityService
	Messenger  ports.MessengerService

	Mongo *mongo.Database
	Redis *redis.Client

	BotToken    string
	AdminChatID string
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("cabinet"))

	// --- Handlers ---
	cabinetHandler := handler.NewCabinetHandler(deps.Cabinet)
	visibilityHandler := handler.NewVisibilityHandler(deps.Visibility)
	adminHandler := handler.NewAdminHandler(deps.Cabinet, deps.Messenger)

	auth := middleware.TelegramAuth(deps.BotToken, deps.AdminChatID, deps.Log)
	admin := middleware.RequireAdmin()

	// --- Cabinet routes ---
	e.GET("/api/client", cabinetHandler.CurrentOrder, auth)
	e.GET("/api/archive", cabinetHandler.History, auth)

	// Settings read stays open: clients need it to render their filtered view.
	e.GET("/api/field-visibility", visibilityHandler.Get)
	e.POST("/api/field-visibility", visibilityHandler.Update, auth, admin)

	// Bot-facing signup, mirrors the spreadsheet addUser action.
	e.POST("/api/users", cabinetHandler.Register)

	// --- Admin routes ---
	g := e.Group("/api/admin", auth, admin)
	g.GET("/clients", adminHandler.Clients)
	g.GET("/archive", adminHandler.Archive)
	g.GET("/templates", adminHandler.Templates)
	g.POST("/message", adminHandler.SendMessage)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
