package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance-coach/internal/config"
	"finance-coach/internal/genai"
	"finance-coach/internal/handlers"
	"finance-coach/internal/middleware"
	"finance-coach/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const version = "1.0.0"

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()
	setupLogging(cfg)

	metrics := services.NewPrometheusMetrics()
	generator, modelName := setupGenerator(cfg, metrics)

	categories := services.NewCategoryService()
	analyzer := services.NewExpenseAnalyzer(categories)
	planner := services.NewDebtPlanner()
	budgetAdvisor := services.NewBudgetAdvisor(generator, cfg.Generator.Timeout, metrics)
	savingsAdvisor := services.NewSavingsAdvisor(generator, cfg.Generator.Timeout, metrics)
	chat := services.NewChatService(generator, cfg.Generator.Timeout, metrics, modelName)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.TraceIDHeader},
	}))

	healthHandler := handlers.NewHealthHandler(version, generator != nil, modelName)
	budgetHandler := handlers.NewBudgetHandler(budgetAdvisor, metrics)
	expenseHandler := handlers.NewExpenseHandler(analyzer, categories, metrics, cfg.Upload)
	debtHandler := handlers.NewDebtHandler(planner, metrics)
	savingsHandler := handlers.NewSavingsHandler(savingsAdvisor, metrics)
	chatHandler := handlers.NewChatHandler(chat, metrics)
	demoHandler := handlers.NewDemoHandler()

	e.GET("/", healthHandler.Index)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.POST("/budget/analyze", budgetHandler.AnalyzeBudget)
	api.POST("/expenses/analyze", expenseHandler.AnalyzeExpenses)
	api.POST("/expenses/categorize", expenseHandler.Categorize)
	api.POST("/expenses/upload", expenseHandler.Upload)
	api.POST("/savings/strategy", savingsHandler.CreateStrategy)
	api.POST("/debt/analyze", debtHandler.AnalyzeDebts)
	api.POST("/debt/payoff-plan", debtHandler.CreatePayoffPlan)
	api.POST("/debt/compare", debtHandler.CompareMethods)
	api.POST("/chat", chatHandler.Chat)
	api.GET("/sample-data", demoHandler.SampleData)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Starting server",
			"address", server.Addr,
			"environment", cfg.Server.Environment,
			"ai_enabled", generator != nil,
			"model", modelName,
		)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

// setupLogging configures the process-wide structured logger. Production
// gets JSON output, everything else gets text for readability.
func setupLogging(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}

// setupGenerator probes for a usable generation model and wraps the client
// with a circuit breaker and a response cache. A nil generator is returned
// when no API key is configured or no model answers, and every advisory
// endpoint then serves deterministic fallbacks.
func setupGenerator(cfg *config.Config, metrics services.MetricsRecorderInterface) (genai.Generator, string) {
	if !cfg.GeneratorEnabled() {
		slog.Warn("GOOGLE_API_KEY not set, narrative generation disabled")
		return nil, ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := genai.NewGeminiClient(ctx, cfg.Generator.APIKey, cfg.Generator.Models)
	if err != nil {
		slog.Warn("No usable generation model, narrative generation disabled", "error", err)
		return nil, ""
	}

	slog.Info("Narrative generator ready", "model", client.ModelName())

	breaker := genai.NewBreakerGenerator(client, genai.DefaultBreakerConfig(), metrics.SetGeneratorBreakerState)
	return genai.NewCachedGenerator(breaker), client.ModelName()
}
