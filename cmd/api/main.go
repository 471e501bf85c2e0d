package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	goredis "github.com/redis/go-redis/v9"

	_ "github.com/jhoicas/faro-api/docs"
	"github.com/jhoicas/faro-api/internal/application/articles"
	"github.com/jhoicas/faro-api/internal/application/assistant"
	"github.com/jhoicas/faro-api/internal/application/expenses"
	"github.com/jhoicas/faro-api/internal/application/usecase"
	infraai "github.com/jhoicas/faro-api/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/faro-api/internal/infrastructure/pdf"
	"github.com/jhoicas/faro-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/faro-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/faro-api/internal/interfaces/http"
	"github.com/jhoicas/faro-api/pkg/config"
	"github.com/jhoicas/faro-api/pkg/logger"
)

// @title           Faro API
// @version         1.0
// @description     Artículos con ajustes de stock, gastos de empleados y asistente IA.
// @BasePath        /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	articleRepo := postgres.NewArticleRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	expenseRepo := postgres.NewEmployeeExpenseRepository(pool)
	cashRepo := postgres.NewCashMovementRepository(pool)

	trialSvc := usecase.NewTrialService(companyRepo)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	articlesUC := articles.NewUseCase(
		articleRepo, movementRepo, catalogRepo, trialSvc,
		infrapdf.NewMovementReportGenerator(), log.Component("articles"),
	)
	expensesUC := expenses.NewUseCase(expenseRepo, cashRepo, catalogRepo, log.Component("expenses"))

	// Redis opcional: historial del asistente y contadores del rate limit.
	var (
		rdb   *goredis.Client
		store assistant.ConversationStore = assistant.NewMemoryStore(cfg.Redis.MaxMessages)
	)
	if cfg.Redis.URL != "" {
		rdb, err = infraredis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		store = infraredis.NewConversationStore(rdb, cfg.Redis.TTL, cfg.Redis.MaxMessages)
	} else {
		log.Warn().Msg("REDIS_URL vacío: historial del asistente en memoria")
	}
	if cfg.Assistant.WebhookURL == "" {
		log.Warn().Msg("ASSISTANT_WEBHOOK_URL vacío: el asistente responderá con el mensaje de configuración")
	}
	assistantUC := assistant.NewUseCase(
		infraai.NewWebhookClient(cfg.Assistant.WebhookURL), store, cfg.Assistant.Timeout, log.Component("assistant"),
	)

	lim, err := httpRouter.NewRateLimiter(cfg.Assistant.RateLimit, rdb)
	if err != nil {
		log.Fatal().Err(err).Str("rate", cfg.Assistant.RateLimit).Msg("rate limit del asistente")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Assistant.Timeout + time.Second*10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Faro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Articles:    articlesUC,
		Expenses:    expensesUC,
		Catalog:     catalogUC,
		Company:     companyUC,
		Assistant:   assistantUC,
		RateLimiter: lim,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
