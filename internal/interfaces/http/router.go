package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ulule/limiter/v3"

	"github.com/jhoicas/faro-api/internal/application/articles"
	"github.com/jhoicas/faro-api/internal/application/assistant"
	"github.com/jhoicas/faro-api/internal/application/expenses"
	"github.com/jhoicas/faro-api/internal/application/usecase"
	"github.com/jhoicas/faro-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Articles    *articles.UseCase
	Expenses    *expenses.UseCase
	Catalog     *usecase.CatalogUseCase
	Company     *usecase.CompanyUseCase
	Assistant   *assistant.UseCase
	RateLimiter *limiter.Limiter // nil desactiva el límite del asistente
	JWTSecret   string
	Log         *logger.Logger
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Empresa actual (estado de la prueba gratis)
	companyHandler := NewCompanyHandler(deps.Company)
	protected.Get("/company", companyHandler.Current)

	// Artículos y ajustes de stock
	articleHandler := NewArticleHandler(deps.Articles, deps.Log)
	arts := protected.Group("/articles")
	arts.Get("/", articleHandler.List)
	arts.Post("/", articleHandler.Create)
	arts.Get("/:id", articleHandler.GetByID)
	arts.Put("/:id", articleHandler.Update)
	arts.Get("/:id/movements", articleHandler.Movements)
	arts.Get("/:id/movements/report", articleHandler.MovementReport)

	// Catálogos
	catalogHandler := NewCatalogHandler(deps.Catalog)
	protected.Get("/agrupadores", catalogHandler.Agrupadores)
	protected.Get("/marcas", catalogHandler.Marcas)
	protected.Get("/tipos-gasto", catalogHandler.TiposGasto)

	// Gastos de empleados (admin)
	expenseHandler := NewExpenseHandler(deps.Expenses)
	gastos := protected.Group("/gastos-empleados", RequireRole("admin"))
	gastos.Get("/", expenseHandler.List)
	gastos.Post("/", expenseHandler.Create)

	// Asistente IA
	assistantHandler := NewAssistantHandler(deps.Assistant)
	var mw []fiber.Handler
	if deps.RateLimiter != nil {
		mw = append(mw, RateLimit(deps.RateLimiter, deps.Log))
	}
	chat := protected.Group("/assistant", mw...)
	chat.Get("/suggestions", assistantHandler.Suggestions)
	chat.Post("/messages", assistantHandler.Send)
	chat.Get("/messages", assistantHandler.History)
	chat.Delete("/messages", assistantHandler.Clear)
}
