package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/RestoStock-api/internal/application/stockops"
	"github.com/jhoicas/RestoStock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ElementUC  *usecase.ElementUseCase
	LocationUC *usecase.LocationUseCase
	Enqueue    *stockops.EnqueueOperationUseCase
	Execute    *stockops.ExecuteOperationsUseCase
	Janitor    *stockops.JanitorUseCase
	StockQuery *stockops.StockQueryUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todo el API va detrás del Bearer
// Token; los tokens los emite el sistema de usuarios (externo a este servicio).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Catálogo de elementos (gestión restringida; lectura para todos los roles)
	elements := api.Group("/elements")
	elementHandler := NewElementHandler(deps.ElementUC)
	elements.Get("/", elementHandler.List)
	elements.Get("/:id", elementHandler.GetByID)
	elements.Post("/", RequireRole("admin", "gerente"), elementHandler.Create)
	elements.Put("/:id", RequireRole("admin", "gerente"), elementHandler.Update)

	// Ubicaciones
	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Post("/", RequireRole("admin", "gerente"), locationHandler.Create)
	locations.Put("/:id", RequireRole("admin", "gerente"), locationHandler.Update)

	// Cola de operaciones de stock
	stock := api.Group("/stock")
	operationHandler := NewOperationHandler(deps.Enqueue, deps.Execute, deps.Janitor, deps.StockQuery)
	stock.Post("/operations", operationHandler.Enqueue)
	stock.Get("/operations", operationHandler.List)
	stock.Get("/operations/:id", operationHandler.GetByID)
	// run y sweep son disparadores operativos, no de cajeros
	stock.Post("/operations/run", RequireRole("admin", "gerente"), operationHandler.Run)
	stock.Post("/operations/sweep", RequireRole("admin", "gerente"), operationHandler.Sweep)

	// Lecturas del ledger (solo display)
	stockHandler := NewStockHandler(deps.StockQuery)
	stock.Get("/levels/:locationId", stockHandler.LocationSnapshot)
	stock.Get("/levels/:locationId/:elementId", stockHandler.GetQuantity)
}
