package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/pkg/config"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName       string
	ProductUC     *usecase.ProductUseCase
	TransactionUC *usecase.TransactionUseCase
	Logger        *logger.Logger
	CORS          config.CORSConfig
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := logger.Nop()
	if deps.Logger != nil {
		log = deps.Logger
	}

	app.Use(RequestID())
	app.Use(AccessLog(log.Component("http")))
	app.Use(recover.New())
	app.Use(CORS(deps.CORS))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.MessageResponse{Message: "Hello World"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.AppName})
	})

	productHandler := NewProductHandler(deps.ProductUC)
	app.Get("/product/:code", productHandler.GetByCode)

	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	app.Get("/transaction/:transaction_id", transactionHandler.GetByID)
	app.Post("/transaction", transactionHandler.Create)
}
