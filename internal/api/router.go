package api

import (
	"fintrack/docs"
	"fintrack/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	txHandler *handlers.TransactionHandler,
	acctHandler *handlers.AccountHandler,
	cardHandler *handlers.CreditCardHandler,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	// Swagger - importing docs registers the spec through its init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	transactions := api.Group("/transactions")
	transactions.Post("", txHandler.Create)
	transactions.Get("/user/:userId", txHandler.ListByUser)
	transactions.Get("/summary/:userId", txHandler.MonthlySummary)
	transactions.Get("/search/:userId", txHandler.Search)
	transactions.Put("/:id", txHandler.Update)
	transactions.Delete("/:id", txHandler.Delete)

	creditcards := api.Group("/creditcards")
	creditcards.Get("/summary/:userId", cardHandler.MonthlySummary)

	accounts := api.Group("/accounts")
	accounts.Get("/:userId/:monthYear", acctHandler.Get)
	accounts.Put("/:userId/:monthYear", acctHandler.Put)
	accounts.Patch("/:userId/:monthYear/balance", acctHandler.PatchBalance)

	return app
}
