package router

import (
	"lottery_manager/config"
	"lottery_manager/handler"
	"lottery_manager/middleware"
	"lottery_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	app.Static("/uploads", config.ConfigOr("UPLOAD_DIR", "uploads"), fiber.Static{Browse: false})
	app.Get("/admin", handler.AdminPage)

	api := app.Group("/api", logger.New())
	api.Get("/health", handler.Health)

	admin := api.Group("/admin")
	admin.Post("/login", validate.AdminLogin(), handler.AdminLogin)

	ticket := api.Group("/tickets", middleware.RequireDatabase())
	ticket.Post("/", validate.SubmitTicket(), handler.SubmitTicket)
	ticket.Get("/", middleware.AdminOnly(), validate.FilterTickets(), handler.GetTickets)
	ticket.Get("/stats", middleware.AdminOnly(), handler.GetTicketStats)
	ticket.Get("/:id/qr", validate.GetById("id"), handler.GetTicketQR)
	ticket.Put("/:id/confirm", middleware.AdminOnly(), validate.GetById("id"), handler.ConfirmTicket)
	ticket.Put("/:id/reject", middleware.AdminOnly(), validate.GetById("id"), handler.RejectTicket)

	api.Get("/user-tickets/:phone", middleware.RequireDatabase(), handler.GetUserTickets)

	winning := api.Group("/winning-numbers", middleware.RequireDatabase())
	winning.Get("/", validate.FilterWinningNumbers(), handler.GetWinningNumbers)
	winning.Post("/", middleware.AdminOnly(), validate.SetWinningNumbers(), handler.SetWinningNumbers)
	winning.Get("/latest", handler.GetLatestWinningNumbers)
	winning.Delete("/clear", middleware.AdminOnly(), handler.ClearWinningNumbers)
	winning.Get("/ws", handler.WinningNumbersSocket())
}
