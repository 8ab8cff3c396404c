package handler

import (
	"lottery_manager/config"
	"lottery_manager/database"
	"time"

	"github.com/gofiber/fiber/v2"
)

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"database": database.Status(c.UserContext()),
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}

func AdminPage(c *fiber.Ctx) error {
	return c.SendFile(config.ConfigOr("ADMIN_PAGE", "public/admin.html"))
}
