package middleware

import (
	"errors"
	"lottery_manager/constants"
	"lottery_manager/database"
	"lottery_manager/helper"
	"lottery_manager/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireDatabase trả về 503 thay vì chạy query khi chưa cấu hình database
func RequireDatabase() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !database.Configured() {
			return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.DATABASE_NOT_CONFIGURED, database.ErrNotConfigured)
		}
		return c.Next()
	}
}

// AdminOnly chỉ kiểm tra token khi đã bật xác thực admin
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helper.AdminAuthEnabled() {
			return c.Next()
		}

		token := c.Cookies("access_token")
		if token == "" {
			// check header Authorization: Bearer xxx
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
		}

		claim, err := helper.ParseAccessToken(token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}

		c.Locals("admin", claim)
		return c.Next()
	}
}
