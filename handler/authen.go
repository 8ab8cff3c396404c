package handler

import (
	"lottery_manager/constants"
	"lottery_manager/helper"
	"lottery_manager/model"
	"lottery_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

func AdminLogin(c *fiber.Ctx) error {
	if !helper.AdminAuthEnabled() {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AUTH_NOT_ENABLED, nil)
	}
	input, ok := c.Locals("input").(model.LoginInput)
	if !ok {
		return localsError(c, "input")
	}

	if !helper.CheckAdminCredentials(input.Username, input.Password) {
		utils.Log.WithField("username", input.Username).Warn("admin login rejected")
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, nil)
	}

	accessToken, err := helper.GenerateAccessToken(model.TokenClaim{Username: input.Username, Role: helper.ROLE_ADMIN})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(12 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.JSON(fiber.Map{"accessToken": accessToken})
}
