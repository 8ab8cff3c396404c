package validate

import (
	"lottery_manager/constants"
	"lottery_manager/model"
	"lottery_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func AdminLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}
