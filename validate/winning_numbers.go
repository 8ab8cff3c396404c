package validate

import (
	"errors"
	"lottery_manager/constants"
	"lottery_manager/helper"
	"lottery_manager/model"
	"lottery_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func SetWinningNumbers() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SetWinningNumbersInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.WINNING_NUMBERS_REQUIRED, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.WINNING_NUMBERS_REQUIRED, err)
		}
		if err := helper.NormalizeWinningNumbers(&input); err != nil {
			var vErr *helper.ValidationError
			if errors.As(err, &vErr) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, vErr.Message, vErr.Err)
			}
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func FilterWinningNumbers() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filter model.FilterWinningNumbersInput
		if err := c.QueryParser(&filter); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("filter", filter)
		return c.Next()
	}
}
