package handler

import (
	"lottery_manager/constants"
	"lottery_manager/database"
	"lottery_manager/helper"
	"lottery_manager/model"
	"lottery_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func SetWinningNumbers(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.SetWinningNumbersInput)
	if !ok {
		return localsError(c, "input")
	}

	draw, err := helper.SetWinningNumbers(database.DB, input)
	if err != nil {
		return respondError(c, err)
	}
	publishDraw(c, draw)

	return c.JSON(fiber.Map{
		"success":   true,
		"id":        draw.ID,
		"numbers":   draw.Numbers,
		"draw_date": draw.DrawDate,
		"draw_time": draw.DrawTime,
	})
}

// GetLatestWinningNumbers trả về kết quả đang active hoặc null
func GetLatestWinningNumbers(c *fiber.Ctx) error {
	draw, err := helper.GetLatestWinningNumbers(database.DB)
	if err != nil {
		return respondError(c, err)
	}
	if draw == nil {
		return c.JSON(nil)
	}
	return c.JSON(draw)
}

func GetWinningNumbers(c *fiber.Ctx) error {
	filter, ok := c.Locals("filter").(model.FilterWinningNumbersInput)
	if !ok {
		return localsError(c, "filter")
	}

	draws, err := helper.ListWinningNumbers(database.DB, filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(draws)
}

func ClearWinningNumbers(c *fiber.Ctx) error {
	if _, err := helper.ClearWinningNumbers(database.DB); err != nil {
		return respondError(c, err)
	}
	publishDraw(c, nil)

	return c.JSON(fiber.Map{
		"success": true,
		"message": constants.WINNING_NUMBERS_CLEARED,
	})
}

// publishDraw không làm fail request, chỉ log khi gửi realtime lỗi
func publishDraw(c *fiber.Ctx, draw *model.WinningNumbers) {
	if err := helper.Draws.Publish(c.UserContext(), draw); err != nil {
		utils.Log.WithError(err).Warn("publish winning numbers failed")
	}
}
