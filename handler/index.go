package handler

import (
	"errors"
	"lottery_manager/config"
	"lottery_manager/constants"
	"lottery_manager/helper"
	"lottery_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// respondError chuyển lỗi của helper thành mã HTTP tương ứng
func respondError(c *fiber.Ctx, err error) error {
	var vErr *helper.ValidationError
	if errors.As(err, &vErr) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, vErr.Message, vErr.Err)
	}
	if errors.Is(err, helper.ErrNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	}
	var sErr *helper.StorageError
	if errors.As(err, &sErr) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error(), sErr.Err)
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}

func localsError(c *fiber.Ctx, what string) error {
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse "+what+" fail"))
}

func strictNumbers() bool {
	return config.Bool("STRICT_TICKET_NUMBERS")
}

func strictUpdates() bool {
	return config.Bool("STRICT_TICKET_UPDATES")
}
