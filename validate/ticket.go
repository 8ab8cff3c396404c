package validate

import (
	"errors"
	"fmt"
	"lottery_manager/config"
	"lottery_manager/constants"
	"lottery_manager/helper"
	"lottery_manager/model"
	"lottery_manager/utils"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// SubmitTicket kiểm tra phone, numbers và ảnh biên lai trước khi lưu bất cứ thứ gì
func SubmitTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SubmitTicketInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		input.Phone = strings.TrimSpace(input.Phone)
		input.Numbers = strings.TrimSpace(input.Numbers)

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PHONE_AND_NUMBERS_REQ, err)
		}
		if _, err := helper.ValidateTicketInput(input.Phone, input.Numbers, config.Bool("STRICT_TICKET_NUMBERS")); err != nil {
			var vErr *helper.ValidationError
			if errors.As(err, &vErr) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, vErr.Message, vErr.Err)
			}
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		receipt, err := optionalReceipt(c.FormFile("receipt"))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_RECEIPT, err)
		}
		if receipt != nil {
			if receipt.Size > constants.MAX_RECEIPT_SIZE {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_RECEIPT, fmt.Errorf("receipt too large: %d bytes", receipt.Size))
			}
			mime, err := helper.DetectReceiptMIME(receipt)
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_RECEIPT, err)
			}
			if !strings.HasPrefix(mime, "image/") {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_RECEIPT, fmt.Errorf("unsupported receipt type %s", mime))
			}
		}

		c.Locals("input", input)
		c.Locals("receipt", receipt)
		return c.Next()
	}
}

func FilterTickets() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filter model.FilterTicketInput
		if err := c.QueryParser(&filter); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if filter.Status != "" && !utils.IsValidValueOfConstant(filter.Status, constants.TICKET_STATUSES) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS, fmt.Errorf("unknown status %q", filter.Status))
		}

		c.Locals("filter", filter)
		return c.Next()
	}
}

// optionalReceipt: thiếu file (hoặc form không phải multipart) nghĩa là không có biên lai,
// mọi lỗi khác là input hỏng.
func optionalReceipt(file *multipart.FileHeader, err error) (*multipart.FileHeader, error) {
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
			return nil, nil
		}
		return nil, err
	}
	return file, nil
}
