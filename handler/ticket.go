package handler

import (
	"lottery_manager/constants"
	"lottery_manager/database"
	"lottery_manager/helper"
	"lottery_manager/model"
	"lottery_manager/utils"
	"mime/multipart"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SubmitTicket(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.SubmitTicketInput)
	if !ok {
		return localsError(c, "input")
	}

	var receiptRef *string
	if file, ok := c.Locals("receipt").(*multipart.FileHeader); ok && file != nil {
		ref, err := helper.Receipts.Save(c.UserContext(), file)
		if err != nil {
			utils.Log.WithError(err).Error("save receipt failed")
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CANNOT_STORE_RECEIPT, err)
		}
		receiptRef = utils.StringPtr(ref)
	}

	ticket, err := helper.SubmitTicket(database.DB, input.Phone, input.Numbers, receiptRef, strictNumbers())
	if err != nil {
		// không giữ ảnh mồ côi khi insert lỗi
		if receiptRef != nil {
			if delErr := helper.Receipts.Delete(c.UserContext(), *receiptRef); delErr != nil {
				utils.Log.WithError(delErr).WithField("receipt", *receiptRef).Warn("remove orphan receipt failed")
			}
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ticket)
}

func GetTickets(c *fiber.Ctx) error {
	filter, ok := c.Locals("filter").(model.FilterTicketInput)
	if !ok {
		return localsError(c, "filter")
	}

	tickets, err := helper.ListTickets(database.DB, filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tickets)
}

func GetUserTickets(c *fiber.Ctx) error {
	phone, err := url.PathUnescape(c.Params("phone"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	phone = strings.TrimSpace(phone)

	tickets, err := helper.ListTicketsByPhone(database.DB, phone)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tickets)
}

func ConfirmTicket(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(uint)
	if !ok {
		return localsError(c, "inputId")
	}

	strict := strictUpdates()
	found, err := helper.ConfirmTicket(database.DB, id, strict)
	if err != nil {
		return respondError(c, err)
	}
	if strict && !found {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_PROCESSABLE, nil)
	}
	return c.JSON(fiber.Map{"success": true})
}

func RejectTicket(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(uint)
	if !ok {
		return localsError(c, "inputId")
	}

	strict := strictUpdates()
	found, err := helper.RejectTicket(database.DB, id, strict)
	if err != nil {
		return respondError(c, err)
	}
	if strict && !found {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_PROCESSABLE, nil)
	}
	return c.JSON(fiber.Map{"success": true})
}

func GetTicketStats(c *fiber.Ctx) error {
	stats, err := helper.CountTicketsByStatus(database.DB)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// GetTicketQR trả về ảnh PNG để khách xuất trình khi đối chiếu vé
func GetTicketQR(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(uint)
	if !ok {
		return localsError(c, "inputId")
	}

	ticket, err := helper.GetTicket(database.DB, id)
	if err != nil {
		return respondError(c, err)
	}

	png, err := utils.GenerateQRCode(utils.TicketQRContent(ticket.ID, ticket.UserPhone, ticket.Numbers), 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CANNOT_GENERATE_QR, err)
	}
	c.Type("png")
	return c.Send(png)
}
