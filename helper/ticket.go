package helper

import (
	"errors"
	"lottery_manager/constants"
	"lottery_manager/model"
	"lottery_manager/utils"
	"time"

	"github.com/jinzhu/copier"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ValidateTicketInput checks the submitted phone and numbers text and returns the decoded numbers.
// Count and range are only enforced when strict is set.
func ValidateTicketInput(phone, rawNumbers string, strict bool) ([]int, error) {
	if phone == "" || rawNumbers == "" {
		return nil, NewValidationError(constants.PHONE_AND_NUMBERS_REQ, nil)
	}
	numbers, err := utils.ParseNumbers(rawNumbers)
	if err != nil {
		return nil, NewValidationError(constants.NUMBERS_NOT_INT_ARRAY, err)
	}
	if strict && !utils.InRangeDistinct(numbers, constants.TICKET_NUMBER_COUNT, constants.TICKET_NUMBER_MIN, constants.TICKET_NUMBER_MAX) {
		return nil, NewValidationError(constants.INVALID_TICKET_NUMBERS, nil)
	}
	return numbers, nil
}

func SubmitTicket(db *gorm.DB, phone, rawNumbers string, receipt *string, strict bool) (*model.SubmittedTicket, error) {
	numbers, err := ValidateTicketInput(phone, rawNumbers, strict)
	if err != nil {
		return nil, err
	}

	ticket := model.Ticket{
		UserPhone:       phone,
		SelectedNumbers: rawNumbers,
		Status:          constants.TICKET_PENDING,
		ReceiptImage:    receipt,
		PurchaseDate:    time.Now(),
	}
	if err := db.Create(&ticket).Error; err != nil {
		return nil, &StorageError{Err: err}
	}

	utils.Log.WithFields(logrus.Fields{"ticket_id": ticket.ID, "phone": phone}).Info("ticket submitted")
	return &model.SubmittedTicket{
		ID:      ticket.ID,
		Phone:   ticket.UserPhone,
		Numbers: numbers,
		Status:  ticket.Status,
		Receipt: ticket.ReceiptImage,
	}, nil
}

func ToTicketRecord(ticket model.Ticket) model.TicketRecord {
	var record model.TicketRecord
	copier.Copy(&record, &ticket)

	numbers, err := utils.ParseNumbers(ticket.SelectedNumbers)
	if err != nil {
		utils.Log.WithField("ticket_id", ticket.ID).Warnf("cannot decode selected numbers %q: %v", ticket.SelectedNumbers, err)
		numbers = []int{}
	}
	record.Numbers = numbers
	return record
}

func toTicketRecords(tickets []model.Ticket) []model.TicketRecord {
	records := make([]model.TicketRecord, 0, len(tickets))
	for _, t := range tickets {
		records = append(records, ToTicketRecord(t))
	}
	return records
}

// ListTickets returns tickets newest first, optionally filtered by status.
func ListTickets(db *gorm.DB, filter model.FilterTicketInput) ([]model.TicketRecord, error) {
	query := db.Model(&model.Ticket{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	query = utils.ApplyPagination(query.Order("purchase_date DESC, id DESC"), filter.Limit, filter.Page)

	var tickets []model.Ticket
	if err := query.Find(&tickets).Error; err != nil {
		return nil, &StorageError{Err: err}
	}
	return toTicketRecords(tickets), nil
}

func ListTicketsByPhone(db *gorm.DB, phone string) ([]model.TicketRecord, error) {
	var tickets []model.Ticket
	if err := db.Where("user_phone = ?", phone).Order("purchase_date DESC, id DESC").Find(&tickets).Error; err != nil {
		return nil, &StorageError{Err: err}
	}
	return toTicketRecords(tickets), nil
}

func GetTicket(db *gorm.DB, id uint) (*model.TicketRecord, error) {
	var ticket model.Ticket
	if err := db.First(&ticket, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &StorageError{Err: err}
	}
	record := ToTicketRecord(ticket)
	return &record, nil
}

// ConfirmTicket reports whether a row matched. Without strict the update is
// unconditional; with strict only pending tickets move.
func ConfirmTicket(db *gorm.DB, id uint, strict bool) (bool, error) {
	return updateTicketStatus(db, id, map[string]interface{}{
		"status":            constants.TICKET_CONFIRMED,
		"confirmation_date": time.Now(),
	}, strict)
}

// RejectTicket clears confirmation_date so it stays set only for confirmed tickets.
// Rejecting an already confirmed ticket therefore drops its timestamp instead of keeping it.
func RejectTicket(db *gorm.DB, id uint, strict bool) (bool, error) {
	return updateTicketStatus(db, id, map[string]interface{}{
		"status":            constants.TICKET_REJECTED,
		"confirmation_date": nil,
	}, strict)
}

func updateTicketStatus(db *gorm.DB, id uint, updates map[string]interface{}, strict bool) (bool, error) {
	query := db.Model(&model.Ticket{}).Where("id = ?", id)
	if strict {
		query = query.Where("status = ?", constants.TICKET_PENDING)
	}
	result := query.Updates(updates)
	if result.Error != nil {
		return false, &StorageError{Err: result.Error}
	}

	utils.Log.WithFields(logrus.Fields{
		"ticket_id": id,
		"status":    updates["status"],
		"affected":  result.RowsAffected,
	}).Info("ticket status updated")
	return result.RowsAffected > 0, nil
}

func CountTicketsByStatus(db *gorm.DB) (model.TicketStats, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	var stats model.TicketStats
	if err := db.Model(&model.Ticket{}).Select("status, count(*) as total").Group("status").Scan(&rows).Error; err != nil {
		return stats, &StorageError{Err: err}
	}

	for _, r := range rows {
		switch r.Status {
		case constants.TICKET_PENDING:
			stats.Pending = r.Total
		case constants.TICKET_CONFIRMED:
			stats.Confirmed = r.Total
		case constants.TICKET_REJECTED:
			stats.Rejected = r.Total
		}
		stats.Total += r.Total
	}
	return stats, nil
}
