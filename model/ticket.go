package model

import "time"

type Ticket struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserPhone        string     `gorm:"size:32;not null;index" json:"user_phone"`
	SelectedNumbers  string     `gorm:"type:text;not null" json:"selected_numbers"`
	Status           string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	ReceiptImage     *string    `gorm:"type:text" json:"receipt_image"`
	PurchaseDate     time.Time  `gorm:"not null;index" json:"purchase_date"`
	ConfirmationDate *time.Time `json:"confirmation_date"`
}

func (Ticket) TableName() string {
	return "tickets"
}

// TicketRecord là bản ghi trả về client, selected_numbers đã giải mã thành mảng
type TicketRecord struct {
	ID               uint       `json:"id"`
	UserPhone        string     `json:"user_phone"`
	Numbers          []int      `json:"selected_numbers"`
	Status           string     `json:"status"`
	ReceiptImage     *string    `json:"receipt_image"`
	PurchaseDate     time.Time  `json:"purchase_date"`
	ConfirmationDate *time.Time `json:"confirmation_date"`
}

// SubmitTicketInput: numbers là chuỗi JSON từ form multipart
type SubmitTicketInput struct {
	Phone   string `form:"phone" validate:"required"`
	Numbers string `form:"numbers" validate:"required"`
}

// SubmittedTicket is the body returned by POST /api/tickets.
type SubmittedTicket struct {
	ID      uint    `json:"id"`
	Phone   string  `json:"phone"`
	Numbers []int   `json:"numbers"`
	Status  string  `json:"status"`
	Receipt *string `json:"receipt"`
}

type FilterTicketInput struct {
	Pagination
	Status string `query:"status"`
}

type TicketStats struct {
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Rejected  int64 `json:"rejected"`
	Total     int64 `json:"total"`
}
