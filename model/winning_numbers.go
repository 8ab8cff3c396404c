package model

import (
	"lottery_manager/utils"
	"time"

	"github.com/lib/pq"
)

// WinningNumbers là một lần quay số; chỉ một dòng có is_active = true
type WinningNumbers struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	Numbers   pq.Int64Array    `gorm:"type:integer[];not null" json:"numbers"`
	DrawDate  utils.CustomDate `gorm:"type:date;not null" json:"draw_date"`
	DrawTime  string           `gorm:"size:5;not null;default:'20:00'" json:"draw_time"`
	CreatedAt time.Time        `json:"created_at"`
	IsActive  bool             `gorm:"not null;default:true;index" json:"is_active"`
}

func (WinningNumbers) TableName() string {
	return "winning_numbers"
}

type SetWinningNumbersInput struct {
	Numbers  []int            `json:"numbers" validate:"len=4"`
	DrawDate utils.CustomDate `json:"drawDate"`
	DrawTime string           `json:"drawTime" validate:"omitempty"`
}

type FilterWinningNumbersInput struct {
	Pagination
}
