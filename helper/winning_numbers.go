package helper

import (
	"lottery_manager/constants"
	"lottery_manager/model"
	"lottery_manager/utils"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NormalizeWinningNumbers kiểm tra input và gán giờ quay mặc định 20:00.
// Range of each number is not checked.
func NormalizeWinningNumbers(input *model.SetWinningNumbersInput) error {
	if len(input.Numbers) != constants.WINNING_NUMBER_COUNT || input.DrawDate.IsZero() {
		return NewValidationError(constants.WINNING_NUMBERS_REQUIRED, nil)
	}
	if input.DrawTime == "" {
		input.DrawTime = constants.DEFAULT_DRAW_TIME
	}
	if !utils.IsValidClock(input.DrawTime) {
		return NewValidationError("drawTime must be HH:MM", nil)
	}
	return nil
}

// SetWinningNumbers deactivates every draw and inserts the new active one in a single
// transaction, so readers never see zero or two active rows.
func SetWinningNumbers(db *gorm.DB, input model.SetWinningNumbersInput) (*model.WinningNumbers, error) {
	if err := NormalizeWinningNumbers(&input); err != nil {
		return nil, err
	}

	numbers := make(pq.Int64Array, 0, len(input.Numbers))
	for _, n := range input.Numbers {
		numbers = append(numbers, int64(n))
	}
	draw := model.WinningNumbers{
		Numbers:  numbers,
		DrawDate: input.DrawDate,
		DrawTime: input.DrawTime,
		IsActive: true,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := deactivateDraws(tx); err != nil {
			return err
		}
		return tx.Create(&draw).Error
	})
	if err != nil {
		return nil, &StorageError{Err: err}
	}

	utils.Log.WithFields(logrus.Fields{
		"draw_id":   draw.ID,
		"numbers":   []int64(draw.Numbers),
		"draw_date": draw.DrawDate.String(),
	}).Info("winning numbers set")
	return &draw, nil
}

// GetLatestWinningNumbers returns nil when no draw is active.
func GetLatestWinningNumbers(db *gorm.DB) (*model.WinningNumbers, error) {
	var draws []model.WinningNumbers
	if err := db.Where("is_active = ?", true).Order("created_at DESC").Limit(1).Find(&draws).Error; err != nil {
		return nil, &StorageError{Err: err}
	}
	if len(draws) == 0 {
		return nil, nil
	}
	return &draws[0], nil
}

func ListWinningNumbers(db *gorm.DB, filter model.FilterWinningNumbersInput) ([]model.WinningNumbers, error) {
	query := utils.ApplyPagination(db.Model(&model.WinningNumbers{}).Order("created_at DESC, id DESC"), filter.Limit, filter.Page)
	draws := []model.WinningNumbers{}
	if err := query.Find(&draws).Error; err != nil {
		return nil, &StorageError{Err: err}
	}
	return draws, nil
}

// ClearWinningNumbers is idempotent; it returns how many draws were deactivated.
func ClearWinningNumbers(db *gorm.DB) (int64, error) {
	result := db.Model(&model.WinningNumbers{}).Where("is_active = ?", true).Update("is_active", false)
	if result.Error != nil {
		return 0, &StorageError{Err: result.Error}
	}
	utils.Log.WithField("deactivated", result.RowsAffected).Info("winning numbers cleared")
	return result.RowsAffected, nil
}

func deactivateDraws(tx *gorm.DB) error {
	return tx.Model(&model.WinningNumbers{}).Where("is_active = ?", true).Update("is_active", false).Error
}
