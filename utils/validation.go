package utils

import (
	"encoding/json"
	"errors"
	"strings"
)

func IsValidValueOfConstant(value string, constantValues []string) bool {
	for _, r := range constantValues {
		if r == value {
			return true
		}
	}
	return false
}

// ParseNumbers giải mã chuỗi JSON dạng "[7,15,23,42]" thành mảng số nguyên
func ParseNumbers(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty numbers")
	}
	var numbers []int
	if err := json.Unmarshal([]byte(raw), &numbers); err != nil {
		return nil, err
	}
	if numbers == nil {
		return nil, errors.New("numbers is null")
	}
	return numbers, nil
}

// InRangeDistinct: đúng count phần tử, không trùng, nằm trong [lo,hi]
func InRangeDistinct(numbers []int, count, lo, hi int) bool {
	if len(numbers) != count {
		return false
	}
	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if n < lo || n > hi || seen[n] {
			return false
		}
		seen[n] = true
	}
	return true
}
