package utils

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// CustomDate chỉ lưu ngày (không giờ), JSON "YYYY-MM-DD"
type CustomDate struct {
	time.Time
}

func ParseCustomDate(s string) (CustomDate, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return CustomDate{}, fmt.Errorf("invalid date format: %s", s)
	}
	return CustomDate{t}, nil
}

func (d *CustomDate) UnmarshalJSON(data []byte) error {
	str := string(data)
	if str == `null` {
		*d = CustomDate{}
		return nil
	}
	str = strings.Trim(str, `"`)
	if str == "" {
		*d = CustomDate{}
		return nil
	}
	// chấp nhận cả dạng ISO "2025-06-01T00:00:00Z" mà input[type=date] đôi khi gửi lên
	if len(str) > len(DateLayout) && str[len(DateLayout)] == 'T' {
		str = str[:len(DateLayout)]
	}
	parsed, err := ParseCustomDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d CustomDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d CustomDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time.Format(DateLayout), nil
}

func (d *CustomDate) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = CustomDate{}
		return nil
	case time.Time:
		*d = CustomDate{v}
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("unsupported scan type for CustomDate: %T", value)
	}
}

func (d *CustomDate) scanString(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseCustomDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d CustomDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// IsValidClock kiểm tra giờ quay số dạng "HH:MM"
func IsValidClock(s string) bool {
	_, err := time.Parse(ClockLayout, s)
	return err == nil && len(s) == len(ClockLayout)
}
