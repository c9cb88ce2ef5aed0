// File: internal/service/profile.go
package service

import (
	"errors"
	"time"
)

// ParseDateOfBirth 解析 "2006-01-02" 格式生日，必須嚴格早於今天
func ParseDateOfBirth(s string) (*time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, errors.New("Date of birth must be a valid date (YYYY-MM-DD).")
	}
	now := timeNow()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !t.Before(today) {
		return nil, errors.New("Date of birth must be in the past.")
	}
	return &t, nil
}
