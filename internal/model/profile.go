// File: internal/model/profile.go
package model

import "time"

// 性別選項
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Profile 與 User 一對一，隨 User 刪除而級聯刪除
type Profile struct {
	ID          int        `db:"id" json:"id"`
	UserID      int        `db:"user_id" json:"user_id"`
	FullName    *string    `db:"full_name" json:"full_name,omitempty"`
	Gender      *string    `db:"gender" json:"gender,omitempty"`
	DateOfBirth *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Avatar      *string    `db:"avatar" json:"avatar,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
