// File: internal/repository/otp.go
package repository

import (
	"context"
	"fmt"

	"skincare-api/internal/database"
	"skincare-api/internal/model"
)

// CreateOTP 建立一筆未驗證的 OTP 記錄
// 同一使用者允許同時存在多筆，過期未驗證者由清理工作移除
func CreateOTP(ctx context.Context, db database.DB, o *model.OTP) (*model.OTP, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO otps (user_id, code)
		 VALUES ($1, $2)
		 RETURNING id, is_verified, created_at`,
		o.UserID,
		o.Code,
	)
	if err := row.Scan(&o.ID, &o.IsVerified, &o.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateOTP: %w", err)
	}
	return o, nil
}

// GetUnverifiedOTP 取得該使用者符合指定驗證碼且尚未驗證的記錄
func GetUnverifiedOTP(ctx context.Context, db database.DB, userID int, code string) (*model.OTP, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, code, is_verified, created_at
		 FROM otps
		 WHERE user_id = $1 AND code = $2 AND is_verified = FALSE
		 LIMIT 1`,
		userID,
		code,
	)
	o := &model.OTP{}
	if err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.Code,
		&o.IsVerified,
		&o.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUnverifiedOTP: %w", err)
	}
	return o, nil
}

// GetVerifiedOTP 取得該使用者任一筆已驗證的記錄（取第一筆符合者）
func GetVerifiedOTP(ctx context.Context, db database.DB, userID int) (*model.OTP, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, code, is_verified, created_at
		 FROM otps
		 WHERE user_id = $1 AND is_verified = TRUE
		 LIMIT 1`,
		userID,
	)
	o := &model.OTP{}
	if err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.Code,
		&o.IsVerified,
		&o.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetVerifiedOTP: %w", err)
	}
	return o, nil
}

func MarkOTPVerified(ctx context.Context, db database.DB, otpID int) error {
	_, err := db.Exec(ctx,
		`UPDATE otps SET is_verified = TRUE WHERE id = $1`,
		otpID,
	)
	if err != nil {
		return fmt.Errorf("MarkOTPVerified: %w", err)
	}
	return nil
}

func DeleteOTP(ctx context.Context, db database.DB, otpID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM otps WHERE id = $1`,
		otpID,
	)
	if err != nil {
		return fmt.Errorf("DeleteOTP: %w", err)
	}
	return nil
}

// DeleteExpiredOTPs 刪除所有已過期且未驗證的記錄，回傳刪除筆數
// 條件與驗證流程互斥，可與線上流量並行執行
func DeleteExpiredOTPs(ctx context.Context, db database.DB) (int64, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM otps
		 WHERE is_verified = FALSE AND created_at < now() - INTERVAL '5 minutes'`,
	)
	if err != nil {
		return 0, fmt.Errorf("DeleteExpiredOTPs: %w", err)
	}
	return tag.RowsAffected(), nil
}
