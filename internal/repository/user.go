// File: internal/repository/user.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skincare-api/internal/database"
	"skincare-api/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation PostgreSQL 唯一約束違反錯誤碼
const uniqueViolation = "23505"

// IsUniqueViolation 判斷錯誤是否為唯一約束違反
// 併發註冊同一 email 時以資料庫約束作為最終防線
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email, password_hash, role, last_login_at, created_at
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.LastLoginAt,
		&u.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email, password_hash, role, last_login_at, created_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.LastLoginAt,
		&u.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// EmailTaken 檢查 email 是否已被其他使用者使用
// excludeUserID > 0 時排除該使用者自身
func EmailTaken(ctx context.Context, db database.DB, email string, excludeUserID int) (bool, error) {
	row := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`,
		email,
		excludeUserID,
	)
	var taken bool
	if err := row.Scan(&taken); err != nil {
		return false, fmt.Errorf("EmailTaken: %w", err)
	}
	return taken, nil
}

// CreateUserWithProfile 在同一交易內建立 User 與 Profile
// 任何一步失敗則整體回滾，不留下缺 Profile 的 User
func CreateUserWithProfile(ctx context.Context, db database.DB, u *model.User, p *model.Profile) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("CreateUserWithProfile: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, role)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		u.Email,
		u.PasswordHash,
		u.Role,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return fmt.Errorf("CreateUserWithProfile: %w", err)
	}

	p.UserID = u.ID
	row = tx.QueryRow(ctx,
		`INSERT INTO profiles (user_id, full_name, gender, date_of_birth, avatar)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		p.UserID,
		p.FullName,
		p.Gender,
		p.DateOfBirth,
		p.Avatar,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("CreateUserWithProfile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("CreateUserWithProfile: %w", err)
	}
	return nil
}

func UpdateUserEmail(ctx context.Context, db database.DB, userID int, email string) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET email = $1 WHERE id = $2`,
		email,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserEmail: %w", err)
	}
	return nil
}

func UpdateUserPassword(ctx context.Context, db database.DB, userID int, passwordHash string) error {
	_, err := db.Exec(ctx,
		`UPDATE users
		 SET password_hash = $1
		 WHERE id = $2`,
		passwordHash,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserPassword: %w", err)
	}
	return nil
}

func UpdateUserLastLogin(ctx context.Context, db database.DB, userID int, at time.Time) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET last_login_at = $1 WHERE id = $2`,
		at,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserLastLogin: %w", err)
	}
	return nil
}

// UpdateUserRole 調整使用者角色，回傳是否有命中資料列
func UpdateUserRole(ctx context.Context, db database.DB, userID int, role string) (bool, error) {
	tag, err := db.Exec(ctx,
		`UPDATE users SET role = $1 WHERE id = $2`,
		role,
		userID,
	)
	if err != nil {
		return false, fmt.Errorf("UpdateUserRole: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
