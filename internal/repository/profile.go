// File: internal/repository/profile.go
package repository

import (
	"context"
	"fmt"

	"skincare-api/internal/database"
	"skincare-api/internal/model"
)

func GetProfileByUserID(ctx context.Context, db database.DB, userID int) (*model.Profile, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, full_name, gender, date_of_birth, avatar, created_at, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	)
	p := &model.Profile{}
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.FullName,
		&p.Gender,
		&p.DateOfBirth,
		&p.Avatar,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetProfileByUserID: %w", err)
	}
	return p, nil
}

func CreateProfile(ctx context.Context, db database.DB, p *model.Profile) (*model.Profile, error) {
	row := db.QueryRow(ctx,
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
		return nil, fmt.Errorf("CreateProfile: %w", err)
	}
	return p, nil
}

func UpdateProfile(ctx context.Context, db database.DB, p *model.Profile) error {
	_, err := db.Exec(ctx,
		`UPDATE profiles
		 SET full_name = $1, gender = $2, date_of_birth = $3, avatar = $4, updated_at = now()
		 WHERE user_id = $5`,
		p.FullName,
		p.Gender,
		p.DateOfBirth,
		p.Avatar,
		p.UserID,
	)
	if err != nil {
		return fmt.Errorf("UpdateProfile: %w", err)
	}
	return nil
}
