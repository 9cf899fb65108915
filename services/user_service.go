package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"quitSmokeAPI/internal/user"
)

type UserService struct {
	db *pgxpool.Pool
}

func NewUserService(db *pgxpool.Pool) *UserService {
	return &UserService{db: db}
}

func (s *UserService) CreateProfile(ctx context.Context, req *user.CreateProfileRequest) (*user.Profile, error) {
	profile := &user.Profile{
		ID:             uuid.New().String(),
		Name:           req.Name,
		DailyCigBefore: req.DailyCigBefore,
		PricePerPack:   req.PricePerPack,
		CigsPerPack:    req.CigsPerPack,
		Currency:       req.Currency,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	if req.QuitDate != "" {
		d, err := time.Parse(user.DateLayout, req.QuitDate)
		if err != nil {
			return nil, fmt.Errorf("invalid quit_date: %w", err)
		}
		profile.QuitDate = &d
	}

	query := `
	INSERT INTO user_profiles (id, name, quit_date, daily_cig_before, price_per_pack, cigs_per_pack, currency, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, name, quit_date, daily_cig_before, price_per_pack, cigs_per_pack, currency, created_at, updated_at
	`

	err := s.db.QueryRow(
		ctx,
		query,
		profile.ID,
		profile.Name,
		profile.QuitDate,
		profile.DailyCigBefore,
		profile.PricePerPack,
		profile.CigsPerPack,
		profile.Currency,
		profile.CreatedAt,
		profile.UpdatedAt,
	).Scan(
		&profile.ID,
		&profile.Name,
		&profile.QuitDate,
		&profile.DailyCigBefore,
		&profile.PricePerPack,
		&profile.CigsPerPack,
		&profile.Currency,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*user.Profile, error) {
	query := `
	SELECT id, name, quit_date, daily_cig_before, price_per_pack, cigs_per_pack, currency, created_at, updated_at
	FROM user_profiles
	WHERE id = $1
	`

	profile := &user.Profile{}
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.Name,
		&profile.QuitDate,
		&profile.DailyCigBefore,
		&profile.PricePerPack,
		&profile.CigsPerPack,
		&profile.Currency,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

// UpdateProfile applies a partial update. Nil fields keep their stored
// value via COALESCE.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req *user.UpdateProfileRequest) (*user.Profile, error) {
	var quitDate *time.Time
	if req.QuitDate != nil {
		d, err := time.Parse(user.DateLayout, *req.QuitDate)
		if err != nil {
			return nil, fmt.Errorf("invalid quit_date: %w", err)
		}
		quitDate = &d
	}

	query := `
	UPDATE user_profiles
	SET
		name = COALESCE($2, name),
		quit_date = COALESCE($3, quit_date),
		daily_cig_before = COALESCE($4, daily_cig_before),
		price_per_pack = COALESCE($5, price_per_pack),
		cigs_per_pack = COALESCE($6, cigs_per_pack),
		currency = COALESCE($7, currency),
		updated_at = NOW()
	WHERE id = $1
	RETURNING id, name, quit_date, daily_cig_before, price_per_pack, cigs_per_pack, currency, created_at, updated_at
	`

	profile := &user.Profile{}
	err := s.db.QueryRow(
		ctx,
		query,
		userID,
		req.Name,
		quitDate,
		req.DailyCigBefore,
		req.PricePerPack,
		req.CigsPerPack,
		req.Currency,
	).Scan(
		&profile.ID,
		&profile.Name,
		&profile.QuitDate,
		&profile.DailyCigBefore,
		&profile.PricePerPack,
		&profile.CigsPerPack,
		&profile.Currency,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}
