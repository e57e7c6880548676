package postgres

import (
	"context"
	"fmt"

	"aromaSpa/domain"

	"gorm.io/gorm"
)

// RatingRepository is the durable, append-only backing of the rating log.
// Nothing ever updates or deletes a row: later ratings for the same
// (user, item) pair are new rows, and replay order decides which one wins.
type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{
		DB: db,
	}
}

func (r *RatingRepository) Save(ctx context.Context, rating *domain.Rating) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(rating).Error; err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}

	return nil
}

// FindAll returns the full log in insertion order, for startup replay.
func (r *RatingRepository) FindAll(ctx context.Context) ([]domain.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var ratings []domain.Rating
	err := r.DB.WithContext(ctx).Order("id asc").Find(&ratings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find ratings: %w", err)
	}

	return ratings, nil
}

// FindByUser returns a user's ratings in insertion order.
func (r *RatingRepository) FindByUser(ctx context.Context, userID string) ([]domain.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var ratings []domain.Rating
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&ratings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find ratings for user: %w", err)
	}

	return ratings, nil
}
