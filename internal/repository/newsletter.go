package repository

import (
	"context"
	"donation-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NewsletterRepository interface {
	// Subscribe reports false when the email was already subscribed.
	Subscribe(ctx context.Context, email string) (bool, error)
}

type newsletterRepoImpl struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepoImpl{
		db: db,
	}
}

func (r *newsletterRepoImpl) Subscribe(ctx context.Context, email string) (bool, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&model.NewsletterSubscriber{Email: email})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
