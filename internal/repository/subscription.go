package repository

import (
	"context"
	"donation-backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository interface {
	// Activate records a subscription as active unless it is already known, so a
	// late invoice never revives a cancelled subscription.
	Activate(ctx context.Context, tx *gorm.DB, sub *model.RecurringSubscription) error
	// Cancel marks the subscription cancelled, recording it if it was never seen.
	Cancel(ctx context.Context, tx *gorm.DB, subscriptionID, customerID string, at time.Time) error
	GetBySubscriptionID(ctx context.Context, subscriptionID string) (*model.RecurringSubscription, error)
}

type subscriptionRepoImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepoImpl{
		db: db,
	}
}

func (r *subscriptionRepoImpl) Activate(ctx context.Context, tx *gorm.DB, sub *model.RecurringSubscription) error {
	sub.Status = model.SubscriptionStatusActive

	return tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subscription_id"}},
		DoNothing: true,
	}).Create(sub).Error
}

func (r *subscriptionRepoImpl) Cancel(ctx context.Context, tx *gorm.DB, subscriptionID, customerID string, at time.Time) error {
	return tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subscription_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "cancelled_at", "updated_at"}),
	}).Create(&model.RecurringSubscription{
		SubscriptionID: subscriptionID,
		CustomerID:     customerID,
		Status:         model.SubscriptionStatusCancelled,
		CancelledAt:    &at,
	}).Error
}

func (r *subscriptionRepoImpl) GetBySubscriptionID(ctx context.Context, subscriptionID string) (*model.RecurringSubscription, error) {
	var sub model.RecurringSubscription
	err := r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		First(&sub).
		Error

	if err != nil {
		return nil, err
	}

	return &sub, nil
}
