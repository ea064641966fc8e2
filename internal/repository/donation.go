package repository

import (
	"context"
	"donation-backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DonationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, donation *model.Donation) error
	// CreateIfAbsent inserts the donation unless one already exists for the same
	// processor reference. It reports whether a row was written.
	CreateIfAbsent(ctx context.Context, tx *gorm.DB, donation *model.Donation) (bool, error)
	FindByReference(ctx context.Context, tx *gorm.DB, processor, referenceID string) (*model.Donation, error)
	Transition(ctx context.Context, tx *gorm.DB, donationID string, from, to model.DonationStatus, donorID *uint) error
	CountByReference(ctx context.Context, processor, referenceID string) (int64, error)
}

type donationRepoImpl struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepoImpl{
		db: db,
	}
}

func (r *donationRepoImpl) Create(ctx context.Context, tx *gorm.DB, donation *model.Donation) error {
	return tx.WithContext(ctx).Create(donation).Error
}

func (r *donationRepoImpl) CreateIfAbsent(ctx context.Context, tx *gorm.DB, donation *model.Donation) (bool, error) {
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "processor"}, {Name: "processor_reference_id"}},
		DoNothing: true,
	}).Create(donation)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *donationRepoImpl) FindByReference(ctx context.Context, tx *gorm.DB, processor, referenceID string) (*model.Donation, error) {
	var donation model.Donation
	err := tx.WithContext(ctx).
		Where("processor = ? AND processor_reference_id = ?", processor, referenceID).
		First(&donation).Error

	if err != nil {
		return nil, err
	}

	return &donation, nil
}

// Transition moves a donation from one status to another. The update only applies
// while the row is still in the from status; otherwise gorm.ErrRecordNotFound.
func (r *donationRepoImpl) Transition(ctx context.Context, tx *gorm.DB, donationID string, from, to model.DonationStatus, donorID *uint) error {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	if donorID != nil {
		updates["donor_id"] = *donorID
	}

	result := tx.WithContext(ctx).Model(&model.Donation{}).
		Where("id = ? AND status = ?", donationID, from).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *donationRepoImpl) CountByReference(ctx context.Context, processor, referenceID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Donation{}).
		Where("processor = ? AND processor_reference_id = ?", processor, referenceID).
		Count(&count).Error

	return count, err
}
