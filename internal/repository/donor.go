package repository

import (
	"context"
	"donation-backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DonorRepository interface {
	// Upsert creates the donor or overwrites the name fields of the existing row
	// with the same email, then returns the stored row.
	Upsert(ctx context.Context, tx *gorm.DB, donor *model.Donor) (*model.Donor, error)
	FindByEmail(ctx context.Context, email string) (*model.Donor, error)
}

type donorRepoImpl struct {
	db *gorm.DB
}

func NewDonorRepository(db *gorm.DB) DonorRepository {
	return &donorRepoImpl{
		db: db,
	}
}

func (r *donorRepoImpl) Upsert(ctx context.Context, tx *gorm.DB, donor *model.Donor) (*model.Donor, error) {
	assignments := map[string]interface{}{
		"first_name": donor.FirstName,
		"last_name":  donor.LastName,
		"updated_at": time.Now(),
	}
	if donor.Phone != "" {
		assignments["phone"] = donor.Phone
	}

	err := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(donor).Error
	if err != nil {
		return nil, err
	}

	var stored model.Donor
	if err := tx.WithContext(ctx).Where("email = ?", donor.Email).First(&stored).Error; err != nil {
		return nil, err
	}

	return &stored, nil
}

func (r *donorRepoImpl) FindByEmail(ctx context.Context, email string) (*model.Donor, error) {
	var donor model.Donor
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&donor).Error

	if err != nil {
		return nil, err
	}

	return &donor, nil
}
