package repository

import (
	"context"
	"donation-backend/internal/model"

	"gorm.io/gorm"
)

type PartnerRepository interface {
	List(ctx context.Context) ([]*model.Partner, error)
}

type partnerRepoImpl struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) PartnerRepository {
	return &partnerRepoImpl{
		db: db,
	}
}

func (r *partnerRepoImpl) List(ctx context.Context) ([]*model.Partner, error) {
	partners := []*model.Partner{}

	err := r.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&partners).Error
	if err != nil {
		return nil, err
	}

	return partners, nil
}
