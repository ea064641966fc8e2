package repository

import (
	"context"
	"donation-backend/internal/model"

	"gorm.io/gorm"
)

// SubmissionRepository stores the public form submissions.
type SubmissionRepository interface {
	CreateVolunteer(ctx context.Context, volunteer *model.VolunteerProfile) error
	CreateContactMessage(ctx context.Context, msg *model.ContactMessage) error
	CreatePartnerInquiry(ctx context.Context, inquiry *model.PartnerInquiry) error
}

type submissionRepoImpl struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepoImpl{
		db: db,
	}
}

func (r *submissionRepoImpl) CreateVolunteer(ctx context.Context, volunteer *model.VolunteerProfile) error {
	return r.db.WithContext(ctx).Create(volunteer).Error
}

func (r *submissionRepoImpl) CreateContactMessage(ctx context.Context, msg *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *submissionRepoImpl) CreatePartnerInquiry(ctx context.Context, inquiry *model.PartnerInquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}
