package repository

import (
	"context"
	"donation-backend/internal/model"

	"gorm.io/gorm"
)

type EventRepository interface {
	List(ctx context.Context, highlightOnly bool) ([]*model.Event, error)
	Exists(ctx context.Context, eventID uint) (bool, error)
}

type eventRepoImpl struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepoImpl{
		db: db,
	}
}

func (r *eventRepoImpl) List(ctx context.Context, highlightOnly bool) ([]*model.Event, error) {
	events := []*model.Event{}

	query := r.db.WithContext(ctx).Order("date DESC").Order("id DESC")
	if highlightOnly {
		query = query.Where("is_highlight = ?", true)
	}

	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (r *eventRepoImpl) Exists(ctx context.Context, eventID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("id = ?", eventID).
		Count(&count).Error

	return count > 0, err
}
