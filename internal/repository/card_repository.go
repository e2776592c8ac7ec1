package repository

import (
	"context"
	"errors"

	"minimalboard/internal/model"

	"gorm.io/gorm"
)

type CardRepository struct {
	db *gorm.DB
}

type CardRepositoryInterface interface {
	Create(ctx context.Context, card *model.Card) error
	GetByID(ctx context.Context, id uint) (*model.Card, error)
	GetByListID(ctx context.Context, listID uint) ([]model.Card, error)
	Update(ctx context.Context, card *model.Card) error
	Delete(ctx context.Context, id uint) error
}

var _ CardRepositoryInterface = (*CardRepository)(nil)

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *CardRepository) GetByID(ctx context.Context, id uint) (*model.Card, error) {
	var card model.Card
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &card, err
}

func (r *CardRepository) GetByListID(ctx context.Context, listID uint) ([]model.Card, error) {
	var cards []model.Card
	err := r.db.WithContext(ctx).Where("board_list_id = ?", listID).Find(&cards).Error
	return cards, err
}

// Update saves all card fields, including a cleared assignee.
func (r *CardRepository) Update(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Model(card).
		Updates(map[string]any{
			"name":          card.Name,
			"description":   card.Description,
			"board_list_id": card.BoardListID,
			"user_id":       card.UserID,
		}).Error
}

func (r *CardRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Card{}, id).Error
}
