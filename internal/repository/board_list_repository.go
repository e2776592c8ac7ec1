package repository

import (
	"context"
	"errors"

	"minimalboard/internal/model"

	"gorm.io/gorm"
)

type BoardListRepository struct {
	db *gorm.DB
}

type BoardListRepositoryInterface interface {
	Create(ctx context.Context, list *model.BoardList) error
	GetByID(ctx context.Context, id uint) (*model.BoardList, error)
	GetByBoardID(ctx context.Context, boardID uint) ([]model.BoardList, error)
	FindByBoardAndName(ctx context.Context, boardID uint, name string) (*model.BoardList, error)
	Update(ctx context.Context, list *model.BoardList) error
	Delete(ctx context.Context, id uint) error
}

var _ BoardListRepositoryInterface = (*BoardListRepository)(nil)

func NewBoardListRepository(db *gorm.DB) *BoardListRepository {
	return &BoardListRepository{db: db}
}

func (r *BoardListRepository) Create(ctx context.Context, list *model.BoardList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *BoardListRepository) GetByID(ctx context.Context, id uint) (*model.BoardList, error) {
	var list model.BoardList
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &list, err
}

func (r *BoardListRepository) GetByBoardID(ctx context.Context, boardID uint) ([]model.BoardList, error) {
	var lists []model.BoardList
	err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Find(&lists).Error
	return lists, err
}

// FindByBoardAndName looks up a list by its per-board unique key.
func (r *BoardListRepository) FindByBoardAndName(ctx context.Context, boardID uint, name string) (*model.BoardList, error) {
	var list model.BoardList
	err := r.db.WithContext(ctx).
		Where("board_id = ? AND name = ?", boardID, name).
		First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &list, err
}

func (r *BoardListRepository) Update(ctx context.Context, list *model.BoardList) error {
	return r.db.WithContext(ctx).Save(list).Error
}

// Delete removes the list and its cards in one transaction.
func (r *BoardListRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("board_list_id = ?", id).
			Delete(&model.Card{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.BoardList{}, id).Error
	})
}
