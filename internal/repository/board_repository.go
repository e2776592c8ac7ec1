package repository

import (
	"context"
	"errors"

	"minimalboard/internal/model"

	"gorm.io/gorm"
)

type BoardRepository struct {
	db *gorm.DB
}

type BoardRepositoryInterface interface {
	Create(ctx context.Context, board *model.Board, urlFor func(id uint) string) error
	GetByID(ctx context.Context, id uint) (*model.Board, error)
	FindByName(ctx context.Context, name string) (*model.Board, error)
	GetAll(ctx context.Context) ([]model.Board, error)
	Update(ctx context.Context, board *model.Board) error
	Delete(ctx context.Context, id uint) error
	AddMembers(ctx context.Context, boardID uint, userIDs []uint) error
	GetMemberIDs(ctx context.Context, boardID uint) ([]uint, error)
	IsMember(ctx context.Context, boardID, userID uint) (bool, error)
}

var _ BoardRepositoryInterface = (*BoardRepository)(nil)

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// Create inserts the board and then persists its derived URL in a
// second step, once the id is known. Both steps run in one
// transaction so a failed URL write leaves no half-created board.
func (r *BoardRepository) Create(ctx context.Context, board *model.Board, urlFor func(id uint) string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(board).Error; err != nil {
			return err
		}
		board.URL = urlFor(board.ID)
		return tx.Model(&model.Board{}).Where("id = ?", board.ID).
			Update("url", board.URL).Error
	})
}

func (r *BoardRepository) GetByID(ctx context.Context, id uint) (*model.Board, error) {
	var board model.Board
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&board).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &board, err
}

func (r *BoardRepository) FindByName(ctx context.Context, name string) (*model.Board, error) {
	var board model.Board
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&board).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &board, err
}

func (r *BoardRepository) GetAll(ctx context.Context) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).Find(&boards).Error
	return boards, err
}

func (r *BoardRepository) Update(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Save(board).Error
}

// Delete removes the board together with everything it owns: the
// cards of each of its lists, the lists themselves, and the
// membership rows. The cascade is explicit and runs in one
// transaction.
func (r *BoardRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listIDs []uint
		if err := tx.Model(&model.BoardList{}).Where("board_id = ?", id).
			Pluck("id", &listIDs).Error; err != nil {
			return err
		}
		if len(listIDs) > 0 {
			if err := tx.Where("board_list_id IN ?", listIDs).
				Delete(&model.Card{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("board_id = ?", id).
			Delete(&model.BoardList{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).
			Delete(&model.BoardMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Board{}, id).Error
	})
}

// AddMembers adds the users to the board's membership. Users that are
// already members are skipped, so re-adding is a no-op rather than an
// error.
func (r *BoardRepository) AddMembers(ctx context.Context, boardID uint, userIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, userID := range userIDs {
			if err := tx.Exec(
				"INSERT INTO board_members (board_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
				boardID, userID,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *BoardRepository) GetMemberIDs(ctx context.Context, boardID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.BoardMember{}).
		Where("board_id = ?", boardID).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *BoardRepository) IsMember(ctx context.Context, boardID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.BoardMember{}).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		Count(&count).Error
	return count > 0, err
}
