package handler_test

import (
	"context"

	"minimalboard/internal/model"

	"github.com/stretchr/testify/mock"
)

// Mocks over the repository interfaces, one per entity.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) Create(ctx context.Context, board *model.Board, urlFor func(id uint) string) error {
	args := m.Called(ctx, board, urlFor)
	return args.Error(0)
}

func (m *MockBoardRepository) GetByID(ctx context.Context, id uint) (*model.Board, error) {
	args := m.Called(ctx, id)
	board := args.Get(0)
	if board == nil {
		return nil, args.Error(1)
	}
	return board.(*model.Board), args.Error(1)
}

func (m *MockBoardRepository) FindByName(ctx context.Context, name string) (*model.Board, error) {
	args := m.Called(ctx, name)
	board := args.Get(0)
	if board == nil {
		return nil, args.Error(1)
	}
	return board.(*model.Board), args.Error(1)
}

func (m *MockBoardRepository) GetAll(ctx context.Context) ([]model.Board, error) {
	args := m.Called(ctx)
	boards := args.Get(0)
	if boards == nil {
		return nil, args.Error(1)
	}
	return boards.([]model.Board), args.Error(1)
}

func (m *MockBoardRepository) Update(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBoardRepository) AddMembers(ctx context.Context, boardID uint, userIDs []uint) error {
	args := m.Called(ctx, boardID, userIDs)
	return args.Error(0)
}

func (m *MockBoardRepository) GetMemberIDs(ctx context.Context, boardID uint) ([]uint, error) {
	args := m.Called(ctx, boardID)
	ids := args.Get(0)
	if ids == nil {
		return nil, args.Error(1)
	}
	return ids.([]uint), args.Error(1)
}

func (m *MockBoardRepository) IsMember(ctx context.Context, boardID, userID uint) (bool, error) {
	args := m.Called(ctx, boardID, userID)
	return args.Bool(0), args.Error(1)
}

type MockBoardListRepository struct {
	mock.Mock
}

func (m *MockBoardListRepository) Create(ctx context.Context, list *model.BoardList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockBoardListRepository) GetByID(ctx context.Context, id uint) (*model.BoardList, error) {
	args := m.Called(ctx, id)
	list := args.Get(0)
	if list == nil {
		return nil, args.Error(1)
	}
	return list.(*model.BoardList), args.Error(1)
}

func (m *MockBoardListRepository) GetByBoardID(ctx context.Context, boardID uint) ([]model.BoardList, error) {
	args := m.Called(ctx, boardID)
	lists := args.Get(0)
	if lists == nil {
		return nil, args.Error(1)
	}
	return lists.([]model.BoardList), args.Error(1)
}

func (m *MockBoardListRepository) FindByBoardAndName(ctx context.Context, boardID uint, name string) (*model.BoardList, error) {
	args := m.Called(ctx, boardID, name)
	list := args.Get(0)
	if list == nil {
		return nil, args.Error(1)
	}
	return list.(*model.BoardList), args.Error(1)
}

func (m *MockBoardListRepository) Update(ctx context.Context, list *model.BoardList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockBoardListRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Create(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) GetByID(ctx context.Context, id uint) (*model.Card, error) {
	args := m.Called(ctx, id)
	card := args.Get(0)
	if card == nil {
		return nil, args.Error(1)
	}
	return card.(*model.Card), args.Error(1)
}

func (m *MockCardRepository) GetByListID(ctx context.Context, listID uint) ([]model.Card, error) {
	args := m.Called(ctx, listID)
	cards := args.Get(0)
	if cards == nil {
		return nil, args.Error(1)
	}
	return cards.([]model.Card), args.Error(1)
}

func (m *MockCardRepository) Update(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func uintPtr(v uint) *uint {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func int64Ptr(v int64) *int64 {
	return &v
}
