package repository_test

import (
	"context"
	"testing"

	"minimalboard/internal/model"
	"minimalboard/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCardRepository_GetByListID(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	cardRepo := repository.NewCardRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "cards" WHERE board_list_id = .*`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "board_list_id", "user_id"}).
			AddRow(21, "Write spec", "first pass", 11, 4).
			AddRow(22, "Review", "", 11, nil))

	// Act
	cards, err := cardRepo.GetByListID(context.Background(), 11)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, cards, 2)
	assert.Equal(t, uint(4), *cards[0].UserID)
	assert.Nil(t, cards[1].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_Update_PersistsClearedAssignee(t *testing.T) {
	// Arrange: a nil UserID must reach the database as NULL, not be
	// skipped as a zero value.
	gormDB, mock := setupMockDB(t)
	cardRepo := repository.NewCardRepository(gormDB)

	card := &model.Card{ID: 21, Name: "Write spec", Description: "", BoardListID: 11, UserID: nil}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cards" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := cardRepo.Update(context.Background(), card)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_Delete(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	cardRepo := repository.NewCardRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "cards"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := cardRepo.Delete(context.Background(), 21)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
