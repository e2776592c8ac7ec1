package repository_test

import (
	"context"
	"fmt"
	"testing"

	"minimalboard/internal/model"
	"minimalboard/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestBoardRepository_Create_TwoPhaseURL(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	board := &model.Board{Name: "Eng", Privacy: model.PrivacyPublic}

	// Insert first, then the url write derived from the new id, all
	// inside one transaction.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "boards"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(`UPDATE "boards" SET "url"`).
		WithArgs("http://localhost:8080/boards/7", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := boardRepo.Create(context.Background(), board, func(id uint) string {
		return fmt.Sprintf("http://localhost:8080/boards/%d", id)
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, uint(7), board.ID)
	assert.Equal(t, "http://localhost:8080/boards/7", board.URL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_Create_RollsBackOnURLWriteFailure(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	board := &model.Board{Name: "Eng", Privacy: model.PrivacyPublic}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "boards"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(`UPDATE "boards" SET "url"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	// Act
	err := boardRepo.Create(context.Background(), board, func(id uint) string {
		return fmt.Sprintf("http://localhost:8080/boards/%d", id)
	})

	// Assert
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_AddMembers_SkipsExistingRows(t *testing.T) {
	// Arrange: the second insert hits the existing pair and affects
	// no row, which is not an error.
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO board_members`).
		WithArgs(2, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO board_members`).
		WithArgs(2, 4).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	err := boardRepo.AddMembers(context.Background(), 2, []uint{4, 4})

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_IsMember(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "board_members"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	// Act
	member, err := boardRepo.IsMember(context.Background(), 2, 4)

	// Assert
	assert.NoError(t, err)
	assert.True(t, member)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_Delete_CascadesListsCardsAndMembers(t *testing.T) {
	// Arrange: board 2 owns list 11 with cards; everything under the
	// board goes in one transaction.
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "board_lists" WHERE board_id = .*`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectExec(`DELETE FROM "cards" WHERE board_list_id IN`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "board_lists" WHERE board_id = .*`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "board_members" WHERE board_id = .*`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "boards"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := boardRepo.Delete(context.Background(), 2)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_Delete_EmptyBoardSkipsCardDelete(t *testing.T) {
	// Arrange: no lists, so no card delete is issued.
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "board_lists" WHERE board_id = .*`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(`DELETE FROM "board_lists" WHERE board_id = .*`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "board_members" WHERE board_id = .*`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "boards"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := boardRepo.Delete(context.Background(), 2)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
