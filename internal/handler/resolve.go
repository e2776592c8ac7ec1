package handler

import (
	"context"
	"net/http"
	"strconv"

	"minimalboard/internal/apperr"
	"minimalboard/internal/model"
	"minimalboard/internal/repository"

	"github.com/gin-gonic/gin"
)

// pathID parses the numeric id path parameter. On failure it writes
// the 400 response itself and reports false.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id format"})
		return 0, false
	}
	return uint(id), true
}

// abortWithError maps a kinded error to its HTTP status; anything
// else becomes a 500.
func abortWithError(c *gin.Context, err error) {
	c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
}

// The resolve helpers centralize the id-to-entity lookups every
// command starts with, so the handlers never duplicate the
// existence check.

func resolveUser(ctx context.Context, repo repository.UserRepositoryInterface, id uint) (*model.User, error) {
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found.")
	}
	return user, nil
}

func resolveBoard(ctx context.Context, repo repository.BoardRepositoryInterface, id uint) (*model.Board, error) {
	board, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, apperr.NotFound("Board not found.")
	}
	return board, nil
}

func resolveBoardList(ctx context.Context, repo repository.BoardListRepositoryInterface, id uint) (*model.BoardList, error) {
	list, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, apperr.NotFound("Board List not found.")
	}
	return list, nil
}

func resolveCard(ctx context.Context, repo repository.CardRepositoryInterface, id uint) (*model.Card, error) {
	card, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, apperr.NotFound("Card not found.")
	}
	return card, nil
}
