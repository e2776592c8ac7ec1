package handler

import (
	"net/http"

	"minimalboard/internal/apperr"
	"minimalboard/internal/model"
	"minimalboard/internal/repository"

	"github.com/gin-gonic/gin"
)

// UnassignSentinel is the user_id value that clears a card's
// assignment on update.
const UnassignSentinel = -1

type CardHandler struct {
	cardRepo  repository.CardRepositoryInterface
	listRepo  repository.BoardListRepositoryInterface
	boardRepo repository.BoardRepositoryInterface
	userRepo  repository.UserRepositoryInterface
}

func NewCardHandler(
	cardRepo repository.CardRepositoryInterface,
	listRepo repository.BoardListRepositoryInterface,
	boardRepo repository.BoardRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
) *CardHandler {
	return &CardHandler{
		cardRepo:  cardRepo,
		listRepo:  listRepo,
		boardRepo: boardRepo,
		userRepo:  userRepo,
	}
}

type CreateCardRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	BoardListID uint   `json:"board_list_id" binding:"required"`
	UserID      *uint  `json:"user_id"`
}

// UpdateCardRequest uses pointer fields for presence: an omitted
// field leaves the value unchanged, a provided value (including the
// empty string) is applied. UserID is signed so the unassign sentinel
// fits on the wire.
type UpdateCardRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	BoardListID *uint   `json:"board_list_id"`
	UserID      *int64  `json:"user_id"`
}

type CardDetail struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BoardListID uint   `json:"board_list_id"`
	UserID      *uint  `json:"user_id"`
}

// Create creates a card under a list. An assignee may only be set if
// the user is a member of the board that owns the list; the check
// runs before anything is written.
func (h *CardHandler) Create(c *gin.Context) {
	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	list, err := resolveBoardList(c.Request.Context(), h.listRepo, req.BoardListID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	// Invariant says every list has a board; resolving it anyway
	// keeps a dangling parent from slipping through as a 500.
	board, err := resolveBoard(c.Request.Context(), h.boardRepo, list.BoardID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	card := &model.Card{
		Name:        req.Name,
		Description: req.Description,
		BoardListID: list.ID,
	}

	if req.UserID != nil {
		user, err := resolveUser(c.Request.Context(), h.userRepo, *req.UserID)
		if err != nil {
			abortWithError(c, err)
			return
		}
		member, err := h.boardRepo.IsMember(c.Request.Context(), board.ID, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check board membership"})
			return
		}
		if !member {
			abortWithError(c, apperr.Precondition("Add user to %s board to access within card", board.Name))
			return
		}
		card.UserID = &user.ID
	}

	if err := h.cardRepo.Create(c.Request.Context(), card); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create card"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Card created successfully"})
}

func (h *CardHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	card, err := resolveCard(c.Request.Context(), h.cardRepo, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CardDetail{
		ID:          card.ID,
		Name:        card.Name,
		Description: card.Description,
		BoardListID: card.BoardListID,
		UserID:      card.UserID,
	})
}

// Update applies a partial update. A list move must stay within the
// card's current board. Assignment is validated against the board the
// card was in when the request arrived, i.e. the pre-move board when
// a move and a reassign travel in the same call.
func (h *CardHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	card, err := resolveCard(c.Request.Context(), h.cardRepo, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	list, err := resolveBoardList(c.Request.Context(), h.listRepo, card.BoardListID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	board, err := resolveBoard(c.Request.Context(), h.boardRepo, list.BoardID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Name != nil {
		card.Name = *req.Name
	}
	if req.Description != nil {
		card.Description = *req.Description
	}

	if req.BoardListID != nil {
		target, err := resolveBoardList(c.Request.Context(), h.listRepo, *req.BoardListID)
		if err != nil {
			abortWithError(c, err)
			return
		}
		if target.BoardID != board.ID {
			abortWithError(c, apperr.Precondition("Cannot assign card to board list that is not in the same board"))
			return
		}
		card.BoardListID = target.ID
	}

	if req.UserID != nil {
		switch {
		case *req.UserID == UnassignSentinel:
			card.UserID = nil
		case *req.UserID < 0:
			abortWithError(c, apperr.NotFound("User not found."))
			return
		default:
			user, err := resolveUser(c.Request.Context(), h.userRepo, uint(*req.UserID))
			if err != nil {
				abortWithError(c, err)
				return
			}
			member, err := h.boardRepo.IsMember(c.Request.Context(), board.ID, user.ID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check board membership"})
				return
			}
			if !member {
				abortWithError(c, apperr.Precondition("Add user to %s board to access within card", board.Name))
				return
			}
			card.UserID = &user.ID
		}
	}

	if err := h.cardRepo.Update(c.Request.Context(), card); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card updated successfully"})
}

// Delete removes the card. A missing card is an explicit 404.
func (h *CardHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	card, err := resolveCard(c.Request.Context(), h.cardRepo, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := h.cardRepo.Delete(c.Request.Context(), card.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card deleted successfully"})
}
