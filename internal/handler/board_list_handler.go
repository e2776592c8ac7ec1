package handler

import (
	"net/http"

	"minimalboard/internal/apperr"
	"minimalboard/internal/model"
	"minimalboard/internal/repository"

	"github.com/gin-gonic/gin"
)

type BoardListHandler struct {
	listRepo  repository.BoardListRepositoryInterface
	boardRepo repository.BoardRepositoryInterface
	cardRepo  repository.CardRepositoryInterface
}

func NewBoardListHandler(
	listRepo repository.BoardListRepositoryInterface,
	boardRepo repository.BoardRepositoryInterface,
	cardRepo repository.CardRepositoryInterface,
) *BoardListHandler {
	return &BoardListHandler{
		listRepo:  listRepo,
		boardRepo: boardRepo,
		cardRepo:  cardRepo,
	}
}

type CreateBoardListRequest struct {
	Name    string `json:"name" binding:"required"`
	BoardID uint   `json:"board_id" binding:"required"`
}

type UpdateBoardListRequest struct {
	Name string `json:"name" binding:"required"`
}

type BoardListDetail struct {
	ID      uint       `json:"id"`
	Name    string     `json:"name"`
	BoardID uint       `json:"board_id"`
	Cards   []CardView `json:"cards"`
}

// Create creates a list under a board. A missing parent board is a
// referential failure, not a plain not-found: the board id arrived in
// the body as a reference, not as the addressed resource.
func (h *BoardListHandler) Create(c *gin.Context) {
	var req CreateBoardListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	board, err := h.boardRepo.GetByID(c.Request.Context(), req.BoardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve board"})
		return
	}
	if board == nil {
		abortWithError(c, apperr.Referential("Board with board id %d does not exist", req.BoardID))
		return
	}

	existing, err := h.listRepo.FindByBoardAndName(c.Request.Context(), req.BoardID, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check list name"})
		return
	}
	if existing != nil {
		abortWithError(c, apperr.Conflict("A board list with the same name already exists within the board."))
		return
	}

	list := &model.BoardList{Name: req.Name, BoardID: req.BoardID}
	if err := h.listRepo.Create(c.Request.Context(), list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while creating the board list."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Board list created successfully.",
		"board_list_id": list.ID,
	})
}

// GetByID returns the list with its cards.
func (h *BoardListHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	list, err := resolveBoardList(c.Request.Context(), h.listRepo, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	cards, err := composeCardViews(c.Request.Context(), h.cardRepo, list.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cards"})
		return
	}

	c.JSON(http.StatusOK, BoardListDetail{
		ID:      list.ID,
		Name:    list.Name,
		BoardID: list.BoardID,
		Cards:   cards,
	})
}

// Update renames the list. The per-board name uniqueness enforced at
// create time is re-checked here as well.
func (h *BoardListHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	list, err := resolveBoardList(c.Request.Context(), h.listRepo, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req UpdateBoardListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Name != list.Name {
		existing, err := h.listRepo.FindByBoardAndName(c.Request.Context(), list.BoardID, req.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check list name"})
			return
		}
		if existing != nil && existing.ID != list.ID {
			abortWithError(c, apperr.Conflict("A board list with the same name already exists within the board."))
			return
		}
	}

	list.Name = req.Name
	if err := h.listRepo.Update(c.Request.Context(), list); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update board list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"board_list_id":   list.ID,
		"board_list_name": list.Name,
	})
}

// Delete removes the list and cascades to its cards.
func (h *BoardListHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	list, err := resolveBoardList(c.Request.Context(), h.listRepo, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := h.listRepo.Delete(c.Request.Context(), list.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete board list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board list deleted successfully"})
}
