package handler

import (
	"fmt"
	"net/http"

	"minimalboard/internal/apperr"
	"minimalboard/internal/model"
	"minimalboard/internal/repository"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	boardRepo repository.BoardRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	listRepo  repository.BoardListRepositoryInterface
	cardRepo  repository.CardRepositoryInterface
	baseURL   string
}

func NewBoardHandler(
	boardRepo repository.BoardRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	listRepo repository.BoardListRepositoryInterface,
	cardRepo repository.CardRepositoryInterface,
	baseURL string,
) *BoardHandler {
	return &BoardHandler{
		boardRepo: boardRepo,
		userRepo:  userRepo,
		listRepo:  listRepo,
		cardRepo:  cardRepo,
		baseURL:   baseURL,
	}
}

type BoardRequest struct {
	Name    string `json:"name" binding:"required"`
	Privacy string `json:"privacy" binding:"omitempty,oneof=PUBLIC PRIVATE"`
}

type AddMembersRequest struct {
	UserIDs []uint `json:"user_ids" binding:"required,min=1"`
}

// Create creates a board and derives its URL from the new id in a
// second write step, both inside one transaction.
func (h *BoardHandler) Create(c *gin.Context) {
	var req BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Privacy == "" {
		req.Privacy = model.PrivacyPublic
	}

	existing, err := h.boardRepo.FindByName(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check board name"})
		return
	}
	if existing != nil {
		abortWithError(c, apperr.Conflict("Board with name %s already exists. Please choose a different name.", req.Name))
		return
	}

	board := &model.Board{Name: req.Name, Privacy: req.Privacy}
	err = h.boardRepo.Create(c.Request.Context(), board, func(id uint) string {
		return fmt.Sprintf("%s/boards/%d", h.baseURL, id)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create board"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Board created successfully"})
}

// GetByID returns the fully nested board view: members, lists, and
// the cards under each list.
func (h *BoardHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	board, err := resolveBoard(c.Request.Context(), h.boardRepo, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	view, err := composeBoardView(c.Request.Context(), h.boardRepo, h.listRepo, h.cardRepo, board)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compose board view"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// Update overwrites name and privacy. Omitted privacy falls back to
// PUBLIC. Renaming re-checks the board-name uniqueness constraint.
func (h *BoardHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	board, err := resolveBoard(c.Request.Context(), h.boardRepo, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Privacy == "" {
		req.Privacy = model.PrivacyPublic
	}

	if req.Name != board.Name {
		existing, err := h.boardRepo.FindByName(c.Request.Context(), req.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check board name"})
			return
		}
		if existing != nil && existing.ID != board.ID {
			abortWithError(c, apperr.Conflict("Board with name %s already exists. Please choose a different name.", req.Name))
			return
		}
	}

	board.Name = req.Name
	board.Privacy = req.Privacy
	if err := h.boardRepo.Update(c.Request.Context(), board); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update board"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board updated successfully"})
}

// AddMembers adds users to the board's membership. Every id is
// resolved before anything is written, so one unknown user aborts the
// whole operation with no partial membership added. Ids that are
// already members are no-ops.
func (h *BoardHandler) AddMembers(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	board, err := resolveBoard(c.Request.Context(), h.boardRepo, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req AddMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User IDs are required."})
		return
	}

	for _, userID := range req.UserIDs {
		if _, err := resolveUser(c.Request.Context(), h.userRepo, userID); err != nil {
			abortWithError(c, err)
			return
		}
	}

	if err := h.boardRepo.AddMembers(c.Request.Context(), board.ID, req.UserIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update board users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board users updated successfully"})
}

// Delete removes the board and cascades to its lists, their cards,
// and the membership rows.
func (h *BoardHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	board, err := resolveBoard(c.Request.Context(), h.boardRepo, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := h.boardRepo.Delete(c.Request.Context(), board.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete board"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board deleted successfully"})
}

// GetAll returns the flat enumeration of all boards, scalar fields
// only.
func (h *BoardHandler) GetAll(c *gin.Context) {
	boards, err := h.boardRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve boards"})
		return
	}

	boardsData := make([]BoardSummary, 0, len(boards))
	for _, board := range boards {
		boardsData = append(boardsData, BoardSummary{
			ID:      board.ID,
			Name:    board.Name,
			Privacy: board.Privacy,
			URL:     board.URL,
		})
	}

	c.JSON(http.StatusOK, gin.H{"boards": boardsData})
}

// GetAllData returns the nested view for every board in storage.
func (h *BoardHandler) GetAllData(c *gin.Context) {
	boards, err := h.boardRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve boards"})
		return
	}

	result := make([]BoardData, 0, len(boards))
	for _, board := range boards {
		memberIDs, err := h.boardRepo.GetMemberIDs(c.Request.Context(), board.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve board members"})
			return
		}
		if memberIDs == nil {
			memberIDs = []uint{}
		}
		lists, err := composeListViews(c.Request.Context(), h.listRepo, h.cardRepo, board.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compose board view"})
			return
		}
		result = append(result, BoardData{
			BoardID:    board.ID,
			BoardName:  board.Name,
			Users:      memberIDs,
			BoardLists: lists,
		})
	}

	c.JSON(http.StatusOK, result)
}
