package handler

import (
	"context"

	"minimalboard/internal/model"
	"minimalboard/internal/repository"
)

// Read-model composition: Board -> [BoardList -> [Card]], assembled
// from flat per-parent queries. A card's assignee is always the raw
// user id or null, never a nested user object.

type CardView struct {
	CardID          uint   `json:"card_id"`
	CardName        string `json:"card_name"`
	CardDescription string `json:"card_description"`
	AssignedUser    *uint  `json:"assigned_user"`
}

type BoardListView struct {
	BoardListID   uint       `json:"board_list_id"`
	BoardListName string     `json:"board_list_name"`
	Cards         []CardView `json:"cards"`
}

type BoardView struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Privacy       string          `json:"privacy"`
	URL           string          `json:"url"`
	UsersAssigned []uint          `json:"users_assigned"`
	BoardLists    []BoardListView `json:"board_lists"`
}

// BoardData is the per-board element of the all-boards nested view.
// Its key names differ from BoardView's; both spellings are part of
// the wire format.
type BoardData struct {
	BoardID    uint            `json:"board_id"`
	BoardName  string          `json:"board_name"`
	Users      []uint          `json:"users"`
	BoardLists []BoardListView `json:"board_lists"`
}

type BoardSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Privacy string `json:"privacy"`
	URL     string `json:"url"`
}

func composeCardViews(ctx context.Context, cardRepo repository.CardRepositoryInterface, listID uint) ([]CardView, error) {
	cards, err := cardRepo.GetByListID(ctx, listID)
	if err != nil {
		return nil, err
	}
	views := make([]CardView, 0, len(cards))
	for _, card := range cards {
		views = append(views, CardView{
			CardID:          card.ID,
			CardName:        card.Name,
			CardDescription: card.Description,
			AssignedUser:    card.UserID,
		})
	}
	return views, nil
}

func composeListViews(ctx context.Context, listRepo repository.BoardListRepositoryInterface, cardRepo repository.CardRepositoryInterface, boardID uint) ([]BoardListView, error) {
	lists, err := listRepo.GetByBoardID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	views := make([]BoardListView, 0, len(lists))
	for _, list := range lists {
		cards, err := composeCardViews(ctx, cardRepo, list.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, BoardListView{
			BoardListID:   list.ID,
			BoardListName: list.Name,
			Cards:         cards,
		})
	}
	return views, nil
}

func composeBoardView(ctx context.Context, boardRepo repository.BoardRepositoryInterface, listRepo repository.BoardListRepositoryInterface, cardRepo repository.CardRepositoryInterface, board *model.Board) (*BoardView, error) {
	memberIDs, err := boardRepo.GetMemberIDs(ctx, board.ID)
	if err != nil {
		return nil, err
	}
	if memberIDs == nil {
		memberIDs = []uint{}
	}
	lists, err := composeListViews(ctx, listRepo, cardRepo, board.ID)
	if err != nil {
		return nil, err
	}
	return &BoardView{
		ID:            board.ID,
		Name:          board.Name,
		Privacy:       board.Privacy,
		URL:           board.URL,
		UsersAssigned: memberIDs,
		BoardLists:    lists,
	}, nil
}
