package model

// BoardList is a named column within a board. List names are unique
// within their board, not globally.
type BoardList struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"size:100;not null;uniqueIndex:uq_board_list_name_board_id"`
	BoardID uint   `gorm:"not null;index;uniqueIndex:uq_board_list_name_board_id"`

	Board Board `gorm:"foreignKey:BoardID"`
}
