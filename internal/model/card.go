package model

// Card is a task unit within a board list. UserID is a weak reference:
// when set it must identify a member of the board that owns the card's
// list, which the handlers validate before every write.
type Card struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	BoardListID uint   `gorm:"not null;index"`
	UserID      *uint  `gorm:"index"`

	BoardList BoardList `gorm:"foreignKey:BoardListID"`
	Assignee  User      `gorm:"foreignKey:UserID"`
}
