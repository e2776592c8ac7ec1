package model

// BoardMember is one row of the board/user membership relation.
// The pair is the primary key; the relation carries no attributes.
type BoardMember struct {
	BoardID uint `gorm:"primaryKey;autoIncrement:false"`
	UserID  uint `gorm:"primaryKey;autoIncrement:false"`

	Board Board `gorm:"foreignKey:BoardID"`
	User  User  `gorm:"foreignKey:UserID"`
}
