package model

type Board struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"size:255;not null;uniqueIndex"`
	Privacy string `gorm:"size:20;default:PUBLIC;check:privacy IN ('PUBLIC', 'PRIVATE')"`
	URL     string `gorm:"size:100;uniqueIndex"`
}

// Privacy values for a board
const (
	PrivacyPublic  = "PUBLIC"  // visible to everyone
	PrivacyPrivate = "PRIVATE" // visible to members only
)
