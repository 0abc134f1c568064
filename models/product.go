package models

import "gorm.io/gorm"

// MinMyPrice is the lowest target price a user may set for a product.
const MinMyPrice = 100

type Product struct {
	gorm.Model
	Title   string `gorm:"not null" json:"title"`
	Link    string `json:"link"`
	Image   string `json:"image"`
	Lprice  int    `json:"lprice"`
	MyPrice int    `json:"myprice"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `json:"-" gorm:"foreignKey:UserID"`
}
