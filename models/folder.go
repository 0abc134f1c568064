package models

import "gorm.io/gorm"

type Folder struct {
	gorm.Model
	Name   string `gorm:"not null;uniqueIndex:idx_folder_owner_name" json:"name"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_folder_owner_name" json:"user_id"`
	User   User   `json:"-" gorm:"foreignKey:UserID"`
}

// ProductFolder files one product under one folder. The composite unique
// index makes the store the authority on the at-most-one-per-pair rule:
// a concurrent duplicate insert fails with a constraint violation even if
// it slipped past the service-level check.
type ProductFolder struct {
	gorm.Model
	ProductID uint    `gorm:"not null;uniqueIndex:idx_product_folder" json:"product_id"`
	FolderID  uint    `gorm:"not null;uniqueIndex:idx_product_folder" json:"folder_id"`
	Product   Product `json:"-" gorm:"foreignKey:ProductID"`
	Folder    Folder  `json:"-" gorm:"foreignKey:FolderID"`
}
