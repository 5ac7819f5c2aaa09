package models

import "time"

type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RoomID    uint      `json:"roomId" gorm:"index;not null"`
	Room      Room      `json:"-" gorm:"foreignKey:RoomID"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
	Star      int       `json:"star"`
	Text      string    `json:"text"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
