package models

import "time"

type Team struct {
	ID          uint      `gorm:"primaryKey;column:id;autoIncrement"`
	Name        string    `gorm:"type:varchar(100);not null;column:name"`
	Stadium     *string   `gorm:"type:varchar(100);column:stadium"`
	City        *string   `gorm:"type:varchar(100);column:city"`
	Description *string   `gorm:"type:text;column:description"`
	Image       *string   `gorm:"type:varchar(255);column:image"`
	SeriesID    *uint     `gorm:"column:series_id;index"`
	Series      *Series   `gorm:"foreignKey:SeriesID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Players     []Player  `gorm:"foreignKey:TeamID"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

func (Team) TableName() string {
	return "teams"
}
