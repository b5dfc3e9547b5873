package models

import (
	"time"

	"gorm.io/datatypes"
)

type Series struct {
	ID          uint            `gorm:"primaryKey;column:id;autoIncrement"`
	Name        string          `gorm:"type:varchar(100);not null;column:name"`
	Season      *string         `gorm:"type:varchar(50);column:season"`
	Description *string         `gorm:"type:text;column:description"`
	Status      *string         `gorm:"type:varchar(50);column:status"`
	Country     *string         `gorm:"type:varchar(100);column:country"`
	LaunchDate  *datatypes.Date `gorm:"column:launch_date"`
	Image       *string         `gorm:"type:varchar(255);column:image"`
	Teams       []Team          `gorm:"foreignKey:SeriesID"`
	CreatedAt   time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;not null"`
}

func (Series) TableName() string {
	return "series"
}
