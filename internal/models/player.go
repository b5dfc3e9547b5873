package models

import (
	"time"

	"gorm.io/datatypes"
)

type Player struct {
	ID                 uint            `gorm:"primaryKey;column:id;autoIncrement"`
	Name               string          `gorm:"type:varchar(100);not null;column:name"`
	JerseyNumber       string          `gorm:"type:varchar(10);not null;column:jersey_number"`
	Position           Position        `gorm:"type:varchar(20);not null;column:position"`
	BirthDate          *datatypes.Date `gorm:"column:birth_date"`
	Nationality        *string         `gorm:"type:varchar(100);column:nationality"`
	Description        *string         `gorm:"type:text;column:description"`
	Height             *float64        `gorm:"column:height"`
	Weight             *float64        `gorm:"column:weight"`
	SecondaryPosition1 *string         `gorm:"type:varchar(50);column:secondary_position_1"`
	SecondaryPosition2 *string         `gorm:"type:varchar(50);column:secondary_position_2"`
	Rarity             *string         `gorm:"type:varchar(50);column:rarity"`
	Image              *string         `gorm:"type:varchar(255);column:image"`
	TeamID             *uint           `gorm:"column:team_id;index"`
	Team               *Team           `gorm:"foreignKey:TeamID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	CreatedAt          time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt          time.Time       `gorm:"column:updated_at;not null"`
}

func (Player) TableName() string {
	return "players"
}
