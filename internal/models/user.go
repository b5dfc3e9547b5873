package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey;column:id;autoIncrement"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null;column:email"`
	Name      *string   `gorm:"type:varchar(100);column:name"`
	Password  string    `gorm:"type:varchar(255);not null;column:password"`
	Role      Role      `gorm:"type:varchar(10);not null;default:'user';column:role"`
	Image     *string   `gorm:"type:varchar(255);column:image"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (User) TableName() string {
	return "users"
}

// All возвращает модели для AutoMigrate (sqlite).
func All() []interface{} {
	return []interface{}{&Series{}, &Team{}, &Player{}, &User{}}
}
