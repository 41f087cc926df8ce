package models

import (
	"time"
)

type Admin struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:50;unique;not null" json:"username"`
	Password string `gorm:"size:200;not null" json:"-"` // bcrypt hash
}

type Member struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Role      string    `gorm:"size:50;not null" json:"role"` // TRAINEE, JUNIOR MECH, MECHANIC, SENIOR MECH
	CreatedAt time.Time `json:"created_at"`
}

// Daily earnings
type Earning struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MemberID  uint      `gorm:"not null;index" json:"member_id"`
	Member    Member    `gorm:"foreignKey:MemberID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
	Amount    float64   `gorm:"not null" json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// All returns every persisted model, in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{&Admin{}, &Member{}, &Earning{}}
}
