package model

import "time"

// Expense is a single spend record. Expenses are append-only: the app never
// edits or deletes one, and they are removed only by cascade when the owning
// user is deleted.
type Expense struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID      string    `gorm:"column:user_id;type:varchar(36);not null;index" json:"userId"`
	Amount      float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Category    string    `gorm:"type:varchar(100);not null" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	CreatedAt   time.Time `json:"createdAt"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Expense) TableName() string {
	return "expenses"
}
