package model

import "time"

// User is created on first login and upserted by Telegram ID afterwards.
// Profile fields may change between logins; ID never does.
type User struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	TelegramID string    `gorm:"column:telegram_id;type:varchar(255);not null;uniqueIndex" json:"telegramId"`
	Username   string    `gorm:"type:varchar(255)" json:"username"`
	FirstName  string    `gorm:"type:varchar(255)" json:"firstName"`
	LastName   string    `gorm:"type:varchar(255)" json:"lastName"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// UserProfile carries the mutable profile fields sent along with a login.
type UserProfile struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
