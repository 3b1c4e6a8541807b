package model

import "time"

// Goal statuses. Progress (current/target) is independent of status: an
// overfunded goal can still be active and a completed goal can sit below
// its target.
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusPaused    = "paused"
)

// Goal is a savings target. CurrentAmount, Status and AIInsights are the
// only fields mutated after creation, via a partial update.
type Goal struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID        string    `gorm:"column:user_id;type:varchar(36);not null;index" json:"userId"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	TargetAmount  float64   `gorm:"type:decimal(10,2);not null" json:"targetAmount"`
	CurrentAmount float64   `gorm:"type:decimal(10,2);default:0" json:"currentAmount"`
	Category      string    `gorm:"type:varchar(100);not null" json:"category"`
	Deadline      time.Time `gorm:"type:date;not null" json:"deadline"`
	Status        string    `gorm:"type:varchar(50);default:'active'" json:"status"`
	AIInsights    string    `gorm:"column:ai_insights;type:text" json:"aiInsights,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Goal) TableName() string {
	return "goals"
}

// GoalPatch is a typed partial update. Only non-nil fields are applied,
// which keeps arbitrary column names out of the persistence layer.
type GoalPatch struct {
	CurrentAmount *float64 `json:"currentAmount"`
	Status        *string  `json:"status"`
	AIInsights    *string  `json:"aiInsights"`
}

// IsEmpty reports whether the patch would change nothing.
func (p GoalPatch) IsEmpty() bool {
	return p.CurrentAmount == nil && p.Status == nil && p.AIInsights == nil
}
