package model

import "time"

// UserSessionModel mirrors the 'user_sessions' table backing the session_db strategy.
type UserSessionModel struct {
	SessionID string `gorm:"type:varchar(64);primaryKey"`
	UserID    string `gorm:"type:varchar(64);index;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserSessionModel) TableName() string {
	return "user_sessions"
}

// All lists every model migrated at startup.
func All() []any {
	return []any{&UserModel{}, &UserSessionModel{}}
}
