package db

import "time"

// PasswordReset 保存一次性重置验证码，过期后由定时任务清理。
type PasswordReset struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"size:255;index:idx_password_reset_lookup"`
	Code      string    `gorm:"size:16;index:idx_password_reset_lookup"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}

// TableName 指定自定义表名。
func (PasswordReset) TableName() string {
	return "password_resets"
}
