package db

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User 定义了后台管理员账号
type User struct {
	gorm.Model
	Username string `gorm:"unique;not null"`
	Email    string `gorm:"index"`
	Password string `gorm:"not null"`
}

// HashPassword 返回 bcrypt 哈希。密码按原样保存，不去除首尾空格。
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword 校验明文密码与哈希是否匹配。
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// EnsureUser 存在性检查：当库中没有任何账号且用户名与密码均非空时，创建一个 bcrypt 哈希的管理员。
func EnsureUser(username, email, password string) (bool, error) {
	trimmedUser := strings.TrimSpace(username)
	if trimmedUser == "" || strings.TrimSpace(password) == "" {
		return false, nil
	}

	if DB == nil {
		return false, errors.New("database not initialized")
	}

	var count int64
	if err := DB.Model(&User{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return false, err
	}
	user := User{Username: trimmedUser, Email: strings.TrimSpace(email), Password: hashed}
	if err := DB.Create(&user).Error; err != nil {
		return false, err
	}
	return true, nil
}

// UpsertUser 创建或覆盖指定用户名的账号，供 create-admin 命令使用。
func UpsertUser(conn *gorm.DB, username, email, password string) (*User, error) {
	trimmedUser := strings.TrimSpace(username)
	if trimmedUser == "" || strings.TrimSpace(password) == "" {
		return nil, errors.New("username and password are required")
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	var user User
	err = conn.Where("username = ?", trimmedUser).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = User{Username: trimmedUser, Email: strings.TrimSpace(email), Password: hashed}
		if err := conn.Create(&user).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		user.Password = hashed
		if trimmed := strings.TrimSpace(email); trimmed != "" {
			user.Email = trimmed
		}
		if err := conn.Save(&user).Error; err != nil {
			return nil, err
		}
	}
	return &user, nil
}
