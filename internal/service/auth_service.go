package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pmafa/internal/db"
	"github.com/pmafa/internal/mail"
)

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrEmailNotRegistered  = errors.New("email not registered")
	ErrResetCodeInvalid    = errors.New("invalid or expired code")
	ErrUserNotFound        = errors.New("user not found")
	ErrPasswordRequired    = errors.New("new password is required")
	ErrResetDeliveryFailed = errors.New("failed to send reset code")
)

// DefaultResetCodeTTL 是重置验证码的默认有效期。
const DefaultResetCodeTTL = 10 * time.Minute

// AuthService 负责管理员登录与密码重置。
type AuthService struct {
	db     *gorm.DB
	mailer mail.Mailer
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
	code   func() (string, error)
}

// NewAuthService 构造 AuthService，ttl<=0 时使用默认有效期。
func NewAuthService(gdb *gorm.DB, mailer mail.Mailer, ttl time.Duration, logger *zap.Logger) *AuthService {
	if ttl <= 0 {
		ttl = DefaultResetCodeTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{db: gdb, mailer: mailer, ttl: ttl, logger: logger, now: time.Now, code: randomCode}
}

// Authenticate 校验用户名与密码。
func (s *AuthService) Authenticate(username, password string) (*db.User, error) {
	var user db.User
	err := s.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// StartPasswordReset 为该邮箱的账号生成 6 位验证码并发送邮件，返回收件地址。
func (s *AuthService) StartPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.userByEmail(email)
	if errors.Is(err, ErrUserNotFound) {
		return "", ErrEmailNotRegistered
	}
	if err != nil {
		return "", err
	}

	code, err := s.code()
	if err != nil {
		return "", fmt.Errorf("generate reset code: %w", err)
	}
	// 新验证码生效时旧验证码作废
	reset := db.PasswordReset{Email: user.Email, Code: code, ExpiresAt: s.now().Add(s.ttl)}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", user.Email).Delete(&db.PasswordReset{}).Error; err != nil {
			return err
		}
		return tx.Create(&reset).Error
	})
	if err != nil {
		return "", err
	}

	msg := mail.Message{
		To:      user.Email,
		Subject: "Password Reset Code",
		Text:    fmt.Sprintf("Your password reset code is: %s. It expires in %d minutes.", code, int(s.ttl.Minutes())),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error("failed to send reset code", zap.String("email", user.Email), zap.Error(err))
		s.db.Delete(&reset)
		return "", fmt.Errorf("%w: %w", ErrResetDeliveryFailed, err)
	}
	s.logger.Info("password reset code issued", zap.String("email", user.Email))
	return user.Email, nil
}

// CompletePasswordReset 校验验证码并设置新密码，成功后验证码失效。
func (s *AuthService) CompletePasswordReset(email, code, newPassword string) error {
	email = strings.TrimSpace(email)
	code = strings.TrimSpace(code)
	if strings.TrimSpace(newPassword) == "" {
		return ErrPasswordRequired
	}

	var reset db.PasswordReset
	err := s.db.Where("email = ? AND code = ? AND expires_at > ?", email, code, s.now()).First(&reset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrResetCodeInvalid
	}
	if err != nil {
		return err
	}

	user, err := s.userByEmail(email)
	if err != nil {
		return err
	}
	hashed, err := db.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(user).Update("password", hashed).Error; err != nil {
			return err
		}
		return tx.Where("email = ?", reset.Email).Delete(&db.PasswordReset{}).Error
	})
}

// PurgeExpiredResets 删除已过期的验证码，返回删除数量。
func (s *AuthService) PurgeExpiredResets(now time.Time) (int64, error) {
	result := s.db.Where("expires_at <= ?", now).Delete(&db.PasswordReset{})
	return result.RowsAffected, result.Error
}

func (s *AuthService) userByEmail(email string) (*db.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrUserNotFound
	}
	var user db.User
	err := s.db.Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// randomCode 返回 100000-999999 之间的验证码。
func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
