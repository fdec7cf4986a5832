package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultSessionSecret 仅用于本地开发，生产环境必须覆盖。
const DefaultSessionSecret = "fallback-secret-key"

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr  string `env:"LISTEN_ADDR"`
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	GinMode     string `env:"GIN_MODE" envDefault:"release"`
	LogLevel    string `env:"LOG_LEVEL"`

	DatabasePath  string `env:"DATABASE_PATH" envDefault:"pmafa.db"`
	MongoURI      string `env:"MONGODB_URI"`
	LegacyMongo   string `env:"DB"`
	MongoDatabase string `env:"MONGODB_DATABASE" envDefault:"pmafa"`

	SessionSecret string        `env:"SESSION_SECRET" envDefault:"fallback-secret-key"`
	SessionName   string        `env:"SESSION_NAME" envDefault:"pmafa.sid"`
	SessionMaxAge time.Duration `env:"SESSION_MAX_AGE" envDefault:"24h"`

	UploadDir      string `env:"UPLOAD_DIR" envDefault:"web/static/images"`
	UploadURLPath  string `env:"UPLOAD_URL_PATH" envDefault:"/images"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
	TemplateGlob   string `env:"TEMPLATE_GLOB" envDefault:"web/template/*.html"`
	StaticDir      string `env:"STATIC_DIR" envDefault:"web/static"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@example.com"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"defaultpassword123"`

	Mail MailConfig

	ResetCodeTTL time.Duration `env:"RESET_CODE_TTL" envDefault:"10m"`

	OTelEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelEnabled     bool   `env:"OTEL_ENABLED"`
	OTelServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"pmafa"`
}

// MailConfig 描述 SMTP 发信参数，User 为空时不发送邮件。
type MailConfig struct {
	Host     string `env:"EMAIL_HOST" envDefault:"smtp.gmail.com"`
	Port     int    `env:"EMAIL_PORT" envDefault:"587"`
	User     string `env:"EMAIL_USER"`
	Password string `env:"EMAIL_PASS"`
	FromName string `env:"EMAIL_FROM_NAME" envDefault:"PMAFA"`
}

// Enabled 报告是否配置了 SMTP 凭据。
func (m MailConfig) Enabled() bool {
	return m.User != "" && m.Password != ""
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *AppConfig) normalize() {
	trim := []*string{
		&c.ListenAddr, &c.Port, &c.Environment, &c.GinMode, &c.LogLevel,
		&c.DatabasePath, &c.MongoURI, &c.LegacyMongo, &c.MongoDatabase,
		&c.SessionSecret, &c.SessionName, &c.UploadDir, &c.UploadURLPath,
		&c.TemplateGlob, &c.StaticDir, &c.AdminUsername, &c.AdminEmail,
		&c.Mail.Host, &c.Mail.User, &c.Mail.FromName, &c.OTelEndpoint,
	}
	for _, p := range trim {
		*p = strings.TrimSpace(*p)
	}

	if c.Port == "" {
		c.Port = "8080"
	}
	if c.ListenAddr == "" {
		c.ListenAddr = fmt.Sprintf(":%s", c.Port)
	}
	if c.MongoURI == "" {
		c.MongoURI = c.LegacyMongo
	}
	if c.SessionSecret == "" {
		c.SessionSecret = DefaultSessionSecret
	}
	if c.SessionMaxAge <= 0 {
		c.SessionMaxAge = 24 * time.Hour
	}
	if c.UploadURLPath == "" {
		c.UploadURLPath = "/images"
	}
	c.UploadURLPath = "/" + strings.Trim(c.UploadURLPath, "/")
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = 10 << 20
	}
	if c.ResetCodeTTL <= 0 {
		c.ResetCodeTTL = 10 * time.Minute
	}
	if c.OTelEndpoint != "" {
		c.OTelEnabled = true
	}
}

// IsProduction 控制错误详情与 Cookie Secure 标记。
func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// UsesDefaultSecret 用于启动时提示修改会话密钥。
func (c AppConfig) UsesDefaultSecret() bool {
	return c.SessionSecret == DefaultSessionSecret
}
