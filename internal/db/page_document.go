package db

import "time"

// PageDocument 存储单例页面文档，Body 为 JSON 文本，每种 Kind 仅一行。
type PageDocument struct {
	ID        uint   `gorm:"primaryKey"`
	Kind      string `gorm:"size:32;uniqueIndex;not null"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定自定义表名。
func (PageDocument) TableName() string {
	return "page_documents"
}
