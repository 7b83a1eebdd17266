package models

import (
	"time"

	"gorm.io/gorm"
)

// Post 文章表
type Post struct {
	ID        uint           `gorm:"primarykey" json:"id"`              // 主键
	UserID    uint           `gorm:"not null;index" json:"user_id"`     // 创建者用户ID（唯一 owner）
	Title     string         `gorm:"not null" json:"title"`             // 标题
	Content   string         `gorm:"type:text;not null" json:"content"` // 内容
	ImagePath string         `gorm:"not null" json:"image_path"`        // 配图路径
	CreatedAt time.Time      `gorm:"index" json:"created_at"`           // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`           // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                    // 软删除时间

	User *User `gorm:"foreignKey:UserID" json:"creator,omitempty"` // 创建者信息
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}
