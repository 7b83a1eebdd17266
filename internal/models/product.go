package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                     // 主键
	UserID      uint           `gorm:"not null;index" json:"user_id"`            // 所属用户ID（唯一 owner）
	Title       string         `gorm:"not null" json:"title"`                    // 标题
	Description string         `gorm:"type:text" json:"description"`             // 描述
	Price       Money          `gorm:"type:decimal(20,2);not null" json:"price"` // 价格（必须大于 0）
	ImagePath   string         `gorm:"not null" json:"image_path"`               // 图片路径
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                  // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                               // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                           // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
