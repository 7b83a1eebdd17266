package models

import (
	"time"
)

// OrderItem 订单项表：商品字段为值拷贝，商品之后的编辑/删除不影响历史订单
type OrderItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`                          // 主键
	OrderID     uint      `gorm:"index;not null" json:"order_id"`                // 订单ID
	ProductID   uint      `gorm:"index;not null" json:"product_id"`              // 商品ID（仅作追溯，不外键关联）
	Title       string    `gorm:"not null" json:"title"`                         // 商品标题快照
	Description string    `gorm:"type:text" json:"description"`                  // 商品描述快照
	UnitPrice   Money     `gorm:"type:decimal(20,2);not null" json:"unit_price"` // 单价快照
	Quantity    int       `gorm:"not null" json:"quantity"`                      // 数量
	CreatedAt   time.Time `json:"created_at"`                                    // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
