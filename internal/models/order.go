package models

import (
	"time"
)

// Order 订单表：结账时刻购物车的不可变快照，创建后不再修改
type Order struct {
	ID          uint      `gorm:"primarykey" json:"id"`                            // 主键
	UserID      uint      `gorm:"index;not null" json:"user_id"`                   // 下单用户ID
	UserEmail   string    `gorm:"not null" json:"user_email"`                      // 下单用户邮箱快照
	TotalAmount Money     `gorm:"type:decimal(20,2);not null" json:"total_amount"` // 合计金额
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                         // 创建时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
