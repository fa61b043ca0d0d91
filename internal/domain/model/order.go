package model

import "time"

// orderDateの保存形式（UTC、ミリ秒、Z終端）
const OrderDateLayout = "2006-01-02T15:04:05.000Z"

// 注文ヘッダ
type Order struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserEmail   string      `gorm:"column:userEmail;index" json:"userEmail"`
	OrderDate   string      `gorm:"column:orderDate" json:"orderDate"`
	TotalAmount float64     `gorm:"column:totalAmount" json:"totalAmount"`
	Items       []OrderItem `gorm:"-" json:"items,omitempty"`
}

// FormatOrderDate はtをorderDateの文字列にする。
func FormatOrderDate(t time.Time) string {
	return t.UTC().Format(OrderDateLayout)
}
