package model

// 注文明細
// Priceは注文時点の商品価格のスナップショット。
type OrderItem struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64   `gorm:"column:orderId;index" json:"orderId"`
	ProductID string  `gorm:"column:productId" json:"productId"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}
