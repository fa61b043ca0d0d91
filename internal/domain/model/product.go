package model

// 商品（カタログ）
// 起動時にシードされ、以降は読み取りのみ。
type Product struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `gorm:"column:imageUrl" json:"imageUrl"`
}
